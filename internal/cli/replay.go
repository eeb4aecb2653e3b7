package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/input"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/render"
)

// Names used by replay when none are configured
const (
	defaultPlayerOne = "Player 1"
	defaultPlayerTwo = "Player 2"
)

func newReplayCmd() *cobra.Command {
	var moves string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a sequence of moves and show the final position",
		Long: `Replay a game from a list of 1-based column numbers.

Moves alternate between the two players starting with player one. The replay
stops with an error at the first rejected move, or if moves remain after the
game has ended.`,
		Example: `  connectfour replay --moves 4,4,5,5,6,6,7
  connectfour replay --moves "1 2 1 2 1 2 1" --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := input.ParseColumns(moves)
			if err != nil {
				return err
			}

			first, second, err := replayPlayers(cfg.PlayerOne, cfg.PlayerTwo)
			if err != nil {
				return err
			}

			renderCfg, err := cfg.RenderConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			g, err := app.GameController.CreateGame(ctx, first, second)
			if err != nil {
				return err
			}

			var moveErr error
			for i, col := range columns {
				if _, err := app.GameController.SubmitMove(ctx, g.ID, col); err != nil {
					moveErr = fmt.Errorf("move %d (column %d): %w", i+1, col+1, err)
					break
				}
			}

			result, err := newReplayResult(g)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), render.NewTextRenderer(cmd.OutOrStdout(), renderCfg))
			if err := out.Print(result); err != nil {
				return err
			}
			return moveErr
		},
	}

	cmd.Flags().StringVarP(&moves, "moves", "m", "", "Comma or space separated 1-based columns (required)")
	_ = cmd.MarkFlagRequired("moves")

	return cmd
}

func replayPlayers(nameOne, nameTwo string) (model.Player, model.Player, error) {
	if nameOne == "" {
		nameOne = defaultPlayerOne
	}
	if nameTwo == "" {
		nameTwo = defaultPlayerTwo
	}

	first, err := model.NewPlayer(nameOne, seatColors[0], seatTokens[0])
	if err != nil {
		return model.Player{}, model.Player{}, err
	}
	second, err := model.NewOpponent(first, nameTwo, seatColors[1], seatTokens[1])
	if err != nil {
		return model.Player{}, model.Player{}, err
	}
	return first, second, nil
}
