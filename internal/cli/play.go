package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/input"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/render"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

// Seat colours and tokens, in slot order
var (
	seatColors = [2]model.DisplayAttribute{"red", "yellow"}
	seatTokens = [2]rune{'1', '2'}
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		Long: `Play Connect Four with two players sharing one terminal.

Players are asked for their names unless --player-one and --player-two (or
C4_PLAYER_ONE and C4_PLAYER_TWO) are set. Enter a column number from 1 to 7
to drop a token. After each game you can play again with the seats swapped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCfg, err := cfg.RenderConfig()
			if err != nil {
				return err
			}

			session := &playSession{
				controller: app.GameController,
				renderer:   render.NewTextRenderer(cmd.OutOrStdout(), renderCfg),
				input:      input.NewReader(cmd.InOrStdin()),
				out:        cmd.OutOrStdout(),
			}
			return session.run(cmd.Context(), cfg.PlayerOne, cfg.PlayerTwo)
		},
	}
}

// playSession runs games between the same two players until they stop
type playSession struct {
	controller game.ControllerInterface
	renderer   render.Renderer
	input      input.Provider
	out        io.Writer
}

func (s *playSession) run(ctx context.Context, nameOne, nameTwo string) error {
	first, second, err := s.setupPlayers(ctx, nameOne, nameTwo)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	g, err := s.controller.CreateGame(ctx, first, second)
	if err != nil {
		return err
	}

	for {
		finished, err := s.playGame(ctx, g)
		if err != nil {
			return err
		}
		if !finished {
			return s.controller.AbandonGame(ctx, g.ID)
		}

		standings, err := s.controller.Standings(ctx)
		if err != nil {
			return err
		}
		if err := s.renderer.Standings(standings); err != nil {
			return err
		}

		fmt.Fprint(s.out, "Play again? [y/N] ")
		again, err := s.input.Confirm(ctx)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			fmt.Fprintln(s.out, "Thanks for playing!")
			return nil
		}

		g, err = s.controller.Rematch(ctx, g.ID)
		if err != nil {
			return err
		}
	}
}

// setupPlayers builds both players, asking for any name not already given
func (s *playSession) setupPlayers(ctx context.Context, nameOne, nameTwo string) (model.Player, model.Player, error) {
	first, err := s.askPlayer(ctx, 1, nameOne, func(name string) (model.Player, error) {
		return model.NewPlayer(name, seatColors[0], seatTokens[0])
	})
	if err != nil {
		return model.Player{}, model.Player{}, err
	}

	second, err := s.askPlayer(ctx, 2, nameTwo, func(name string) (model.Player, error) {
		return model.NewOpponent(first, name, seatColors[1], seatTokens[1])
	})
	if err != nil {
		return model.Player{}, model.Player{}, err
	}

	return first, second, nil
}

func (s *playSession) askPlayer(ctx context.Context, seat int, preset string, build func(string) (model.Player, error)) (model.Player, error) {
	if preset != "" {
		return build(preset)
	}

	for {
		fmt.Fprintf(s.out, "Player %d, please enter your name: ", seat)
		name, err := s.input.ReadLine(ctx)
		if err != nil {
			return model.Player{}, err
		}

		p, err := build(name)
		if errors.Is(err, model.ErrInvalidPlayerName) {
			fmt.Fprintln(s.out, "Name cannot be empty.")
			continue
		}
		return p, err
	}
}

// playGame prompts for columns until the game ends. It reports false if input
// ran out first.
func (s *playSession) playGame(ctx context.Context, g *model.Game) (bool, error) {
	engine := g.Engine
	players := engine.Players()

	if err := s.renderer.Board(engine.Board(), players, nil); err != nil {
		return false, err
	}

	for {
		current := engine.CurrentPlayer()
		if err := s.renderer.Prompt(current); err != nil {
			return false, err
		}

		column, err := s.input.ReadColumn(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return false, nil
		}

		var out model.MoveOutcome
		if err == nil {
			out, err = s.controller.SubmitMove(ctx, g.ID, column)
		}
		if err != nil {
			if !errors.Is(err, model.ErrInvalidColumn) && !errors.Is(err, model.ErrColumnFull) {
				return false, err
			}
			if err := s.renderer.Rejected(current, err); err != nil {
				return false, err
			}
			continue
		}

		if err := s.renderer.Board(engine.Board(), players, out.Line); err != nil {
			return false, err
		}
		if out.State.IsOver() {
			return true, s.renderer.Result(players, out.State)
		}
	}
}
