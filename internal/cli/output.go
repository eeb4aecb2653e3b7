package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/render"
)

// Output handles formatting output based on the configured format
type Output struct {
	format   string
	w        io.Writer
	renderer render.Renderer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer, renderer render.Renderer) *Output {
	return &Output{format: format, w: w, renderer: renderer}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) error {
	if o.format == OutputJSON {
		return o.printJSON(data)
	}
	return o.printText(data)
}

func (o *Output) printJSON(data any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (o *Output) printText(data any) error {
	switch v := data.(type) {
	case ReplayResult:
		return o.printReplayResult(v)
	default:
		// Fallback to JSON for unknown types
		return o.printJSON(data)
	}
}

func (o *Output) printReplayResult(r ReplayResult) error {
	if err := o.renderer.Board(r.grid, r.players, r.state.Outcome.Line); err != nil {
		return err
	}
	return o.renderer.Result(r.players, r.state)
}

// ReplayResult is the final position of a replayed game
type ReplayResult struct {
	GameID      string   `json:"game_id"`
	Status      string   `json:"status"`
	Winner      string   `json:"winner,omitempty"`
	NextPlayer  string   `json:"next_player,omitempty"`
	Moves       int      `json:"moves"`
	WinningLine []Cell   `json:"winning_line,omitempty"`
	Board       []string `json:"board"`
	Players     [2]Seat  `json:"players"`

	grid    model.Grid
	players [2]model.Player
	state   model.GameState
}

// Seat describes one player in a ReplayResult
type Seat struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Token string `json:"token"`
}

// Cell is a 1-based board coordinate, counted from the top row
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// emptyCell marks unoccupied cells in ReplayResult.Board
const emptyCell = '.'

func newReplayResult(game *model.Game) (ReplayResult, error) {
	engine := game.Engine
	state := engine.CurrentState()
	players := engine.Players()

	result := ReplayResult{
		GameID:  string(game.ID),
		Status:  string(state.Outcome.Status),
		Moves:   state.MoveCount,
		grid:    engine.Board(),
		players: players,
		state:   state,
	}

	for i, p := range players {
		result.Players[i] = Seat{
			Name:  p.Name(),
			Color: string(p.DisplayAttribute()),
			Token: string(p.Token()),
		}
	}

	switch state.Outcome.Status {
	case model.GameStatusWon:
		result.Winner = players[state.Outcome.Winner.Index()].Name()
		for _, pos := range state.Outcome.Line.Cells {
			result.WinningLine = append(result.WinningLine, Cell{Row: pos.Row + 1, Column: pos.Col + 1})
		}
	case model.GameStatusInProgress:
		result.NextPlayer = players[state.CurrentPlayer.Index()].Name()
	}

	grid := result.grid
	result.Board = make([]string, 0, grid.Rows())
	for row := 0; row < grid.Rows(); row++ {
		line := make([]rune, 0, grid.Cols())
		for col := 0; col < grid.Cols(); col++ {
			cell, err := grid.CellAt(row, col)
			if err != nil {
				return ReplayResult{}, fmt.Errorf("reading board: %w", err)
			}
			if slot, ok := cell.Slot(); ok {
				line = append(line, players[slot.Index()].Token())
			} else {
				line = append(line, emptyCell)
			}
		}
		result.Board = append(result.Board, string(line))
	}

	return result, nil
}
