package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Config controls how the board is drawn
type Config struct {
	// DisplayToken is drawn for every occupied cell, coloured by its occupant
	DisplayToken rune
	// Color enables ANSI colours; NO_COLOR and non-terminal output still win
	Color bool
}

// DefaultConfig returns the standard rendering settings
func DefaultConfig() Config {
	return Config{
		DisplayToken: 'O',
		Color:        true,
	}
}

// Renderer displays game state and messages to players
type Renderer interface {
	Board(grid model.Grid, players [2]model.Player, line *model.WinningLine) error
	Prompt(player model.Player) error
	Rejected(player model.Player, err error) error
	Result(players [2]model.Player, state model.GameState) error
	Standings(standings model.Standings) error
}

// TextRenderer writes a plain-text board to w
type TextRenderer struct {
	w   io.Writer
	cfg Config
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a renderer writing to w
func NewTextRenderer(w io.Writer, cfg Config) *TextRenderer {
	if cfg.DisplayToken == 0 {
		cfg.DisplayToken = DefaultConfig().DisplayToken
	}
	return &TextRenderer{w: w, cfg: cfg}
}

var attributeColors = map[model.DisplayAttribute]color.Attribute{
	"red":     color.FgRed,
	"yellow":  color.FgYellow,
	"green":   color.FgGreen,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// style returns the colour for a display attribute plus any extra attributes
func (r *TextRenderer) style(attr model.DisplayAttribute, extra ...color.Attribute) *color.Color {
	c := color.New(extra...)
	if fg, ok := attributeColors[model.DisplayAttribute(strings.ToLower(string(attr)))]; ok {
		c.Add(fg)
	}
	if !r.cfg.Color {
		c.DisableColor()
	}
	return c
}

// Label returns "Name (attribute)" in the player's colour
func (r *TextRenderer) Label(p model.Player) string {
	label := p.Name()
	if p.DisplayAttribute() != "" {
		label = fmt.Sprintf("%s (%s)", p.Name(), p.DisplayAttribute())
	}
	return r.style(p.DisplayAttribute()).Sprint(label)
}

// Board draws the column header and each row as |c|c|...|
func (r *TextRenderer) Board(grid model.Grid, players [2]model.Player, line *model.WinningLine) error {
	var sb strings.Builder

	for col := 0; col < grid.Cols(); col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col + 1))
	}
	sb.WriteString("\n")

	for row := 0; row < grid.Rows(); row++ {
		sb.WriteString("|")
		for col := 0; col < grid.Cols(); col++ {
			cell, err := grid.CellAt(row, col)
			if err != nil {
				return err
			}
			sb.WriteString(r.cell(cell, players, line, model.Position{Row: row, Col: col}))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *TextRenderer) cell(cell model.CellState, players [2]model.Player, line *model.WinningLine, pos model.Position) string {
	slot, ok := cell.Slot()
	if !ok {
		return " "
	}
	var extra []color.Attribute
	if line != nil && line.Contains(pos) {
		extra = append(extra, color.Bold, color.Underline)
	}
	return r.style(players[slot.Index()].DisplayAttribute(), extra...).Sprint(string(r.cfg.DisplayToken))
}

// Prompt asks player for a column
func (r *TextRenderer) Prompt(player model.Player) error {
	_, err := fmt.Fprintf(r.w, "%s, please enter a column number: ", r.Label(player))
	return err
}

// Rejected explains why a column choice was refused
func (r *TextRenderer) Rejected(player model.Player, cause error) error {
	var err error
	switch {
	case errors.Is(cause, model.ErrColumnFull):
		_, err = fmt.Fprintln(r.w, "Column is full, try again.")
	case errors.Is(cause, model.ErrInvalidColumn):
		_, err = fmt.Fprintf(r.w, "Invalid input, please try again %s.\n", r.Label(player))
	default:
		_, err = fmt.Fprintf(r.w, "Move rejected: %v\n", cause)
	}
	return err
}

// Result announces the winner or a draw
func (r *TextRenderer) Result(players [2]model.Player, state model.GameState) error {
	var err error
	switch state.Outcome.Status {
	case model.GameStatusWon:
		_, err = fmt.Fprintf(r.w, "%s wins!\n", r.Label(players[state.Outcome.Winner.Index()]))
	case model.GameStatusDraw:
		_, err = fmt.Fprintln(r.w, "It's a draw!")
	default:
		_, err = fmt.Fprintf(r.w, "%s to move.\n", r.Label(players[state.CurrentPlayer.Index()]))
	}
	return err
}

// Standings prints wins per player, most wins first
func (r *TextRenderer) Standings(standings model.Standings) error {
	names := make([]string, 0, len(standings.Wins))
	for name := range standings.Wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if standings.Wins[names[i]] != standings.Wins[names[j]] {
			return standings.Wins[names[i]] > standings.Wins[names[j]]
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", standings.Games)
	for _, name := range names {
		fmt.Fprintf(&sb, "  %s: %d\n", name, standings.Wins[name])
	}
	if standings.Draws > 0 {
		fmt.Fprintf(&sb, "  Draws: %d\n", standings.Draws)
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}
