package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/testutil"
)

func newRenderer(token rune) (*TextRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewTextRenderer(&buf, Config{DisplayToken: token, Color: false}), &buf
}

func TestBoardEmpty(t *testing.T) {
	r, buf := newRenderer('O')
	alice, bob := testutil.Players(t)
	engine, err := model.NewEngine(alice, bob)
	require.NoError(t, err)

	require.NoError(t, r.Board(engine.Board(), engine.Players(), nil))

	want := " 1 2 3 4 5 6 7\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n"
	assert.Equal(t, want, buf.String())
}

func TestBoardUsesConfiguredDisplayToken(t *testing.T) {
	r, buf := newRenderer('#')
	alice, bob := testutil.Players(t)
	engine, err := model.ReplayEngine(alice, bob, []int{3, 3, 4})
	require.NoError(t, err)

	require.NoError(t, r.Board(engine.Board(), engine.Players(), nil))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, model.DefaultRows+1)
	assert.Equal(t, "| | | |#| | | |", string(lines[5]))
	assert.Equal(t, "| | | |#|#| | |", string(lines[6]))
}

func TestBoardDefaultsDisplayToken(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Config{})
	assert.Equal(t, 'O', r.cfg.DisplayToken)
}

func TestBoardHeaderFollowsWidth(t *testing.T) {
	r, buf := newRenderer('O')
	alice, bob := testutil.Players(t)
	engine, err := model.NewEngineWithSize(alice, bob, 2, 4)
	require.NoError(t, err)

	require.NoError(t, r.Board(engine.Board(), engine.Players(), nil))
	assert.Equal(t, " 1 2 3 4\n| | | | |\n| | | | |\n", buf.String())
}

func TestLabel(t *testing.T) {
	r, _ := newRenderer('O')
	alice, _ := testutil.Players(t)

	assert.Equal(t, "Alice (red)", r.Label(alice))

	plain, err := model.NewPlayer("Zed", "", 'Z')
	require.NoError(t, err)
	assert.Equal(t, "Zed", r.Label(plain))
}

func TestPrompt(t *testing.T) {
	r, buf := newRenderer('O')
	alice, _ := testutil.Players(t)

	require.NoError(t, r.Prompt(alice))
	assert.Equal(t, "Alice (red), please enter a column number: ", buf.String())
}

func TestRejected(t *testing.T) {
	alice, _ := testutil.Players(t)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"full", fmt.Errorf("%w: 3", model.ErrColumnFull), "Column is full, try again.\n"},
		{"invalid", model.ErrInvalidColumn, "Invalid input, please try again Alice (red).\n"},
		{"other", model.ErrGameAlreadyOver, "Move rejected: game is already over\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer('O')
			require.NoError(t, r.Rejected(alice, tt.err))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestResult(t *testing.T) {
	alice, bob := testutil.Players(t)
	players := [2]model.Player{alice, bob}

	tests := []struct {
		name  string
		state model.GameState
		want  string
	}{
		{
			name:  "win",
			state: model.GameState{Outcome: model.Outcome{Status: model.GameStatusWon, Winner: model.SlotTwo}},
			want:  "Bob (yellow) wins!\n",
		},
		{
			name:  "draw",
			state: model.GameState{Outcome: model.Outcome{Status: model.GameStatusDraw}},
			want:  "It's a draw!\n",
		},
		{
			name:  "in progress",
			state: model.GameState{CurrentPlayer: model.SlotOne, Outcome: model.Outcome{Status: model.GameStatusInProgress}},
			want:  "Alice (red) to move.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer('O')
			require.NoError(t, r.Result(players, tt.state))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestStandings(t *testing.T) {
	r, buf := newRenderer('O')
	standings := model.NewStandings()
	standings.Record(model.GameSummary{Status: model.GameStatusWon, Winner: "Bob"})
	standings.Record(model.GameSummary{Status: model.GameStatusWon, Winner: "Alice"})
	standings.Record(model.GameSummary{Status: model.GameStatusWon, Winner: "Bob"})
	standings.Record(model.GameSummary{Status: model.GameStatusDraw})

	require.NoError(t, r.Standings(standings))
	assert.Equal(t, "Games played: 4\n  Bob: 2\n  Alice: 1\n  Draws: 1\n", buf.String())
}

func TestWinningCellsAreStyledWhenColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Config{DisplayToken: 'O', Color: true})
	alice, bob := testutil.Players(t)
	engine, err := model.ReplayEngine(alice, bob, []int{0, 0, 1, 1, 2, 2, 3})
	require.NoError(t, err)

	state := engine.CurrentState()
	require.NotNil(t, state.Outcome.Line)
	require.NoError(t, r.Board(engine.Board(), engine.Players(), state.Outcome.Line))

	// Colour output depends on the terminal; the cell layout does not.
	assert.Contains(t, buf.String(), " 1 2 3 4 5 6 7\n")
	assert.Equal(t, model.DefaultRows+1, bytes.Count(buf.Bytes(), []byte("\n")))
}
