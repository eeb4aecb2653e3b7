package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/connectfour-go/internal/model"
)

// NopLogger returns a logger that discards everything, keeping test output clean
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Players returns the two fixture players Alice (red, '1') and Bob (yellow, '2')
func Players(t *testing.T) (model.Player, model.Player) {
	t.Helper()

	alice, err := model.NewPlayer("Alice", "red", '1')
	require.NoError(t, err)
	bob, err := model.NewOpponent(alice, "Bob", "yellow", '2')
	require.NoError(t, err)
	return alice, bob
}

// Columns converts a string of digits into 0-based column indices
func Columns(digits string) []int {
	cols := make([]int, 0, len(digits))
	for _, d := range digits {
		cols = append(cols, int(d-'0'))
	}
	return cols
}

// DrawSequence fills a standard board with no four-in-a-row anywhere
const DrawSequence = "436014551150160155104632660465204242223333"
