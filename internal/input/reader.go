package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Provider collects choices from a human player
type Provider interface {
	ReadLine(ctx context.Context) (string, error)
	ReadColumn(ctx context.Context) (int, error)
	Confirm(ctx context.Context) (bool, error)
}

// Reader is a line-oriented Provider over an io.Reader
type Reader struct {
	scanner *bufio.Scanner
}

var _ Provider = (*Reader)(nil)

// NewReader creates a Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next trimmed line, or io.EOF once input is exhausted
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// ReadColumn reads a 1-based column number and returns it 0-based. Range
// checking is left to the board.
func (r *Reader) ReadColumn(ctx context.Context) (int, error) {
	line, err := r.ReadLine(ctx)
	if err != nil {
		return 0, err
	}
	return ParseColumn(line)
}

// Confirm reads a yes/no answer; anything but y or yes is no
func (r *Reader) Confirm(ctx context.Context) (bool, error) {
	line, err := r.ReadLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ParseColumn converts 1-based column text to a 0-based index
func ParseColumn(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", model.ErrInvalidColumn, text)
	}
	return n - 1, nil
}

// ParseColumns converts a comma or space separated list of 1-based columns
func ParseColumns(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	columns := make([]int, 0, len(fields))
	for i, f := range fields {
		col, err := ParseColumn(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		columns = append(columns, col)
	}
	return columns, nil
}
