package model

import "fmt"

// Standard board dimensions
const (
	DefaultRows = 6
	DefaultCols = 7
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// CellState is either empty or occupied by one of the two player slots
type CellState uint8

const (
	CellEmpty CellState = iota
	cellSlotOne
	cellSlotTwo
)

// Occupied returns the cell state for a token owned by slot
func Occupied(slot PlayerSlot) CellState {
	if slot == SlotTwo {
		return cellSlotTwo
	}
	return cellSlotOne
}

// IsEmpty returns true if no token occupies the cell
func (c CellState) IsEmpty() bool {
	return c == CellEmpty
}

// Slot returns the occupant, or false if the cell is empty
func (c CellState) Slot() (PlayerSlot, bool) {
	switch c {
	case cellSlotOne:
		return SlotOne, true
	case cellSlotTwo:
		return SlotTwo, true
	default:
		return 0, false
	}
}

// Grid is read access to a board, handed to renderers
type Grid interface {
	Rows() int
	Cols() int
	CellAt(row, col int) (CellState, error)
}

// Board is a vertical grid that tokens drop into.
//
// Within any column the occupied cells are contiguous from the bottom row up.
// DropToken is the only mutator, and it always fills the lowest empty cell,
// so the invariant holds by construction.
type Board struct {
	rows  int
	cols  int
	cells [][]CellState // Row-major: cells[row][col]
}

var _ Grid = (*Board)(nil)

// NewBoard creates an empty board of the standard 6x7 size
func NewBoard() *Board {
	b, _ := NewBoardWithSize(DefaultRows, DefaultCols)
	return b
}

// NewBoardWithSize creates an empty board with the given dimensions
func NewBoardWithSize(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBoardSize, rows, cols)
	}
	cells := make([][]CellState, rows)
	for i := range cells {
		cells[i] = make([]CellState, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// Rows returns the board height
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width
func (b *Board) Cols() int {
	return b.cols
}

// IsValidColumn returns true if col is within the board width
func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.cols
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// DropToken places a token for slot in the lowest empty cell of col and
// returns the row it landed in. The board is untouched on error.
func (b *Board) DropToken(col int, slot PlayerSlot) (int, error) {
	if !b.IsValidColumn(col) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	if !slot.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayerSlot, int(slot))
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][col].IsEmpty() {
			b.cells[row][col] = Occupied(slot)
			return row, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrColumnFull, col)
}

// CellAt returns the state of the cell at (row, col)
func (b *Board) CellAt(row, col int) (CellState, error) {
	if !b.IsValidPosition(Position{Row: row, Col: col}) {
		return CellEmpty, fmt.Errorf("%w: (%d,%d)", ErrInvalidPosition, row, col)
	}
	return b.cells[row][col], nil
}

// at is the unchecked read used by the win scan after its own bounds check
func (b *Board) at(pos Position) CellState {
	return b.cells[pos.Row][pos.Col]
}

// IsFull returns true if every cell in the top row is occupied
func (b *Board) IsFull() bool {
	for col := 0; col < b.cols; col++ {
		if b.cells[0][col].IsEmpty() {
			return false
		}
	}
	return true
}

// ColumnHeight returns the number of tokens in col, or 0 for an invalid column
func (b *Board) ColumnHeight(col int) int {
	if !b.IsValidColumn(col) {
		return 0
	}
	height := 0
	for row := b.rows - 1; row >= 0 && !b.cells[row][col].IsEmpty(); row-- {
		height++
	}
	return height
}

// TokenCount returns the number of occupied cells
func (b *Board) TokenCount() int {
	count := 0
	for col := 0; col < b.cols; col++ {
		count += b.ColumnHeight(col)
	}
	return count
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]CellState, b.rows)
	for i := range b.cells {
		cells[i] = make([]CellState, b.cols)
		copy(cells[i], b.cells[i])
	}
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}
