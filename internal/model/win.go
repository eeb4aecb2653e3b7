package model

// ConnectLength is the number of aligned tokens needed to win
const ConnectLength = 4

// Direction is a step vector along which a line is scanned
type Direction struct {
	DRow int
	DCol int
}

// Scan directions, in the order they are tested at each cell
var (
	DirectionHorizontal   = Direction{DRow: 0, DCol: 1}
	DirectionVertical     = Direction{DRow: 1, DCol: 0}
	DirectionDiagonalDown = Direction{DRow: 1, DCol: 1}
	DirectionDiagonalUp   = Direction{DRow: -1, DCol: 1}
)

var scanDirections = [...]Direction{
	DirectionHorizontal,
	DirectionVertical,
	DirectionDiagonalDown,
	DirectionDiagonalUp,
}

func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionDiagonalDown:
		return "diagonal_down"
	case DirectionDiagonalUp:
		return "diagonal_up"
	default:
		return "unknown"
	}
}

// WinningLine is a run of ConnectLength same-slot cells.
// Cells are ordered from the scan origin along Direction.
type WinningLine struct {
	Slot      PlayerSlot
	Direction Direction
	Cells     [ConnectLength]Position
}

// Contains returns true if pos is one of the line's cells
func (l WinningLine) Contains(pos Position) bool {
	for _, c := range l.Cells {
		if c == pos {
			return true
		}
	}
	return false
}

// DetectWin scans the board for a winning line.
//
// Cells are visited in row-major order and each occupied cell is tested in
// scanDirections order; the first match wins. Boards built by hand can hold
// more than one line, and this ordering decides which is reported.
func DetectWin(b *Board) (WinningLine, bool) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			origin := Position{Row: row, Col: col}
			slot, ok := b.at(origin).Slot()
			if !ok {
				continue
			}
			for _, dir := range scanDirections {
				if line, ok := lineFrom(b, origin, dir, slot); ok {
					return line, true
				}
			}
		}
	}
	return WinningLine{}, false
}

// lineFrom checks the ConnectLength cells starting at origin along dir
func lineFrom(b *Board, origin Position, dir Direction, slot PlayerSlot) (WinningLine, bool) {
	line := WinningLine{Slot: slot, Direction: dir}
	want := Occupied(slot)
	for i := 0; i < ConnectLength; i++ {
		pos := Position{Row: origin.Row + dir.DRow*i, Col: origin.Col + dir.DCol*i}
		if !b.IsValidPosition(pos) || b.at(pos) != want {
			return WinningLine{}, false
		}
		line.Cells[i] = pos
	}
	return line, true
}
