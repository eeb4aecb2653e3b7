package model

import "fmt"

// GameStatus represents the outcome phase of a game
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusDraw       GameStatus = "draw"
)

// Outcome describes how the game stands. Winner and Line are only set when
// Status is GameStatusWon.
type Outcome struct {
	Status GameStatus
	Winner PlayerSlot
	Line   *WinningLine
}

// GameState is a read-only snapshot of an engine
type GameState struct {
	CurrentPlayer PlayerSlot
	Outcome       Outcome
	MoveCount     int
}

// IsOver returns true once the game has reached a terminal state
func (s GameState) IsOver() bool {
	return s.Outcome.Status != GameStatusInProgress
}

// Move is one accepted placement
type Move struct {
	Slot     PlayerSlot
	Position Position
}

// MoveOutcome reports where a token landed and the state it led to
type MoveOutcome struct {
	Move  Move
	State GameState
	Line  *WinningLine // nil unless the move won the game
}

// Engine sequences turns for two players on a board it exclusively owns.
//
// It waits on the current player's column choice; an accepted move either
// ends the game (win or draw) or hands the turn to the other player. Rejected
// moves leave every field untouched.
type Engine struct {
	board   *Board
	players [2]Player
	current PlayerSlot
	status  GameStatus
	line    WinningLine
	moves   []Move
}

// NewEngine starts a game on the standard board with p0 to move
func NewEngine(p0, p1 Player) (*Engine, error) {
	return newEngine(p0, p1, NewBoard())
}

// NewEngineWithSize starts a game on a board of the given size
func NewEngineWithSize(p0, p1 Player, rows, cols int) (*Engine, error) {
	board, err := NewBoardWithSize(rows, cols)
	if err != nil {
		return nil, err
	}
	return newEngine(p0, p1, board)
}

func newEngine(p0, p1 Player, board *Board) (*Engine, error) {
	if p0.IsZero() || p1.IsZero() {
		return nil, ErrInvalidPlayerName
	}
	if p0.Token() == p1.Token() {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, p1.Token())
	}
	return &Engine{
		board:   board,
		players: [2]Player{p0, p1},
		current: SlotOne,
		status:  GameStatusInProgress,
	}, nil
}

// ReplayEngine starts a standard game and submits columns in order. On a
// rejected move it returns the engine as it stood plus the error.
func ReplayEngine(p0, p1 Player, columns []int) (*Engine, error) {
	e, err := NewEngine(p0, p1)
	if err != nil {
		return nil, err
	}
	for i, col := range columns {
		if _, err := e.SubmitMove(col); err != nil {
			return e, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return e, nil
}

// SubmitMove drops the current player's token into col
func (e *Engine) SubmitMove(col int) (MoveOutcome, error) {
	if e.status != GameStatusInProgress {
		return MoveOutcome{}, ErrGameAlreadyOver
	}

	slot := e.current
	row, err := e.board.DropToken(col, slot)
	if err != nil {
		return MoveOutcome{}, err
	}

	move := Move{Slot: slot, Position: Position{Row: row, Col: col}}
	e.moves = append(e.moves, move)

	switch line, won := DetectWin(e.board); {
	case won:
		e.status = GameStatusWon
		e.line = line
	case e.board.IsFull():
		e.status = GameStatusDraw
	default:
		e.current = slot.Other()
	}

	state := e.CurrentState()
	return MoveOutcome{
		Move:  move,
		State: state,
		Line:  state.Outcome.Line,
	}, nil
}

// CurrentState returns a snapshot of the game
func (e *Engine) CurrentState() GameState {
	state := GameState{
		CurrentPlayer: e.current,
		Outcome:       Outcome{Status: e.status},
		MoveCount:     len(e.moves),
	}
	if e.status == GameStatusWon {
		line := e.line
		state.Outcome.Winner = e.current
		state.Outcome.Line = &line
	}
	return state
}

// IsOver returns true once no more moves are accepted
func (e *Engine) IsOver() bool {
	return e.status != GameStatusInProgress
}

// Player returns the player seated in slot, or the zero Player for an invalid slot
func (e *Engine) Player(slot PlayerSlot) Player {
	if !slot.Valid() {
		return Player{}
	}
	return e.players[slot.Index()]
}

// Players returns both players in seat order
func (e *Engine) Players() [2]Player {
	return e.players
}

// CurrentPlayer returns the player whose turn it is (the winner once won)
func (e *Engine) CurrentPlayer() Player {
	return e.players[e.current.Index()]
}

// Moves returns the accepted moves in play order
func (e *Engine) Moves() []Move {
	result := make([]Move, len(e.moves))
	copy(result, e.moves)
	return result
}

// Board returns read access to the engine's board
func (e *Engine) Board() Grid {
	return gridView{board: e.board}
}

// gridView hides the board's mutator from collaborators
type gridView struct {
	board *Board
}

func (v gridView) Rows() int { return v.board.Rows() }
func (v gridView) Cols() int { return v.board.Cols() }

func (v gridView) CellAt(row, col int) (CellState, error) {
	return v.board.CellAt(row, col)
}
