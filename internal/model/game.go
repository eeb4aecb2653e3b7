package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is a hosted engine plus bookkeeping
type Game struct {
	ID     GameID
	Engine *Engine

	// Timing
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOver returns true if the engine has reached a terminal state
func (g *Game) IsOver() bool {
	return g.Engine.IsOver()
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Players     [2]string  // Names in seat order
	Status      GameStatus // GameStatusWon or GameStatusDraw
	Winner      string     // Empty if draw
	MoveCount   int
	CompletedAt time.Time
}

// Standings tallies completed games
type Standings struct {
	Wins  map[string]int
	Draws int
	Games int
}

// NewStandings returns an empty tally
func NewStandings() Standings {
	return Standings{Wins: make(map[string]int)}
}

// Record adds a summary to the tally
func (s *Standings) Record(summary GameSummary) {
	s.Games++
	if summary.Status == GameStatusDraw {
		s.Draws++
		return
	}
	s.Wins[summary.Winner]++
}
