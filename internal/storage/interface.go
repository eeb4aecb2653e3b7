package storage

import (
	"context"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Storage defines the interface for the game registry of a running process
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Summary operations
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	ListSummaries(ctx context.Context) ([]model.GameSummary, error)
}
