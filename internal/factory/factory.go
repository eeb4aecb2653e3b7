package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/storage"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return newWithDependencies(memory.New(), clock.New(), random.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		GameController: game.NewController(store, clk, rnd, logger),
	}
}
