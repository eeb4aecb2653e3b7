package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/storage"
)

// Controller hosts games and routes column choices to their engines
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateGame starts a new game with first to move
func (c *Controller) CreateGame(ctx context.Context, first, second model.Player) (*model.Game, error) {
	engine, err := model.NewEngine(first, second)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.UUID()),
		Engine:    engine,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("player_one", first.Name()),
		slog.String("player_two", second.Name()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// SubmitMove drops the current player's token into column. Rejected moves
// are returned unchanged so the caller can re-prompt.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, column int) (model.MoveOutcome, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.MoveOutcome{}, err
	}

	out, err := game.Engine.SubmitMove(column)
	if err != nil {
		c.logger.Info("move rejected",
			slog.String("game_id", string(gameID)),
			slog.Int("column", column),
			slog.String("error", err.Error()),
		)
		return model.MoveOutcome{}, err
	}

	game.UpdatedAt = c.clock.Now()

	c.logger.Debug("token dropped",
		slog.String("game_id", string(gameID)),
		slog.String("slot", out.Move.Slot.String()),
		slog.Int("row", out.Move.Position.Row),
		slog.Int("column", out.Move.Position.Col),
	)

	if out.State.IsOver() {
		if err := c.completeGame(ctx, game, out.State); err != nil {
			return model.MoveOutcome{}, err
		}
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return model.MoveOutcome{}, err
	}

	return out, nil
}

// completeGame records a summary for a game that just ended
func (c *Controller) completeGame(ctx context.Context, game *model.Game, state model.GameState) error {
	players := game.Engine.Players()
	summary := &model.GameSummary{
		ID:          game.ID,
		Players:     [2]string{players[0].Name(), players[1].Name()},
		Status:      state.Outcome.Status,
		MoveCount:   state.MoveCount,
		CompletedAt: c.clock.Now(),
	}
	if state.Outcome.Status == model.GameStatusWon {
		summary.Winner = game.Engine.Player(state.Outcome.Winner).Name()
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("status", string(summary.Status)),
		slog.String("winner", summary.Winner),
		slog.Int("moves", summary.MoveCount),
		slog.Duration("duration", c.clock.Since(game.CreatedAt)),
	)

	return c.storage.SaveSummary(ctx, summary)
}

// Rematch starts a new game between the same players with the seats swapped
func (c *Controller) Rematch(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsOver() {
		return nil, model.ErrGameInProgress
	}

	players := game.Engine.Players()
	return c.CreateGame(ctx, players[1], players[0])
}

// AbandonGame removes a game from the registry without recording a result
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if !game.IsOver() {
		c.logger.Info("game abandoned",
			slog.String("game_id", string(gameID)),
			slog.Int("moves", game.Engine.CurrentState().MoveCount),
		)
	}

	return c.storage.DeleteGame(ctx, gameID)
}

// Standings tallies every game completed in this process
func (c *Controller) Standings(ctx context.Context) (model.Standings, error) {
	summaries, err := c.storage.ListSummaries(ctx)
	if err != nil {
		return model.Standings{}, err
	}

	standings := model.NewStandings()
	for _, s := range summaries {
		standings.Record(s)
	}
	return standings, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, first, second model.Player) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitMove(ctx context.Context, gameID model.GameID, column int) (model.MoveOutcome, error)
	Rematch(ctx context.Context, gameID model.GameID) (*model.Game, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	Standings(ctx context.Context) (model.Standings, error)
}

var _ ControllerInterface = (*Controller)(nil)
