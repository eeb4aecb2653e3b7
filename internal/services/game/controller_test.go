package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	"github.com/mcoot/connectfour-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	alice      model.Player
	bob        model.Player
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.alice, s.bob = testutil.Players(s.T())
	s.ctx = context.Background()
}

func (s *ControllerSuite) newGame() *model.Game {
	s.random.QueueUUID("game-1")
	game, err := s.controller.CreateGame(s.ctx, s.alice, s.bob)
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) play(gameID model.GameID, digits string) model.MoveOutcome {
	var out model.MoveOutcome
	for _, col := range testutil.Columns(digits) {
		var err error
		out, err = s.controller.SubmitMove(s.ctx, gameID, col)
		s.Require().NoError(err)
	}
	return out
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	game := s.newGame()

	s.Equal(model.GameID("game-1"), game.ID)
	s.Equal(s.clock.Now(), game.CreatedAt)
	s.Equal(s.clock.Now(), game.UpdatedAt)
	s.Equal(model.SlotOne, game.Engine.CurrentState().CurrentPlayer)
	s.False(game.IsOver())
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	game := s.newGame()

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
}

func (s *ControllerSuite) TestCreateGameRejectsDuplicateTokens() {
	clone, _ := model.NewPlayer("Carol", "blue", s.alice.Token())

	_, err := s.controller.CreateGame(s.ctx, s.alice, clone)
	s.ErrorIs(err, model.ErrDuplicateToken)
}

// GetGame tests

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// SubmitMove tests

func (s *ControllerSuite) TestSubmitMoveUpdatesTimestamp() {
	game := s.newGame()
	s.clock.Advance(time.Minute)

	out := s.play(game.ID, "3")

	s.Equal(model.Position{Row: 5, Col: 3}, out.Move.Position)
	updated, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal(s.clock.Now(), updated.UpdatedAt)
}

func (s *ControllerSuite) TestSubmitMoveUnknownGame() {
	_, err := s.controller.SubmitMove(s.ctx, "nonexistent", 0)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestSubmitMoveRejectsInvalidColumn() {
	game := s.newGame()

	_, err := s.controller.SubmitMove(s.ctx, game.ID, 7)
	s.ErrorIs(err, model.ErrInvalidColumn)
	s.Equal(0, game.Engine.CurrentState().MoveCount)
}

func (s *ControllerSuite) TestSubmitMoveWinRecordsSummary() {
	game := s.newGame()
	s.clock.Advance(5 * time.Minute)

	out := s.play(game.ID, "0011223")
	s.Equal(model.GameStatusWon, out.State.Outcome.Status)

	standings, err := s.controller.Standings(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, standings.Games)
	s.Equal(1, standings.Wins["Alice"])
	s.Equal(0, standings.Draws)

	summaries, _ := s.storage.ListSummaries(s.ctx)
	s.Require().Len(summaries, 1)
	s.Equal(model.GameID("game-1"), summaries[0].ID)
	s.Equal([2]string{"Alice", "Bob"}, summaries[0].Players)
	s.Equal("Alice", summaries[0].Winner)
	s.Equal(7, summaries[0].MoveCount)
	s.Equal(s.clock.Now(), summaries[0].CompletedAt)
}

func (s *ControllerSuite) TestSubmitMoveDrawRecordsSummary() {
	game := s.newGame()

	out := s.play(game.ID, testutil.DrawSequence)
	s.Equal(model.GameStatusDraw, out.State.Outcome.Status)

	standings, _ := s.controller.Standings(s.ctx)
	s.Equal(1, standings.Draws)
	s.Empty(standings.Wins)
}

func (s *ControllerSuite) TestSubmitMoveAfterGameOver() {
	game := s.newGame()
	s.play(game.ID, "0011223")

	_, err := s.controller.SubmitMove(s.ctx, game.ID, 4)
	s.ErrorIs(err, model.ErrGameAlreadyOver)

	// No second summary for the rejected move
	summaries, _ := s.storage.ListSummaries(s.ctx)
	s.Len(summaries, 1)
}

// Rematch tests

func (s *ControllerSuite) TestRematchSwapsSeats() {
	game := s.newGame()
	s.play(game.ID, "0011223")

	s.random.QueueUUID("game-2")
	rematch, err := s.controller.Rematch(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.GameID("game-2"), rematch.ID)
	s.Equal(s.bob, rematch.Engine.Player(model.SlotOne))
	s.Equal(s.alice, rematch.Engine.Player(model.SlotTwo))
}

func (s *ControllerSuite) TestRematchFailsWhileInProgress() {
	game := s.newGame()
	s.play(game.ID, "01")

	_, err := s.controller.Rematch(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameInProgress)
}

func (s *ControllerSuite) TestStandingsAcrossRematches() {
	game := s.newGame()
	s.play(game.ID, "0011223") // Alice wins

	rematch, _ := s.controller.Rematch(s.ctx, game.ID)
	s.play(rematch.ID, "0101010") // Bob moves first and wins

	third, _ := s.controller.Rematch(s.ctx, rematch.ID)
	s.play(third.ID, testutil.DrawSequence)

	standings, err := s.controller.Standings(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, standings.Games)
	s.Equal(1, standings.Wins["Alice"])
	s.Equal(1, standings.Wins["Bob"])
	s.Equal(1, standings.Draws)
}

// AbandonGame tests

func (s *ControllerSuite) TestAbandonGameRemovesGame() {
	game := s.newGame()
	s.play(game.ID, "01")

	err := s.controller.AbandonGame(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)

	standings, _ := s.controller.Standings(s.ctx)
	s.Equal(0, standings.Games)
}

func (s *ControllerSuite) TestAbandonGameNotFound() {
	err := s.controller.AbandonGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}
