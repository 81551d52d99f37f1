package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/quixo/internal/entity"
	"github.com/rocketscienceinc/quixo/internal/quixo"
	"github.com/rocketscienceinc/quixo/internal/repository"
)

var ErrNotABot = errors.New("player to move is not a bot")

// TurnService - plays one turn for the seated player whose mark is on turn.
type TurnService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type moveSearcher interface {
	Search(state quixo.GameState, maxDepth int) (quixo.Result, error)
}

type moveCache interface {
	Get(ctx context.Context, state quixo.GameState, depth int) (quixo.Move, error)
	Set(ctx context.Context, state quixo.GameState, depth int, move quixo.Move) error
}

type botService struct {
	logger *slog.Logger

	searcher moveSearcher
	cache    moveCache
}

// NewBotService - cache may be nil, every turn is then searched.
func NewBotService(logger *slog.Logger, searcher moveSearcher, cache moveCache) TurnService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
		cache:    cache,
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	player, err := game.PlayerToMove()
	if err != nil {
		return fmt.Errorf("failed to find bot player: %w", err)
	}

	if !player.IsBot() {
		return fmt.Errorf("%w: %s", ErrNotABot, player.ID)
	}

	move, err := that.chooseMove(ctx, game.State, player.Depth)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = game.MakeTurn(player.Mark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *botService) chooseMove(ctx context.Context, state quixo.GameState, depth int) (quixo.Move, error) {
	if that.cache != nil {
		move, err := that.cache.Get(ctx, state, depth)
		switch {
		case err == nil:
			that.logger.Debug("cached move", "move", move.String(), "depth", depth)
			return move, nil
		case !errors.Is(err, repository.ErrMoveNotCached):
			that.logger.Warn("could not read move cache", "error", err)
		}
	}

	result, err := that.searcher.Search(state, depth)
	if err != nil {
		return quixo.Move{}, fmt.Errorf("search failed: %w", err)
	}

	that.logger.Debug("searched move",
		"move", result.Move.String(),
		"score", result.Score,
		"fallback", result.Fallback,
		"evaluations", result.Evaluations,
		"depth", depth,
	)

	// a fallback is a coin toss, not worth remembering
	if that.cache != nil && !result.Fallback {
		if err = that.cache.Set(ctx, state, depth, result.Move); err != nil {
			that.logger.Warn("could not store move in cache", "error", err)
		}
	}

	return result.Move, nil
}
