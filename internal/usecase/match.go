package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/rocketscienceinc/quixo/internal/apperror"
	"github.com/rocketscienceinc/quixo/internal/entity"
	"github.com/rocketscienceinc/quixo/internal/quixo"
)

var ErrTurnSkipped = errors.New("turn ended without a move")

// TurnService - plays one turn for the seated player whose mark is on turn.
type TurnService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// Tally - results of a match, counted per seat.
type Tally struct {
	FirstWins  int `json:"first_wins"`
	SecondWins int `json:"second_wins"`
	Draws      int `json:"draws"`
}

func (that Tally) Games() int {
	return that.FirstWins + that.SecondWins + that.Draws
}

type MatchManager struct {
	logger *slog.Logger

	turns  map[string]TurnService
	gameID atomic.Uint64
}

// NewMatchManager - turns maps a player kind to the service that plays it.
func NewMatchManager(logger *slog.Logger, turns map[string]TurnService) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match"),
		turns:  turns,
	}
}

// PlayGame - plays a single game to the end; first moves first.
func (that *MatchManager) PlayGame(ctx context.Context, first, second *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(fmt.Sprintf("game-%d", that.gameID.Add(1)))
	game.Seat(first, second)

	log := that.logger.With("game_id", game.ID)
	log.Info("Game started", "first", first.Name, "second", second.Name)

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game %s interrupted: %w", game.ID, err)
		}

		if err := that.playTurn(ctx, game); err != nil {
			return game, err
		}

		last := game.History[len(game.History)-1]
		log.Debug("Move played",
			"turn", len(game.History),
			"player", game.State.Current.Opponent().String(),
			"move", last.String(),
		)
	}

	log.Info("Game finished", "result", game.Result(), "moves", len(game.History))

	return game, nil
}

func (that *MatchManager) playTurn(ctx context.Context, game *entity.Game) error {
	player, err := game.PlayerToMove()
	if err != nil {
		return fmt.Errorf("failed to get player to move: %w", err)
	}

	turn, ok := that.turns[player.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownSeatKind, player.Kind)
	}

	moves := len(game.History)
	if err = turn.MakeTurn(ctx, game); err != nil {
		return fmt.Errorf("%s failed to make turn: %w", player.Name, err)
	}

	if len(game.History) == moves {
		return fmt.Errorf("%w: %s", ErrTurnSkipped, player.Name)
	}

	return nil
}

// PlayMatch - plays games back to back with the same seating and counts the results.
func (that *MatchManager) PlayMatch(ctx context.Context, games int, first, second *entity.Player) (Tally, error) {
	var tally Tally

	for range games {
		game, err := that.PlayGame(ctx, first, second)
		if err != nil {
			return tally, err
		}

		switch {
		case game.Outcome.Status == quixo.StatusDraw:
			tally.Draws++
		case game.Outcome.Winner == first.Mark:
			tally.FirstWins++
		default:
			tally.SecondWins++
		}
	}

	that.logger.Info("Match finished",
		"games", tally.Games(),
		"first", first.Name,
		"first_wins", tally.FirstWins,
		"second", second.Name,
		"second_wins", tally.SecondWins,
		"draws", tally.Draws,
	)

	return tally, nil
}
