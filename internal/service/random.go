package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/quixo/internal/entity"
	"github.com/rocketscienceinc/quixo/internal/quixo"
)

const defaultMaxAttempts = 10_000

var ErrTooManyAttempts = errors.New("no accepted move within the attempt limit")

// randomService - proposes any cell and any direction, legal or not, and
// keeps proposing until the game accepts one.
type randomService struct {
	mu  sync.Mutex
	rnd *rand.Rand

	maxAttempts int
}

func NewRandomService(rnd *rand.Rand, maxAttempts int) TurnService {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	return &randomService{
		rnd:         rnd,
		maxAttempts: maxAttempts,
	}
}

func (that *randomService) MakeTurn(ctx context.Context, game *entity.Game) error {
	player, err := game.PlayerToMove()
	if err != nil {
		return fmt.Errorf("failed to find random player: %w", err)
	}

	for range that.maxAttempts {
		if err = ctx.Err(); err != nil {
			return err
		}

		err = game.MakeTurn(player.Mark, that.proposal())
		if err == nil {
			return nil
		}

		if !errors.Is(err, quixo.ErrRejected) {
			return fmt.Errorf("random player failed to make turn: %w", err)
		}
	}

	return fmt.Errorf("%w: %d attempts", ErrTooManyAttempts, that.maxAttempts)
}

func (that *randomService) proposal() quixo.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return quixo.Move{
		Position: quixo.Position{
			X: that.rnd.Intn(quixo.Size),
			Y: that.rnd.Intn(quixo.Size),
		},
		Direction: quixo.Direction(that.rnd.Intn(4)),
	}
}
