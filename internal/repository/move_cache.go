package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/quixo/internal/quixo"
)

var ErrMoveNotCached = errors.New("move not cached")

type MoveCache interface {
	Get(ctx context.Context, state quixo.GameState, depth int) (quixo.Move, error)
	Set(ctx context.Context, state quixo.GameState, depth int, move quixo.Move) error
}

type dbMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveCache - keeps searched moves for ttl; zero ttl keeps them until evicted.
func NewMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &dbMoveCache{
		client: client,
		ttl:    ttl,
	}
}

// MoveKey - a search result depends on the board, the player to move and the depth.
func MoveKey(state quixo.GameState, depth int) string {
	return fmt.Sprintf("best-move:%d:%d:%s", depth, state.Current, state.Board.Key())
}

func (that *dbMoveCache) Get(ctx context.Context, state quixo.GameState, depth int) (quixo.Move, error) {
	response, err := that.client.Get(ctx, MoveKey(state, depth)).Result()
	if errors.Is(err, redis.Nil) {
		return quixo.Move{}, ErrMoveNotCached
	}

	if err != nil {
		return quixo.Move{}, fmt.Errorf("failed to get cached move: %w", err)
	}

	var move quixo.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return quixo.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func (that *dbMoveCache) Set(ctx context.Context, state quixo.GameState, depth int, move quixo.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, MoveKey(state, depth), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}
