package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/quixo/internal/apperror"
	"github.com/rocketscienceinc/quixo/internal/config"
	"github.com/rocketscienceinc/quixo/internal/entity"
	"github.com/rocketscienceinc/quixo/internal/quixo"
	"github.com/rocketscienceinc/quixo/internal/repository"
	"github.com/rocketscienceinc/quixo/internal/repository/storage"
	"github.com/rocketscienceinc/quixo/internal/service"
	"github.com/rocketscienceinc/quixo/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - plays the configured match.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	first, err := newPlayer("first", conf.First)
	if err != nil {
		return err
	}

	second, err := newPlayer("second", conf.Second)
	if err != nil {
		return err
	}

	var moveCache repository.MoveCache
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveCache = repository.NewMoveCache(redisStorage.Connection, conf.Redis.TTL)
		log.Info("Move cache enabled", "addr", redisAddrString)
	}

	seed := time.Now().UnixNano()
	searcher := quixo.NewSearcher(
		quixo.WithWorkers(conf.Search.Workers),
		quixo.WithRand(rand.New(rand.NewSource(seed))), //nolint: gosec // it's ok
	)

	matchManager := usecase.NewMatchManager(logger, map[string]usecase.TurnService{
		entity.BotKind:    service.NewBotService(logger, searcher, moveCache),
		entity.RandomKind: service.NewRandomService(rand.New(rand.NewSource(seed+1)), 0), //nolint: gosec // it's ok
		entity.HumanKind:  service.NewHumanService(os.Stdin, os.Stdout),
	})

	tally, err := matchManager.PlayMatch(ctx, conf.Games, first, second)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%s: %d wins, %s: %d wins, draws: %d\n",
		first.Name, tally.FirstWins, second.Name, tally.SecondWins, tally.Draws)

	return nil
}

func newPlayer(id string, seat config.Seat) (*entity.Player, error) {
	switch seat.Kind {
	case entity.BotKind:
		if seat.Depth < 1 {
			return nil, fmt.Errorf("%s seat: %w: depth %d", id, quixo.ErrInvalidConfiguration, seat.Depth)
		}
		return entity.NewBot(id, seat.Depth), nil
	case entity.RandomKind:
		return entity.NewRandom(id), nil
	case entity.HumanKind:
		return entity.NewHuman(id), nil
	default:
		return nil, fmt.Errorf("%s seat: %w: %q", id, apperror.ErrUnknownSeatKind, seat.Kind)
	}
}
