package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/quixo/internal/apperror"
	"github.com/rocketscienceinc/quixo/internal/quixo"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	ResultDraw = "draw"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - a single Quixo session: the current state, the accepted moves and the seats.
type Game struct {
	ID      string          `json:"id"`
	State   quixo.GameState `json:"state"`
	History []quixo.Move    `json:"history"`
	Outcome quixo.Outcome   `json:"outcome"`
	Status  string          `json:"status"`
	Players []*Player       `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		State:  quixo.NewGame(),
		Status: StatusWaiting,
	}
}

// Seat - assigns marks in join order, the first player moves first.
func (that *Game) Seat(players ...*Player) {
	for _, player := range players {
		player.Mark = quixo.Player(len(that.Players) % 2)
		that.Players = append(that.Players, player)
	}

	if len(that.Players) >= 2 && that.IsWaiting() {
		that.Status = StatusOngoing
	}
}

// PlayerToMove - returns the seated player whose mark is on turn.
func (that *Game) PlayerToMove() (*Player, error) {
	for _, player := range that.Players {
		if player.Mark == that.State.Current {
			return player, nil
		}
	}
	return nil, fmt.Errorf("%w: mark %s", apperror.ErrSeatNotFound, that.State.Current)
}

// MakeTurn - applies move for mark. Rejected moves leave the game untouched.
func (that *Game) MakeTurn(mark quixo.Player, move quixo.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.State.Current != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := quixo.ApplyMove(that.State, move, mark)
	if err != nil {
		return fmt.Errorf("invalid turn %s: %w", move, err)
	}

	that.State = next
	that.History = append(that.History, move)

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Outcome = quixo.GetOutcome(that.State, that.History)

	if that.Outcome.IsTerminal() {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

// Result - returns the winner's mark, ResultDraw, or "" while the game goes on.
func (that *Game) Result() string {
	switch that.Outcome.Status {
	case quixo.StatusWon:
		return that.Outcome.Winner.String()
	case quixo.StatusDraw:
		return ResultDraw
	default:
		return ""
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
