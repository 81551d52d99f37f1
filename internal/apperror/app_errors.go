package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrSeatNotFound     = errors.New("no player seated for this turn")
	ErrUnknownSeatKind  = errors.New("unknown player kind")
)
