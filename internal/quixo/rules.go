package quixo

import (
	"errors"
	"fmt"
)

// ErrRejected - is wrapped by every legality failure of ApplyMove.
var ErrRejected = errors.New("move rejected")

var (
	ErrUnknownPlayer    = fmt.Errorf("%w: unknown player", ErrRejected)
	ErrOutOfRange       = fmt.Errorf("%w: position is out of range", ErrRejected)
	ErrNotBorder        = fmt.Errorf("%w: position is not on the border", ErrRejected)
	ErrOpponentCell     = fmt.Errorf("%w: cell belongs to the opponent", ErrRejected)
	ErrInvalidDirection = fmt.Errorf("%w: direction is not allowed from this position", ErrRejected)
)

// onEdge - reports whether pos lies on the edge that dir points at.
func onEdge(pos Position, dir Direction) bool {
	switch dir {
	case Top:
		return pos.Y == 0
	case Bottom:
		return pos.Y == last
	case Left:
		return pos.X == 0
	case Right:
		return pos.X == last
	default:
		return true
	}
}

// CanSlide - reports whether a cube taken at pos may be pushed toward dir.
// A border cube can go to any edge it is not already on: corners get two
// directions, the other border cells three.
func CanSlide(pos Position, dir Direction) bool {
	return pos.OnBorder() && int(dir) < len(allDirections) && !onEdge(pos, dir)
}

// Directions - returns the directions allowed from pos in Top, Bottom, Left, Right order.
func Directions(pos Position) []Direction {
	if !pos.OnBorder() {
		return nil
	}

	dirs := make([]Direction, 0, 3)
	for _, dir := range allDirections {
		if !onEdge(pos, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ApplyMove - takes the cube at move.Position for player and slides it toward
// move.Direction. The input state is never modified; on success the returned
// state has the opponent of player to move.
func ApplyMove(state GameState, move Move, player Player) (GameState, error) {
	if err := validateMove(&state.Board, move, player); err != nil {
		return state, err
	}

	next := state
	slide(&next.Board, move.Position, move.Direction, Owner(player))
	next.Current = player.Opponent()

	return next, nil
}

// validateMove - checks the take step, then the slide step.
func validateMove(board *Board, move Move, player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, int8(player))
	}

	if !move.Position.InRange() {
		return fmt.Errorf("%w: %s", ErrOutOfRange, move.Position)
	}

	if !move.Position.OnBorder() {
		return fmt.Errorf("%w: %s", ErrNotBorder, move.Position)
	}

	if board.At(move.Position).OwnedBy(player.Opponent()) {
		return fmt.Errorf("%w: %s", ErrOpponentCell, move.Position)
	}

	if !CanSlide(move.Position, move.Direction) {
		return fmt.Errorf("%w: %s from %s", ErrInvalidDirection, move.Direction, move.Position)
	}

	return nil
}

// slide - shifts the cells between pos and the target edge one step toward pos
// and drops piece on the vacated edge cell.
func slide(board *Board, pos Position, dir Direction, piece Cell) {
	x, y := pos.X, pos.Y

	switch dir {
	case Left:
		for i := x; i > 0; i-- {
			board[y][i] = board[y][i-1]
		}
		board[y][0] = piece
	case Right:
		for i := x; i < last; i++ {
			board[y][i] = board[y][i+1]
		}
		board[y][last] = piece
	case Top:
		for i := y; i > 0; i-- {
			board[i][x] = board[i-1][x]
		}
		board[0][x] = piece
	case Bottom:
		for i := y; i < last; i++ {
			board[i][x] = board[i+1][x]
		}
		board[last][x] = piece
	}
}
