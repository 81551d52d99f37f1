package quixo

import "math"

// Evaluate - scores state for the player about to move.
func Evaluate(state GameState) float64 {
	return EvaluateFor(&state.Board, state.Current)
}

// EvaluateFor - returns +Inf when player has a line, -Inf when the opponent
// has one, otherwise the difference in owned cells.
func EvaluateFor(board *Board, player Player) float64 {
	if winner, ok := Winner(board); ok {
		if winner == player {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}

	return float64(board.Count(player) - board.Count(player.Opponent()))
}
