package quixo

// LegalMoves - returns every move player may apply to state. Border cells
// owned by the opponent are skipped. The order is stable: x, then y, then
// direction, so callers can rely on the first move for ties.
func LegalMoves(state GameState, player Player) []Move {
	moves := make([]Move, 0, 44)
	opponent := Owner(player.Opponent())

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			pos := Position{X: x, Y: y}
			if state.Board.At(pos) == opponent {
				continue
			}

			for _, dir := range Directions(pos) {
				moves = append(moves, Move{Position: pos, Direction: dir})
			}
		}
	}

	return moves
}
