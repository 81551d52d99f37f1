package quixo

const (
	// MaxHistory - longer games are a draw.
	MaxHistory = 60
	// PatternLength - is the size of the repeating window that makes a draw.
	PatternLength = 10
)

type Status uint8

const (
	StatusOngoing Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome - Winner is meaningful only when Status is StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusOngoing
}

// Winner - returns the owner of the first complete line found, checking rows,
// columns, the main diagonal and then the anti-diagonal.
func Winner(board *Board) (Player, bool) {
	for y := 0; y < Size; y++ {
		if player, ok := lineOwner(func(i int) Cell { return board[y][i] }); ok {
			return player, true
		}
	}

	for x := 0; x < Size; x++ {
		if player, ok := lineOwner(func(i int) Cell { return board[i][x] }); ok {
			return player, true
		}
	}

	if player, ok := lineOwner(func(i int) Cell { return board[i][i] }); ok {
		return player, true
	}

	return lineOwner(func(i int) Cell { return board[last-i][i] })
}

func lineOwner(at func(i int) Cell) (Player, bool) {
	first := at(0)
	if first == Empty {
		return 0, false
	}

	for i := 1; i < Size; i++ {
		if at(i) != first {
			return 0, false
		}
	}

	return first.Owner()
}

// IsDraw - reports a draw when the history is longer than MaxHistory moves or
// when its last PatternLength moves already appeared earlier as a window.
func IsDraw(history []Move) bool {
	return len(history) > MaxHistory || hasRepeatedPattern(history)
}

func hasRepeatedPattern(history []Move) bool {
	n := len(history)
	if n < 2*PatternLength {
		return false
	}

	tail := history[n-PatternLength:]
	for start := 0; start <= n-2*PatternLength; start++ {
		if equalMoves(history[start:start+PatternLength], tail) {
			return true
		}
	}

	return false
}

func equalMoves(a, b []Move) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// GetOutcome - a completed line wins even when the history also makes a draw.
func GetOutcome(state GameState, history []Move) Outcome {
	if player, ok := Winner(&state.Board); ok {
		return Outcome{Status: StatusWon, Winner: player}
	}

	if IsDraw(history) {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}
