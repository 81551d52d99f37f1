package quixo

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidConfiguration = errors.New("invalid search configuration")
	ErrNoLegalMoves         = errors.New("no legal moves")
)

// Result - is the outcome of a single Search call.
type Result struct {
	Move  Move    `json:"move"`
	Score float64 `json:"score"`
	// Fallback - the move was picked at random because no candidate scored above -Inf.
	Fallback bool `json:"fallback"`
	// Evaluations - number of leaves scored during this call.
	Evaluations int64 `json:"evaluations"`
}

type SearchOption func(*Searcher)

// WithWorkers - searches up to n root candidates concurrently.
func WithWorkers(n int) SearchOption {
	return func(s *Searcher) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithRand - sets the source used by the random fallback.
func WithRand(rnd *rand.Rand) SearchOption {
	return func(s *Searcher) {
		if rnd != nil {
			s.rnd = rnd
		}
	}
}

// Searcher - picks moves with depth-limited minimax and alpha-beta pruning.
// The game tree is always explored from the perspective of the player to move
// at the root: maximizing plies play that player's moves, minimizing plies the
// opponent's, and leaves are scored for the root player.
type Searcher struct {
	workers int

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSearcher(opts ...SearchOption) *Searcher {
	s := &Searcher{
		workers: 1,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())), //nolint: gosec // it's ok
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// BestMove - returns the move chosen by Search.
func (that *Searcher) BestMove(state GameState, maxDepth int) (Move, error) {
	result, err := that.Search(state, maxDepth)
	if err != nil {
		return Move{}, err
	}
	return result.Move, nil
}

// Search - evaluates every legal move of state.Current to maxDepth plies and
// keeps the first one with the highest score.
func (that *Searcher) Search(state GameState, maxDepth int) (Result, error) {
	if maxDepth < 1 {
		return Result{}, fmt.Errorf("%w: max depth %d must be at least 1", ErrInvalidConfiguration, maxDepth)
	}

	me := state.Current
	moves := LegalMoves(state, me)
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w for player %s", ErrNoLegalMoves, me)
	}

	walker := &walker{root: me}
	scores := that.scoreRoot(walker, state, moves, maxDepth)

	result := Result{Score: math.Inf(-1)}
	found := false
	for i, score := range scores {
		if score > result.Score {
			result.Score = score
			result.Move = moves[i]
			found = true
		}
	}

	if !found {
		result.Move = that.randomMove(moves)
		result.Fallback = true
	}

	result.Evaluations = walker.evaluations.Load()

	return result, nil
}

// scoreRoot - every root candidate is searched with a fresh window, so the
// candidates are independent and may be scored in any order.
func (that *Searcher) scoreRoot(w *walker, state GameState, moves []Move, maxDepth int) []float64 {
	scores := make([]float64, len(moves))

	score := func(i int) {
		child := w.apply(state, moves[i], w.root)
		scores[i] = w.search(child, maxDepth-1, math.Inf(-1), math.Inf(1), false)
	}

	if that.workers <= 1 {
		for i := range moves {
			score(i)
		}
		return scores
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(that.workers, len(moves)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				score(i)
			}
		}()
	}

	for i := range moves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return scores
}

func (that *Searcher) randomMove(moves []Move) Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return moves[that.rnd.Intn(len(moves))]
}

type walker struct {
	root        Player
	evaluations atomic.Int64
}

func (that *walker) search(state GameState, depth int, alpha, beta float64, maximizing bool) float64 {
	if depth == 0 {
		return that.evaluate(state)
	}
	if _, ok := Winner(&state.Board); ok {
		return that.evaluate(state)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, move := range LegalMoves(state, that.root) {
			child := that.apply(state, move, that.root)
			best = max(best, that.search(child, depth-1, alpha, beta, false))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	opponent := that.root.Opponent()
	best := math.Inf(1)
	for _, move := range LegalMoves(state, opponent) {
		child := that.apply(state, move, opponent)
		best = min(best, that.search(child, depth-1, alpha, beta, true))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

func (that *walker) evaluate(state GameState) float64 {
	that.evaluations.Add(1)
	return EvaluateFor(&state.Board, that.root)
}

// apply - enumerated moves are legal by construction; a rejection here is a bug.
func (that *walker) apply(state GameState, move Move, player Player) GameState {
	next, err := ApplyMove(state, move, player)
	if err != nil {
		panic(fmt.Sprintf("quixo: enumerated move %s for %s was rejected: %v", move, player, err))
	}
	return next
}
