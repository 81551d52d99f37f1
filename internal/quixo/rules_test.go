package quixo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	x = Owner(PlayerOne)
	o = Owner(PlayerTwo)
	e = Empty
)

func TestNewGame(t *testing.T) {
	// Given: a new game
	state := NewGame()

	// Then: the board is empty and player one moves first
	assert.Equal(t, Board{}, state.Board)
	assert.Equal(t, PlayerOne, state.Current)
	assert.Zero(t, state.Board.Count(PlayerOne))
	assert.Zero(t, state.Board.Count(PlayerTwo))
}

func TestDirections(t *testing.T) {
	t.Run("Corners allow exactly two directions", func(t *testing.T) {
		corners := map[Position][]Direction{
			{X: 0, Y: 0}: {Bottom, Right},
			{X: 4, Y: 0}: {Bottom, Left},
			{X: 0, Y: 4}: {Top, Right},
			{X: 4, Y: 4}: {Top, Left},
		}

		for pos, expected := range corners {
			assert.Equal(t, expected, Directions(pos), "corner %s", pos)
			assert.True(t, pos.IsCorner())
		}
	})

	t.Run("Other border cells allow exactly three directions", func(t *testing.T) {
		for i := 1; i < last; i++ {
			assert.Equal(t, []Direction{Bottom, Left, Right}, Directions(Position{X: i, Y: 0}))
			assert.Equal(t, []Direction{Top, Left, Right}, Directions(Position{X: i, Y: last}))
			assert.Equal(t, []Direction{Top, Bottom, Right}, Directions(Position{X: 0, Y: i}))
			assert.Equal(t, []Direction{Top, Bottom, Left}, Directions(Position{X: last, Y: i}))
		}
	})

	t.Run("Interior and out of range cells allow nothing", func(t *testing.T) {
		assert.Empty(t, Directions(Position{X: 2, Y: 2}))
		assert.Empty(t, Directions(Position{X: 5, Y: 0}))
		assert.Empty(t, Directions(Position{X: -1, Y: 3}))
	})
}

func TestApplyMove_Rejected(t *testing.T) {
	// Given: a board with an opponent cube on the top edge
	state := NewGame()
	state.Board[0][2] = o

	cases := []struct {
		name     string
		move     Move
		player   Player
		expected error
	}{
		{"Interior cell", Move{Position{X: 2, Y: 2}, Top}, PlayerOne, ErrNotBorder},
		{"Column out of range", Move{Position{X: 5, Y: 0}, Bottom}, PlayerOne, ErrOutOfRange},
		{"Negative row", Move{Position{X: 0, Y: -1}, Bottom}, PlayerOne, ErrOutOfRange},
		{"Opponent cube", Move{Position{X: 2, Y: 0}, Bottom}, PlayerOne, ErrOpponentCell},
		{"Corner pushed off its own edge", Move{Position{X: 0, Y: 0}, Top}, PlayerOne, ErrInvalidDirection},
		{"Edge pushed off its own edge", Move{Position{X: 4, Y: 2}, Right}, PlayerOne, ErrInvalidDirection},
		{"Unknown direction", Move{Position{X: 0, Y: 2}, Direction(9)}, PlayerOne, ErrInvalidDirection},
		{"Unknown player", Move{Position{X: 0, Y: 0}, Bottom}, Player(3), ErrUnknownPlayer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := state

			// When: the move is applied
			next, err := ApplyMove(state, tc.move, tc.player)

			// Then: it is rejected and nothing changes
			require.ErrorIs(t, err, tc.expected)
			require.ErrorIs(t, err, ErrRejected)
			assert.Equal(t, before, state)
			assert.Equal(t, before, next)
		})
	}
}

func TestApplyMove_Slide(t *testing.T) {
	t.Run("Push left from the right edge", func(t *testing.T) {
		// Given: row 2 is O X . . .
		state := NewGame()
		state.Board[2] = [Size]Cell{o, x, e, e, e}

		// When: player one takes (4,2) and pushes it left
		next, err := ApplyMove(state, Move{Position{X: 4, Y: 2}, Left}, PlayerOne)

		// Then: the row shifts right and the cube lands on column 0
		require.NoError(t, err)
		assert.Equal(t, [Size]Cell{x, o, x, e, e}, next.Board[2])
	})

	t.Run("Push right from the top-left corner", func(t *testing.T) {
		// Given: row 0 is . O . . .
		state := NewGame()
		state.Board[0] = [Size]Cell{e, o, e, e, e}

		// When: player one takes (0,0) and pushes it right
		next, err := ApplyMove(state, Move{Position{X: 0, Y: 0}, Right}, PlayerOne)

		// Then: the row shifts left and the cube lands on column 4
		require.NoError(t, err)
		assert.Equal(t, [Size]Cell{o, e, e, e, x}, next.Board[0])
	})

	t.Run("Push bottom from the top edge", func(t *testing.T) {
		// Given: column 2 is . O . . X from top to bottom
		state := NewGame()
		state.Board[1][2] = o
		state.Board[4][2] = x

		// When: player one takes (2,0) and pushes it to the bottom
		next, err := ApplyMove(state, Move{Position{X: 2, Y: 0}, Bottom}, PlayerOne)

		// Then: the column shifts up and the cube lands on row 4
		require.NoError(t, err)
		column := [Size]Cell{}
		for y := range column {
			column[y] = next.Board[y][2]
		}
		assert.Equal(t, [Size]Cell{o, e, e, x, x}, column)
	})

	t.Run("Push top from the bottom edge", func(t *testing.T) {
		// Given: column 1 is X . . . . from top to bottom
		state := NewGame()
		state.Board[0][1] = x

		// When: player two takes (1,4) and pushes it to the top
		next, err := ApplyMove(state, Move{Position{X: 1, Y: 4}, Top}, PlayerTwo)

		// Then: the column shifts down and the cube lands on row 0
		require.NoError(t, err)
		column := [Size]Cell{}
		for y := range column {
			column[y] = next.Board[y][1]
		}
		assert.Equal(t, [Size]Cell{o, x, e, e, e}, column)
		assert.Equal(t, PlayerOne, next.Current)
	})

	t.Run("Own cube may be taken again", func(t *testing.T) {
		// Given: player one owns (0,3)
		state := NewGame()
		state.Board[3][0] = x

		// When: player one takes it again
		next, err := ApplyMove(state, Move{Position{X: 0, Y: 3}, Right}, PlayerOne)

		// Then: the move is accepted and the cube count is unchanged
		require.NoError(t, err)
		assert.Equal(t, 1, next.Board.Count(PlayerOne))
		assert.Equal(t, x, next.Board[3][4])
	})

	t.Run("Input state is left untouched and the turn passes", func(t *testing.T) {
		// Given: a fresh game
		state := NewGame()
		before := state

		// When: player one moves
		next, err := ApplyMove(state, Move{Position{X: 0, Y: 0}, Bottom}, PlayerOne)

		// Then: only the returned state changed
		require.NoError(t, err)
		assert.Equal(t, before, state)
		assert.Equal(t, PlayerTwo, next.Current)
		assert.Equal(t, x, next.Board[4][0])
	})
}

func TestParseDirection(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		for _, dir := range allDirections {
			parsed, err := ParseDirection(dir.String())
			require.NoError(t, err)
			assert.Equal(t, dir, parsed)
		}

		parsed, err := ParseDirection("BOTTOM")
		require.NoError(t, err)
		assert.Equal(t, Bottom, parsed)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseDirection("up")
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{}
	board[0][0] = x
	board[4][4] = o

	expected := "X . . . .\n" +
		". . . . .\n" +
		". . . . .\n" +
		". . . . .\n" +
		". . . . O\n"

	assert.Equal(t, expected, board.String())
	assert.Equal(t, "1"+strings.Repeat("0", 23)+"2", board.Key())
}
