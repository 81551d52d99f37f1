package quixo

import (
	"errors"
	"fmt"
	"strings"
)

// Size - is the side of the board, fixed for the lifetime of a game.
const Size = 5

const last = Size - 1

type Player int8

const (
	PlayerOne Player = 0
	PlayerTwo Player = 1
)

func (that Player) Valid() bool {
	return that == PlayerOne || that == PlayerTwo
}

func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return fmt.Sprintf("player(%d)", int8(that))
	}
}

// Cell - is either Empty or owned by a player. The zero value is Empty.
type Cell int8

const Empty Cell = 0

func Owner(player Player) Cell {
	return Cell(player + 1)
}

// Owner - returns the player owning the cell, false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	if that == Empty {
		return 0, false
	}
	return Player(that - 1), true
}

func (that Cell) OwnedBy(player Player) bool {
	return that == Owner(player)
}

// Board - is indexed [y][x]: y is the row (top to bottom), x the column (left to right).
type Board [Size][Size]Cell

func (that *Board) At(pos Position) Cell {
	return that[pos.Y][pos.X]
}

// Count - returns the number of cells owned by player.
func (that *Board) Count(player Player) int {
	owned := Owner(player)
	count := 0
	for y := range that {
		for x := range that[y] {
			if that[y][x] == owned {
				count++
			}
		}
	}
	return count
}

func (that Board) String() string {
	var sb strings.Builder
	for y := range that {
		for x, cell := range that[y] {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if player, ok := cell.Owner(); ok {
				sb.WriteString(player.String())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Key - is a compact 25 character encoding of the board, row by row.
func (that *Board) Key() string {
	buf := make([]byte, 0, Size*Size)
	for y := range that {
		for x := range that[y] {
			buf = append(buf, '0'+byte(that[y][x]))
		}
	}
	return string(buf)
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Position) InRange() bool {
	return that.X >= 0 && that.X < Size && that.Y >= 0 && that.Y < Size
}

func (that Position) OnBorder() bool {
	return that.InRange() && (that.X == 0 || that.X == last || that.Y == 0 || that.Y == last)
}

func (that Position) IsCorner() bool {
	return (that.X == 0 || that.X == last) && (that.Y == 0 || that.Y == last)
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}

// Direction - is the edge toward which the taken piece is pushed.
type Direction uint8

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

var ErrUnknownDirection = errors.New("unknown direction")

var allDirections = [...]Direction{Top, Bottom, Left, Right}

var directionNames = [...]string{
	Top:    "top",
	Bottom: "bottom",
	Left:   "left",
	Right:  "right",
}

func (that Direction) String() string {
	if int(that) < len(directionNames) {
		return directionNames[that]
	}
	return fmt.Sprintf("direction(%d)", uint8(that))
}

func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

func (that Direction) MarshalText() ([]byte, error) {
	if int(that) >= len(directionNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(that))
	}
	return []byte(directionNames[that]), nil
}

func (that *Direction) UnmarshalText(text []byte) error {
	d, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*that = d
	return nil
}

// Move - takes the cube at Position and pushes it toward Direction.
type Move struct {
	Position  `json:"position"`
	Direction Direction `json:"direction"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d %d %s", that.X, that.Y, that.Direction)
}

type GameState struct {
	Board   Board  `json:"board"`
	Current Player `json:"current_player"`
}

// NewGame - returns an empty board with PlayerOne to move.
func NewGame() GameState {
	return GameState{Current: PlayerOne}
}
