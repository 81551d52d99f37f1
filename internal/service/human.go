package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/quixo/internal/entity"
	"github.com/rocketscienceinc/quixo/internal/quixo"
)

var (
	ErrInputClosed   = errors.New("input closed")
	ErrInvalidFormat = errors.New("expected: x y direction")
)

const prompt = "Enter your move in the format x y direction (ex. 0 0 bottom): "

type humanService struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanService - reads moves line by line from in and writes the board and prompts to out.
func NewHumanService(in io.Reader, out io.Writer) TurnService {
	return &humanService{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *humanService) MakeTurn(ctx context.Context, game *entity.Game) error {
	player, err := game.PlayerToMove()
	if err != nil {
		return fmt.Errorf("failed to find human player: %w", err)
	}

	fmt.Fprintf(that.out, "\n%s\nYou play %s.\n", game.State.Board, player.Mark)

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(that.out, prompt)

		if !that.in.Scan() {
			if err = that.in.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return ErrInputClosed
		}

		move, err := ParseMove(that.in.Text())
		if err != nil {
			fmt.Fprintf(that.out, "Format is invalid: %v\n", err)
			continue
		}

		err = game.MakeTurn(player.Mark, move)
		if errors.Is(err, quixo.ErrRejected) {
			fmt.Fprintf(that.out, "Move is invalid: %v\n", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("human player failed to make turn: %w", err)
		}

		return nil
	}
}

// ParseMove - parses "x y direction", e.g. "0 0 bottom".
func ParseMove(line string) (quixo.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return quixo.Move{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return quixo.Move{}, fmt.Errorf("%w: bad x: %w", ErrInvalidFormat, err)
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return quixo.Move{}, fmt.Errorf("%w: bad y: %w", ErrInvalidFormat, err)
	}

	dir, err := quixo.ParseDirection(fields[2])
	if err != nil {
		return quixo.Move{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return quixo.Move{Position: quixo.Position{X: x, Y: y}, Direction: dir}, nil
}
