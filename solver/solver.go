// Package solver exposes the puzzles through a two-answer interface.
package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"intcode/config"
)

var ErrUnknownDay = errors.New("failed to find solver")

// Solver computes the two answers of one puzzle.
type Solver interface {
	FirstResult() (string, error)
	SecondResult() (string, error)
}

type factory func(lines []string, cfg config.Config) (Solver, error)

var days = map[int]factory{
	2: NewDay02,
}

// New returns the solver for day, built from its input lines.
func New(day int, lines []string, cfg config.Config) (Solver, error) {
	f, ok := days[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrUnknownDay, day)
	}
	return f(lines, cfg)
}

// ReadLines returns every line of r without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<24)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
