package solver

import (
	"context"
	"fmt"
	"strconv"

	"intcode"
	"intcode/config"
	"intcode/log"
)

// Day02 runs the gravity assist program.
type Day02 struct {
	program intcode.Memory
	cfg     config.Config
}

func NewDay02(lines []string, cfg config.Config) (Solver, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("day 2: %w: no program line", intcode.ErrInvalidInput)
	}
	program, err := intcode.Parse(lines[0])
	if err != nil {
		return nil, fmt.Errorf("day 2: %w", err)
	}
	log.Debug(log.SolverModule, "program loaded", "day", 2, "cells", len(program))
	return &Day02{program: program, cfg: cfg}, nil
}

// FirstResult restores the 1202 program alarm state and returns address 0.
func (d *Day02) FirstResult() (string, error) {
	g := d.cfg.Gravity
	v, err := intcode.Execute(context.Background(), d.program, intcode.NounVerb(g.Noun, g.Verb))
	if err != nil {
		return "", fmt.Errorf("day 2 part one: %w", err)
	}
	return strconv.FormatInt(int64(v), 10), nil
}

// SecondResult finds the noun and verb producing the configured target.
func (d *Day02) SecondResult() (string, error) {
	s := &intcode.Searcher{
		Base:    d.program,
		Target:  d.cfg.Gravity.Target,
		Limit:   d.cfg.Search.Limit,
		Workers: d.cfg.Search.Workers,
	}
	m, err := s.Search(context.Background())
	if err != nil {
		return "", fmt.Errorf("day 2 part two: %w", err)
	}
	return strconv.Itoa(m.Answer()), nil
}
