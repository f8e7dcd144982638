package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"parlife/internal/core"
	"parlife/internal/setup"
	"parlife/internal/sims/life"
)

// prompter asks questions on out and reads one answer per line from in.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask repeats question until accept takes the answer. Answers rejected with
// core.ErrInvalidInput are reported and asked again; other errors end the
// session.
func (p *prompter) ask(question string, accept func(answer string) error) error {
	for {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return err
			}
			return fmt.Errorf("reading answer: %w", io.ErrUnexpectedEOF)
		}
		err := accept(p.in.Text())
		if err == nil {
			return nil
		}
		if !errors.Is(err, core.ErrInvalidInput) {
			return err
		}
		fmt.Fprintf(p.out, "%v; try again\n", err)
	}
}

// interview fills the cells, workers and steps of cfg from in. A blank answer
// keeps the current value. Entering cells replaces the preset pattern.
func interview(cfg *Config, in io.Reader, out io.Writer) error {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	cellsQ := fmt.Sprintf("live cells as x,y pairs in [1,%d], blank keeps %q: ", cfg.Size, cfg.Pattern)
	err := p.ask(cellsQ, func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return nil
		}
		if _, err := setup.ParseCells(answer, cfg.Size); err != nil {
			return err
		}
		cfg.Cells = answer
		cfg.Pattern = life.PatternNone
		return nil
	})
	if err != nil {
		return err
	}

	accepted := cfg.AcceptedWorkers()
	workersQ := fmt.Sprintf("workers %v, blank keeps %s: ", accepted, cfg.Workers)
	err = p.ask(workersQ, func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return nil
		}
		if _, err := setup.ParseWorkers(answer, accepted); err != nil {
			return err
		}
		cfg.Workers = answer
		return nil
	})
	if err != nil {
		return err
	}

	stepsQ := fmt.Sprintf("generations, blank keeps %s: ", cfg.Steps)
	return p.ask(stepsQ, func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return nil
		}
		if _, err := setup.ParseSteps(answer); err != nil {
			return err
		}
		cfg.Steps = answer
		return nil
	})
}
