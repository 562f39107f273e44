package framework

import (
	"errors"
	"fmt"

	"github.com/xoiss/go-utest/logging"
)

// accum mirrors the tutorial example: a grade accumulator whose Add method
// logs, mutates state, and rejects out-of-range input.
type accum struct {
	Person string
	S      int
	N      int

	log logging.Logger
}

func (a *accum) SetLogger(log logging.Logger) { a.log = log }

func (a *accum) Add(grade int) (int, error) {
	if grade < 1 || grade > 5 {
		return 0, fmt.Errorf("grade=%d is out of range", grade)
	}
	a.log.Info(fmt.Sprintf("add: x=%d", grade))
	a.S += grade
	a.N++
	return a.N, nil
}

// noop has a method with no arguments, no results, and no side effects.
type noop struct{}

func (noop) Do() {}

// widget exercises mock slots and the Init mock.
type widget struct {
	Count  int
	Render func(string) string
}

func (w *widget) Describe(name string) string { return w.Render(name) }

func (w *widget) Bump() int {
	w.Count++
	return w.Count
}

// summer has a variadic method, for argument binding tests.
type summer struct {
	Total int
}

func (s *summer) Sum(base int, nums ...int) int {
	s.Total = base
	for _, n := range nums {
		s.Total += n
	}
	return s.Total
}

// gate both logs and fails from the same call path.
type gate struct {
	Open bool

	log logging.Logger
}

func (g *gate) SetLogger(log logging.Logger) { g.log = log }

func (g *gate) Enter(name string) error {
	if !g.Open {
		g.log.Error(fmt.Sprintf("denied: %s", name))
		return fmt.Errorf("gate is closed for %s", name)
	}
	g.log.Info(fmt.Sprintf("enter: %s", name))
	return nil
}

// mutator mutates its argument and its own state, for clone-isolation tests.
type mutator struct {
	Total int
}

func (m *mutator) Consume(values []int) {
	if len(values) > 0 {
		values[0] = 99
	}
	m.Total = len(values)
}

// holder exercises clone isolation of setup-injected state.
type holder struct {
	Items []int
}

func (h *holder) Blank() {
	if len(h.Items) > 0 {
		h.Items[0] = 0
	}
}

type rangeError struct {
	msg string
}

func (e *rangeError) Error() string { return e.msg }

// failer always signals a typed error.
type failer struct{}

func (failer) Fail() error { return &rangeError{msg: "boom"} }

// panicker provokes the panic-handling paths.
type panicker struct{}

func (*panicker) Go() { panic("raw") }

func (*panicker) GoErr() { panic(errors.New("kaboom")) }
