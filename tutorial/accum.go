// Package tutorial carries the worked example used by the demo command and
// the documentation: a small grade accumulator whose Add method logs,
// mutates state, and rejects out-of-range input.
package tutorial

import (
	"fmt"

	"github.com/xoiss/go-utest/logging"
)

// Accum accumulates grades for one person.
type Accum struct {
	Person string
	S      int
	N      int

	log logging.Logger
}

// NewAccum is the real constructor. The harness never calls it: sandboxes
// start from the zero value plus whatever the test descriptor injects.
func NewAccum(person string, log logging.Logger) *Accum {
	if log == nil {
		log = logging.NullLogger()
	}
	return &Accum{Person: person, log: log}
}

// SetLogger installs the logger Add reports through.
func (a *Accum) SetLogger(log logging.Logger) { a.log = log }

// Add records one grade and returns how many grades have been taken so far.
func (a *Accum) Add(grade int) (int, error) {
	if grade < 1 || grade > 5 {
		return 0, fmt.Errorf("grade=%d is out of range", grade)
	}
	a.log.Info(fmt.Sprintf("add: x=%d", grade))
	a.S += grade
	a.N++
	return a.N, nil
}

// Average is the mean grade taken so far, or 0 before the first Add.
func (a *Accum) Average() float64 {
	if a.N == 0 {
		return 0
	}
	return float64(a.S) / float64(a.N)
}
