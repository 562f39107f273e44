package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Observer receives live notifications as the suite runner considers each
// test. TestStarted fires for every test that will produce an outcome;
// TestFinished fires with that outcome. Tests omitted by the Single
// selector produce no notifications at all.
type Observer interface {
	TestStarted(tid string)
	TestFinished(tid string, outcome Outcome)
}

type nullObserver struct{}

func (nullObserver) TestStarted(string)           {}
func (nullObserver) TestFinished(string, Outcome) {}

// NullObserver returns an Observer that ignores everything.
func NullObserver() Observer { return nullObserver{} }

// ConsoleObserver prints live progress to a console, color-coded by mark.
// Succeeded outcomes are reported only in verbose mode.
type ConsoleObserver struct {
	// Output defaults to os.Stdout.
	Output io.Writer
	// Verbose announces every test start and every outcome, not just the
	// noteworthy ones.
	Verbose bool
}

var markColors = map[Mark]*color.Color{
	Succeeded: color.New(color.FgGreen),
	Skipped:   color.New(color.FgYellow),
	Failed:    color.New(color.FgRed),
	Crashed:   color.New(color.FgHiRed),
}

func (c *ConsoleObserver) out() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *ConsoleObserver) TestStarted(tid string) {
	if c.Verbose {
		fmt.Fprintf(c.out(), "[%s]\n", tid)
	}
}

func (c *ConsoleObserver) TestFinished(tid string, outcome Outcome) {
	if outcome.Mark == Succeeded && !c.Verbose {
		return
	}
	line := fmt.Sprintf("  %s: %s", strings.ToUpper(outcome.Mark.Verb()), tid)
	if outcome.Msg.IsDefined() && outcome.Msg.StringValue() != "" {
		line += fmt.Sprintf(" (%s)", outcome.Msg.StringValue())
	}
	markColors[outcome.Mark].Fprintln(c.out(), line)
}
