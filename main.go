package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/xoiss/go-utest/framework"
	"github.com/xoiss/go-utest/logging"
	"github.com/xoiss/go-utest/tutorial"
)

func main() {
	var single string
	var skipReason string
	var verbose bool

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&single, "single", "", "run only the named test of the suite")
	fs.StringVar(&skipReason, "skip", "", "skip the whole suite with this rationale")
	fs.BoolVar(&verbose, "verbose", false, "announce every test as it runs")

	err := fs.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		os.Exit(1)
	}

	// The tested type in ordinary use, wired to a real logging backend.
	accum := tutorial.NewAccum("Jhon", logging.FromZap(zap.NewExample()))
	if _, err := accum.Add(4); err != nil {
		fmt.Fprintf(os.Stderr, "Add failed: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s's average grade is %v\n\n", accum.Person, accum.Average())

	test, err := framework.NewMethodTest((*tutorial.Accum).Add, framework.Suite{
		"S001": {
			Skip: ldvalue.String("should be fixed with TASK-12345"),
			Args: []any{5},
		},
		"S002": {
			Setup: map[string]any{"Person": "Jhon", "S": 0, "N": 0},
			Args:  []any{5},
			Final: map[string]any{"Person": "Jhon", "S": 5, "N": 1},
		},
		"I001": {
			Setup:   map[string]any{"Person": "Jhon", "S": 0, "N": 0},
			Args:    []any{5},
			Returns: framework.Expect(1),
			Final:   map[string]any{"Person": "Jhon", "S": 5, "N": 1},
			Logs:    []string{logging.TagInfo("add: x=5")},
		},
		"X001": {
			Args:   []any{7},
			Raises: errors.New("grade=7 is out of range"),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid suite: %s\n", err)
		os.Exit(1)
	}

	var skip ldvalue.Value
	if skipReason != "" {
		skip = ldvalue.String(skipReason)
	}

	fmt.Println("Running test suite")
	err = test.Run(framework.RunParams{
		Skip:     skip,
		Single:   single,
		Observer: &framework.ConsoleObserver{Verbose: verbose},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(test.ReportCLI())
	if test.Statement().OverallMark() > framework.Skipped {
		os.Exit(1)
	}
}
