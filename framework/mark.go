package framework

import "fmt"

// Mark classifies the outcome of one test. Severity increases with the
// numeric value.
type Mark int

const (
	// Succeeded means the test ran and all declared checks passed.
	Succeeded Mark = 0
	// Skipped means the test was deliberately not run.
	Skipped Mark = 1
	// Failed means the test ran but some observed behavior diverged from
	// the declared expectation.
	Failed Mark = 2
	// Crashed means the test could not be run because its identifier or
	// descriptor is invalid.
	Crashed Mark = 3
)

var marks = map[Mark]struct {
	pict string
	verb string
}{
	Succeeded: {pict: ".", verb: "succeeded"},
	Skipped:   {pict: "-", verb: "skipped"},
	Failed:    {pict: "!", verb: "failed"},
	Crashed:   {pict: "#", verb: "crashed"},
}

// Pict returns the single-character pictogram used in report bars.
func (m Mark) Pict() string { return marks[m].pict }

// Verb returns the past-tense verb used in textual reports.
func (m Mark) Verb() string { return marks[m].verb }

func (m Mark) String() string {
	if _, ok := marks[m]; !ok {
		return fmt.Sprintf("Mark(%d)", int(m))
	}
	return marks[m].verb
}
