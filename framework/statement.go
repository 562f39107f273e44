package framework

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Outcome records the result of one considered test.
type Outcome struct {
	// TID is the test identifier taken from the suite.
	TID string
	// Mark classifies the result.
	Mark Mark
	// Msg carries the diagnostic message, when there is one.
	Msg ldvalue.OptionalString
}

// Statement is the ordered ledger of outcomes for one or more runs. Within
// one run the order is the canonical suite order; across runs with an
// external ledger, outcomes accumulate serially.
type Statement []Outcome

// Bar renders one pictogram per outcome in statement order: '#' crashed,
// '!' failed, '-' skipped, '.' succeeded.
func (s Statement) Bar() string {
	var b strings.Builder
	for _, rec := range s {
		b.WriteString(rec.Mark.Pict())
	}
	return b.String()
}

// Filter returns the outcomes whose mark is at or above the given severity.
func (s Statement) Filter(severity Mark) Statement {
	var ret Statement
	for _, rec := range s {
		if rec.Mark >= severity {
			ret = append(ret, rec)
		}
	}
	return ret
}

// Total counts the outcomes that share one mark.
type Total struct {
	Mark Mark
	Verb string
	Num  int
}

// Totals counts outcomes per mark at or above the given severity, ordered
// from the most to the least severe. Marks that total to zero are omitted
// unless zeros is set.
func (s Statement) Totals(severity Mark, zeros bool) []Total {
	var ret []Total
	for mark := Crashed; mark >= Succeeded; mark-- {
		if mark < severity {
			continue
		}
		num := 0
		for _, rec := range s {
			if rec.Mark == mark {
				num++
			}
		}
		if num > 0 || zeros {
			ret = append(ret, Total{Mark: mark, Verb: mark.Verb(), Num: num})
		}
	}
	return ret
}

// OverallMark is the maximum mark across the statement. An empty statement
// yields Succeeded; deciding whether an empty statement is meaningful is
// the caller's responsibility.
func (s Statement) OverallMark() Mark {
	ret := Succeeded
	for _, rec := range s {
		if rec.Mark > ret {
			ret = rec.Mark
		}
	}
	return ret
}
