package framework

import (
	"sort"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Levels enumerates the recognized test identifier prefixes from the most
// to the least severe: eXcept, Error, Warn, Info, Success.
const Levels = "XEWIS"

// Descriptor declares one test for the method under test. Every field is
// optional; the suite runner enforces which fields are required or
// forbidden for a given identifier level.
type Descriptor struct {
	// Skip disables the test when truthy (Python-style truthiness: false,
	// zero, and the empty string do not skip). A string value is kept as
	// the skip rationale in the outcome.
	Skip ldvalue.Value

	// Mocks maps exported func-typed fields of the sandbox (mock slots) to
	// the implementations to install for this test.
	Mocks map[string]any

	// Init is an optional constructor mock: a func whose first parameter is
	// the receiver. It runs right after the sandbox is created, with cloned
	// InitArgs. The real constructor of the tested type never runs.
	Init     any
	InitArgs []any

	// Setup maps exported field names to the values injected into the
	// sandbox before the method runs. Values are cloned per run.
	Setup map[string]any

	// Args are the call arguments, cloned before every invocation.
	Args []any

	// Returns, when non-nil, is the expected return value. Build it with
	// Expect so that an expected nil return stays representable.
	Returns *Expectation

	// Raises, when non-nil, is the expected failure: the method's returned
	// error (or a recovered panic value that is an error) must have the
	// same dynamic type and the same message.
	Raises error

	// Final, when non-nil, is the exact expected post-state: every
	// checkable field of the sandbox must be listed, and every listed
	// field must compare equal by value.
	Final map[string]any

	// Logs, when non-nil, is the exact ordered sequence of tagged messages
	// the method must have logged. Build entries with the logging tag
	// helpers, e.g. logging.TagInfo("add: x=5").
	Logs []string
}

// Expectation wraps an expected return value so that "expect nil" and
// "no expectation" remain distinct.
type Expectation struct {
	value any
}

// Expect declares an expected return value for Descriptor.Returns.
func Expect(v any) *Expectation { return &Expectation{value: v} }

// Suite maps test identifiers to their descriptors. A test identifier is a
// non-empty string whose first letter is one of Levels; it doubles as the
// unique test name within the suite.
type Suite map[string]Descriptor

type suiteEntry struct {
	level int
	tid   string
	test  Descriptor
}

// tidLevel returns the index of the identifier's level within Levels, or -1
// for empty or unrecognized identifiers. Lower values run earlier, with -1
// sorting before everything.
func tidLevel(tid string) int {
	if tid == "" {
		return -1
	}
	return strings.IndexByte(Levels, tid[0])
}

func levelRaises(level int) bool { return level == 0 || level == 1 }

func levelLogs(level int) bool { return level >= 1 && level <= 3 }

func orderSuite(suite Suite) []suiteEntry {
	entries := make([]suiteEntry, 0, len(suite))
	for tid, test := range suite {
		entries = append(entries, suiteEntry{level: tidLevel(tid), tid: tid, test: test})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].level != entries[j].level {
			return entries[i].level < entries[j].level
		}
		return entries[i].tid < entries[j].tid
	})
	return entries
}

// truthy applies Python-style truthiness to a descriptor knob: null, false,
// zero, the empty string, and empty collections are falsy.
func truthy(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.NullType:
		return false
	case ldvalue.BoolType:
		return v.BoolValue()
	case ldvalue.NumberType:
		return v.Float64Value() != 0
	case ldvalue.StringType:
		return v.StringValue() != ""
	default:
		return v.Count() > 0
	}
}

// skipMessage extracts the optional rationale from a skip knob: only string
// values carry one.
func skipMessage(v ldvalue.Value) ldvalue.OptionalString {
	if v.Type() == ldvalue.StringType {
		return ldvalue.NewOptionalString(v.StringValue())
	}
	return ldvalue.OptionalString{}
}
