package framework

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// MethodTest owns the declarative suite for one method of one type, drives
// the sandbox adapter and the logging recorder through each test, and
// assembles the result ledger.
type MethodTest struct {
	method    reflect.Value
	owner     reflect.Type // receiver type as declared, possibly a pointer
	caption   string
	suite     []suiteEntry
	statement *Statement
}

// NewMethodTest prepares a test runner for one method and one suite.
//
// The method must be given as a method expression, such as (*Accum).Add or
// Accum.Add: a func value whose first parameter is the receiver. Plain
// functions, bound method values (accum.Add), and non-func values are
// rejected. A nil suite is treated as empty.
func NewMethodTest(method any, suite Suite) (*MethodTest, error) {
	v := reflect.ValueOf(method)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("method=%v, a method expression like T.Method is required", method)
	}

	name := runtime.FuncForPC(v.Pointer()).Name()
	if strings.HasSuffix(name, "-fm") {
		return nil, errors.New("method is bound to an instance, a method expression like T.Method is required")
	}
	methodName := name[strings.LastIndexByte(name, '.')+1:]

	t := v.Type()
	if t.NumIn() == 0 {
		return nil, fmt.Errorf("method %s has no receiver parameter", methodName)
	}
	owner := t.In(0)
	base := owner
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct || base.Name() == "" {
		return nil, fmt.Errorf("method %s: first parameter is %s, must be a named struct type or a pointer to one",
			methodName, owner)
	}
	if _, ok := owner.MethodByName(methodName); !ok {
		return nil, fmt.Errorf("%s is not a method of %s, plain functions are not allowed", methodName, base.Name())
	}

	return &MethodTest{
		method:  v,
		owner:   owner,
		caption: base.Name() + "." + methodName,
		suite:   orderSuite(suite),
	}, nil
}

// Caption is the formal suite name, "Owner.Method".
func (m *MethodTest) Caption() string { return m.caption }

// Statement is the ledger bound by the last Run. It is nil before the
// first run.
func (m *MethodTest) Statement() Statement {
	if m.statement == nil {
		return nil
	}
	return *m.statement
}

// RunParams are the optional knobs for one Run invocation.
type RunParams struct {
	// Ledger, when non-nil, receives the outcomes of this run appended
	// after whatever it already holds, so results of several suites or
	// several runs can aggregate into one statement.
	Ledger *Statement

	// Variant is reserved for parametrized suite runs and is not
	// implemented; any non-empty value makes Run fail.
	Variant string

	// Skip, when truthy, skips the whole suite. A string value is kept as
	// the rationale on every skipped outcome.
	Skip ldvalue.Value

	// Single, when non-empty, names the only test to run. All other tests
	// are omitted entirely, with no outcome recorded. It must be a valid
	// identifier, present in the suite, and not individually skipped.
	// Single and Skip are mutually exclusive.
	Single string

	// Observer, when non-nil, is notified as each test is considered and
	// completed.
	Observer Observer
}

// Run executes the suite in canonical order, recording one outcome per
// considered test. Configuration errors (unsupported Variant, Skip together
// with Single, malformed or missing Single) abort before any test executes;
// per-test problems are recorded as Crashed or Failed outcomes without
// stopping the rest of the suite.
//
// Run may be called again on the same MethodTest: the suite re-executes in
// the same order, restarting the statement unless an external ledger is
// supplied.
func (m *MethodTest) Run(params RunParams) error {
	if params.Variant != "" {
		return errors.New("the Variant parameter is reserved and not implemented")
	}

	if truthy(params.Skip) && params.Single != "" {
		return errors.New("Skip and Single must not be enabled simultaneously")
	}

	if params.Single != "" {
		if tidLevel(params.Single) < 0 {
			return fmt.Errorf("invalid test identifier Single=%q, must start with one of %q",
				params.Single, Levels)
		}
		found := false
		for _, entry := range m.suite {
			if entry.tid == params.Single {
				if truthy(entry.test.Skip) {
					return fmt.Errorf("test identifier Single=%q, test is skipped individually", params.Single)
				}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("test identifier Single=%q, not found", params.Single)
		}
	}

	observer := params.Observer
	if observer == nil {
		observer = NullObserver()
	}

	statement := params.Ledger
	if statement == nil {
		statement = &Statement{}
	}
	m.statement = statement

	record := func(tid string, mark Mark, msg ldvalue.OptionalString) {
		outcome := Outcome{TID: tid, Mark: mark, Msg: msg}
		*statement = append(*statement, outcome)
		observer.TestFinished(tid, outcome)
	}

	for _, entry := range m.suite {
		if params.Single != "" && params.Single != entry.tid {
			continue // omitted entirely, no outcome recorded
		}

		observer.TestStarted(entry.tid)

		if truthy(params.Skip) {
			record(entry.tid, Skipped, skipMessage(params.Skip))
			continue
		}

		if entry.level < 0 {
			record(entry.tid, Crashed, ldvalue.NewOptionalString(fmt.Sprintf(
				"invalid test identifier %q, must start with one of %q", entry.tid, Levels)))
			continue
		}

		if truthy(entry.test.Skip) {
			record(entry.tid, Skipped, skipMessage(entry.test.Skip))
			continue
		}

		if levelRaises(entry.level) != (entry.test.Raises != nil) {
			state := "omitted"
			if entry.test.Raises != nil {
				state = "specified"
			}
			record(entry.tid, Crashed, ldvalue.NewOptionalString(
				fmt.Sprintf("'raises' is %s in test descriptor", state)))
			continue
		}

		if entry.test.Raises != nil && entry.test.Returns != nil {
			record(entry.tid, Crashed, ldvalue.NewOptionalString(
				"'returns' is specified in test descriptor"))
			continue
		}

		if levelLogs(entry.level) && entry.test.Logs == nil {
			record(entry.tid, Crashed, ldvalue.NewOptionalString(
				"'logs' is omitted in test descriptor"))
			continue
		}

		if err := m.execute(entry.test); err != nil {
			record(entry.tid, Failed, ldvalue.NewOptionalString(err.Error()))
		} else {
			record(entry.tid, Succeeded, ldvalue.OptionalString{})
		}
	}

	return nil
}
