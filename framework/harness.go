package framework

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/xoiss/go-utest/logging"
)

// execute is the envelope around one validated test: it builds a fresh
// sandbox with a fresh recording logger, runs the method, and checks the
// raised error, the return value and final state, and the captured log
// messages. A nil result means full success; a non-nil result is the
// failure diagnostic.
//
// The recorder is injected through the sandbox's logging seam and dies with
// the sandbox, so no shared logging binding is touched on any exit path.
func (m *MethodTest) execute(test Descriptor) error {
	recorder := &logging.Recorder{}

	a := newAdapter(m.method, m.owner, test)
	if err := a.setup(recorder); err != nil {
		return err
	}

	raised, failure := a.run()
	if failure != nil {
		return failure
	}

	if raised != nil {
		if test.Raises == nil {
			return fmt.Errorf("unexpected exception %s", reprErr(raised))
		}
		if reflect.TypeOf(raised) != reflect.TypeOf(test.Raises) ||
			raised.Error() != test.Raises.Error() {
			return fmt.Errorf("different exception %s, expected %s",
				reprErr(raised), reprErr(test.Raises))
		}
	} else if test.Raises != nil {
		return fmt.Errorf("missed exception, expected %s", reprErr(test.Raises))
	}

	if err := a.check(); err != nil {
		return err
	}

	if test.Logs != nil {
		logged := recorder.Messages()
		if !slices.Equal(logged, test.Logs) {
			return fmt.Errorf("different log [%s], expected [%s]",
				strings.Join(logged, ", "), strings.Join(test.Logs, ", "))
		}
	}

	return nil
}

// reprErr renders an error for diagnostics as its dynamic type plus its
// quoted message, so that two errors with the same text but different types
// remain distinguishable in failure messages.
func reprErr(err error) string {
	return fmt.Sprintf("%T(%q)", err, err.Error())
}
