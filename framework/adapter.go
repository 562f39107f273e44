package framework

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/xoiss/go-utest/logging"
)

var (
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
	loggerType = reflect.TypeOf((*logging.Logger)(nil)).Elem()
)

// ArgumentError reports that the supplied arguments cannot be bound to the
// tested method's parameter list. It surfaces through the same channel as
// errors returned by the method itself, so a descriptor can declare it in
// Raises to assert on calling-convention failures.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return e.Reason }

// adapter builds the sandbox for one test, runs the tested method against
// it, and checks the outputs. One adapter serves exactly one test and is
// then discarded, so tests cannot leak state into each other.
type adapter struct {
	method   reflect.Value
	owner    reflect.Type // receiver type as declared by the method
	test     Descriptor
	sandbox  reflect.Value // always a pointer to the receiver struct
	returned any
}

func newAdapter(method reflect.Value, owner reflect.Type, test Descriptor) *adapter {
	return &adapter{method: method, owner: owner, test: test}
}

// setup creates a zero-value sandbox (no constructor of the tested type
// runs), installs mocks into their slots, injects the logger through the
// sandbox's logging seam, invokes the Init mock if one is declared, and
// writes the cloned Setup state directly into the sandbox's fields.
func (a *adapter) setup(log logging.Logger) error {
	base := a.owner
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	a.sandbox = reflect.New(base)
	elem := a.sandbox.Elem()

	for _, name := range sortedKeys(a.test.Mocks) {
		field := elem.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("unknown mock slot %q in %s", name, base.Name())
		}
		if field.Kind() != reflect.Func {
			return fmt.Errorf("mock slot %q in %s is not a func field", name, base.Name())
		}
		impl := reflect.ValueOf(a.test.Mocks[name])
		if !impl.IsValid() || !impl.Type().AssignableTo(field.Type()) {
			return fmt.Errorf("mock %q is %T, must be assignable to %s",
				name, a.test.Mocks[name], field.Type())
		}
		field.Set(impl)
	}

	a.injectLogger(log)

	if a.test.Init != nil {
		if err := a.callInit(); err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(a.test.Setup) {
		field := elem.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("unknown attribute %q in %s", name, base.Name())
		}
		value, err := conform(clone(a.test.Setup[name]), field.Type())
		if err != nil {
			return fmt.Errorf("attribute %q: %s", name, err)
		}
		field.Set(value)
	}

	return nil
}

// injectLogger hands the logger to the sandbox: through the Loggable seam
// when the type implements it, otherwise through the first exported field
// of the Logger interface type. A type with no seam simply does not log.
func (a *adapter) injectLogger(log logging.Logger) {
	if loggable, ok := a.sandbox.Interface().(logging.Loggable); ok {
		loggable.SetLogger(log)
		return
	}
	elem := a.sandbox.Elem()
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() && t.Field(i).Type == loggerType {
			elem.Field(i).Set(reflect.ValueOf(log))
			return
		}
	}
}

func (a *adapter) callInit() error {
	fn := reflect.ValueOf(a.test.Init)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return fmt.Errorf("init mock is %T, must be a func taking the receiver first", a.test.Init)
	}
	args, err := bindArgs(fn.Type(), a.sandbox, cloneSlice(a.test.InitArgs))
	if err != nil {
		return fmt.Errorf("init mock: %s", err)
	}
	panicked := protectedCall(fn, args, new([]reflect.Value))
	if panicked != nil {
		return fmt.Errorf("init mock panicked: %v", panicked)
	}
	return nil
}

// run invokes the tested method against the sandbox with cloned arguments.
// The first result is the error the method signalled, if any: a non-nil
// trailing error result, a recovered panic value that is an error, or an
// *ArgumentError when the arguments cannot be bound. The second result is a
// hard failure that can never satisfy a Raises expectation (a panic with a
// non-error value).
func (a *adapter) run() (raised error, failure error) {
	t := a.method.Type()

	args, err := bindArgs(t, a.sandbox, cloneSlice(a.test.Args))
	if err != nil {
		return err, nil
	}

	var out []reflect.Value
	if panicked := protectedCall(a.method, args, &out); panicked != nil {
		if err, ok := panicked.(error); ok {
			return err, nil
		}
		return nil, fmt.Errorf("unexpected panic: %v", panicked)
	}

	results := out
	if t.NumOut() > 0 && t.Out(t.NumOut()-1).Implements(errorType) {
		last := out[len(out)-1]
		if !last.IsNil() {
			raised = last.Interface().(error)
		}
		results = out[:len(out)-1]
	}

	switch len(results) {
	case 0:
		a.returned = nil
	case 1:
		a.returned = results[0].Interface()
	default:
		values := make([]any, len(results))
		for i, r := range results {
			values[i] = r.Interface()
		}
		a.returned = values
	}

	return raised, nil
}

func protectedCall(fn reflect.Value, args []reflect.Value, out *[]reflect.Value) (panicked any) {
	defer func() { panicked = recover() }()
	*out = fn.Call(args)
	return nil
}

// check compares the recorded return value against Returns and the
// sandbox's final state against Final. The Final check is closed-world:
// the key set must cover the sandbox's checkable fields exactly, with
// excess and missing names both reported. Values compare by value, not
// identity, in alphabetical key order, stopping at the first mismatch.
func (a *adapter) check() error {
	if a.test.Returns != nil {
		if !valueEqual(a.returned, a.test.Returns.value) {
			return fmt.Errorf("invalid returns=%s, expected %s",
				repr(a.returned), repr(a.test.Returns.value))
		}
	}

	if a.test.Final != nil {
		fields := a.attributeFields()
		actual := sortedKeys(fields)
		expected := sortedKeys(a.test.Final)

		if !slices.Equal(actual, expected) {
			return fmt.Errorf("invalid attributes set [%s], expected [%s], "+
				"excessive [%s], missed [%s]",
				strings.Join(actual, ", "), strings.Join(expected, ", "),
				strings.Join(subtract(actual, expected), ", "),
				strings.Join(subtract(expected, actual), ", "))
		}

		for _, name := range expected {
			got := fields[name].Interface()
			want := a.test.Final[name]
			if !valueEqual(got, want) {
				return fmt.Errorf("invalid attribute %s=%s, expected %s",
					name, shorten(repr(got), 100), shorten(repr(want), 100))
			}
		}
	}

	return nil
}

// attributeFields collects the sandbox fields subject to the closed-world
// final-state check: exported fields that are neither mock slots
// (func-typed) nor the injected logging seam.
func (a *adapter) attributeFields() map[string]reflect.Value {
	elem := a.sandbox.Elem()
	t := elem.Type()
	fields := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type.Kind() == reflect.Func || sf.Type == loggerType {
			continue
		}
		fields[sf.Name] = elem.Field(i)
	}
	return fields
}

// bindArgs conforms the receiver and the call arguments to a func's
// parameter list, handling variadic tails. Arity and type mismatches come
// back as *ArgumentError so they stay matchable as expected failures.
func bindArgs(t reflect.Type, recv reflect.Value, args []any) ([]reflect.Value, error) {
	if t.NumIn() == 0 {
		return nil, &ArgumentError{Reason: "func takes no receiver parameter"}
	}

	receiver := recv
	if !receiver.Type().AssignableTo(t.In(0)) {
		if receiver.Kind() == reflect.Ptr && receiver.Elem().Type().AssignableTo(t.In(0)) {
			receiver = receiver.Elem()
		} else {
			return nil, &ArgumentError{Reason: fmt.Sprintf(
				"receiver %s is not assignable to %s", recv.Type(), t.In(0))}
		}
	}

	want := t.NumIn() - 1
	if t.IsVariadic() {
		if len(args) < want-1 {
			return nil, &ArgumentError{Reason: fmt.Sprintf(
				"takes at least %d arguments (%d given)", want-1, len(args))}
		}
	} else if len(args) != want {
		return nil, &ArgumentError{Reason: fmt.Sprintf(
			"takes %d arguments (%d given)", want, len(args))}
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, receiver)
	for i, arg := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= want-1 {
			pt = t.In(t.NumIn() - 1).Elem()
		} else {
			pt = t.In(i + 1)
		}
		v, err := conform(arg, pt)
		if err != nil {
			return nil, &ArgumentError{Reason: fmt.Sprintf("argument %d: %s", i+1, err)}
		}
		in = append(in, v)
	}
	return in, nil
}

// conform turns a loosely-typed descriptor value into a reflect.Value of
// the wanted type. Only assignability and numeric widening are allowed; no
// other coercion happens.
func conform(value any, want reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", want)
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(want.Kind()) && v.Type().ConvertibleTo(want) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("%T is not assignable to %s", value, want)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// valueEqual compares by value, diving into unexported fields rather than
// failing on them.
func valueEqual(got, want any) bool {
	return cmp.Equal(got, want, cmp.Exporter(func(reflect.Type) bool { return true }))
}

func repr(v any) string {
	return fmt.Sprintf("%#v", v)
}

// shorten truncates a printable value past n characters, preserving the
// final character and the total length.
func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...%s (%d)", s[:n], s[len(s)-1:], len(s))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// subtract returns the members of a that are absent from b, preserving
// a's order.
func subtract(a, b []string) []string {
	ret := []string{}
	for _, s := range a {
		if !slices.Contains(b, s) {
			ret = append(ret, s)
		}
	}
	return ret
}
