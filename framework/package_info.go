// Package framework implements a micro test harness that exercises a single
// method of a single type in isolation.
//
// The general model is:
//
// 1. The caller constructs a MethodTest from a method expression (such as
// (*Accum).Add) and a suite: a map from test identifier to a declarative
// Descriptor saying what state the sandbox starts in, what arguments the
// method receives, and what return value, final state, error, and log
// messages are expected.
//
// 2. For each test the harness builds a fresh sandbox instance of the
// receiver type without running any real constructor, installs mocks and
// injected state, binds a recording logger through the type's logging seam,
// invokes the method with cloned arguments, and compares the outcome against
// the descriptor.
//
// 3. Results accumulate into an ordered Statement of Outcome records, one
// per test, from which the report formatters derive a pictogram bar, totals,
// an overall mark, and a printable CLI report.
//
// Suites run in a deterministic order: tests are grouped by the severity
// level encoded in the first letter of their identifier (invalid identifiers
// first, then X, E, W, I, S) and alphabetically within a group. Every run
// and every report observes this order.
package framework
