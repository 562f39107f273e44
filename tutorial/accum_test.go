package tutorial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/xoiss/go-utest/framework"
	"github.com/xoiss/go-utest/logging"
)

// The suite mirrors the worked example from the package documentation.
func TestAddSuite(t *testing.T) {
	test, err := framework.NewMethodTest((*Accum).Add, framework.Suite{
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
	require.NoError(t, err)

	require.NoError(t, test.Run(framework.RunParams{}))

	statement := test.Statement()
	assert.Equal(t, "..-.", statement.Bar())
	assert.Equal(t, framework.Skipped, statement.OverallMark())
}

func TestAccumOutsideTheHarness(t *testing.T) {
	recorder := &logging.Recorder{}
	accum := NewAccum("Jhon", recorder)

	n, err := accum.Add(4)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 4.0, accum.Average())
	assert.Equal(t, []string{logging.TagInfo("add: x=4")}, recorder.Messages())

	_, err = accum.Add(7)
	require.Error(t, err)
	assert.Equal(t, "grade=7 is out of range", err.Error())
}
