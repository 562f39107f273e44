package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func sampleStatement() Statement {
	return Statement{
		{TID: "X001", Mark: Crashed, Msg: ldvalue.NewOptionalString("bad descriptor")},
		{TID: "E001", Mark: Failed, Msg: ldvalue.NewOptionalString("wrong value")},
		{TID: "I001", Mark: Succeeded},
		{TID: "S001", Mark: Skipped, Msg: ldvalue.NewOptionalString("later")},
		{TID: "S002", Mark: Succeeded},
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "#!.-.", sampleStatement().Bar())
	assert.Equal(t, "", Statement{}.Bar())
}

func TestFilterBySeverity(t *testing.T) {
	statement := sampleStatement()

	assert.Len(t, statement.Filter(Succeeded), 5)
	assert.Equal(t, Statement{
		{TID: "X001", Mark: Crashed, Msg: ldvalue.NewOptionalString("bad descriptor")},
		{TID: "E001", Mark: Failed, Msg: ldvalue.NewOptionalString("wrong value")},
		{TID: "S001", Mark: Skipped, Msg: ldvalue.NewOptionalString("later")},
	}, statement.Filter(Skipped))
	assert.Len(t, statement.Filter(Crashed), 1)
}

func TestTotalsOrderedBySeverity(t *testing.T) {
	totals := sampleStatement().Totals(Succeeded, false)
	assert.Equal(t, []Total{
		{Mark: Crashed, Verb: "crashed", Num: 1},
		{Mark: Failed, Verb: "failed", Num: 1},
		{Mark: Skipped, Verb: "skipped", Num: 1},
		{Mark: Succeeded, Verb: "succeeded", Num: 2},
	}, totals)
}

func TestTotalsOmitsZerosUnlessRequested(t *testing.T) {
	statement := Statement{
		{TID: "S001", Mark: Succeeded},
		{TID: "S002", Mark: Skipped},
	}

	assert.Equal(t, []Total{
		{Mark: Skipped, Verb: "skipped", Num: 1},
		{Mark: Succeeded, Verb: "succeeded", Num: 1},
	}, statement.Totals(Succeeded, false))

	assert.Equal(t, []Total{
		{Mark: Crashed, Verb: "crashed", Num: 0},
		{Mark: Failed, Verb: "failed", Num: 0},
		{Mark: Skipped, Verb: "skipped", Num: 1},
	}, statement.Totals(Skipped, true))
}

func TestOverallMark(t *testing.T) {
	assert.Equal(t, Crashed, sampleStatement().OverallMark())
	assert.Equal(t, Succeeded, Statement{{TID: "S", Mark: Succeeded}}.OverallMark())
	assert.Equal(t, Skipped, Statement{
		{TID: "S1", Mark: Succeeded},
		{TID: "S2", Mark: Skipped},
	}.OverallMark())
}

func TestMarkPictsAndVerbs(t *testing.T) {
	assert.Equal(t, "#", Crashed.Pict())
	assert.Equal(t, "!", Failed.Pict())
	assert.Equal(t, "-", Skipped.Pict())
	assert.Equal(t, ".", Succeeded.Pict())
	assert.Equal(t, "crashed", Crashed.Verb())
	assert.Equal(t, "succeeded", Succeeded.String())
}
