package model_test

import (
	"testing"

	"ewintr.nl/videonotes/model"
	"github.com/stretchr/testify/assert"
)

func TestStatusPrecedes(t *testing.T) {
	for _, tc := range []struct {
		name string
		from model.Status
		to   model.Status
		exp  bool
	}{
		{name: "idle to validating", from: model.StatusIdle, to: model.StatusValidating, exp: true},
		{name: "skip a stage", from: model.StatusExtracting, to: model.StatusSummarizing, exp: true},
		{name: "formatting to completed", from: model.StatusFormatting, to: model.StatusCompleted, exp: true},
		{name: "backward", from: model.StatusSummarizing, to: model.StatusExtracting, exp: false},
		{name: "repeat", from: model.StatusAnalyzing, to: model.StatusAnalyzing, exp: false},
		{name: "error from any stage", from: model.StatusValidating, to: model.StatusError, exp: true},
		{name: "after completed", from: model.StatusCompleted, to: model.StatusError, exp: false},
		{name: "after error", from: model.StatusError, to: model.StatusValidating, exp: false},
		{name: "unknown", from: model.StatusIdle, to: model.Status("paused"), exp: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, tc.from.Precedes(tc.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.Terminal())
	assert.True(t, model.StatusError.Terminal())
	assert.False(t, model.StatusFormatting.Terminal())
	assert.False(t, model.StatusIdle.Terminal())
}

func TestDetailLevel(t *testing.T) {
	assert.Equal(t, model.DetailDetailed, model.DetailLevel("").Normalize())
	assert.Equal(t, model.DetailConcise, model.DetailConcise.Normalize())
	assert.True(t, model.DetailComprehensive.Valid())
	assert.False(t, model.DetailLevel("").Valid())
	assert.False(t, model.DetailLevel("Detailed").Valid())
}
