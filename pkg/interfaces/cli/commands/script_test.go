package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	content := `payment: ecocash
steps:
  - action: ADD
    item: "0042"
  - action: discount
    percent: 12.5
  - action: customer
    customer: ~
  - action: resume
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	script, err := LoadScript(path)
	require.NoError(t, err)

	assert.Equal(t, "ecocash", script.Payment)
	require.Len(t, script.Steps, 4)
	assert.Equal(t, actionAdd, script.Steps[0].Action)
	assert.Equal(t, scalar("0042"), script.Steps[0].Item)
	assert.Equal(t, int64(1), script.Steps[0].Quantity)
	assert.Equal(t, scalar("12.5"), script.Steps[1].Percent)
	assert.Equal(t, scalar(""), script.Steps[2].Customer)
	assert.Equal(t, scalar(lastSavedCart), script.Steps[3].Cart)
}

func TestScriptValidate(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want string
	}{
		{"add without item", Step{Action: "add"}, "step 1: add requires an item"},
		{"set without item", Step{Action: "set", Quantity: 2}, "step 1: set requires an item"},
		{"discount without percent", Step{Action: "discount"}, "step 1: discount requires a percent"},
		{"missing action", Step{}, "step 1: missing action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Script{Steps: []Step{tt.step}}
			assert.EqualError(t, s.Validate(), tt.want)
		})
	}
}

func TestLoadScript_RejectsNonScalarIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - action: add\n    item: [1, 2]\n"), 0o644))

	_, err := LoadScript(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a scalar value")
}
