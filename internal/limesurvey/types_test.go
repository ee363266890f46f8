package limesurvey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    IntString
		wantErr bool
	}{
		{"number", `42`, 42, false},
		{"string", `"42"`, 42, false},
		{"negative string", `"-7"`, -7, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"abc"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IntString
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYesNo(t *testing.T) {
	var v struct {
		Active YesNo `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"active": "Y"}`), &v))
	assert.True(t, v.Active.Bool())
	require.NoError(t, json.Unmarshal([]byte(`{"active": "N"}`), &v))
	assert.False(t, v.Active.Bool())

	b, err := json.Marshal(YesNo(true))
	require.NoError(t, err)
	assert.Equal(t, `"Y"`, string(b))
}
