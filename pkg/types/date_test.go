package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-01-01",
			want:  NewDate(2024, time.January, 1),
		},
		{
			name:  "valid leap day",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "empty string rejected",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong separator rejected",
			input:   "2024/01/01",
			wantErr: true,
		},
		{
			name:    "out of range day rejected",
			input:   "2023-02-30",
			wantErr: true,
		},
		{
			name:    "free text rejected",
			input:   "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2024, time.March, 1)
	later := NewDate(2024, time.March, 2)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
	assert.True(t, earlier.Equal(NewDate(2024, time.March, 1)))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.December, 31)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-31"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestDateUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a string", input: `42`},
		{name: "bad format", input: `"31-12-2025"`},
		{name: "empty string", input: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestTodayHasNoTimeComponent(t *testing.T) {
	today := Today()
	parsed, err := ParseDate(today.String())
	require.NoError(t, err)
	assert.True(t, today.Equal(parsed))
}
