package pocketcast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	type tTestCase struct {
		name     string
		raw      string
		wantZero bool
	}
	testCases := []tTestCase{
		{
			name:     "rfc3339",
			raw:      `"2024-03-01T10:00:00Z"`,
			wantZero: false,
		},
		{
			name:     "empty_string",
			raw:      `""`,
			wantZero: true,
		},
		{
			name:     "null",
			raw:      `null`,
			wantZero: true,
		},
		{
			name:     "garbage",
			raw:      `"YYYY-MM-DDTHH:mm:ssZ"`,
			wantZero: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var timestamp Timestamp
			require.NoError(t, json.Unmarshal([]byte(testCase.raw), &timestamp))
			assert.Equal(t, testCase.wantZero, timestamp.IsZero())
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	var zero Timestamp
	encoded, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(encoded))

	var parsed Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T10:00:00Z"`), &parsed))
	encoded, err = json.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:00:00Z"`, string(encoded))
}

func TestEpisodePlaying(t *testing.T) {
	assert.False(t, (&Episode{PlayingStatus: 0}).Playing())
	assert.False(t, (&Episode{PlayingStatus: PlayingStatusUnplayed}).Playing())
	assert.True(t, (&Episode{PlayingStatus: PlayingStatusInProgress}).Playing())
	assert.True(t, (&Episode{PlayingStatus: PlayingStatusPlayed}).Playing())
}

func TestAccountPremium(t *testing.T) {
	assert.True(t, (&Account{Paid: 1}).Premium())
	assert.False(t, (&Account{Paid: 0}).Premium())
}
