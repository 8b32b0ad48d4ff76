package pocketcast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)

	account, err := client.Account(context.Background())
	require.NoError(t, err)

	assert.True(t, account.Premium())
	assert.Equal(t, "web", account.Platform)
	assert.Equal(t, "2027-01-01T00:00:00Z", account.ExpiryDate)
	assert.True(t, account.AutoRenewing)
	assert.Equal(t, "https://example.com/cancel", account.CancelURL)
	assert.Equal(t, "https://example.com/update", account.UpdateURL)
	assert.Equal(t, "monthly", account.Frequency)
}

func TestStats(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(987654), stats["timeListened"])
	assert.Equal(t, "2019-06-01T00:00:00Z", stats["timesStartedAt"])
}
