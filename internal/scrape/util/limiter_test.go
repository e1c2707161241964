package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiterIndependentHosts(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	// First request per host consumes the burst without blocking.
	start := time.Now()
	require.NoError(t, hl.WaitURL(ctx, "https://a.example.com/job/1"))
	require.NoError(t, hl.WaitURL(ctx, "https://b.example.com/job/1"))
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestHostLimiterThrottlesSameHost(t *testing.T) {
	hl := NewHostLimiter(1000, 1)
	ctx := context.Background()

	require.NoError(t, hl.WaitURL(ctx, "https://a.example.com/job/1"))

	start := time.Now()
	require.NoError(t, hl.WaitURL(ctx, "https://a.example.com/job/2"))
	// Second hit waits for the next token.
	assert.Greater(t, time.Since(start), 500*time.Microsecond)
}

func TestHostLimiterContextCancel(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, hl.WaitURL(ctx, "https://a.example.com/x"))
	assert.Error(t, hl.WaitURL(ctx, "https://a.example.com/x"))
}

func TestHostLimiterUnparseableURL(t *testing.T) {
	hl := NewHostLimiter(10, 5)
	assert.NoError(t, hl.WaitURL(context.Background(), "::not a url::"))
}
