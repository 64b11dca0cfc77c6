package replayGuard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_WithinWindow(t *testing.T) {
	now := int64(1700000000)

	assert.True(t, Check(now, now, DefaultWindow))
	assert.True(t, Check(now-60, now, DefaultWindow))
	assert.True(t, Check(now+60, now, DefaultWindow))
}

func TestCheck_BoundaryInclusive(t *testing.T) {
	now := int64(1700000000)

	// Exactly 300s of skew in either direction is still acceptable.
	assert.True(t, Check(now-300, now, DefaultWindow))
	assert.True(t, Check(now+300, now, DefaultWindow))

	assert.False(t, Check(now-301, now, DefaultWindow))
	assert.False(t, Check(now+301, now, DefaultWindow))
}

func TestCheck_CustomWindow(t *testing.T) {
	now := int64(1700000000)
	window := 10 * time.Second

	assert.True(t, Check(now-10, now, window))
	assert.False(t, Check(now-11, now, window))
}
