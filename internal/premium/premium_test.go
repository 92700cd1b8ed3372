package premium

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextExpiryExtendsFromCurrentExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := now.Add(10 * 24 * time.Hour)

	got := NextExpiry(now, &current, 1)

	assert.Equal(t, current.Add(Month), got)
	assert.NotEqual(t, now.Add(Month), got)
}

func TestNextExpiryStartsFreshAfterExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-5 * 24 * time.Hour)

	got := NextExpiry(now, &expired, 1)

	assert.Equal(t, now.Add(Month), got)
}

func TestNextExpiryStartsFreshWithoutExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := NextExpiry(now, nil, 3)

	assert.Equal(t, now.Add(3*Month), got)
}

func TestNextExpiryMonthIsThirtyDays(t *testing.T) {
	now := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	got := NextExpiry(now, nil, 12)

	assert.Equal(t, now.Add(360*24*time.Hour), got)
}

func TestActive(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.True(t, Active(now, false, &future))
	assert.False(t, Active(now, true, &past))
	assert.True(t, Active(now, true, nil))
	assert.False(t, Active(now, false, nil))
}
