package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionScopedEvictsIdleEntries(t *testing.T) {
	clock := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := newSessionScoped[int](time.Hour)
	s.now = func() time.Time { return clock }

	calls := 0
	mk := func() int { calls++; return calls }

	assert.Equal(t, 1, s.get("a", mk))
	assert.Equal(t, 2, s.get("b", mk))
	assert.Equal(t, 1, s.get("a", mk), "existing entry is reused")
	assert.Equal(t, 2, s.len())

	// "a" stays warm; "b" goes idle past the TTL and is swept.
	clock = clock.Add(45 * time.Minute)
	assert.Equal(t, 1, s.get("a", mk))
	clock = clock.Add(45 * time.Minute)
	assert.Equal(t, 1, s.get("a", mk))
	assert.Equal(t, 1, s.len(), "idle session state is evicted")

	assert.Equal(t, 3, s.get("b", mk), "evicted session starts fresh")
}
