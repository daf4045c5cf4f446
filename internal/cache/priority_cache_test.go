package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/stretchr/testify/require"
)

func staticClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func TestPriorityCache_LazyFill(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewPriorityCache(2 * time.Hour)
	c.now = staticClock(&now)

	calls := 0
	load := func() ([]models.Priority, error) {
		calls++
		return []models.Priority{{ID: 1, Level: "High"}}, nil
	}

	values, err := c.Get(load)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, 1, calls)

	// Second access inside the window is a hit
	_, err = c.Get(load)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestPriorityCache_StalenessBoundedByWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewPriorityCache(2 * time.Hour)
	c.now = staticClock(&now)

	result := []models.Priority{{ID: 1, Level: "High"}}
	load := func() ([]models.Priority, error) { return result, nil }

	first, err := c.Get(load)
	require.NoError(t, err)

	// The underlying data changes, but the window has not elapsed
	result = []models.Priority{{ID: 1, Level: "High"}, {ID: 2, Level: "Low"}}
	now = now.Add(time.Hour)

	second, err := c.Get(load)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Past the window the new data becomes visible
	now = now.Add(3 * time.Hour)

	third, err := c.Get(load)
	require.NoError(t, err)
	require.Len(t, third, 2)
}

func TestPriorityCache_SlidingExpiration(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewPriorityCache(2 * time.Hour)
	c.now = staticClock(&now)

	calls := 0
	load := func() ([]models.Priority, error) {
		calls++
		return []models.Priority{{ID: 1, Level: "High"}}, nil
	}

	_, err := c.Get(load)
	require.NoError(t, err)

	// Each access inside the window resets the window, so repeated reads
	// spaced 1.5h apart never expire even past the original 2h mark.
	for i := 0; i < 4; i++ {
		now = now.Add(90 * time.Minute)
		_, err = c.Get(load)
		require.NoError(t, err)
	}
	require.Equal(t, 1, calls)

	// A gap longer than the window forces a reload
	now = now.Add(2*time.Hour + time.Minute)
	_, err = c.Get(load)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestPriorityCache_LoadErrorNotCached(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewPriorityCache(2 * time.Hour)
	c.now = staticClock(&now)

	failing := errors.New("store unavailable")
	_, err := c.Get(func() ([]models.Priority, error) { return nil, failing })
	require.ErrorIs(t, err, failing)

	// The next access retries the load
	values, err := c.Get(func() ([]models.Priority, error) {
		return []models.Priority{{ID: 1, Level: "High"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, values, 1)
}
