package dates

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("should zero out the time of day", func(t *testing.T) {
		in := time.Date(2024, 3, 15, 17, 42, 9, 123456, time.UTC)

		got := Normalize(in)

		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("should keep an already normalized day unchanged", func(t *testing.T) {
		in := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, in, Normalize(in))
	})
}

func TestRandomSurpriseDay(t *testing.T) {
	now := time.Date(2024, 1, 10, 13, 30, 0, 0, time.UTC)
	start := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)

	t.Run("should stay within bounds for any draw", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))

		for i := 0; i < 1000; i++ {
			day := RandomSurpriseDay(now, r.Float64())

			assert.False(t, day.Before(start), "day %v before window start %v", day, start)
			assert.False(t, day.After(end), "day %v after window end %v", day, end)
		}
	})

	t.Run("should be deterministic for a fixed draw", func(t *testing.T) {
		first := RandomSurpriseDay(now, 0.37)
		second := RandomSurpriseDay(now, 0.37)

		assert.Equal(t, first, second)
	})

	t.Run("should return the window end for draw zero", func(t *testing.T) {
		assert.Equal(t, end, RandomSurpriseDay(now, 0))
	})

	t.Run("should be day granular", func(t *testing.T) {
		day := RandomSurpriseDay(now, 0.5)

		assert.Equal(t, day, Normalize(day))
	})
}

func TestGenerate(t *testing.T) {
	now := time.Date(2024, 6, 3, 8, 15, 0, 0, time.UTC)

	surpriseDay, resetDay := Generate(now, 0.5)

	t.Run("reset day is exactly one year after normalized now", func(t *testing.T) {
		require.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), resetDay)
	})

	t.Run("surprise day falls before the reset day", func(t *testing.T) {
		assert.True(t, surpriseDay.Before(resetDay))
	})

	t.Run("leap years come out of timestamp arithmetic", func(t *testing.T) {
		_, reset := Generate(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), 0.1)

		// Go normalizes Feb 29 + 1 year to Mar 1.
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), reset)
	})
}
