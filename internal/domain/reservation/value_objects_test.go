//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) reservation.StayPeriod {
	t.Helper()
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestStayPeriod(t *testing.T) {
	t.Run("effective interval uses hotel hours", func(t *testing.T) {
		stay := mustStay(t, date(2025, 3, 10), date(2025, 3, 13))

		assert.Equal(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), stay.EffectiveStart())
		assert.Equal(t, time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC), stay.EffectiveEnd())
	})

	t.Run("time-of-day components are truncated", func(t *testing.T) {
		stay, err := reservation.NewStayPeriod(
			time.Date(2025, 3, 10, 23, 45, 0, 0, time.UTC),
			time.Date(2025, 3, 13, 1, 30, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		assert.Equal(t, date(2025, 3, 10), stay.CheckInDate())
		assert.Equal(t, date(2025, 3, 13), stay.CheckOutDate())
	})

	t.Run("equal dates are rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(date(2025, 3, 10), date(2025, 3, 10))
		require.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("inverted dates are rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(date(2025, 3, 13), date(2025, 3, 10))
		require.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("overlapping stays conflict", func(t *testing.T) {
		existing := mustStay(t, date(2025, 3, 10), date(2025, 3, 13))
		candidate := mustStay(t, date(2025, 3, 12), date(2025, 3, 15))

		assert.True(t, existing.Overlaps(candidate))
		assert.True(t, candidate.Overlaps(existing))
	})

	t.Run("back-to-back stays never conflict", func(t *testing.T) {
		// Departure at 12:00 on the 13th, arrival at 14:00 the same day.
		departing := mustStay(t, date(2025, 3, 10), date(2025, 3, 13))
		arriving := mustStay(t, date(2025, 3, 13), date(2025, 3, 15))

		assert.False(t, departing.Overlaps(arriving))
		assert.False(t, arriving.Overlaps(departing))
	})

	t.Run("contained stay conflicts", func(t *testing.T) {
		outer := mustStay(t, date(2025, 3, 10), date(2025, 3, 20))
		inner := mustStay(t, date(2025, 3, 12), date(2025, 3, 14))

		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})

	t.Run("contains is half-open", func(t *testing.T) {
		stay := mustStay(t, date(2025, 3, 10), date(2025, 3, 13))

		assert.True(t, stay.Contains(stay.EffectiveStart()))
		assert.True(t, stay.Contains(time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)))
		assert.False(t, stay.Contains(stay.EffectiveEnd()))
		assert.False(t, stay.Contains(time.Date(2025, 3, 10, 13, 59, 59, 0, time.UTC)))
	})

	t.Run("nights counts calendar nights", func(t *testing.T) {
		assert.Equal(t, 3.0, mustStay(t, date(2025, 3, 10), date(2025, 3, 13)).Nights())
		assert.Equal(t, 1.0, mustStay(t, date(2025, 3, 10), date(2025, 3, 11)).Nights())
	})
}

func TestMoney(t *testing.T) {
	t.Run("multiply by nights", func(t *testing.T) {
		rate := reservation.NewMoney(25000)
		assert.Equal(t, int64(75000), rate.MulNights(3).Cents())
	})

	t.Run("add", func(t *testing.T) {
		total := reservation.NewMoney(75000).Add(reservation.NewMoney(1200))
		assert.Equal(t, int64(76200), total.Cents())
	})
}
