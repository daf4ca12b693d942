package reservation

import (
	"errors"
	"fmt"
	"time"
)

// Standard hotel check-in and check-out hours. A date-only booking range
// [checkIn, checkOut) becomes the half-open timestamp interval
// [checkIn 14:00, checkOut 12:00), so a stay ending on day D never conflicts
// with one starting on day D.
const (
	CheckInHour  = 14
	CheckOutHour = 12
)

var ErrInvalidStayPeriod = errors.New("check-out date must be after check-in date")

type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}

	return StayPeriod{
		checkIn:  in,
		checkOut: out,
	}, nil
}

func (s StayPeriod) CheckInDate() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOutDate() time.Time {
	return s.checkOut
}

func (s StayPeriod) EffectiveStart() time.Time {
	return s.checkIn.Add(CheckInHour * time.Hour)
}

func (s StayPeriod) EffectiveEnd() time.Time {
	return s.checkOut.Add(CheckOutHour * time.Hour)
}

// Overlaps tests the effective intervals under strict inequality:
// existing.start < candidate.end AND existing.end > candidate.start.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.EffectiveStart().Before(other.EffectiveEnd()) &&
		s.EffectiveEnd().After(other.EffectiveStart())
}

func (s StayPeriod) Contains(t time.Time) bool {
	return !t.Before(s.EffectiveStart()) && t.Before(s.EffectiveEnd())
}

func (s StayPeriod) Nights() float64 {
	return s.checkOut.Sub(s.checkIn).Hours() / 24
}

func (s StayPeriod) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)",
		s.EffectiveStart().Format(time.RFC3339),
		s.EffectiveEnd().Format(time.RFC3339))
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulNights(nights float64) Money {
	return Money{cents: int64(nights * float64(m.cents))}
}
