package reservation

import "hotel-frontdesk/internal/domain/consumption"

// Bill is a pure derivation over a reservation and its consumption entries.
// It uses only the snapshots fixed at creation/recording time, so recomputing
// it after catalog price edits always yields the same totals.
type Bill struct {
	Nights                float64
	NightlyRateCents      int64
	LodgingTotalCents     int64
	ConsumptionTotalCents int64
	GrandTotalCents       int64
}

func ComputeBill(r *Reservation, entries []*consumption.Entry) Bill {
	var consumptionTotal int64
	for _, e := range entries {
		consumptionTotal += e.TotalCents()
	}
	return ComputeBillFor(r.Stay(), r.NightlyRate(), consumptionTotal)
}

// ComputeBillFor derives a bill from already-aggregated values; the read side
// uses it when the consumption total comes straight from a query.
func ComputeBillFor(stay StayPeriod, nightlyRate Money, consumptionTotalCents int64) Bill {
	nights := stay.Nights()
	lodging := nightlyRate.MulNights(nights)

	return Bill{
		Nights:                nights,
		NightlyRateCents:      nightlyRate.Cents(),
		LodgingTotalCents:     lodging.Cents(),
		ConsumptionTotalCents: consumptionTotalCents,
		GrandTotalCents:       lodging.Cents() + consumptionTotalCents,
	}
}
