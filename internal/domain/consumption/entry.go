package consumption

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
)

// Entry is an append-only add-on purchase attributed to a reservation. The
// unit price is snapshotted from the product catalog at recording time and is
// immutable thereafter; corrections are modeled as additional signed entries.
type Entry struct {
	id             uuid.UUID
	reservationID  uuid.UUID
	productID      uuid.UUID
	quantity       int
	unitPriceCents int64
	recordedAt     time.Time
}

func NewEntry(reservationID, productID uuid.UUID, quantity int, unitPriceCents int64, now time.Time) (*Entry, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return nil, ErrNegativeUnitPrice
	}

	return &Entry{
		id:             uuid.New(),
		reservationID:  reservationID,
		productID:      productID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		recordedAt:     now,
	}, nil
}

func ReconstructEntry(id, reservationID, productID uuid.UUID, quantity int, unitPriceCents int64, recordedAt time.Time) *Entry {
	return &Entry{
		id:             id,
		reservationID:  reservationID,
		productID:      productID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		recordedAt:     recordedAt,
	}
}

func (e *Entry) TotalCents() int64 {
	return int64(e.quantity) * e.unitPriceCents
}

func (e *Entry) ID() uuid.UUID            { return e.id }
func (e *Entry) ReservationID() uuid.UUID { return e.reservationID }
func (e *Entry) ProductID() uuid.UUID     { return e.productID }
func (e *Entry) Quantity() int            { return e.quantity }
func (e *Entry) UnitPriceCents() int64    { return e.unitPriceCents }
func (e *Entry) RecordedAt() time.Time    { return e.recordedAt }
