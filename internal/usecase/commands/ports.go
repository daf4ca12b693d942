package commands

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/cleaning"
	"hotel-frontdesk/internal/domain/consumption"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra/db"

	"github.com/google/uuid"
)

// TxRunner runs fn inside one transaction; fn's writes either all commit or
// all roll back. Every command is exactly one such unit.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateState(ctx context.Context, tx db.DBTX, res *reservation.Reservation, now time.Time) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error)
	SetClean(ctx context.Context, tx db.DBTX, id uuid.UUID, clean bool, now time.Time) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ProductSnapshot, error)
}

type ConsumptionRepository interface {
	Create(ctx context.Context, tx db.DBTX, entry *consumption.Entry) error
}

type CleaningRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *cleaning.Record) error
}

// AvailabilityReader answers the overlap question inside the create
// transaction; the exclusion constraint on (room_id, stay) remains the final
// arbiter for concurrent creates.
type AvailabilityReader interface {
	IsRoomAvailable(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, stay reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error)
}

// AuditSink is invoked once per successful mutation, after the primary
// transaction commits. Its failure never affects the mutation's outcome.
type AuditSink interface {
	Log(ctx context.Context, entry AuditEntry) error
}

type AuditEntry struct {
	ActorName   string
	Action      string
	EntityTable string
	Details     string
	OccurredAt  time.Time
}

// Write-side snapshot of an external catalog record.
type ProductSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
}
