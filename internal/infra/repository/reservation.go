package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (
    id, room_id, primary_guest_id, secondary_guest_ids,
    check_in_date, check_out_date, stay,
    status, nightly_rate_cents, headcount, payment_method,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, tstzrange($7, $8, '[)'),
    $9, $10, $11, $12,
    $13, $13
)`

// Create inserts a new reservation. The stay column carries the effective
// interval, so the exclusion constraint on (room_id, stay) arbitrates
// concurrent creates for overlapping ranges; a violation surfaces as
// KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	stay := res.Stay()
	_, err := tx.Exec(ctx, createReservationSQL,
		res.ID(),
		res.RoomID(),
		res.PrimaryGuestID(),
		res.SecondaryGuestIDs(),
		pgconv.DateToPgtype(stay.CheckInDate()),
		pgconv.DateToPgtype(stay.CheckOutDate()),
		pgconv.TimeToPgtype(stay.EffectiveStart()),
		pgconv.TimeToPgtype(stay.EffectiveEnd()),
		res.Status().String(),
		res.NightlyRate().Cents(),
		res.Headcount(),
		res.PaymentMethod().String(),
		pgconv.TimeToPgtype(res.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, classifyPgErr(err))
	}

	return nil
}

const findReservationByIDSQL = `
SELECT id, room_id, primary_guest_id, secondary_guest_ids,
       check_in_date, check_out_date,
       status, nightly_rate_cents, headcount, payment_method,
       checked_in_at, checked_out_at, canceled_at, cancel_reason, canceled_by,
       created_at
FROM reservations
WHERE id = $1`

func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, roomID, primaryGuestID uuid.UUID
		secondaryGuestIDs             []uuid.UUID
		checkInDate, checkOutDate     time.Time
		status                        string
		nightlyRateCents              int64
		headcount                     int
		paymentMethod                 string
		checkedInAt, checkedOutAt     *time.Time
		canceledAt                    *time.Time
		cancelReason                  string
		canceledBy                    *uuid.UUID
		createdAt                     time.Time
	)

	err := dbtx.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&resID, &roomID, &primaryGuestID, &secondaryGuestIDs,
		&checkInDate, &checkOutDate,
		&status, &nightlyRateCents, &headcount, &paymentMethod,
		&checkedInAt, &checkedOutAt, &canceledAt, &cancelReason, &canceledBy,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	stay, err := reservation.NewStayPeriod(checkInDate, checkOutDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid stay period", err)
	}

	return reservation.ReconstructReservation(
		resID, roomID, primaryGuestID,
		secondaryGuestIDs,
		stay,
		reservation.Status(status),
		reservation.NewMoney(nightlyRateCents),
		headcount,
		reservation.PaymentMethod(paymentMethod),
		checkedInAt, checkedOutAt, canceledAt,
		cancelReason,
		canceledBy,
		createdAt,
	), nil
}

const updateReservationStateSQL = `
UPDATE reservations
SET status = $2,
    checked_in_at = $3,
    checked_out_at = $4,
    canceled_at = $5,
    cancel_reason = $6,
    canceled_by = $7,
    updated_at = $8
WHERE id = $1`

// UpdateState persists the lifecycle fields after a domain transition.
func (r *ReservationRepository) UpdateState(ctx context.Context, tx db.DBTX, res *reservation.Reservation, now time.Time) error {
	tag, err := tx.Exec(ctx, updateReservationStateSQL,
		res.ID(),
		res.Status().String(),
		pgconv.TimePtrToPgtype(res.CheckedInAt()),
		pgconv.TimePtrToPgtype(res.CheckedOutAt()),
		pgconv.TimePtrToPgtype(res.CanceledAt()),
		res.CancelReason(),
		pgconv.UUIDPtrToPgtype(res.CanceledBy()),
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation state", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
