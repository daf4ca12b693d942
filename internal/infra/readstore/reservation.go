package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSQL = `
SELECT r.id, r.room_id, rm.number, r.primary_guest_id, r.secondary_guest_ids,
       r.check_in_date, r.check_out_date,
       r.status, r.nightly_rate_cents, r.headcount, r.payment_method,
       r.checked_in_at, r.checked_out_at, r.canceled_at, r.cancel_reason, r.canceled_by,
       r.created_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSQL+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	if err := s.loadEntries(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// FindActiveForRoom returns the reservation currently occupying the room, if
// any; active means non-terminal status with an effective interval spanning
// now.
func (s *ReservationReadStore) FindActiveForRoom(ctx context.Context, roomID uuid.UUID, now time.Time) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewSQL+`
 WHERE r.room_id = $1
   AND r.status IN ('pending', 'checked_in')
   AND r.stay @> $2::timestamptz
 ORDER BY r.check_in_date DESC
 LIMIT 1`, roomID, pgconv.TimeToPgtype(now))

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active reservation for room", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active reservation for room", err)
	}

	if err := s.loadEntries(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

const recentReservationsSQL = `
SELECT r.id, r.room_id, rm.number, r.primary_guest_id,
       r.check_in_date, r.check_out_date, r.status, r.nightly_rate_cents, r.created_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
ORDER BY r.check_in_date DESC, r.created_at DESC
LIMIT $1`

func (s *ReservationReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, recentReservationsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		item := &queries.ReservationListItem{}
		if err := rows.Scan(
			&item.ID, &item.RoomID, &item.RoomNumber, &item.PrimaryGuestID,
			&item.CheckInDate, &item.CheckOutDate, &item.Status, &item.NightlyRateCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

const entriesByReservationSQL = `
SELECT e.id, e.product_id, p.name, e.quantity, e.unit_price_cents, e.recorded_at
FROM consumption_entries e
JOIN products p ON p.id = e.product_id
WHERE e.reservation_id = $1
ORDER BY e.recorded_at`

func (s *ReservationReadStore) loadEntries(ctx context.Context, view *queries.ReservationView) error {
	rows, err := s.db.Query(ctx, entriesByReservationSQL, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load consumption entries", err)
	}
	defer rows.Close()

	for rows.Next() {
		entry := queries.ConsumptionEntryView{}
		if err := rows.Scan(
			&entry.ID, &entry.ProductID, &entry.ProductName,
			&entry.Quantity, &entry.UnitPriceCents, &entry.RecordedAt,
		); err != nil {
			return infra.WrapRepoErr("failed to scan consumption entry", err)
		}
		entry.TotalCents = int64(entry.Quantity) * entry.UnitPriceCents
		view.Entries = append(view.Entries, entry)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	view := &queries.ReservationView{}
	var cancelReason string

	err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomNumber, &view.PrimaryGuestID, &view.SecondaryGuestIDs,
		&view.CheckInDate, &view.CheckOutDate,
		&view.Status, &view.NightlyRateCents, &view.Headcount, &view.PaymentMethod,
		&view.CheckedInAt, &view.CheckedOutAt, &view.CanceledAt, &cancelReason, &view.CanceledBy,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelReason != "" {
		view.CancelReason = &cancelReason
	}
	return view, nil
}
