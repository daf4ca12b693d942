package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const listRoomsSQL = `
SELECT r.id, r.number, r.room_type, r.base_price_cents, r.clean,
       EXISTS (
           SELECT 1 FROM reservations b
           WHERE b.room_id = r.id
             AND b.status IN ('pending', 'checked_in')
             AND b.stay @> $1::timestamptz
       ) AS occupied
FROM rooms r
ORDER BY r.number`

// ListWithOccupancy derives the occupied flag from active reservations whose
// effective stay interval contains now; nothing stored can go stale.
func (s *RoomReadStore) ListWithOccupancy(ctx context.Context, now time.Time) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, listRoomsSQL, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view := &queries.RoomView{}
		if err := rows.Scan(&view.ID, &view.Number, &view.RoomType, &view.BasePriceCents, &view.Clean, &view.Occupied); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}

const availableRoomsSQL = `
SELECT r.id, r.number, r.room_type, r.base_price_cents, r.clean,
       EXISTS (
           SELECT 1 FROM reservations o
           WHERE o.room_id = r.id
             AND o.status IN ('pending', 'checked_in')
             AND o.stay @> $3::timestamptz
       ) AS occupied
FROM rooms r
WHERE NOT EXISTS (
    SELECT 1 FROM reservations b
    WHERE b.room_id = r.id
      AND b.status IN ('pending', 'checked_in')
      AND b.stay && tstzrange($1, $2, '[)')
)
ORDER BY r.number`

// FindAvailable is the complement query: all rooms minus those with at least
// one active reservation conflicting with the requested effective interval.
// A room free for a future range can still be occupied today, so the occupied
// flag is derived against now independently of the range.
func (s *RoomReadStore) FindAvailable(ctx context.Context, stay reservation.StayPeriod, now time.Time) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, availableRoomsSQL,
		pgconv.TimeToPgtype(stay.EffectiveStart()),
		pgconv.TimeToPgtype(stay.EffectiveEnd()),
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view := &queries.RoomView{}
		if err := rows.Scan(&view.ID, &view.Number, &view.RoomType, &view.BasePriceCents, &view.Clean, &view.Occupied); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}

const roomAvailableSQL = `
SELECT NOT EXISTS (
    SELECT 1 FROM reservations b
    WHERE b.room_id = $1
      AND b.status IN ('pending', 'checked_in')
      AND b.stay && tstzrange($2, $3, '[)')
      AND ($4::uuid IS NULL OR b.id <> $4)
)`

func (s *RoomReadStore) CheckAvailable(ctx context.Context, roomID uuid.UUID, stay reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error) {
	return s.IsRoomAvailable(ctx, s.db, roomID, stay, excludeReservationID)
}

// IsRoomAvailable takes an explicit dbtx so the create transaction can run
// the same check against its own snapshot.
func (s *RoomReadStore) IsRoomAvailable(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, stay reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error) {
	var available bool
	err := dbtx.QueryRow(ctx, roomAvailableSQL,
		roomID,
		pgconv.TimeToPgtype(stay.EffectiveStart()),
		pgconv.TimeToPgtype(stay.EffectiveEnd()),
		pgconv.UUIDPtrToPgtype(excludeReservationID),
	).Scan(&available)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room availability", err)
	}

	return available, nil
}

const cleaningsByRoomSQL = `
SELECT id, room_id, reservation_id, kind, notes, performed_by, performed_at
FROM cleaning_records
WHERE room_id = $1
ORDER BY performed_at DESC`

func (s *RoomReadStore) FindCleaningsByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.CleaningRecordView, error) {
	rows, err := s.db.Query(ctx, cleaningsByRoomSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cleaning records", err)
	}
	defer rows.Close()

	var result []*queries.CleaningRecordView
	for rows.Next() {
		view := &queries.CleaningRecordView{}
		if err := rows.Scan(&view.ID, &view.RoomID, &view.ReservationID, &view.Kind, &view.Notes, &view.PerformedBy, &view.PerformedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cleaning record", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cleaning records", err)
	}

	return result, nil
}
