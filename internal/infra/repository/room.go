package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

const findRoomByIDSQL = `
SELECT id, number, room_type, base_price_cents, clean, created_at, updated_at
FROM rooms
WHERE id = $1`

func (r *RoomRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*room.Room, error) {
	var (
		roomID               uuid.UUID
		number, roomType     string
		basePriceCents       int64
		clean                bool
		createdAt, updatedAt time.Time
	)

	err := dbtx.QueryRow(ctx, findRoomByIDSQL, id).Scan(
		&roomID, &number, &roomType, &basePriceCents, &clean, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return room.ReconstructRoom(roomID, number, roomType, basePriceCents, clean, createdAt, updatedAt), nil
}

const setRoomCleanSQL = `
UPDATE rooms
SET clean = $2, updated_at = $3
WHERE id = $1`

// SetClean is the only write path for the clean flag; it is called from the
// check-out transaction (clean=false) and from cleaning recording (clean=true).
func (r *RoomRepository) SetClean(ctx context.Context, tx db.DBTX, id uuid.UUID, clean bool, now time.Time) error {
	tag, err := tx.Exec(ctx, setRoomCleanSQL, id, clean, pgconv.TimeToPgtype(now))
	if err != nil {
		return infra.WrapRepoErr("failed to update room clean flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
