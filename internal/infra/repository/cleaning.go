package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/cleaning"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
)

type CleaningRepository struct{}

func NewCleaningRepository() *CleaningRepository {
	return &CleaningRepository{}
}

const createCleaningRecordSQL = `
INSERT INTO cleaning_records (
    id, room_id, reservation_id, kind, notes, performed_by, performed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *CleaningRepository) Create(ctx context.Context, tx db.DBTX, rec *cleaning.Record) error {
	_, err := tx.Exec(ctx, createCleaningRecordSQL,
		rec.ID(),
		rec.RoomID(),
		pgconv.UUIDPtrToPgtype(rec.ReservationID()),
		rec.Kind().String(),
		rec.Notes(),
		rec.PerformedBy(),
		pgconv.TimeToPgtype(rec.PerformedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create cleaning record", err, classifyPgErr(err))
	}

	return nil
}
