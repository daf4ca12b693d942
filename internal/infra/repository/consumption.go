package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/consumption"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
)

type ConsumptionRepository struct{}

func NewConsumptionRepository() *ConsumptionRepository {
	return &ConsumptionRepository{}
}

const createConsumptionEntrySQL = `
INSERT INTO consumption_entries (
    id, reservation_id, product_id, quantity, unit_price_cents, recorded_at
) VALUES ($1, $2, $3, $4, $5, $6)`

func (r *ConsumptionRepository) Create(ctx context.Context, tx db.DBTX, entry *consumption.Entry) error {
	_, err := tx.Exec(ctx, createConsumptionEntrySQL,
		entry.ID(),
		entry.ReservationID(),
		entry.ProductID(),
		entry.Quantity(),
		entry.UnitPriceCents(),
		pgconv.TimeToPgtype(entry.RecordedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create consumption entry", err, classifyPgErr(err))
	}

	return nil
}
