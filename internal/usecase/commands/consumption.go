package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-frontdesk/internal/domain/consumption"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

type AddConsumptionParams struct {
	ReservationID uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	Actor         string
}

type ConsumptionCommands interface {
	Add(ctx context.Context, params AddConsumptionParams) (uuid.UUID, error)
}

type consumptionCommandsImpl struct {
	tx           TxRunner
	reservations ReservationRepository
	products     ProductRepository
	entries      ConsumptionRepository
	audit        AuditSink
	clock        clock.Clock
}

func NewConsumptionCommands(
	tx TxRunner,
	reservations ReservationRepository,
	products ProductRepository,
	entries ConsumptionRepository,
	audit AuditSink,
	clk clock.Clock,
) ConsumptionCommands {
	return &consumptionCommandsImpl{
		tx:           tx,
		reservations: reservations,
		products:     products,
		entries:      entries,
		audit:        audit,
		clock:        clk,
	}
}

// Add snapshots the product's current price into the entry; later catalog
// edits never change what was already recorded.
func (u *consumptionCommandsImpl) Add(ctx context.Context, params AddConsumptionParams) (uuid.UUID, error) {
	now := u.clock.Now()
	var entryID uuid.UUID

	err := u.tx.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := u.reservations.FindByID(ctx, tx, params.ReservationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		product, err := u.products.FindByID(ctx, tx, params.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entry, err := consumption.NewEntry(params.ReservationID, params.ProductID, params.Quantity, product.PriceCents, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := u.entries.Create(ctx, tx, entry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entryID = entry.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	entry := AuditEntry{
		ActorName:   params.Actor,
		Action:      "Consumo",
		EntityTable: "Reservas",
		Details:     fmt.Sprintf("Consumption recorded for reservation %s: %d x product %s.", params.ReservationID, params.Quantity, params.ProductID),
		OccurredAt:  u.clock.Now(),
	}
	if err := u.audit.Log(ctx, entry); err != nil {
		slog.Warn("audit log write failed", "action", "Consumo", "error", err)
	}

	return entryID, nil
}
