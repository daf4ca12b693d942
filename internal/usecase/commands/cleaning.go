package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-frontdesk/internal/domain/cleaning"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type RecordCleaningParams struct {
	RoomID        uuid.UUID
	ReservationID *uuid.UUID
	Kind          string
	Notes         string
	PerformedBy   string
	Actor         string
}

type CleaningCommands interface {
	Record(ctx context.Context, params RecordCleaningParams) (uuid.UUID, error)
}

type cleaningCommandsImpl struct {
	tx        TxRunner
	rooms     RoomRepository
	cleanings CleaningRepository
	audit     AuditSink
	clock     clock.Clock
}

func NewCleaningCommands(
	tx TxRunner,
	rooms RoomRepository,
	cleanings CleaningRepository,
	audit AuditSink,
	clk clock.Clock,
) CleaningCommands {
	return &cleaningCommandsImpl{
		tx:        tx,
		rooms:     rooms,
		cleanings: cleanings,
		audit:     audit,
		clock:     clk,
	}
}

// Record appends a cleaning record and marks the room clean again in the same
// transaction.
func (u *cleaningCommandsImpl) Record(ctx context.Context, params RecordCleaningParams) (uuid.UUID, error) {
	now := u.clock.Now()
	var recordID uuid.UUID

	err := u.tx.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := u.rooms.FindByID(ctx, tx, params.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		rec, err := cleaning.NewRecord(params.RoomID, params.ReservationID, cleaning.Kind(params.Kind), params.Notes, params.PerformedBy, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := u.cleanings.Create(ctx, tx, rec); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.rooms.SetClean(ctx, tx, params.RoomID, true, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		recordID = rec.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	entry := AuditEntry{
		ActorName:   params.Actor,
		Action:      "Limpeza",
		EntityTable: "Limpezas",
		Details:     fmt.Sprintf("Cleaning recorded for room %s. Kind: %s", params.RoomID, params.Kind),
		OccurredAt:  u.clock.Now(),
	}
	if err := u.audit.Log(ctx, entry); err != nil {
		slog.Warn("audit log write failed", "action", "Limpeza", "error", err)
	}

	return recordID, nil
}
