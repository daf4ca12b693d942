package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRoomUnavailable         = errs.New("room unavailable for the requested period")
	ErrInvalidStayPeriod       = errs.New("invalid stay period")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrInvalidTransition       = errs.New("invalid reservation state transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationParams struct {
	RoomID            uuid.UUID
	PrimaryGuestID    uuid.UUID
	SecondaryGuestIDs []uuid.UUID
	CheckInDate       time.Time
	CheckOutDate      time.Time
	Headcount         int
	PaymentMethod     string
	Actor             string
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error)
	CheckIn(ctx context.Context, id uuid.UUID, actor string) error
	CheckOut(ctx context.Context, id uuid.UUID, actor string) error
	Cancel(ctx context.Context, id uuid.UUID, reason string, actorID uuid.UUID, actor string) error
}

type reservationCommandsImpl struct {
	tx           TxRunner
	reservations ReservationRepository
	rooms        RoomRepository
	availability AvailabilityReader
	audit        AuditSink
	clock        clock.Clock
}

func NewReservationCommands(
	tx TxRunner,
	reservations ReservationRepository,
	rooms RoomRepository,
	availability AvailabilityReader,
	audit AuditSink,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		tx:           tx,
		reservations: reservations,
		rooms:        rooms,
		availability: availability,
		audit:        audit,
		clock:        clk,
	}
}

// Create validates before any write: a bad stay period or an unavailable room
// leaves no partial state behind. The availability read and the insert run in
// the same transaction, and the exclusion constraint closes the remaining
// check-then-insert window between concurrent callers.
func (u *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (uuid.UUID, error) {
	stay, err := reservation.NewStayPeriod(params.CheckInDate, params.CheckOutDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidStayPeriod)
	}

	now := u.clock.Now()
	var created *reservation.Reservation

	err = u.tx.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		roomEntity, err := u.rooms.FindByID(ctx, tx, params.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		available, err := u.availability.IsRoomAvailable(ctx, tx, params.RoomID, stay, nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !available {
			return ErrRoomUnavailable
		}

		res, err := reservation.NewReservation(
			reservation.RoomSpec{ID: roomEntity.ID(), BasePriceCents: roomEntity.BasePriceCents()},
			params.PrimaryGuestID,
			params.SecondaryGuestIDs,
			stay,
			params.Headcount,
			reservation.PaymentMethod(params.PaymentMethod),
			now,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := u.reservations.Create(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrRoomUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = res
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	u.emitAudit(ctx, params.Actor, "Criar",
		fmt.Sprintf("Reservation created for room %s (%s to %s).",
			params.RoomID, stay.CheckInDate().Format(time.DateOnly), stay.CheckOutDate().Format(time.DateOnly)))

	return created.ID(), nil
}

// CheckIn is idempotent: a second call changes nothing and emits no audit
// event, so the front desk can safely re-submit.
func (u *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID, actor string) error {
	now := u.clock.Now()
	var changed bool

	err := u.tx.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := u.findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		changed, err = res.CheckIn(now)
		if err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if !changed {
			return nil
		}

		return u.updateState(ctx, tx, res, now)
	})
	if err != nil {
		return err
	}

	if changed {
		u.emitAudit(ctx, actor, "CheckIn", fmt.Sprintf("Check-in completed for reservation %s.", id))
	}
	return nil
}

// CheckOut frees the room and flags it as needing cleaning in the same
// transaction. Occupancy is not stored, so nothing else has to be unset.
func (u *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID, actor string) error {
	now := u.clock.Now()

	err := u.tx.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := u.findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.CheckOut(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := u.updateState(ctx, tx, res, now); err != nil {
			return err
		}

		if err := u.rooms.SetClean(ctx, tx, res.RoomID(), false, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.emitAudit(ctx, actor, "CheckOut", fmt.Sprintf("Check-out completed for reservation %s.", id))
	return nil
}

func (u *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, reason string, actorID uuid.UUID, actor string) error {
	now := u.clock.Now()

	err := u.tx.WithTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := u.findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.Cancel(reason, actorID, now); err != nil {
			switch err {
			case reservation.ErrEmptyCancelReason:
				return errs.Mark(err, ErrDomainValidation)
			default:
				return errs.Mark(err, ErrInvalidTransition)
			}
		}

		return u.updateState(ctx, tx, res, now)
	})
	if err != nil {
		return err
	}

	u.emitAudit(ctx, actor, "Cancelar", fmt.Sprintf("Reservation %s canceled. Reason: %s", id, reason))
	return nil
}

func (u *reservationCommandsImpl) findReservation(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.reservations.FindByID(ctx, dbtx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (u *reservationCommandsImpl) updateState(ctx context.Context, tx db.DBTX, res *reservation.Reservation, now time.Time) error {
	if err := u.reservations.UpdateState(ctx, tx, res, now); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *reservationCommandsImpl) emitAudit(ctx context.Context, actor, action, details string) {
	entry := AuditEntry{
		ActorName:   actor,
		Action:      action,
		EntityTable: "Reservas",
		Details:     details,
		OccurredAt:  u.clock.Now(),
	}
	if err := u.audit.Log(ctx, entry); err != nil {
		slog.Warn("audit log write failed", "action", action, "error", err)
	}
}
