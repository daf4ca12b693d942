//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk/internal/domain/cleaning"
	"hotel-frontdesk/internal/domain/consumption"
	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows in result set")

type fakeTxRunner struct {
	beginErr error
	calls    int
}

func (f *fakeTxRunner) WithTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.calls++
	return fn(ctx, nil)
}

type fakeReservationRepo struct {
	store     map[uuid.UUID]*reservation.Reservation
	createErr error
	updates   int
}

func newFakeReservationRepo(existing ...*reservation.Reservation) *fakeReservationRepo {
	store := make(map[uuid.UUID]*reservation.Reservation, len(existing))
	for _, r := range existing {
		store[r.ID()] = r
	}
	return &fakeReservationRepo{store: store}
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.store[res.ID()] = res
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := f.store[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	return res, nil
}

func (f *fakeReservationRepo) UpdateState(_ context.Context, _ db.DBTX, res *reservation.Reservation, _ time.Time) error {
	if _, ok := f.store[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	f.store[res.ID()] = res
	f.updates++
	return nil
}

type setCleanCall struct {
	roomID uuid.UUID
	clean  bool
}

type fakeRoomRepo struct {
	store      map[uuid.UUID]*room.Room
	cleanCalls []setCleanCall
}

func newFakeRoomRepo(rooms ...*room.Room) *fakeRoomRepo {
	store := make(map[uuid.UUID]*room.Room, len(rooms))
	for _, r := range rooms {
		store[r.ID()] = r
	}
	return &fakeRoomRepo{store: store}
}

func (f *fakeRoomRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*room.Room, error) {
	r, ok := f.store[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", errNoRows, infra.KindNotFound)
	}
	return r, nil
}

func (f *fakeRoomRepo) SetClean(_ context.Context, _ db.DBTX, id uuid.UUID, clean bool, _ time.Time) error {
	if _, ok := f.store[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	f.cleanCalls = append(f.cleanCalls, setCleanCall{roomID: id, clean: clean})
	return nil
}

type fakeProductRepo struct {
	store map[uuid.UUID]commands.ProductSnapshot
}

func (f *fakeProductRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*commands.ProductSnapshot, error) {
	p, ok := f.store[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", errNoRows, infra.KindNotFound)
	}
	return &p, nil
}

type fakeConsumptionRepo struct {
	entries []*consumption.Entry
}

func (f *fakeConsumptionRepo) Create(_ context.Context, _ db.DBTX, entry *consumption.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeCleaningRepo struct {
	records []*cleaning.Record
}

func (f *fakeCleaningRepo) Create(_ context.Context, _ db.DBTX, rec *cleaning.Record) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeAvailability struct {
	available bool
	err       error
}

func (f *fakeAvailability) IsRoomAvailable(_ context.Context, _ db.DBTX, _ uuid.UUID, _ reservation.StayPeriod, _ *uuid.UUID) (bool, error) {
	return f.available, f.err
}

type fakeAuditSink struct {
	entries []commands.AuditEntry
	err     error
}

func (f *fakeAuditSink) Log(_ context.Context, entry commands.AuditEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}
