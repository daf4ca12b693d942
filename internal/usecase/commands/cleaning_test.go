//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-frontdesk/internal/domain/cleaning"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cleaningFixture struct {
	rooms     *fakeRoomRepo
	cleanings *fakeCleaningRepo
	audit     *fakeAuditSink
	commands  commands.CleaningCommands
}

func newCleaningFixture(t *testing.T) (*cleaningFixture, *room.Room) {
	t.Helper()

	rm, err := room.NewRoom(uuid.New(), "204", "suite", 40000, false)
	require.NoError(t, err)

	f := &cleaningFixture{
		rooms:     newFakeRoomRepo(rm),
		cleanings: &fakeCleaningRepo{},
		audit:     &fakeAuditSink{},
	}
	f.commands = commands.NewCleaningCommands(
		&fakeTxRunner{}, f.rooms, f.cleanings, f.audit, clock.NewMockClock(testNow),
	)
	return f, rm
}

func TestCleaningCommands_Record(t *testing.T) {
	t.Run("records and marks the room clean", func(t *testing.T) {
		f, rm := newCleaningFixture(t)

		id, err := f.commands.Record(context.Background(), commands.RecordCleaningParams{
			RoomID:      rm.ID(),
			Kind:        cleaning.KindRoutine.String(),
			Notes:       "minibar restocked",
			PerformedBy: "maria",
			Actor:       "maria",
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		require.Len(t, f.cleanings.records, 1)
		rec := f.cleanings.records[0]
		assert.Equal(t, rm.ID(), rec.RoomID())
		assert.Equal(t, cleaning.KindRoutine, rec.Kind())
		assert.Equal(t, "maria", rec.PerformedBy())

		require.Len(t, f.rooms.cleanCalls, 1)
		assert.Equal(t, setCleanCall{roomID: rm.ID(), clean: true}, f.rooms.cleanCalls[0])

		require.Len(t, f.audit.entries, 1)
		assert.Equal(t, "Limpeza", f.audit.entries[0].Action)
		assert.Equal(t, "Limpezas", f.audit.entries[0].EntityTable)
	})

	t.Run("checkout cleaning keeps the reservation link", func(t *testing.T) {
		f, rm := newCleaningFixture(t)
		reservationID := uuid.New()

		_, err := f.commands.Record(context.Background(), commands.RecordCleaningParams{
			RoomID:        rm.ID(),
			ReservationID: &reservationID,
			Kind:          cleaning.KindCheckout.String(),
			PerformedBy:   "maria",
			Actor:         "maria",
		})
		require.NoError(t, err)

		require.Len(t, f.cleanings.records, 1)
		rec := f.cleanings.records[0]
		require.NotNil(t, rec.ReservationID())
		assert.Equal(t, reservationID, *rec.ReservationID())
		assert.Equal(t, cleaning.KindCheckout, rec.Kind())
	})

	t.Run("unknown room", func(t *testing.T) {
		f, _ := newCleaningFixture(t)

		_, err := f.commands.Record(context.Background(), commands.RecordCleaningParams{
			RoomID:      uuid.New(),
			Kind:        cleaning.KindRoutine.String(),
			PerformedBy: "maria",
			Actor:       "maria",
		})
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
		assert.Empty(t, f.cleanings.records)
	})

	t.Run("invalid kind", func(t *testing.T) {
		f, rm := newCleaningFixture(t)

		_, err := f.commands.Record(context.Background(), commands.RecordCleaningParams{
			RoomID:      rm.ID(),
			Kind:        "deep",
			PerformedBy: "maria",
			Actor:       "maria",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, f.rooms.cleanCalls)
	})
}
