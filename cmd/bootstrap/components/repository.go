package components

import (
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/infra/readstore"
	repo_impl "hotel-frontdesk/internal/infra/repository"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			db.NewTxRunner,
			fx.As(new(commands.TxRunner)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			repo_impl.NewConsumptionRepository,
			fx.As(new(commands.ConsumptionRepository)),
		),
		fx.Annotate(
			repo_impl.NewCleaningRepository,
			fx.As(new(commands.CleaningRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuditLogRepository,
			fx.As(new(commands.AuditSink)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(commands.AvailabilityReader)),
		),
	),
)
