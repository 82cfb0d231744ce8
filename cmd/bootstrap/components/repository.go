package components

import (
	"lendit/internal/infra"
	"lendit/internal/infra/readstore"
	"lendit/internal/infra/repository"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewCommentRepository,
			fx.As(new(commands.CommentRepository)),
		),
		fx.Annotate(
			repository.NewItemRequestRepository,
			fx.As(new(commands.ItemRequestRepository)),
		),
		// Read side for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentViewRepo)),
		),
		fx.Annotate(
			readstore.NewItemRequestReadStore,
			fx.As(new(queries.ItemRequestViewRepo)),
		),
		// Snapshot readers for commands
		readstore.NewBookingReader,
		readstore.NewItemReader,
		readstore.NewUserReader,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DB {
	return pool
}
