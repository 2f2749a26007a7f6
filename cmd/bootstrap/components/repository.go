package components

import (
	"petsitter-booking/internal/infra/repository"
	"petsitter-booking/internal/usecase/queries"
	"petsitter-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// In-memory stores live for the process; both sides of each store share one instance.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(shared.RequestRepository)),
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(shared.SessionRepository)),
			fx.As(new(queries.SessionReadStore)),
		),
	),
)
