package components

import (
	"cast-booking/internal/infra/backendapi"
	"cast-booking/internal/infra/sessionstore"
	"cast-booking/internal/pkg/clock"
	"cast-booking/internal/pkg/config"
	"cast-booking/internal/usecase/commands"
	"cast-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewBackendClient,
		NewSessionStore,
		fx.Annotate(
			func(c *backendapi.Client) *backendapi.Client { return c },
			fx.As(new(commands.CatalogGateway)),
			fx.As(new(commands.ReservationGateway)),
			fx.As(new(commands.ShiftGateway)),
			fx.As(new(queries.CatalogReader)),
			fx.As(new(queries.ShiftReader)),
			fx.As(new(queries.ReservationReader)),
		),
	),
)

func NewBackendClient(cfg config.Config, redisClient *redis.Client) *backendapi.Client {
	client := backendapi.NewClient(cfg.Backend)
	if redisClient != nil {
		client.UseRedisCache(redisClient, cfg.Backend.CacheTTL)
	}
	return client
}

func NewSessionStore(cfg config.Config, clk clock.Clock) *sessionstore.Store {
	return sessionstore.NewStore(cfg.Session.TTL, clk)
}
