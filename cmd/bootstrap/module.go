package bootstrap

import (
	"cast-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	JWTModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
