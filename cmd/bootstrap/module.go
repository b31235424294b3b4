package bootstrap

import (
	"kayak-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BusinessModule,
	components.PersistenceModule,
	components.IntegrationsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
