package bootstrap

import (
	"sessionbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	JournalModule,
	EventsModule,
	EngineModule,
	components.HandlerModule,
)
