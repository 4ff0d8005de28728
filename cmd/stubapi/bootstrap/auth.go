package bootstrap

import (
	"shadow-events-cli/internal/pkg/config"
	"shadow-events-cli/internal/stubapi/auth"
	"shadow-events-cli/internal/stubapi/payment"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		func(cfg config.StubConfig) *auth.JWTService {
			return auth.NewJWTService(cfg.JWT)
		},
		func(cfg config.StubConfig) *payment.Signer {
			return payment.NewSigner(cfg.Payment.Secret)
		},
	),
)
