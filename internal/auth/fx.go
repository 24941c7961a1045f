package auth

import (
	"github.com/souhiir1/invoicing-backend/internal/auth/token"
	"github.com/souhiir1/invoicing-backend/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth",
	fx.Provide(func(cfg config.Config) (*token.Signer, error) {
		return token.NewSigner(cfg.JWTSecret)
	}),
)
