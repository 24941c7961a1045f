package payment

import (
	"github.com/souhiir1/invoicing-backend/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.payment",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config, log *zap.Logger) Gateway {
	return NewPaymee(cfg.Paymee.BaseURL, cfg.Paymee.APIKey, log)
}
