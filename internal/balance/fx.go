package balance

import (
	"github.com/souhiir1/invoicing-backend/internal/balance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("balance.service",
	fx.Provide(service.New),
)
