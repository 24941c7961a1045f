package subscription

import (
	"github.com/souhiir1/invoicing-backend/internal/subscription/repository"
	"github.com/souhiir1/invoicing-backend/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
