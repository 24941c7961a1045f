package account

import (
	"github.com/souhiir1/invoicing-backend/internal/account/repository"
	"github.com/souhiir1/invoicing-backend/internal/account/service"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
