package invoice

import (
	"github.com/souhiir1/invoicing-backend/internal/invoice/repository"
	"github.com/souhiir1/invoicing-backend/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
