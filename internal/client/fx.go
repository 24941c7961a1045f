package client

import (
	"github.com/souhiir1/invoicing-backend/internal/client/repository"
	"github.com/souhiir1/invoicing-backend/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
