package project

import (
	"github.com/souhiir1/invoicing-backend/internal/project/repository"
	"github.com/souhiir1/invoicing-backend/internal/project/service"
	"go.uber.org/fx"
)

var Module = fx.Module("project.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
