package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/souhiir1/invoicing-backend/internal/clock"
	"github.com/souhiir1/invoicing-backend/internal/config"
	"github.com/souhiir1/invoicing-backend/internal/logger"
	"github.com/souhiir1/invoicing-backend/internal/migration"
	"github.com/souhiir1/invoicing-backend/internal/server"
	"github.com/souhiir1/invoicing-backend/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
