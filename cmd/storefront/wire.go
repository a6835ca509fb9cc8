//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"Storefront/config"
	"Storefront/dao"
	"Storefront/handler"
	"Storefront/pkg/client"
	"Storefront/pkg/database"
	"Storefront/pkg/localdb"
	"Storefront/pkg/server"
	"Storefront/pkg/slot"
	"Storefront/service"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		localdb.NewFromConfig,
		slot.New,
		server.NewGinEngine,

		wire.Struct(new(handler.Admin), "Config", "Transfer", "Migrator", "Mode"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Content), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.StoreConfig), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
