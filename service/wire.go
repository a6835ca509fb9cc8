package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPersistenceContext,
	NewLocalBackend,
	NewRemoteBackend,
	NewDataService,
	NewMigrator,

	wire.Bind(new(ICatalogService), new(*DataService)),
	wire.Bind(new(IOrderService), new(*DataService)),
	wire.Bind(new(IContentService), new(*DataService)),
	wire.Bind(new(INotificationService), new(*DataService)),
	wire.Bind(new(IStoreConfigService), new(*DataService)),
	wire.Bind(new(ICartService), new(*DataService)),
	wire.Bind(new(ITransferService), new(*DataService)),
)
