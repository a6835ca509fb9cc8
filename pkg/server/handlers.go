package server

import (
	"Storefront/handler"
)

type Handlers struct {
	Admin        *handler.Admin
	Catalog      *handler.Catalog
	Order        *handler.Order
	Cart         *handler.Cart
	Content      *handler.Content
	Notification *handler.Notification
	StoreConfig  *handler.StoreConfig
}
