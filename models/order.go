package models

import (
	"time"

	"gorm.io/datatypes"

	"Storefront/types"
)

// Order 订单表，id 由数据库生成
type Order struct {
	ID            int32                                `gorm:"primaryKey;autoIncrement;column:id"`
	CustomerName  string                               `gorm:"column:customer_name;size:255"`
	CustomerPhone string                               `gorm:"column:customer_phone;size:32"`
	Address       datatypes.JSONType[types.Address]    `gorm:"column:address"`
	Items         datatypes.JSONSlice[types.OrderItem] `gorm:"column:items"`
	Subtotal      float64                              `gorm:"column:subtotal;type:decimal(10,2);not null"`
	DeliveryFee   float64                              `gorm:"column:delivery_fee;type:decimal(10,2);not null"`
	Total         float64                              `gorm:"column:total;type:decimal(10,2);not null"`
	PaymentMethod string                               `gorm:"column:payment_method;size:32"`
	Status        string                               `gorm:"column:status;size:16;not null;index:idx_orders_status"`
	Date          time.Time                            `gorm:"column:date;index:idx_orders_date"`
	Printed       bool                                 `gorm:"column:printed;not null"`
	UpdatedAt     time.Time                            `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

func NewOrder(o *types.Order) *Order {
	return &Order{
		ID:            ToID(o.ID),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       datatypes.NewJSONType(o.Address),
		Items:         datatypes.NewJSONSlice(o.Items),
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		Date:          o.Date,
		Printed:       o.Printed,
	}
}

func (m *Order) Entity() types.Order {
	o := types.Order{
		ID:            int64(m.ID),
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Address:       m.Address.Data(),
		Items:         m.Items,
		Subtotal:      m.Subtotal,
		DeliveryFee:   m.DeliveryFee,
		Total:         m.Total,
		PaymentMethod: m.PaymentMethod,
		Status:        types.OrderStatus(m.Status),
		Date:          m.Date,
		Printed:       m.Printed,
	}
	o.Normalize()
	return o
}
