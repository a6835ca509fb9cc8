package types

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusDelivering,
		OrderStatusCompleted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", invalid("order", "unknown status %q", s)
	}
	return st, nil
}

// SelectedAdditional is an additional as it was chosen for a cart line or
// order item; name and price are copied so later catalog edits do not
// rewrite history.
type SelectedAdditional struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Reference    string `json:"reference,omitempty"`
}

type OrderItem struct {
	ProductID   int64                `json:"productId"`
	Name        string               `json:"name"`
	Size        string               `json:"size"`
	Price       float64              `json:"price"`
	Quantity    int                  `json:"quantity"`
	Additionals []SelectedAdditional `json:"additionals"`
}

// LineTotal is (unit price + additionals) * quantity.
func (i OrderItem) LineTotal() float64 {
	unit := i.Price
	for _, a := range i.Additionals {
		unit += a.Price
	}
	return RoundCents(unit * float64(i.Quantity))
}

type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Address       Address     `json:"address"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	DeliveryFee   float64     `json:"deliveryFee"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        OrderStatus `json:"status"`
	Date          time.Time   `json:"date"`
	Printed       bool        `json:"printed"`
}

// RecomputeTotal makes Total subtotal + delivery fee. Callers' totals are
// never trusted.
func (o *Order) RecomputeTotal() {
	o.Total = RoundCents(o.Subtotal + o.DeliveryFee)
}

// ItemsSubtotal sums the line totals of all items.
func (o *Order) ItemsSubtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.LineTotal()
	}
	return RoundCents(sum)
}

func (o *Order) Validate() error {
	if blank(o.CustomerName) {
		return invalid("order", "customer name is required")
	}
	if len(o.Items) == 0 {
		return invalid("order", "order has no items")
	}
	for i, it := range o.Items {
		if it.Quantity < 1 {
			return invalid("order", "item %d quantity must be >= 1", i)
		}
		if it.Price < 0 {
			return invalid("order", "item %d has a negative price", i)
		}
	}
	if o.Subtotal < 0 || o.DeliveryFee < 0 {
		return invalid("order", "amounts must not be negative")
	}
	if !o.Status.Valid() {
		return invalid("order", "unknown status %q", o.Status)
	}
	return nil
}

func (o *Order) Normalize() {
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	for i := range o.Items {
		if o.Items[i].Additionals == nil {
			o.Items[i].Additionals = []SelectedAdditional{}
		}
	}
	if o.Status == "" {
		o.Status = OrderStatusNew
	}
	o.Date = utc(o.Date)
}

func (o *Order) String() string {
	return fmt.Sprintf("order %d (%s)", o.ID, o.CustomerName)
}
