package types

// CartItem is one line of the session cart, unique per (ProductID, Size).
type CartItem struct {
	ProductID   int64                `json:"productId"`
	Size        string               `json:"size"`
	Name        string               `json:"name"`
	Price       float64              `json:"price"`
	Quantity    int                  `json:"quantity"`
	Image       string               `json:"image"`
	Additionals []SelectedAdditional `json:"additionals"`
}

func (c *CartItem) Validate() error {
	if c.ProductID == 0 {
		return invalid("cart item", "product id is required")
	}
	if c.Quantity < 1 {
		return invalid("cart item", "quantity must be >= 1")
	}
	if c.Price < 0 {
		return invalid("cart item", "negative price")
	}
	return nil
}

func (c *CartItem) Normalize() {
	if c.Additionals == nil {
		c.Additionals = []SelectedAdditional{}
	}
}

// LineTotal mirrors OrderItem.LineTotal.
func (c *CartItem) LineTotal() float64 {
	return c.OrderItem().LineTotal()
}

// OrderItem converts the cart line into the shape stored on an order.
func (c *CartItem) OrderItem() OrderItem {
	adds := make([]SelectedAdditional, len(c.Additionals))
	copy(adds, c.Additionals)
	return OrderItem{
		ProductID:   c.ProductID,
		Name:        c.Name,
		Size:        c.Size,
		Price:       c.Price,
		Quantity:    c.Quantity,
		Additionals: adds,
	}
}
