package types

// Category groups products and additionals. Order is the display position and
// does not have to be contiguous.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

func (c *Category) Validate() error {
	if blank(c.Name) {
		return invalid("category", "name is required")
	}
	return nil
}

func (c *Category) Normalize() {}

// Additional is an extra (topping, side) a customer can add to a product.
type Additional struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"categoryId"`
	Active     bool    `json:"active"`
	Image      string  `json:"image,omitempty"`
}

func (a *Additional) Validate() error {
	if blank(a.Name) {
		return invalid("additional", "name is required")
	}
	if a.Price < 0 {
		return invalid("additional", "%q has a negative price", a.Name)
	}
	return nil
}

func (a *Additional) Normalize() {}
