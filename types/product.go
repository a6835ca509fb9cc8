package types

// SizePrice is one orderable size of a product.
type SizePrice struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// Product is a catalog item. CategoryID and AllowedAdditionals refer to
// Category and Additional ids; nothing below the caller enforces them.
type Product struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Image              string      `json:"image"`
	Sizes              []SizePrice `json:"sizes"`
	CategoryID         int64       `json:"categoryId"`
	Active             bool        `json:"active"`
	AllowedAdditionals []int64     `json:"allowedAdditionals"`
}

func (p *Product) Validate() error {
	if blank(p.Name) {
		return invalid("product", "name is required")
	}
	if len(p.Sizes) == 0 {
		return invalid("product", "%q has no sizes", p.Name)
	}
	for _, s := range p.Sizes {
		if blank(s.Size) {
			return invalid("product", "%q has a size without a label", p.Name)
		}
		if s.Price < 0 {
			return invalid("product", "%q size %s has a negative price", p.Name, s.Size)
		}
	}
	return nil
}

func (p *Product) Normalize() {
	if p.Sizes == nil {
		p.Sizes = []SizePrice{}
	}
	if p.AllowedAdditionals == nil {
		p.AllowedAdditionals = []int64{}
	}
}

// PriceFor returns the price of size and whether the product offers it.
func (p *Product) PriceFor(size string) (float64, bool) {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s.Price, true
		}
	}
	return 0, false
}

// AllowsAdditional reports whether the additional may be added to this product.
func (p *Product) AllowsAdditional(id int64) bool {
	for _, a := range p.AllowedAdditionals {
		if a == id {
			return true
		}
	}
	return false
}
