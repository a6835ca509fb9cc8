package service

import "Storefront/types"

// idMap remembers which remote id each local id became.
type idMap map[int64]int64

// set ignores records that had no id to begin with.
func (m idMap) set(from, to int64) {
	if from != 0 {
		m[from] = to
	}
}

func (m idMap) get(id int64) int64 {
	if v, ok := m[id]; ok {
		return v
	}
	return id
}

// idRemap follows records whose ids change on the way into the remote
// database and rewrites the references that point at them. Targets must be
// saved before the records referring to them.
type idRemap struct {
	categories  idMap
	additionals idMap
	products    idMap
}

func newIDRemap() *idRemap {
	return &idRemap{categories: idMap{}, additionals: idMap{}, products: idMap{}}
}

func (r *idRemap) additional(a *types.Additional) {
	a.CategoryID = r.categories.get(a.CategoryID)
}

func (r *idRemap) product(p *types.Product) {
	p.CategoryID = r.categories.get(p.CategoryID)
	allowed := make([]int64, 0, len(p.AllowedAdditionals))
	for _, id := range p.AllowedAdditionals {
		allowed = append(allowed, r.additionals.get(id))
	}
	p.AllowedAdditionals = allowed
}

// order copies the items so the caller's slice is left alone.
func (r *idRemap) order(o *types.Order) {
	items := make([]types.OrderItem, len(o.Items))
	copy(items, o.Items)
	for j := range items {
		items[j].ProductID = r.products.get(items[j].ProductID)
	}
	o.Items = items
}
