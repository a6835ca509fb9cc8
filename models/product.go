package models

import (
	"time"

	"gorm.io/datatypes"

	"Storefront/types"
)

// Product 对应 products 表
type Product struct {
	ID                 int32                                `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name               string                               `gorm:"size:255;not null;index:idx_products_name;check:chk_products_name,name <> ''"`
	Description        string                               `gorm:"type:text"`
	Image              string                               `gorm:"size:512"`
	Sizes              datatypes.JSONSlice[types.SizePrice] `gorm:"column:sizes"`
	CategoryID         int32                                `gorm:"column:category_id;index:idx_products_category"`
	Active             bool                                 `gorm:"column:active;not null"`
	AllowedAdditionals datatypes.JSONSlice[int32]           `gorm:"column:allowed_additionals"`
	CreatedAt          time.Time                            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                            `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

func NewProduct(p *types.Product) *Product {
	return &Product{
		ID:                 ToID(p.ID),
		Name:               p.Name,
		Description:        p.Description,
		Image:              p.Image,
		Sizes:              datatypes.NewJSONSlice(p.Sizes),
		CategoryID:         ToID(p.CategoryID),
		Active:             p.Active,
		AllowedAdditionals: datatypes.NewJSONSlice(toIDs(p.AllowedAdditionals)),
	}
}

func (m *Product) Entity() types.Product {
	p := types.Product{
		ID:                 int64(m.ID),
		Name:               m.Name,
		Description:        m.Description,
		Image:              m.Image,
		Sizes:              m.Sizes,
		CategoryID:         int64(m.CategoryID),
		Active:             m.Active,
		AllowedAdditionals: fromIDs(m.AllowedAdditionals),
	}
	p.Normalize()
	return p
}
