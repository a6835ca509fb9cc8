package models

import (
	"time"

	"Storefront/types"
)

// Category 对应 categories 表
type Category struct {
	ID        int32     `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name      string    `gorm:"size:255;not null;index:idx_categories_name"`
	SortOrder int       `gorm:"column:sort_order;not null"`
	Active    bool      `gorm:"column:active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

func NewCategory(c *types.Category) *Category {
	return &Category{ID: ToID(c.ID), Name: c.Name, SortOrder: c.Order, Active: c.Active}
}

func (m *Category) Entity() types.Category {
	return types.Category{ID: int64(m.ID), Name: m.Name, Order: m.SortOrder, Active: m.Active}
}

// Additional 对应 additionals 表
type Additional struct {
	ID         int32     `gorm:"primaryKey;autoIncrement:false;column:id"`
	Name       string    `gorm:"size:255;not null;index:idx_additionals_name"`
	Price      float64   `gorm:"type:decimal(10,2);not null"`
	CategoryID int32     `gorm:"column:category_id;index:idx_additionals_category"`
	Active     bool      `gorm:"column:active;not null"`
	Image      string    `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Additional) TableName() string {
	return "additionals"
}

func NewAdditional(a *types.Additional) *Additional {
	return &Additional{
		ID:         ToID(a.ID),
		Name:       a.Name,
		Price:      a.Price,
		CategoryID: ToID(a.CategoryID),
		Active:     a.Active,
		Image:      a.Image,
	}
}

func (m *Additional) Entity() types.Additional {
	a := types.Additional{
		ID:         int64(m.ID),
		Name:       m.Name,
		Price:      m.Price,
		CategoryID: int64(m.CategoryID),
		Active:     m.Active,
		Image:      m.Image,
	}
	a.Normalize()
	return a
}
