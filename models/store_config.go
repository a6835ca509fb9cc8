package models

import (
	"time"

	"gorm.io/datatypes"

	"Storefront/types"
)

// StoreConfig 对应 store_config 表，只有 id = "main" 一行
type StoreConfig struct {
	ID             string                                   `gorm:"primaryKey;size:32;column:id"`
	Name           string                                   `gorm:"size:255"`
	LogoURL        string                                   `gorm:"column:logo_url;size:512"`
	DeliveryFee    float64                                  `gorm:"column:delivery_fee;type:decimal(10,2);not null"`
	IsOpen         bool                                     `gorm:"column:is_open;not null"`
	OperatingHours datatypes.JSONType[types.OperatingHours] `gorm:"column:operating_hours"`
	SpecialDates   datatypes.JSONSlice[types.SpecialDate]   `gorm:"column:special_dates"`
	UpdatedAt      time.Time                                `gorm:"column:updated_at;autoUpdateTime"`
}

func (StoreConfig) TableName() string {
	return "store_config"
}

func NewStoreConfig(c *types.StoreConfig) *StoreConfig {
	return &StoreConfig{
		ID:             c.ID,
		Name:           c.Name,
		LogoURL:        c.LogoURL,
		DeliveryFee:    c.DeliveryFee,
		IsOpen:         c.IsOpen,
		OperatingHours: datatypes.NewJSONType(c.OperatingHours),
		SpecialDates:   datatypes.NewJSONSlice(c.SpecialDates),
	}
}

func (m *StoreConfig) Entity() types.StoreConfig {
	c := types.StoreConfig{
		ID:             m.ID,
		Name:           m.Name,
		LogoURL:        m.LogoURL,
		DeliveryFee:    m.DeliveryFee,
		IsOpen:         m.IsOpen,
		OperatingHours: m.OperatingHours.Data(),
		SpecialDates:   m.SpecialDates,
	}
	c.Normalize()
	return c
}
