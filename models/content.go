package models

import (
	"time"

	"Storefront/types"
)

// CarouselSlide 对应 carousel_slides 表
type CarouselSlide struct {
	ID        int32     `gorm:"primaryKey;autoIncrement:false;column:id"`
	Image     string    `gorm:"size:512;not null;index:idx_carousel_image"`
	Title     string    `gorm:"size:255"`
	Subtitle  string    `gorm:"size:255"`
	SortOrder int       `gorm:"column:sort_order;not null"`
	Active    bool      `gorm:"column:active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CarouselSlide) TableName() string {
	return "carousel_slides"
}

func NewCarouselSlide(s *types.CarouselSlide) *CarouselSlide {
	return &CarouselSlide{
		ID:        ToID(s.ID),
		Image:     s.Image,
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		SortOrder: s.Order,
		Active:    s.Active,
	}
}

func (m *CarouselSlide) Entity() types.CarouselSlide {
	return types.CarouselSlide{
		ID:       int64(m.ID),
		Image:    m.Image,
		Title:    m.Title,
		Subtitle: m.Subtitle,
		Order:    m.SortOrder,
		Active:   m.Active,
	}
}

// Phrase 对应 phrases 表
type Phrase struct {
	ID        int32     `gorm:"primaryKey;autoIncrement:false;column:id"`
	Text      string    `gorm:"size:512;not null;index:idx_phrases_text"`
	SortOrder int       `gorm:"column:sort_order;not null"`
	Active    bool      `gorm:"column:active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Phrase) TableName() string {
	return "phrases"
}

func NewPhrase(p *types.Phrase) *Phrase {
	return &Phrase{ID: ToID(p.ID), Text: p.Text, SortOrder: p.Order, Active: p.Active}
}

func (m *Phrase) Entity() types.Phrase {
	return types.Phrase{ID: int64(m.ID), Text: m.Text, Order: m.SortOrder, Active: m.Active}
}

// PageContent 对应 page_content 表，按 slug 寻址
type PageContent struct {
	ID          string    `gorm:"primaryKey;size:128;column:id"`
	Title       string    `gorm:"size:255"`
	Content     string    `gorm:"type:text"`
	LastUpdated time.Time `gorm:"column:last_updated"`
}

func (PageContent) TableName() string {
	return "page_content"
}

func NewPageContent(p *types.PageContent) *PageContent {
	return &PageContent{ID: p.ID, Title: p.Title, Content: p.Content, LastUpdated: p.LastUpdated}
}

func (m *PageContent) Entity() types.PageContent {
	p := types.PageContent{ID: m.ID, Title: m.Title, Content: m.Content, LastUpdated: m.LastUpdated}
	p.Normalize()
	return p
}
