package dao

import (
	"context"

	"gorm.io/gorm"

	"Storefront/models"
	"Storefront/types"
)

type CarouselSlide struct {
	Repo[models.CarouselSlide]
}

func NewCarouselSlide(db *gorm.DB) *CarouselSlide {
	return &CarouselSlide{Repo: NewRepo[models.CarouselSlide](db)}
}

func (d *CarouselSlide) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]types.CarouselSlide, error) {
	rows, err := d.FindAll(ctx, append(scopes, orderBy("sort_order, id"))...)
	if err != nil {
		return nil, err
	}
	out := make([]types.CarouselSlide, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

func (d *CarouselSlide) GetAll(ctx context.Context) ([]types.CarouselSlide, error) {
	return d.find(ctx)
}

func (d *CarouselSlide) GetActive(ctx context.Context) ([]types.CarouselSlide, error) {
	return d.find(ctx, active)
}

// Save reconciles on the image, the one field two copies of a slide share.
func (d *CarouselSlide) Save(ctx context.Context, s *types.CarouselSlide) error {
	id, err := d.Repo.Save(ctx, "image", s.Image, s.ID, func(id int32) *models.CarouselSlide {
		row := *s
		row.ID = int64(id)
		return models.NewCarouselSlide(&row)
	})
	if err != nil {
		return err
	}
	s.ID = int64(id)
	return nil
}

func (d *CarouselSlide) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}

type Phrase struct {
	Repo[models.Phrase]
}

func NewPhrase(db *gorm.DB) *Phrase {
	return &Phrase{Repo: NewRepo[models.Phrase](db)}
}

func (d *Phrase) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]types.Phrase, error) {
	rows, err := d.FindAll(ctx, append(scopes, orderBy("sort_order, id"))...)
	if err != nil {
		return nil, err
	}
	out := make([]types.Phrase, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

func (d *Phrase) GetAll(ctx context.Context) ([]types.Phrase, error) {
	return d.find(ctx)
}

func (d *Phrase) GetActive(ctx context.Context) ([]types.Phrase, error) {
	return d.find(ctx, active)
}

func (d *Phrase) Save(ctx context.Context, p *types.Phrase) error {
	id, err := d.Repo.Save(ctx, "text", p.Text, p.ID, func(id int32) *models.Phrase {
		row := *p
		row.ID = int64(id)
		return models.NewPhrase(&row)
	})
	if err != nil {
		return err
	}
	p.ID = int64(id)
	return nil
}

func (d *Phrase) Delete(ctx context.Context, id int64) error {
	if !models.SafeID(id) {
		return nil
	}
	return d.DeleteByID(ctx, id)
}

type PageContent struct {
	Repo[models.PageContent]
}

func NewPageContent(db *gorm.DB) *PageContent {
	return &PageContent{Repo: NewRepo[models.PageContent](db)}
}

func (d *PageContent) GetAll(ctx context.Context) ([]types.PageContent, error) {
	rows, err := d.FindAll(ctx, orderBy("id"))
	if err != nil {
		return nil, err
	}
	out := make([]types.PageContent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Entity())
	}
	return out, nil
}

func (d *PageContent) Get(ctx context.Context, slug string) (*types.PageContent, error) {
	row, err := d.FindByID(ctx, slug)
	if err != nil || row == nil {
		return nil, err
	}
	p := row.Entity()
	return &p, nil
}

func (d *PageContent) Save(ctx context.Context, p *types.PageContent) error {
	return d.Upsert(ctx, models.NewPageContent(p), p.ID, p.Title)
}

func (d *PageContent) Delete(ctx context.Context, slug string) error {
	return d.DeleteByID(ctx, slug)
}
