package service

import (
	"context"

	"Storefront/types"
)

var _ IContentService = (*DataService)(nil)

type IContentService interface {
	GetAllCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error)
	GetActiveCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error)
	SaveCarouselSlide(ctx context.Context, slide *types.CarouselSlide) error
	DeleteCarouselSlide(ctx context.Context, id int64) error

	GetAllPhrases(ctx context.Context) ([]types.Phrase, error)
	GetActivePhrases(ctx context.Context) ([]types.Phrase, error)
	SavePhrase(ctx context.Context, p *types.Phrase) error
	DeletePhrase(ctx context.Context, id int64) error

	GetAllPageContent(ctx context.Context) ([]types.PageContent, error)
	GetPageContent(ctx context.Context, slug string) (*types.PageContent, error)
	SavePageContent(ctx context.Context, p *types.PageContent) error
	DeletePageContent(ctx context.Context, slug string) error
}

func (s *DataService) slides(items []types.CarouselSlide, err error) ([]types.CarouselSlide, error) {
	if err != nil {
		return nil, err
	}
	return sortSlides(normalized(items)), nil
}

func (s *DataService) GetAllCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error) {
	return s.slides(s.backend().GetAllCarouselSlides(ctx))
}

func (s *DataService) GetActiveCarouselSlides(ctx context.Context) ([]types.CarouselSlide, error) {
	return s.slides(s.backend().GetActiveCarouselSlides(ctx))
}

func (s *DataService) SaveCarouselSlide(ctx context.Context, slide *types.CarouselSlide) error {
	if err := slide.Validate(); err != nil {
		return err
	}
	slide.Normalize()
	return s.backend().SaveCarouselSlide(ctx, slide)
}

func (s *DataService) DeleteCarouselSlide(ctx context.Context, id int64) error {
	return s.backend().DeleteCarouselSlide(ctx, id)
}

func (s *DataService) phrases(items []types.Phrase, err error) ([]types.Phrase, error) {
	if err != nil {
		return nil, err
	}
	return sortPhrases(normalized(items)), nil
}

func (s *DataService) GetAllPhrases(ctx context.Context) ([]types.Phrase, error) {
	return s.phrases(s.backend().GetAllPhrases(ctx))
}

func (s *DataService) GetActivePhrases(ctx context.Context) ([]types.Phrase, error) {
	return s.phrases(s.backend().GetActivePhrases(ctx))
}

func (s *DataService) SavePhrase(ctx context.Context, p *types.Phrase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.Normalize()
	return s.backend().SavePhrase(ctx, p)
}

func (s *DataService) DeletePhrase(ctx context.Context, id int64) error {
	return s.backend().DeletePhrase(ctx, id)
}

func (s *DataService) GetAllPageContent(ctx context.Context) ([]types.PageContent, error) {
	items, err := s.backend().GetAllPageContent(ctx)
	if err != nil {
		return nil, err
	}
	return sortPages(normalized(items)), nil
}

// GetPageContent returns nil, nil for an unknown slug.
func (s *DataService) GetPageContent(ctx context.Context, slug string) (*types.PageContent, error) {
	p, err := s.backend().GetPageContent(ctx, slug)
	if err != nil || p == nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

// SavePageContent stamps LastUpdated with the current time.
func (s *DataService) SavePageContent(ctx context.Context, p *types.PageContent) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.LastUpdated = s.Now()
	p.Normalize()
	return s.backend().SavePageContent(ctx, p)
}

func (s *DataService) DeletePageContent(ctx context.Context, slug string) error {
	return s.backend().DeletePageContent(ctx, slug)
}
