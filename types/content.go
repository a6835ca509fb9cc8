package types

import "time"

type CarouselSlide struct {
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Order    int    `json:"order"`
	Active   bool   `json:"active"`
}

func (s *CarouselSlide) Validate() error {
	if blank(s.Image) {
		return invalid("carousel slide", "image is required")
	}
	return nil
}

func (s *CarouselSlide) Normalize() {}

// Phrase is a rotating banner text.
type Phrase struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

func (p *Phrase) Validate() error {
	if blank(p.Text) {
		return invalid("phrase", "text is required")
	}
	return nil
}

func (p *Phrase) Normalize() {}

// PageContent is an editable static page (about, terms...) keyed by slug.
type PageContent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (p *PageContent) Validate() error {
	if blank(p.ID) {
		return invalid("page content", "slug is required")
	}
	return nil
}

func (p *PageContent) Normalize() {
	p.LastUpdated = utc(p.LastUpdated)
}
