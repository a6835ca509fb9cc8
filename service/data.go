package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/sourcegraph/conc"

	"Storefront/pkg/slot"
	"Storefront/types"
)

// DataService is the single entry point for storefront data. Every call
// asks the PersistenceContext which backend is authoritative, runs there
// and returns the same normalized shape whichever backend answered.
type DataService struct {
	Mode   *PersistenceContext
	Local  *LocalBackend
	Remote DataBackend
	Slots  slot.Store

	// Now is the clock used for visibility windows and timestamps.
	Now func() time.Time
	// Location is where operating hours are read.
	Location *time.Location

	tasks conc.WaitGroup
}

func NewDataService(mode *PersistenceContext, local *LocalBackend, remote *RemoteBackend, slots slot.Store) *DataService {
	return &DataService{
		Mode:     mode,
		Local:    local,
		Remote:   remote,
		Slots:    slots,
		Now:      func() time.Time { return time.Now().UTC() },
		Location: time.Local,
	}
}

// backend is the only place the mode is consulted.
func (s *DataService) backend() DataBackend {
	if s.Mode.ShouldUseRemote() {
		return s.Remote
	}
	return s.Local
}

// Backend reports which backend currently serves calls.
func (s *DataService) Backend() Mode {
	return s.backend().Name()
}

// Wait blocks until background tasks such as async backups finish.
func (s *DataService) Wait() {
	s.tasks.Wait()
}

func normalized[T any, P interface {
	*T
	Normalize()
}](items []T) []T {
	if items == nil {
		return []T{}
	}
	for i := range items {
		P(&items[i]).Normalize()
	}
	return items
}

func sortCategories(items []types.Category) []types.Category {
	slices.SortStableFunc(items, func(a, b types.Category) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func sortAdditionals(items []types.Additional) []types.Additional {
	slices.SortStableFunc(items, func(a, b types.Additional) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func sortProducts(items []types.Product) []types.Product {
	slices.SortStableFunc(items, func(a, b types.Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func sortOrders(items []types.Order) []types.Order {
	slices.SortStableFunc(items, func(a, b types.Order) int {
		return cmp.Or(b.Date.Compare(a.Date), cmp.Compare(b.ID, a.ID))
	})
	return items
}

func sortSlides(items []types.CarouselSlide) []types.CarouselSlide {
	slices.SortStableFunc(items, func(a, b types.CarouselSlide) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func sortPhrases(items []types.Phrase) []types.Phrase {
	slices.SortStableFunc(items, func(a, b types.Phrase) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return items
}

func sortPages(items []types.PageContent) []types.PageContent {
	slices.SortStableFunc(items, func(a, b types.PageContent) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return items
}

func sortNotifications(items []types.Notification) []types.Notification {
	slices.SortStableFunc(items, func(a, b types.Notification) int {
		return cmp.Or(
			cmp.Compare(b.Priority, a.Priority),
			b.CreatedAt.Compare(a.CreatedAt),
			cmp.Compare(b.ID, a.ID),
		)
	})
	return items
}
