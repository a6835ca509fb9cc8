package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/sourcegraph/conc/pool"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"Storefront/pkg/log"
	"Storefront/types"
)

const exportVersion = 1

var _ ITransferService = (*DataService)(nil)

type ITransferService interface {
	ExportAllData(ctx context.Context) (*types.Snapshot, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	ImportData(ctx context.Context, payload []byte) ([]string, error)
	ImportSnapshot(ctx context.Context, snap *types.Snapshot) error
	BackupData(ctx context.Context) (time.Time, error)
	BackupAsync(ctx context.Context) <-chan BackupResult
	LastBackupAt(ctx context.Context) (time.Time, bool, error)
	RestoreFromBackup(ctx context.Context) ([]string, error)
}

// exportDocument is the serialized form: the snapshot's collections at the
// top level next to a little metadata.
type exportDocument struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	types.Snapshot
}

func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

// exportFrom reads every collection of b except the cart, in parallel.
func exportFrom(ctx context.Context, b DataBackend) (*types.Snapshot, error) {
	snap := &types.Snapshot{}
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllProducts(ctx)
		snap.Products = ptrs(sortProducts(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllCategories(ctx)
		snap.Categories = ptrs(sortCategories(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllAdditionals(ctx)
		snap.Additionals = ptrs(sortAdditionals(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllOrders(ctx)
		snap.Orders = ptrs(sortOrders(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllCarouselSlides(ctx)
		snap.CarouselSlides = ptrs(sortSlides(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllPhrases(ctx)
		snap.Phrases = ptrs(sortPhrases(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		c, err := b.GetStoreConfig(ctx)
		if c != nil {
			c.Normalize()
		}
		snap.StoreConfig = c
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllPageContent(ctx)
		snap.PageContent = ptrs(sortPages(normalized(items)))
		return err
	})
	p.Go(func(ctx context.Context) error {
		items, err := b.GetAllNotifications(ctx)
		snap.Notifications = ptrs(sortNotifications(normalized(items)))
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("export from %s: %w", b.Name(), err)
	}
	return snap, nil
}

// ExportAllData snapshots the authoritative backend plus the local cart.
func (s *DataService) ExportAllData(ctx context.Context) (*types.Snapshot, error) {
	snap, err := exportFrom(ctx, s.backend())
	if err != nil {
		return nil, err
	}
	cart, err := s.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	snap.Cart = ptrs(cart)
	return snap, nil
}

func (s *DataService) ExportJSON(ctx context.Context) ([]byte, error) {
	snap, err := s.ExportAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&exportDocument{Version: exportVersion, ExportedAt: s.Now().UTC(), Snapshot: *snap})
}

func present[T any](items []*T) []*T {
	if items == nil {
		return nil
	}
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// DecodeSnapshot reads an export document. Only the collections present
// and non-null in payload are set on the result.
func DecodeSnapshot(payload []byte) (*types.Snapshot, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrBadPayload)
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrBadPayload)
	}

	snap := &types.Snapshot{}
	targets := map[string]any{
		types.CollectionCart:           &snap.Cart,
		types.CollectionProducts:       &snap.Products,
		types.CollectionCategories:     &snap.Categories,
		types.CollectionAdditionals:    &snap.Additionals,
		types.CollectionOrders:         &snap.Orders,
		types.CollectionCarouselSlides: &snap.CarouselSlides,
		types.CollectionPhrases:        &snap.Phrases,
		types.CollectionStoreConfig:    &snap.StoreConfig,
		types.CollectionPageContent:    &snap.PageContent,
		types.CollectionNotifications:  &snap.Notifications,
	}

	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		target, ok := targets[name]
		if !ok {
			if name != "version" && name != "exportedAt" {
				log.L.Warn("import: unknown collection ignored", zap.String("collection", name))
			}
			return true
		}
		if value.Type == gjson.Null {
			return true
		}
		if err := json.Unmarshal([]byte(value.Raw), target); err != nil {
			decodeErr = fmt.Errorf("%w: %s: %v", ErrBadPayload, name, err)
			return false
		}
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	snap.Cart = present(snap.Cart)
	snap.Products = present(snap.Products)
	snap.Categories = present(snap.Categories)
	snap.Additionals = present(snap.Additionals)
	snap.Orders = present(snap.Orders)
	snap.CarouselSlides = present(snap.CarouselSlides)
	snap.Phrases = present(snap.Phrases)
	snap.PageContent = present(snap.PageContent)
	snap.Notifications = present(snap.Notifications)
	return snap, nil
}

func normalizeSnapshot(snap *types.Snapshot) {
	for _, it := range snap.Cart {
		it.Normalize()
	}
	for _, it := range snap.Products {
		it.Normalize()
	}
	for _, it := range snap.Categories {
		it.Normalize()
	}
	for _, it := range snap.Additionals {
		it.Normalize()
	}
	for _, it := range snap.Orders {
		it.Normalize()
	}
	for _, it := range snap.CarouselSlides {
		it.Normalize()
	}
	for _, it := range snap.Phrases {
		it.Normalize()
	}
	if snap.StoreConfig != nil {
		snap.StoreConfig.Normalize()
	}
	for _, it := range snap.PageContent {
		it.Normalize()
	}
	for _, it := range snap.Notifications {
		it.Normalize()
	}
}

// ImportData decodes payload and imports the collections it holds. It
// returns the names of the collections touched.
func (s *DataService) ImportData(ctx context.Context, payload []byte) ([]string, error) {
	snap, err := DecodeSnapshot(payload)
	if err != nil {
		return nil, err
	}
	if err := s.ImportSnapshot(ctx, snap); err != nil {
		return nil, err
	}
	return snap.Collections(), nil
}

// ImportSnapshot writes the collections present in snap. Locally each one
// is cleared and refilled in a single batch; remotely records are upserted
// in one transaction. Records are copied as they are, without validation.
// The cart always goes to the local store.
func (s *DataService) ImportSnapshot(ctx context.Context, snap *types.Snapshot) error {
	normalizeSnapshot(snap)
	b := s.backend()
	if err := b.Import(ctx, snap); err != nil {
		return fmt.Errorf("import into %s: %w", b.Name(), err)
	}
	if b.Name() == ModeRemote && snap.Cart != nil {
		if err := s.Local.Import(ctx, &types.Snapshot{Cart: snap.Cart}); err != nil {
			return fmt.Errorf("import cart: %w", err)
		}
	}
	log.L.Info("import finished",
		zap.String("backend", string(b.Name())),
		zap.Strings("collections", snap.Collections()),
		zap.Int("records", snap.Len()),
	)
	return nil
}
