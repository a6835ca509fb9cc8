package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"Storefront/config"
	"Storefront/dao"
	"Storefront/pkg/log"
	"Storefront/types"
)

var migrationProgress = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "storefront_migration_progress_percent",
	Help: "Progress of the running local to remote migration.",
})

// ProgressFunc receives a percentage in [0, 100] and a short message.
type ProgressFunc func(percent float64, message string)

// reportEvery is how many records pass between progress reports.
const reportEvery = 5

// Migrator copies the local store into the remote database once, then makes
// the remote database authoritative.
type Migrator struct {
	Local   *LocalBackend
	Remote  *dao.Store
	Mode    *PersistenceContext
	Timeout time.Duration

	running atomic.Bool
}

func NewMigrator(local *LocalBackend, remote *dao.Store, mode *PersistenceContext, conf *config.Config) *Migrator {
	return &Migrator{Local: local, Remote: remote, Mode: mode, Timeout: conf.Remote.Timeout}
}

// MigrateLocalToRemote exports the local store and runs the migration on it.
func (m *Migrator) MigrateLocalToRemote(ctx context.Context, progress ProgressFunc) error {
	if m.Mode.ShouldUseRemote() {
		return ErrAlreadyMigrated
	}
	snap, err := exportFrom(ctx, m.Local)
	if err != nil {
		return err
	}
	return m.Run(ctx, snap, progress)
}

type migrationStep struct {
	collection string
	n          int
	save       func(ctx context.Context, i int) (id any, naturalKey string, err error)
}

// Run upserts snap into the remote database. Categories and additionals go
// before the products that reference them; the rest follow in a fixed
// order. The first failed record aborts the run and the mode stays local.
// Rows already written stay in place, a rerun upserts over them.
func (m *Migrator) Run(ctx context.Context, snap *types.Snapshot, progress ProgressFunc) error {
	if m.Mode.ShouldUseRemote() {
		return ErrAlreadyMigrated
	}
	if !m.running.CompareAndSwap(false, true) {
		return ErrMigrationRunning
	}
	defer m.running.Store(false)

	if progress == nil {
		progress = func(float64, string) {}
	}
	report := func(pct float64, msg string) {
		migrationProgress.Set(pct)
		progress(pct, msg)
	}

	run := uuid.NewString()
	logger := log.L.With(zap.String("run", run))
	steps := m.plan(snap)

	nonEmpty := 0
	for _, st := range steps {
		if st.n > 0 {
			nonEmpty++
		}
	}
	logger.Info("migration started", zap.Int("collections", nonEmpty), zap.Int("records", snap.Len()-len(snap.Cart)))
	report(0, "migration started")

	done := 0
	for _, st := range steps {
		if st.n == 0 {
			continue
		}
		weight := 100 / float64(nonEmpty)
		for i := 0; i < st.n; i++ {
			if err := ctx.Err(); err != nil {
				return &MigrationError{Collection: st.collection, ID: "-", Err: err}
			}
			id, key, err := m.save(ctx, st, i)
			if err != nil {
				merr := &MigrationError{Collection: st.collection, ID: id, NaturalKey: key, Err: err}
				logger.Error("migration aborted", zap.Error(merr))
				return merr
			}
			if (i+1)%reportEvery == 0 || i+1 == st.n {
				pct := (float64(done) + float64(i+1)/float64(st.n)) * weight
				if pct > 99 {
					pct = 99
				}
				report(pct, fmt.Sprintf("%s %d/%d", st.collection, i+1, st.n))
			}
		}
		done++
		logger.Info("collection migrated", zap.String("collection", st.collection), zap.Int("records", st.n))
	}

	if err := m.Mode.CommitToRemote(ctx); err != nil {
		return fmt.Errorf("commit persistence mode: %w", err)
	}
	report(100, "migration complete")
	logger.Info("migration complete")
	return nil
}

func (m *Migrator) save(ctx context.Context, st migrationStep, i int) (any, string, error) {
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}
	return st.save(ctx, i)
}

func (m *Migrator) plan(snap *types.Snapshot) []migrationStep {
	ids := newIDRemap()

	steps := []migrationStep{
		{types.CollectionCategories, len(snap.Categories), func(ctx context.Context, i int) (any, string, error) {
			c := *snap.Categories[i]
			local := c.ID
			c.Normalize()
			if err := m.Remote.Categories.Save(ctx, &c); err != nil {
				return local, c.Name, err
			}
			ids.categories.set(local, c.ID)
			return c.ID, c.Name, nil
		}},
		{types.CollectionAdditionals, len(snap.Additionals), func(ctx context.Context, i int) (any, string, error) {
			a := *snap.Additionals[i]
			local := a.ID
			ids.additional(&a)
			a.Normalize()
			if err := m.Remote.Additionals.Save(ctx, &a); err != nil {
				return local, a.Name, err
			}
			ids.additionals.set(local, a.ID)
			return a.ID, a.Name, nil
		}},
		{types.CollectionProducts, len(snap.Products), func(ctx context.Context, i int) (any, string, error) {
			p := *snap.Products[i]
			local := p.ID
			ids.product(&p)
			p.Normalize()
			if err := m.Remote.Products.Save(ctx, &p); err != nil {
				return local, p.Name, err
			}
			ids.products.set(local, p.ID)
			return p.ID, p.Name, nil
		}},
		{types.CollectionOrders, len(snap.Orders), func(ctx context.Context, i int) (any, string, error) {
			o := *snap.Orders[i]
			local := o.ID
			ids.order(&o)
			o.Normalize()
			if err := m.Remote.Orders.Save(ctx, &o); err != nil {
				return local, o.CustomerName, err
			}
			return o.ID, o.CustomerName, nil
		}},
		{types.CollectionCarouselSlides, len(snap.CarouselSlides), func(ctx context.Context, i int) (any, string, error) {
			s := *snap.CarouselSlides[i]
			local := s.ID
			if err := m.Remote.CarouselSlides.Save(ctx, &s); err != nil {
				return local, s.Image, err
			}
			return s.ID, s.Image, nil
		}},
		{types.CollectionPhrases, len(snap.Phrases), func(ctx context.Context, i int) (any, string, error) {
			p := *snap.Phrases[i]
			local := p.ID
			if err := m.Remote.Phrases.Save(ctx, &p); err != nil {
				return local, p.Text, err
			}
			return p.ID, p.Text, nil
		}},
	}

	configs := 0
	if snap.StoreConfig != nil {
		configs = 1
	}
	steps = append(steps,
		migrationStep{types.CollectionStoreConfig, configs, func(ctx context.Context, _ int) (any, string, error) {
			c := *snap.StoreConfig
			c.Normalize()
			return types.StoreConfigID, c.Name, m.Remote.StoreConfig.Save(ctx, &c)
		}},
		migrationStep{types.CollectionPageContent, len(snap.PageContent), func(ctx context.Context, i int) (any, string, error) {
			p := *snap.PageContent[i]
			p.Normalize()
			return p.ID, p.Title, m.Remote.PageContent.Save(ctx, &p)
		}},
		migrationStep{types.CollectionNotifications, len(snap.Notifications), func(ctx context.Context, i int) (any, string, error) {
			n := *snap.Notifications[i]
			local := n.ID
			n.Normalize()
			if err := m.Remote.Notifications.Save(ctx, &n); err != nil {
				return local, n.Title, err
			}
			return n.ID, n.Title, nil
		}},
	)
	return steps
}
