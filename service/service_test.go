package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Storefront/dao"
	"Storefront/pkg/localdb"
	"Storefront/pkg/slot"
)

var fixedNow = time.Date(2026, 10, 16, 19, 30, 0, 0, time.UTC)

type fixture struct {
	svc    *DataService
	mode   *PersistenceContext
	local  *LocalBackend
	remote *dao.Store
	slots  slot.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	ldb := localdb.New(localdb.Options{InMemory: true})
	require.NoError(t, ldb.Initialize(ctx))
	t.Cleanup(func() { _ = ldb.Close() })

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	store := dao.NewStore(gdb)
	require.NoError(t, store.AutoMigrate(ctx))

	slots, err := slot.NewFile(t.TempDir())
	require.NoError(t, err)
	mode := NewPersistenceContext(slots)
	require.NoError(t, mode.Initialize(ctx))

	local := NewLocalBackend(ldb)
	svc := NewDataService(mode, local, &RemoteBackend{Store: store, Timeout: 5 * time.Second}, slots)
	svc.Now = func() time.Time { return fixedNow }
	svc.Location = time.UTC
	t.Cleanup(svc.Wait)

	return &fixture{svc: svc, mode: mode, local: local, remote: store, slots: slots}
}

func (f *fixture) useRemote(t *testing.T) {
	t.Helper()
	require.NoError(t, f.mode.CommitToRemote(context.Background()))
}

// forbiddenRemote panics on any data call.
type forbiddenRemote struct {
	DataBackend
}

func (forbiddenRemote) Name() Mode { return ModeRemote }

type flakySlots struct {
	slot.Store
	failures int
}

func (f *flakySlots) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failures > 0 {
		f.failures--
		return "", false, errors.New("slot offline")
	}
	return f.Store.Get(ctx, key)
}

func (f *flakySlots) Set(ctx context.Context, key, value string) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("slot offline")
	}
	return f.Store.Set(ctx, key, value)
}
