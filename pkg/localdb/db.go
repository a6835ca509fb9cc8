// Package localdb is the on-device record store: versioned collections of
// CBOR records kept in a Pebble database.
package localdb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"Storefront/config"
	"Storefront/pkg/log"
)

var (
	ErrUnavailable       = errors.New("localdb: store unavailable")
	ErrUnknownCollection = errors.New("localdb: unknown collection")
	ErrBadKey            = errors.New("localdb: bad key")
)

type Options struct {
	Dir      string
	InMemory bool
}

// DB opens its Pebble handle lazily and reopens it after the handle fails.
type DB struct {
	dir string
	fs  vfs.FS

	mu    sync.RWMutex
	cur   *pebble.DB
	group singleflight.Group

	collections cmap.ConcurrentMap[string, Collection]
}

func New(opts Options) *DB {
	d := &DB{
		dir:         opts.Dir,
		fs:          vfs.Default,
		collections: cmap.New[Collection](),
	}
	if opts.InMemory {
		d.fs = vfs.NewMem()
		if d.dir == "" {
			d.dir = "localdb"
		}
	}
	return d
}

func NewFromConfig(conf *config.Config) *DB {
	return New(Options{Dir: conf.Local.Dir, InMemory: conf.Local.InMemory})
}

// storageError marks failures reported by Pebble itself, which invalidate
// the handle.
type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string { return "localdb: " + e.op + ": " + e.err.Error() }
func (e *storageError) Unwrap() error { return e.err }

// Initialize opens the store and upgrades its schema. Concurrent callers
// share one attempt; a failed attempt may be retried.
func (d *DB) Initialize(ctx context.Context) error {
	_, err := d.handle(ctx)
	return err
}

func (d *DB) handle(ctx context.Context) (*pebble.DB, error) {
	d.mu.RLock()
	db := d.cur
	d.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := d.group.Do("open", func() (any, error) {
		return d.open(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*pebble.DB), nil
}

func (d *DB) open(ctx context.Context) (*pebble.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cur != nil {
		return d.cur, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db, err := pebble.Open(d.dir, &pebble.Options{FS: d.fs})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, d.dir, err)
	}
	if err := d.upgrade(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	d.cur = db
	log.L.Info("local store opened", zap.String("dir", d.dir), zap.Uint64("version", Version))
	return db, nil
}

// invalidate drops the handle so the next operation reopens it.
func (d *DB) invalidate(db *pebble.DB, cause error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cur != db {
		return
	}
	d.cur = nil
	if err := db.Close(); err != nil {
		log.L.Warn("close failed local store", zap.Error(err))
	}
	log.L.Error("local store handle invalidated", zap.Error(cause))
}

// with runs fn against a live handle. The read lock keeps the handle open
// for the duration of fn.
func (d *DB) with(ctx context.Context, fn func(db *pebble.DB) error) error {
	for attempt := 0; attempt < 2; attempt++ {
		if _, err := d.handle(ctx); err != nil {
			return err
		}
		d.mu.RLock()
		db := d.cur
		if db == nil {
			d.mu.RUnlock()
			continue
		}
		err := fn(db)
		d.mu.RUnlock()

		var se *storageError
		if errors.As(err, &se) {
			d.invalidate(db, err)
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	return ErrUnavailable
}

func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cur == nil {
		return nil
	}
	err := d.cur.Close()
	d.cur = nil
	return err
}

func (d *DB) collection(name string) (Collection, error) {
	c, ok := d.collections.Get(name)
	if !ok {
		return Collection{}, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// Collections lists the collections the store currently holds.
func (d *DB) Collections() []string {
	return d.collections.Keys()
}

func (d *DB) upgrade(db *pebble.DB) error {
	current, err := readVersion(db)
	if err != nil {
		return err
	}

	if current < Version {
		b := db.NewBatch()
		defer b.Close()
		for _, v := range versions {
			if v.number <= current {
				continue
			}
			for _, c := range v.collections {
				val, err := encMode.Marshal(c.KeyPath)
				if err != nil {
					return err
				}
				if err := b.Set(collectionMetaKey(c.Name), val, nil); err != nil {
					return err
				}
			}
		}
		val, err := encMode.Marshal(Version)
		if err != nil {
			return err
		}
		if err := b.Set(versionKey, val, nil); err != nil {
			return err
		}
		if err := b.Commit(pebble.Sync); err != nil {
			return fmt.Errorf("commit schema v%d: %w", Version, err)
		}
		log.L.Info("local store upgraded", zap.Uint64("from", current), zap.Uint64("to", Version))
	}

	return d.loadCollections(db)
}

func readVersion(db *pebble.DB) (uint64, error) {
	val, closer, err := db.Get(versionKey)
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	defer closer.Close()

	var v uint64
	if err := decMode.Unmarshal(val, &v); err != nil {
		return 0, fmt.Errorf("decode schema version: %w", err)
	}
	return v, nil
}

func (d *DB) loadCollections(db *pebble.DB) error {
	prefix := collectionMetaPrefix()
	upper := append(prefix[:len(prefix)-1:len(prefix)-1], sep+1)
	iter := db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upper})
	for iter.First(); iter.Valid(); iter.Next() {
		name := string(iter.Key()[len(prefix):])
		var keyPath []string
		if err := decMode.Unmarshal(iter.Value(), &keyPath); err != nil {
			_ = iter.Close()
			return fmt.Errorf("decode collection %s: %w", name, err)
		}
		d.collections.Set(name, Collection{Name: name, KeyPath: keyPath})
	}
	return iter.Close()
}
