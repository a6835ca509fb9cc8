package localdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// Txn stages writes that commit together or not at all.
type Txn struct {
	d     *DB
	batch *pebble.Batch
}

// Put stores record under the key read from its key path fields.
func (t *Txn) Put(collection string, record any) error {
	c, err := t.d.collection(collection)
	if err != nil {
		return err
	}
	val, err := encMode.Marshal(record)
	if err != nil {
		return fmt.Errorf("localdb: encode %s record: %w", collection, err)
	}
	key, err := c.keyOf(val)
	if err != nil {
		return err
	}
	return t.batch.Set(recordKey(c.Name, key), val, nil)
}

func (t *Txn) Delete(collection string, key ...any) error {
	c, err := t.d.collection(collection)
	if err != nil {
		return err
	}
	k, err := encodeKey(key)
	if err != nil {
		return err
	}
	return t.batch.Delete(recordKey(c.Name, k), nil)
}

// Clear removes every record of a collection.
func (t *Txn) Clear(collection string) error {
	c, err := t.d.collection(collection)
	if err != nil {
		return err
	}
	lower, upper := recordBounds(c.Name)
	return t.batch.DeleteRange(lower, upper, nil)
}

// Update runs fn in a write batch and commits it durably when fn succeeds.
func (d *DB) Update(ctx context.Context, fn func(tx *Txn) error) error {
	return d.with(ctx, func(db *pebble.DB) error {
		b := db.NewBatch()
		defer b.Close()
		if err := fn(&Txn{d: d, batch: b}); err != nil {
			return err
		}
		if err := b.Commit(pebble.Sync); err != nil {
			return &storageError{op: "commit", err: err}
		}
		return nil
	})
}

func (d *DB) Put(ctx context.Context, collection string, record any) error {
	return d.Update(ctx, func(tx *Txn) error {
		return tx.Put(collection, record)
	})
}

func (d *DB) Delete(ctx context.Context, collection string, key ...any) error {
	return d.Update(ctx, func(tx *Txn) error {
		return tx.Delete(collection, key...)
	})
}

// Get returns the record stored under key, or nil when there is none.
func Get[T any](ctx context.Context, d *DB, collection string, key ...any) (*T, error) {
	var out *T
	err := d.with(ctx, func(db *pebble.DB) error {
		c, err := d.collection(collection)
		if err != nil {
			return err
		}
		k, err := encodeKey(key)
		if err != nil {
			return err
		}
		val, closer, err := db.Get(recordKey(c.Name, k))
		if errors.Is(err, pebble.ErrNotFound) {
			return nil
		}
		if err != nil {
			return &storageError{op: "get " + collection, err: err}
		}
		defer closer.Close()

		var rec T
		if err := decMode.Unmarshal(val, &rec); err != nil {
			return fmt.Errorf("localdb: decode %s record: %w", collection, err)
		}
		out = &rec
		return nil
	})
	return out, err
}

// GetAll returns every record of a collection in key order.
func GetAll[T any](ctx context.Context, d *DB, collection string) ([]T, error) {
	out := make([]T, 0)
	err := d.with(ctx, func(db *pebble.DB) error {
		c, err := d.collection(collection)
		if err != nil {
			return err
		}
		lower, upper := recordBounds(c.Name)
		iter := db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
		for iter.First(); iter.Valid(); iter.Next() {
			var rec T
			if err := decMode.Unmarshal(iter.Value(), &rec); err != nil {
				_ = iter.Close()
				return fmt.Errorf("localdb: decode %s record: %w", collection, err)
			}
			out = append(out, rec)
		}
		if err := iter.Close(); err != nil {
			return &storageError{op: "scan " + collection, err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
