package dao

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"Storefront/models"
	"Storefront/pkg/log"
)

// Repo is the row-level helper every entity DAO embeds.
type Repo[T any] struct {
	Db     *gorm.DB
	entity string
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	var zero T
	entity := fmt.Sprintf("%T", zero)
	if t, ok := any(zero).(schema.Tabler); ok {
		entity = t.TableName()
	}
	return Repo[T]{Db: db, entity: entity}
}

// fail logs a remote failure with enough context to find the record, then
// returns it wrapped.
func (r *Repo[T]) fail(op string, id any, naturalKey string, err error) error {
	log.L.Error("remote store failed",
		zap.String("entity", r.entity),
		zap.String("op", op),
		zap.Any("id", id),
		zap.String("natural_key", naturalKey),
		zap.Error(err),
	)
	if naturalKey != "" {
		return fmt.Errorf("%s %s id=%v (%s): %w", op, r.entity, id, naturalKey, err)
	}
	return fmt.Errorf("%s %s id=%v: %w", op, r.entity, id, err)
}

func (r *Repo[T]) FindAll(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	var rows []*T
	if err := r.Db.WithContext(ctx).Scopes(scopes...).Find(&rows).Error; err != nil {
		return nil, r.fail("select", "*", "", err)
	}
	return rows, nil
}

// FindByID returns nil, nil when no row matches.
func (r *Repo[T]) FindByID(ctx context.Context, id any) (*T, error) {
	var row T
	err := r.Db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("select", id, "", err)
	}
	return &row, nil
}

// Upsert inserts the row or replaces every column of the existing one.
func (r *Repo[T]) Upsert(ctx context.Context, row *T, id any, naturalKey string) error {
	err := r.Db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(row).Error
	if err != nil {
		return r.fail("upsert", id, naturalKey, err)
	}
	return nil
}

func (r *Repo[T]) DeleteByID(ctx context.Context, id any) error {
	if err := r.Db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return r.fail("delete", id, "", err)
	}
	return nil
}

// UpdateColumn writes one column of one row and nothing else.
func (r *Repo[T]) UpdateColumn(ctx context.Context, id any, column string, value any) error {
	err := r.Db.WithContext(ctx).Model(new(T)).Where("id = ?", id).UpdateColumn(column, value).Error
	if err != nil {
		return r.fail("update "+column, id, "", err)
	}
	return nil
}

func (r *Repo[T]) MaxID(ctx context.Context) (int64, error) {
	var top int64
	err := r.Db.WithContext(ctx).Model(new(T)).Select("COALESCE(MAX(id), 0)").Scan(&top).Error
	if err != nil {
		return 0, r.fail("max id", "*", "", err)
	}
	return top, nil
}

// FindIDBy returns the id of the first row whose column equals value, or 0.
func (r *Repo[T]) FindIDBy(ctx context.Context, column string, value any) (int64, error) {
	var ids []int64
	err := r.Db.WithContext(ctx).Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order("id").Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return 0, r.fail("lookup by "+column, value, fmt.Sprint(value), err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

// freshAttempts bounds how often a fresh id is retried after another writer
// took it first.
const freshAttempts = 5

// ReconcileID maps a local id onto the remote id column. An id already in
// range is kept. An id past the range takes the id of the remote row sharing
// the natural key. Zero means the row has no remote id yet and needs a fresh
// one.
func (r *Repo[T]) ReconcileID(ctx context.Context, column string, naturalKey string, id int64) (int32, error) {
	if models.SafeID(id) {
		return int32(id), nil
	}
	if id <= math.MaxInt32 {
		return 0, nil
	}

	existing, err := r.FindIDBy(ctx, column, naturalKey)
	if err != nil {
		return 0, err
	}
	if models.SafeID(existing) {
		return int32(existing), nil
	}
	return 0, nil
}

// Save writes the row built for the reconciled id. Known ids are upserted;
// rows without one are inserted under the next id past the current maximum.
func (r *Repo[T]) Save(ctx context.Context, column string, naturalKey string, id int64, build func(id int32) *T) (int32, error) {
	remote, err := r.ReconcileID(ctx, column, naturalKey, id)
	if err != nil {
		return 0, err
	}
	if remote != 0 {
		return remote, r.Upsert(ctx, build(remote), remote, naturalKey)
	}
	return r.insertFresh(ctx, naturalKey, id, build)
}

// insertFresh never overwrites: a plain insert fails when a concurrent
// writer already holds the candidate id, and the next attempt reads the
// maximum again.
func (r *Repo[T]) insertFresh(ctx context.Context, naturalKey string, local int64, build func(id int32) *T) (int32, error) {
	for attempt := 0; attempt < freshAttempts; attempt++ {
		top, err := r.MaxID(ctx)
		if err != nil {
			return 0, err
		}
		if top >= math.MaxInt32 {
			return 0, r.fail("reconcile id", local, naturalKey, errors.New("id space exhausted"))
		}
		id := int32(top + 1)

		err = r.create(ctx, build(id))
		if err == nil {
			if local != 0 {
				log.L.Info("remote id reassigned",
					zap.String("entity", r.entity),
					zap.Int64("local_id", local),
					zap.Int32("remote_id", id),
					zap.String("natural_key", naturalKey),
				)
			}
			return id, nil
		}

		taken, ferr := r.FindByID(ctx, id)
		if ferr != nil {
			return 0, ferr
		}
		if taken == nil {
			return 0, r.fail("insert", id, naturalKey, err)
		}
		log.L.Warn("remote id taken concurrently, retrying",
			zap.String("entity", r.entity),
			zap.Int32("id", id),
			zap.Int("attempt", attempt+1),
		)
	}
	return 0, r.fail("insert", local, naturalKey, errors.New("no free id after retries"))
}

// create inserts without an upsert clause. Inside a transaction it runs in a
// savepoint so a failed attempt leaves the outer transaction usable.
func (r *Repo[T]) create(ctx context.Context, row *T) error {
	db := r.Db.WithContext(ctx)
	if committer, ok := db.Statement.ConnPool.(gorm.TxCommitter); ok && committer != nil {
		return db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(row).Error
		})
	}
	return db.Session(&gorm.Session{SkipDefaultTransaction: true}).Create(row).Error
}

// SyncSequence moves a postgres serial past the largest id after rows were
// written with explicit ids. Other dialects track this themselves.
func (r *Repo[T]) SyncSequence(ctx context.Context) error {
	if r.Db.Dialector.Name() != "postgres" {
		return nil
	}
	err := r.Db.WithContext(ctx).Exec(
		"SELECT setval(pg_get_serial_sequence(?, 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM "+r.entity+"), 1))",
		r.entity,
	).Error
	if err != nil {
		return r.fail("sync sequence", "*", "", err)
	}
	return nil
}
