package service

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"Storefront/pkg/log"
	"Storefront/pkg/slot"
)

const migratedKey = "persistence:migrated"

type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// PersistenceContext decides which backend is authoritative. It starts in
// local mode and moves to remote exactly once.
type PersistenceContext struct {
	slots slot.Store

	mu          sync.Mutex
	initialized bool
	remote      atomic.Bool
}

func NewPersistenceContext(slots slot.Store) *PersistenceContext {
	return &PersistenceContext{slots: slots}
}

// Initialize reads the durable flag. Later calls are no-ops once a call has
// succeeded.
func (p *PersistenceContext) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}

	v, ok, err := p.slots.Get(ctx, migratedKey)
	if err != nil {
		return err
	}
	p.remote.Store(ok && v == "true")
	p.initialized = true
	log.L.Info("persistence mode loaded", zap.String("mode", string(p.Mode())))
	return nil
}

// ShouldUseRemote never blocks.
func (p *PersistenceContext) ShouldUseRemote() bool {
	return p.remote.Load()
}

// CommitToRemote persists the flag before flipping the in-memory mode, so a
// failed write leaves the process in local mode.
func (p *PersistenceContext) CommitToRemote(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.slots.Set(ctx, migratedKey, "true"); err != nil {
		return err
	}
	p.remote.Store(true)
	p.initialized = true
	log.L.Info("persistence mode committed", zap.String("mode", string(ModeRemote)))
	return nil
}

func (p *PersistenceContext) Mode() Mode {
	if p.ShouldUseRemote() {
		return ModeRemote
	}
	return ModeLocal
}
