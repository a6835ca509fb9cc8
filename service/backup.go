package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Storefront/pkg/log"
)

const (
	backupDataKey = "backup:data"
	backupAtKey   = "backup:timestamp"
)

type BackupResult struct {
	At  time.Time
	Err error
}

// BackupData stores the full export and its timestamp in the backup slots,
// whichever backend is authoritative.
func (s *DataService) BackupData(ctx context.Context) (time.Time, error) {
	payload, err := s.ExportJSON(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("backup: %w", err)
	}
	at := s.Now().UTC()
	if err := s.Slots.Set(ctx, backupDataKey, string(payload)); err != nil {
		return time.Time{}, fmt.Errorf("backup: %w", err)
	}
	if err := s.Slots.Set(ctx, backupAtKey, at.Format(time.RFC3339Nano)); err != nil {
		return time.Time{}, fmt.Errorf("backup: %w", err)
	}
	log.L.Info("backup written", zap.Time("at", at), zap.Int("bytes", len(payload)))
	return at, nil
}

// BackupAsync runs BackupData in the background. The channel yields one
// result and is closed; a failure is logged even when nobody reads it.
func (s *DataService) BackupAsync(ctx context.Context) <-chan BackupResult {
	ch := make(chan BackupResult, 1)
	id := uuid.NewString()
	ctx = context.WithoutCancel(ctx)
	s.tasks.Go(func() {
		defer close(ch)
		at, err := s.BackupData(ctx)
		if err != nil {
			log.L.Error("async backup failed", zap.String("task", id), zap.Error(err))
		}
		ch <- BackupResult{At: at, Err: err}
	})
	return ch
}

// LastBackupAt reports when the stored backup was taken.
func (s *DataService) LastBackupAt(ctx context.Context) (time.Time, bool, error) {
	v, ok, err := s.Slots.Get(ctx, backupAtKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	at, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("backup timestamp %q: %w", v, err)
	}
	return at, true, nil
}

// RestoreFromBackup feeds the stored backup back through ImportData.
func (s *DataService) RestoreFromBackup(ctx context.Context) ([]string, error) {
	v, ok, err := s.Slots.Get(ctx, backupDataKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoBackup
	}
	return s.ImportData(ctx, []byte(v))
}
