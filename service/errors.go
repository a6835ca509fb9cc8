package service

import (
	"errors"
	"fmt"
)

var (
	ErrMigrationRunning = errors.New("migration already running")
	ErrAlreadyMigrated  = errors.New("remote backend is already authoritative")
	ErrNoBackup         = errors.New("no backup found")
	ErrBadPayload       = errors.New("malformed import payload")
)

// MigrationError names the record whose remote write stopped a migration.
type MigrationError struct {
	Collection string
	ID         any
	NaturalKey string
	Err        error
}

func (e *MigrationError) Error() string {
	if e.NaturalKey != "" {
		return fmt.Sprintf("migrate %s id=%v (%s): %v", e.Collection, e.ID, e.NaturalKey, e.Err)
	}
	return fmt.Sprintf("migrate %s id=%v: %v", e.Collection, e.ID, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}
