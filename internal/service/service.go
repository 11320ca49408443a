// Package service implements the account-ledger operations exposed to
// presentation collaborators: identity lookup and authentication, account
// creation, deposits and withdrawals, and history reconstruction.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/bankbook/bankbook/internal/models"
	"github.com/bankbook/bankbook/internal/store"
)

// UserStore captures the persistence operations the service needs.
type UserStore interface {
	Load() (models.Store, store.LoadReport, error)
	Save(models.Store) error
}

// Service owns the load-mutate-save cycle over the persisted store. A single
// mutex serializes every cycle so two overlapping mutations cannot silently
// overwrite each other's writes.
type Service struct {
	mu     sync.Mutex
	store  UserStore
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Service over the given store.
func New(st UserStore, logger *slog.Logger) *Service {
	return &Service{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// load reads the full store, logging anything the lenient loader dropped or
// rewrote. Callers must hold s.mu.
func (s *Service) load() (models.Store, error) {
	users, report, err := s.store.Load()
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeStorageIO,
			Message: "failed to load user records",
			Err:     err,
		}
	}
	if !report.Empty() {
		s.logger.Warn("lenient load dropped or rewrote records",
			"skipped", len(report.Skipped),
			"defaulted", len(report.Defaulted),
			"migrated", len(report.Migrated),
		)
	}
	return users, nil
}

// save persists the full store. There is no retry and no rollback: the
// caller's in-memory mutation stands even when the write fails, and the
// failure is surfaced as a storage_io error.
func (s *Service) save(users models.Store) error {
	if err := s.store.Save(users); err != nil {
		s.logger.Warn("failed to persist user records", "error", err)
		return &ServiceError{
			Code:    ErrCodeStorageIO,
			Message: "failed to persist user records",
			Err:     err,
		}
	}
	return nil
}

func (s *Service) timestamp() string {
	return s.now().Format(models.TimeLayout)
}
