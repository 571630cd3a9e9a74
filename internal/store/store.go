// Package store holds every user's address book in memory and writes the
// whole table through a repository.SnapshotStore after each mutation.
//
// All access to one user's record goes through that record's mutex, so a
// conversation transition (mode change plus contact mutation) is atomic per
// user while different users proceed in parallel.
//
// The conversation machine goes through Update so a whole transition runs
// under one lock. The single-operation wrappers in operations.go back the
// operator commands under "savecnt contacts".
package store

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/repository"
)

// Store is the Contact Store. Create it with Open.
type Store struct {
	snapshots repository.SnapshotStore
	logger    *slog.Logger

	mu      sync.Mutex // guards entries and every entry.saved
	entries map[int64]*entry

	saveMu sync.Mutex // serializes snapshot writes
}

type entry struct {
	mu    sync.Mutex
	rec   *domain.UserRecord
	saved *domain.UserRecord // last published clone, nil until first change
}

// Open loads the whole table. A load failure is logged and yields an empty
// table: starting with no data is preferred over refusing to start.
func Open(ctx context.Context, snapshots repository.SnapshotStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		snapshots: snapshots,
		logger:    logger,
		entries:   make(map[int64]*entry),
	}

	table, err := snapshots.LoadAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "snapshot_load_failed", "error", err.Error())
		return s
	}
	for id, rec := range table {
		rec.TakeDirty()
		s.entries[id] = &entry{rec: rec, saved: rec.Clone()}
	}
	logger.InfoContext(ctx, "snapshot_loaded", "users", len(table))
	return s
}

// Update runs fn on the user's record while holding that user's lock,
// creating the record on first use. If fn changed the record the whole
// table is persisted before Update returns. A persistence failure is logged
// and the in-memory change is kept; Update only returns fn's error.
func (s *Store) Update(ctx context.Context, userID int64, fn func(r *domain.UserRecord) error) error {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	err := fn(e.rec)
	if e.rec.TakeDirty() {
		s.mu.Lock()
		e.saved = e.rec.Clone()
		s.mu.Unlock()
		s.persist(ctx)
	}
	return err
}

// View runs fn on the user's record under its lock. fn must not mutate it.
// An unknown user is shown an empty record and is not added to the table.
func (s *Store) View(ctx context.Context, userID int64, fn func(r *domain.UserRecord)) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	s.mu.Unlock()
	if !ok {
		fn(newRecord(userID))
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.rec)
}

// Snapshot returns a copy of the user's record.
func (s *Store) Snapshot(ctx context.Context, userID int64) *domain.UserRecord {
	var cp *domain.UserRecord
	s.View(ctx, userID, func(r *domain.UserRecord) { cp = r.Clone() })
	return cp
}

// UserIDs lists, in ascending order, the users whose records are part of
// the persisted table: those loaded at Open and those changed since.
func (s *Store) UserIDs() []int64 {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.entries))
	for id, e := range s.entries {
		if e.saved != nil {
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// Flush writes the current table regardless of pending changes. Used on
// shutdown. Unlike Update it reports the error.
func (s *Store) Flush(ctx context.Context) error {
	return s.save(ctx)
}

func (s *Store) entry(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{rec: newRecord(userID)}
		s.entries[userID] = e
	}
	return e
}

func newRecord(userID int64) *domain.UserRecord {
	r := domain.NewUserRecord(userID)
	r.Contacts = []domain.Contact{}
	return r
}

func (s *Store) persist(ctx context.Context) {
	if err := s.save(ctx); err != nil {
		s.logger.ErrorContext(ctx, "snapshot_save_failed", "error", err.Error())
	}
}

// save collects the published clones and writes them. Writes are local and
// not cancelable, so the caller's cancellation is detached.
func (s *Store) save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	records := make([]*domain.UserRecord, 0, len(s.entries))
	for _, e := range s.entries {
		if e.saved != nil {
			records = append(records, e.saved)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(records, func(a, b *domain.UserRecord) int {
		switch {
		case a.UserID < b.UserID:
			return -1
		case a.UserID > b.UserID:
			return 1
		}
		return 0
	})
	return s.snapshots.SaveAll(context.WithoutCancel(ctx), records)
}
