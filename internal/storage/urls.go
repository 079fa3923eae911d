package storage

import (
	"context"
	"sync"
	"time"

	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/urlnorm"
)

// MaxCodeAttempts bounds the number of draws made for one new record.
const MaxCodeAttempts = 10

// CodeGenerator produces candidate short codes.
type CodeGenerator interface {
	Generate() string
}

// URLRegistry keeps short code records in memory.
type URLRegistry struct {
	mu      sync.RWMutex
	records map[string]*models.URLRecord
	codes   CodeGenerator
	now     func() time.Time
}

// NewURLRegistry creates an empty registry drawing codes from gen.
func NewURLRegistry(gen CodeGenerator) *URLRegistry {
	return &URLRegistry{
		records: make(map[string]*models.URLRecord),
		codes:   gen,
		now:     time.Now,
	}
}

// Exists reports whether short is registered.
func (r *URLRegistry) Exists(_ context.Context, short string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.records[short]
	return ok
}

// Get returns a copy of the record for short.
func (r *URLRegistry) Get(_ context.Context, short string) (*models.URLRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[short]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

// IsOwnedBy reports whether the record for short belongs to userID.
func (r *URLRegistry) IsOwnedBy(_ context.Context, short, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[short]
	if !ok {
		return false, ErrNotFound
	}
	return rec.UserID == userID, nil
}

// ListByOwner returns copies of all records owned by userID in no particular order.
func (r *URLRegistry) ListByOwner(_ context.Context, userID string) []models.URLRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.URLRecord, 0)
	for _, rec := range r.records {
		if rec.UserID == userID {
			result = append(result, *rec.Clone())
		}
	}
	return result
}

// Create stores longURL under a freshly drawn short code owned by ownerID.
func (r *URLRegistry) Create(_ context.Context, longURL, ownerID string) (*models.URLRecord, error) {
	if longURL == "" {
		return nil, ErrEmptyField
	}
	target := urlnorm.Normalize(longURL)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < MaxCodeAttempts; i++ {
		short := r.codes.Generate()
		if _, taken := r.records[short]; taken {
			continue
		}

		rec := &models.URLRecord{
			Short:     short,
			Original:  target,
			UserID:    ownerID,
			CreatedAt: r.now().UTC(),
			Visits:    models.NewVisitLog(),
		}
		r.records[short] = rec
		return rec.Clone(), nil
	}

	return nil, ErrCapacityExhausted
}

// Update replaces the destination of short when requesterID owns it.
func (r *URLRegistry) Update(_ context.Context, short, newLongURL, requesterID string) error {
	if newLongURL == "" {
		return ErrEmptyField
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.owned(short, requesterID)
	if err != nil {
		return err
	}
	rec.Original = urlnorm.Normalize(newLongURL)
	return nil
}

// Delete removes short when requesterID owns it.
func (r *URLRegistry) Delete(_ context.Context, short, requesterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.owned(short, requesterID); err != nil {
		return err
	}
	delete(r.records, short)
	return nil
}

// owned requires r.mu to be held for writing.
func (r *URLRegistry) owned(short, requesterID string) (*models.URLRecord, error) {
	rec, ok := r.records[short]
	if !ok {
		return nil, ErrNotFound
	}
	if rec.UserID != requesterID {
		return nil, ErrOwnership
	}
	return rec, nil
}

// RecordVisits appends visits to the logs of their records. Visits of codes
// that no longer exist are skipped.
func (r *URLRegistry) RecordVisits(_ context.Context, visits []models.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range visits {
		rec, ok := r.records[v.Short]
		if !ok {
			continue
		}
		rec.Visits.Add(v)
	}
	return nil
}

// Count returns the number of records.
func (r *URLRegistry) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
