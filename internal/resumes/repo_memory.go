package resumes

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]Record)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.records[rec.UserID]
	if ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		rec.PhotoPath = existing.PhotoPath
	} else {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	r.records[rec.UserID] = rec
	return nil
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) UpdatePhoto(ctx context.Context, userID, photoPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	rec, ok := r.records[userID]
	if !ok {
		rec = Record{ID: uuid.NewString(), UserID: userID, CreatedAt: now}
	}
	rec.PhotoPath = photoPath
	rec.UpdatedAt = now
	r.records[userID] = rec
	return nil
}
