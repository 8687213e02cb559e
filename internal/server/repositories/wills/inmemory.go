package wills

import (
	"context"
	"sort"
	"sync"

	"github.com/lasttx/willkeeper/internal/common"
	"github.com/lasttx/willkeeper/internal/server/models"
)

// InMemoryRepository is a mutex-guarded map with the same compare-and-set
// semantics as the PostgreSQL store. It backs engine tests and local runs.
type InMemoryRepository struct {
	mu    sync.RWMutex
	wills map[string]*models.Will
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{wills: make(map[string]*models.Will)}
}

func (r *InMemoryRepository) Create(ctx context.Context, will *models.Will) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wills[will.ID] = will.Clone()
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*models.Will, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wills[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return w.Clone(), nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Will, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Will
	for _, w := range r.wills {
		if w.Owner == owner {
			out = append(out, w.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status models.WillStatus) ([]*models.Will, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Will
	for _, w := range r.wills {
		if w.Status == status {
			out = append(out, w.Clone())
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateIfStatus(ctx context.Context, expected models.WillStatus, will *models.Will) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.wills[will.ID]
	if !ok {
		return common.ErrNotFound
	}
	if stored.Status != expected {
		return common.ErrStatusConflict
	}
	r.wills[will.ID] = will.Clone()
	return nil
}

func (r *InMemoryRepository) HardDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wills, id)
	return nil
}
