package catalog

import (
	"context"
	"sync"

	"github.com/tushyr/thekabar/internal/domain"
)

// MemoryRepo is an in-memory domain.ShopRepository. It backs tests and
// DB-less development runs; the process keeps a mutable copy of the seed,
// so userReported flags survive until restart, like the aggregator tallies.
type MemoryRepo struct {
	mu    sync.RWMutex
	shops []domain.Shop
}

// NewMemoryRepo copies the given shops into a fresh repository.
func NewMemoryRepo(shops []domain.Shop) *MemoryRepo {
	cp := make([]domain.Shop, len(shops))
	copy(cp, shops)
	return &MemoryRepo{shops: cp}
}

func (r *MemoryRepo) List(_ context.Context) ([]domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Shop, len(r.shops))
	copy(out, r.shops)
	return out, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int) (*domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shops {
		if s.ID == id {
			shop := s
			return &shop, nil
		}
	}
	return nil, domain.ErrShopNotFound
}

func (r *MemoryRepo) SetUserReported(_ context.Context, id int, reported domain.UserReported) (*domain.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shops {
		if r.shops[i].ID == id {
			r.shops[i].UserReported = reported
			shop := r.shops[i]
			return &shop, nil
		}
	}
	return nil, domain.ErrShopNotFound
}
