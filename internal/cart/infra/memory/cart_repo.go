package memory

import (
	"context"
	"time"

	"github.com/dwikikusuma/soundshop/internal/cart/app"
	"github.com/dwikikusuma/soundshop/internal/cart/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CartRepo keeps session carts in process memory. The least recently written session is
// evicted once maxSessions is reached, and a session expires ttl after its last write.
// A ttl of zero disables expiry.
type CartRepo struct {
	cache *expirable.LRU[string, domain.Cart]
}

func NewCartRepo(maxSessions int, ttl time.Duration) *CartRepo {
	if maxSessions < 0 {
		maxSessions = 0
	}
	return &CartRepo{
		cache: expirable.NewLRU[string, domain.Cart](maxSessions, nil, ttl),
	}
}

func (r *CartRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, ok := r.cache.Get(sessionID)
	if !ok {
		return domain.Cart{}, app.ErrCartNotFound
	}
	return cart.Clone(), nil
}

func (r *CartRepo) Put(ctx context.Context, sessionID string, cart domain.Cart) error {
	r.cache.Add(sessionID, cart.Clone())
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, sessionID string) error {
	r.cache.Add(sessionID, domain.Cart{})
	return nil
}

func (r *CartRepo) Len() int {
	return r.cache.Len()
}
