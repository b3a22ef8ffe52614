package app

import (
	"context"

	"github.com/dwikikusuma/soundshop/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/soundshop/internal/catalog/domain"
)

// CartRepository stores one cart per session id. Get reports ErrCartNotFound for unknown sessions.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Put(ctx context.Context, sessionID string, cart domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

type ProductLookup interface {
	Product(id int) (catalogdomain.Product, bool)
}
