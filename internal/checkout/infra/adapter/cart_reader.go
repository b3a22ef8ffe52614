package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/soundshop/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/soundshop/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, sessionID string) ([]checkoutapp.CartLine, error) {
	cart, err := r.svc.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := cart.Lines()
	items := make([]checkoutapp.CartLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, checkoutapp.CartLine{
			ProductID: l.ID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  int64(l.Quantity),
		})
	}
	return items, nil
}

func (r *CartServiceReader) ClearCart(ctx context.Context, sessionID string) error {
	return r.svc.Clear(ctx, sessionID)
}
