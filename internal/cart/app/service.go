package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/soundshop/internal/cart/domain"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
)

type Service struct {
	repo     CartRepository
	products ProductLookup
}

func NewService(repo CartRepository, products ProductLookup) *Service {
	return &Service{
		repo:     repo,
		products: products,
	}
}

func (s *Service) View(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, _, err := s.get(ctx, sessionID)
	return cart, err
}

// AddToCart creates the session cart on first use.
func (s *Service) AddToCart(ctx context.Context, sessionID string, productID int) (domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}

	product, ok := s.products.Product(productID)
	if !ok {
		return domain.Cart{}, ErrProductNotFound
	}

	cart, _, err := s.get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Add(product)
	if err := s.repo.Put(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *Service) Increase(ctx context.Context, sessionID string, productID int) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) bool { return c.Increase(productID) })
}

func (s *Service) Decrease(ctx context.Context, sessionID string, productID int) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) bool { return c.Decrease(productID) })
}

func (s *Service) Remove(ctx context.Context, sessionID string, productID int) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *domain.Cart) bool { return c.Remove(productID) })
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Clear(ctx, sessionID)
}

// mutate writes back only when a cart exists and fn changed it.
func (s *Service) mutate(ctx context.Context, sessionID string, fn func(*domain.Cart) bool) (domain.Cart, error) {
	cart, found, err := s.get(ctx, sessionID)
	if err != nil || !found {
		return cart, err
	}

	if !fn(&cart) {
		return cart, nil
	}

	if err := s.repo.Put(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *Service) get(ctx context.Context, sessionID string) (domain.Cart, bool, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		return domain.Cart{}, false, nil
	}
	if err != nil {
		return domain.Cart{}, false, err
	}
	return cart, true, nil
}
