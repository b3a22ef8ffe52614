package app

import (
	"context"

	"github.com/dwikikusuma/soundshop/internal/catalog/domain"
)

type ProductSource interface {
	Load(ctx context.Context) ([]domain.Product, error)
}
