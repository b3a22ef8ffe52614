package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dwikikusuma/soundshop/internal/catalog/app"
	"github.com/dwikikusuma/soundshop/internal/catalog/domain"
)

type ProductSource struct {
	path string
}

func NewProductSource(path string) *ProductSource {
	return &ProductSource{path: path}
}

func (s *ProductSource) Load(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app.ErrCatalogLoad, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", app.ErrCatalogLoad, s.path, err)
	}

	for _, p := range products {
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d has negative price", app.ErrCatalogLoad, p.ID)
		}
	}

	return products, nil
}
