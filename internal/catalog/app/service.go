package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/soundshop/internal/catalog/domain"
)

var ErrCatalogLoad = errors.New("catalog load failed")

type Service struct {
	catalog *domain.Catalog
}

func NewService(catalog *domain.Catalog) *Service {
	if catalog == nil {
		catalog = domain.NewCatalog(nil)
	}
	return &Service{
		catalog: catalog,
	}
}

// LoadCatalog reads the catalog once. A failing source is logged and yields an empty catalog.
func LoadCatalog(ctx context.Context, src ProductSource, log *slog.Logger) *domain.Catalog {
	products, err := src.Load(ctx)
	if err != nil {
		log.Warn("catalog load failed, serving empty catalog", slog.Any("err", err))
		return domain.NewCatalog(nil)
	}

	log.Info("catalog loaded", slog.Int("products", len(products)))
	return domain.NewCatalog(products)
}

func (s *Service) List(f Filter) []domain.Product {
	return Query(s.catalog.Products(), f)
}

func (s *Service) Product(id int) (domain.Product, bool) {
	return s.catalog.Product(id)
}

func (s *Service) Categories() []string {
	return s.catalog.Categories()
}

func (s *Service) Len() int {
	return s.catalog.Len()
}
