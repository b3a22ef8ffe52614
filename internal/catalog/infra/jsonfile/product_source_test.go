package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dwikikusuma/soundshop/internal/catalog/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestProductSource_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("valid array", func(t *testing.T) {
		path := writeFile(t, `[
			{"id": 1, "name": "Guitar", "price": 100, "category": "string", "image": "/img/guitar.jpg"},
			{"id": 2, "name": "Ukulele", "price": "45.50", "category": "string"}
		]`)

		products, err := NewProductSource(path).Load(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Guitar", products[0].Name)
		assert.Equal(t, "/img/guitar.jpg", products[0].Image)
		assert.Equal(t, "45.5", products[1].Price.String())
	})

	t.Run("missing file -> ErrCatalogLoad", func(t *testing.T) {
		_, err := NewProductSource(filepath.Join(t.TempDir(), "none.json")).Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, app.ErrCatalogLoad))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("corrupt json -> ErrCatalogLoad", func(t *testing.T) {
		_, err := NewProductSource(writeFile(t, `[{"id": 1,`)).Load(ctx)
		assert.True(t, errors.Is(err, app.ErrCatalogLoad))
	})

	t.Run("object instead of array -> ErrCatalogLoad", func(t *testing.T) {
		_, err := NewProductSource(writeFile(t, `{"id": 1}`)).Load(ctx)
		assert.True(t, errors.Is(err, app.ErrCatalogLoad))
	})

	t.Run("negative price -> ErrCatalogLoad", func(t *testing.T) {
		_, err := NewProductSource(writeFile(t, `[{"id": 1, "name": "x", "price": -1}]`)).Load(ctx)
		assert.True(t, errors.Is(err, app.ErrCatalogLoad))
	})

	t.Run("shipped catalog parses", func(t *testing.T) {
		products, err := NewProductSource(filepath.Join("..", "..", "..", "..", "data", "products.json")).Load(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, products)
	})
}
