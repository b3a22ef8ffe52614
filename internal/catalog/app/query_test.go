package app

import (
	"testing"

	"github.com/dwikikusuma/soundshop/internal/catalog/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, name string, price int64, category string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: decimal.NewFromInt(price), Category: category}
}

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func testCatalog() []domain.Product {
	return []domain.Product{
		product(1, "Acoustic Guitar", 100, "string"),
		product(2, "Drum Kit", 50, "percussion"),
		product(3, "Electric GUITAR", 50, "string"),
		product(4, "Violin", 10, "string"),
		product(5, "Cajon", 50, "percussion"),
		product(6, "Grand Piano", 900, "keys"),
	}
}

func TestParsePriceRange(t *testing.T) {
	t.Run("valid -> bounds", func(t *testing.T) {
		r, ok := ParsePriceRange("10-50")
		require.True(t, ok)
		assert.True(t, r.Min.Equal(decimal.NewFromInt(10)))
		assert.True(t, r.Max.Equal(decimal.NewFromInt(50)))
	})

	t.Run("decimals and spaces -> bounds", func(t *testing.T) {
		r, ok := ParsePriceRange(" 9.5 - 20.25 ")
		require.True(t, ok)
		assert.Equal(t, "9.5", r.Min.String())
		assert.Equal(t, "20.25", r.Max.String())
	})

	for _, in := range []string{"", "10", "abc-50", "10-xyz", "-50", "10-", "ten-twenty"} {
		t.Run("malformed "+in, func(t *testing.T) {
			_, ok := ParsePriceRange(in)
			assert.False(t, ok)
		})
	}
}

func TestParseFilter(t *testing.T) {
	t.Run("all dimensions", func(t *testing.T) {
		f := ParseFilter("gui", "10-50", "string", "high")
		assert.Equal(t, "gui", f.Search)
		assert.Equal(t, "string", f.Category)
		assert.Equal(t, SortHigh, f.Sort)
		require.NotNil(t, f.Price)
	})

	t.Run("malformed price and sort dropped", func(t *testing.T) {
		f := ParseFilter("", "cheap", "", "random")
		assert.Nil(t, f.Price)
		assert.Equal(t, SortNone, f.Sort)
	})
}

func TestQuery(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{name: "no filter keeps order", filter: Filter{}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "search is case-insensitive", filter: Filter{Search: "gUiTaR"}, want: []int{1, 3}},
		{name: "category exact", filter: Filter{Category: "percussion"}, want: []int{2, 5}},
		{name: "category is case-sensitive", filter: Filter{Category: "String"}, want: []int{}},
		{name: "price range inclusive", filter: ParseFilter("", "10-50", "", ""), want: []int{2, 3, 4, 5}},
		{name: "inverted range matches nothing", filter: ParseFilter("", "50-10", "", ""), want: []int{}},
		{name: "malformed range ignored", filter: ParseFilter("", "x-50", "", ""), want: []int{1, 2, 3, 4, 5, 6}},
		{name: "sort low is stable", filter: Filter{Sort: SortLow}, want: []int{4, 2, 3, 5, 1, 6}},
		{name: "sort high is stable", filter: Filter{Sort: SortHigh}, want: []int{6, 1, 2, 3, 5, 4}},
		{
			name:   "filters compose",
			filter: Filter{Search: "guitar", Category: "string", Sort: SortLow, Price: &PriceRange{Min: decimal.Zero, Max: decimal.NewFromInt(100)}},
			want:   []int{3, 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Query(testCatalog(), tc.filter))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	in := testCatalog()
	_ = Query(in, Filter{Sort: SortHigh, Category: "string"})
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, ids(in)); diff != "" {
		t.Fatalf("input reordered (-want +got):\n%s", diff)
	}
}

func TestQueryOrderingProperties(t *testing.T) {
	in := testCatalog()

	low := Query(in, Filter{Sort: SortLow})
	for i := 1; i < len(low); i++ {
		if low[i-1].Price.GreaterThan(low[i].Price) {
			t.Fatalf("sort=low not non-decreasing at %d", i)
		}
	}

	high := Query(in, Filter{Sort: SortHigh})
	for i := 1; i < len(high); i++ {
		if high[i-1].Price.LessThan(high[i].Price) {
			t.Fatalf("sort=high not non-increasing at %d", i)
		}
	}

	for _, category := range []string{"string", "percussion", "keys", "none"} {
		got := Query(in, Filter{Category: category})
		var want []int
		for _, p := range in {
			if p.Category == category {
				want = append(want, p.ID)
			}
		}
		if diff := cmp.Diff(want, ids(got), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("category %q (-want +got):\n%s", category, diff)
		}
	}
}
