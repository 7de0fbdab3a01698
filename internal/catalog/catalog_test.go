package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	products := c.Products()
	require.Len(t, products, 4)

	wantPrices := map[string]int64{"prod_1": 200, "prod_2": 250, "prod_3": 500, "prod_4": 1000}
	for _, p := range products {
		assert.True(t, p.Price.Equal(decimal.NewFromInt(wantPrices[p.ID])), "price of %s", p.ID)
		assert.Len(t, p.Chapters, 3)
		assert.NotEmpty(t, p.Features)
	}

	p, err := c.Product("prod_4")
	require.NoError(t, err)
	assert.Equal(t, "Institutional Playbook", p.Name)
	assert.Equal(t, 4, p.Level)

	landing := c.Landing()
	assert.Len(t, landing.Testimonials, 4)
	assert.Len(t, landing.PainPoints, 10)
	assert.Contains(t, landing.Countries, "Germany")
	assert.Len(t, landing.Products, 4)
}

func TestProductNotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Product("prod_missing")
	assert.ErrorIs(t, err, domainErrors.ErrProductNotFound)
}

func TestProductsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	products := c.Products()
	products[0].Name = "changed"
	assert.NotEqual(t, "changed", c.Products()[0].Name)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"no id":       "products:\n  - name: x\n    price: \"1\"\n",
		"duplicate":   "products:\n  - id: a\n    price: \"1\"\n  - id: a\n    price: \"1\"\n",
		"bad price":   "products:\n  - id: a\n    price: abc\n",
		"zero price":  "products:\n  - id: a\n    price: \"0\"\n",
		"broken yaml": "products: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - id: p\n    name: Single\n    price: \"9.99\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Products(), 1)
	assert.Equal(t, "9.99", c.Products()[0].Price.String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
