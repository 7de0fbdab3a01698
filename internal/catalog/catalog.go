// Package catalog serves the read-only product catalog and landing content.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
)

//go:embed catalog.yaml
var defaultDocument []byte

type productDoc struct {
	model.Product `yaml:",inline"`
	Price         string `yaml:"price"`
}

type document struct {
	Products     []productDoc        `yaml:"products"`
	Testimonials []model.Testimonial `yaml:"testimonials"`
	PainPoints   []string            `yaml:"painPoints"`
	Countries    []string            `yaml:"countries"`
}

// Catalog is an immutable in-memory product catalog.
type Catalog struct {
	products []model.Product
	byID     map[string]int
	landing  model.Landing
}

// Default returns catalog built from the embedded document.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads catalog from path, falling back to the embedded document when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds catalog from YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(doc.Products))}
	for _, p := range doc.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %q has no id", p.Name)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog product %q", p.ID)
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s price: %w", p.ID, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("product %s price must be positive", p.ID)
		}
		product := p.Product
		product.Price = price
		c.byID[product.ID] = len(c.products)
		c.products = append(c.products, product)
	}

	c.landing = model.Landing{
		Testimonials: doc.Testimonials,
		PainPoints:   doc.PainPoints,
		Countries:    doc.Countries,
	}
	return c, nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []model.Product {
	return slices.Clone(c.products)
}

// Product returns product by id.
func (c *Catalog) Product(id string) (*model.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	p := c.products[idx]
	return &p, nil
}

// Landing returns marketing content together with products.
func (c *Catalog) Landing() model.Landing {
	l := c.landing
	l.Products = c.Products()
	return l
}
