package model

import "github.com/shopspring/decimal"

// Chapter summarizes a section of an eBook.
type Chapter struct {
	Title  string   `json:"title" yaml:"title"`
	Points []string `json:"points" yaml:"points"`
}

// Product is a catalog item.
type Product struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Price       decimal.Decimal `json:"price" yaml:"-"`
	Tagline     string          `json:"tagline" yaml:"tagline"`
	Description string          `json:"description" yaml:"description"`
	Level       int             `json:"level" yaml:"level"`
	Features    []string        `json:"features" yaml:"features"`
	Chapters    []Chapter       `json:"chapters,omitempty" yaml:"chapters"`
}

// Testimonial is a customer quote shown on the landing page.
type Testimonial struct {
	Initials string `json:"initials" yaml:"initials"`
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	Text     string `json:"text" yaml:"text"`
}

// Landing groups marketing content served alongside the catalog.
type Landing struct {
	Products     []Product     `json:"products"`
	Testimonials []Testimonial `json:"testimonials"`
	PainPoints   []string      `json:"painPoints"`
	Countries    []string      `json:"countries"`
}
