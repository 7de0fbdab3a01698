package repository

import (
	"context"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// List returns orders newest first.
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, order model.Order) error
	Update(ctx context.Context, order model.Order) error
}
