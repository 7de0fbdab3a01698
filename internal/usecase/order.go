package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
	"github.com/tradsolution/storefront/internal/pkg/ident"
)

const (
	guestName  = "Guest User"
	guestEmail = "guest@example.com"

	mockActiveUsers    = 142
	mockConversionRate = 3.4
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateOrderInput describes an order entered by the admin or produced by checkout.
type CreateOrderInput struct {
	ProductID     string
	CustomerName  string
	CustomerEmail string
	PaymentMethod model.PaymentMethod
	Status        model.OrderStatus
	Address       string
	Country       string
	// CreatedAt backdates the order when set.
	CreatedAt *time.Time
	// AccessTime sets when the first download happened for delivered orders.
	AccessTime *time.Time
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	repos    repository.Factory
	catalog  repository.ProductCatalog
	policy   Policy
	access   AccessSource
	recorder Recorder
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(repos repository.Factory, catalog repository.ProductCatalog, policy Policy, access AccessSource, recorder Recorder) *OrderUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &OrderUseCase{
		repos:    repos,
		catalog:  catalog,
		policy:   policy,
		access:   access,
		recorder: recorder,
		now:      time.Now,
	}
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.repos.Orders().List(ctx)
}

// Get returns a single order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.repos.Orders().Get(ctx, id)
}

// Create stores a new order. Delivered orders get a download link and a
// first access log so their invoices carry a delivery audit trail.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	product, err := u.catalog.Product(in.ProductID)
	if err != nil {
		return nil, err
	}

	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return nil, fmt.Errorf("customer name and email are required: %w", domainErrors.ErrInvalidInput)
	}
	if err := validate.Var(in.CustomerEmail, "email"); err != nil {
		return nil, fmt.Errorf("customer email %q: %w", in.CustomerEmail, domainErrors.ErrInvalidInput)
	}

	if in.PaymentMethod == "" {
		in.PaymentMethod = model.PaymentMethodManual
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("payment method %q: %w", in.PaymentMethod, domainErrors.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = model.OrderStatusPending
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("order status %q: %w", in.Status, domainErrors.ErrInvalidInput)
	}

	createdAt := u.now().UTC()
	if in.CreatedAt != nil {
		createdAt = in.CreatedAt.UTC()
	}

	order := model.Order{
		ID:             ident.OrderID(),
		Status:         in.Status,
		ProductID:      product.ID,
		ProductName:    product.Name,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		Amount:         product.Price,
		Currency:       u.policy.Currency,
		Tax:            u.policy.Tax(product.Price),
		CreatedAt:      createdAt,
		PaymentMethod:  in.PaymentMethod,
		BillingAddress: in.Address,
		BillingCountry: in.Country,
	}
	if in.PaymentMethod == model.PaymentMethodPayPal {
		order.TransactionID = ident.TransactionID()
	}

	err = u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		if !order.Status.Delivered() {
			return nil
		}

		linkTime := lo.FromPtrOr(in.AccessTime, createdAt).UTC()
		link := newDownloadLink(order, linkTime, u.policy)
		link.DownloadCount = 1
		if err := tx.Links().Append(ctx, link); err != nil {
			return err
		}

		return tx.AccessLogs().Append(ctx, model.AccessLog{
			ID:              ident.LogID(),
			LinkID:          link.ID,
			Resource:        product.Name + " PDF",
			Timestamp:       linkTime,
			IP:              u.access.IP(),
			DeviceSignature: u.access.DeviceSignature(),
		})
	})
	if err != nil {
		return nil, err
	}

	u.recorder.OrderCreated(order.Status)
	return &order, nil
}

// Checkout creates a pending PayPal order for a storefront visitor.
func (u *OrderUseCase) Checkout(ctx context.Context, productID, name, email string) (*model.Order, error) {
	if strings.TrimSpace(name) == "" {
		name = guestName
	}
	if strings.TrimSpace(email) == "" {
		email = guestEmail
	}
	return u.Create(ctx, CreateOrderInput{
		ProductID:     productID,
		CustomerName:  name,
		CustomerEmail: email,
		PaymentMethod: model.PaymentMethodPayPal,
		Status:        model.OrderStatusPending,
	})
}

// Update merges patch into the stored order.
func (u *OrderUseCase) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("order status %q: %w", *patch.Status, domainErrors.ErrInvalidInput)
	}
	if patch.PaymentMethod != nil && !patch.PaymentMethod.Valid() {
		return nil, fmt.Errorf("payment method %q: %w", *patch.PaymentMethod, domainErrors.ErrInvalidInput)
	}

	var updated model.Order
	err := u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		current, err := tx.Orders().Get(ctx, id)
		if err != nil {
			return err
		}
		updated = patch.Apply(*current)
		return tx.Orders().Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Stats aggregates dashboard figures. Active users and conversion rate are fixed placeholders.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.AdminStats, error) {
	orders, err := u.repos.Orders().List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := lo.Reduce(orders, func(acc decimal.Decimal, o model.Order, _ int) decimal.Decimal {
		if o.Status == model.OrderStatusCompleted {
			return acc.Add(o.Amount)
		}
		return acc
	}, decimal.Zero)

	return &model.AdminStats{
		TotalRevenue:   revenue,
		TotalOrders:    len(orders),
		ActiveUsers:    mockActiveUsers,
		ConversionRate: mockConversionRate,
	}, nil
}

func newDownloadLink(order model.Order, issuedAt time.Time, policy Policy) model.DownloadLink {
	return model.DownloadLink{
		ID:           ident.LinkID(),
		OrderID:      order.ID,
		ProductName:  order.ProductName,
		Key:          ident.LinkKey(),
		ExpiresAt:    issuedAt.Add(policy.LinkTTL),
		MaxDownloads: policy.LinkMaxDownloads,
		IsActive:     true,
		CreatedAt:    issuedAt,
	}
}
