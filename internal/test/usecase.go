package test

import (
	"sync"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// AccessStub returns fixed client details.
type AccessStub struct {
	IPVal  string
	SigVal string
}

func (a AccessStub) IP() string              { return a.IPVal }
func (a AccessStub) DeviceSignature() string { return a.SigVal }

// RecorderStub counts business events.
type RecorderStub struct {
	mu       sync.Mutex
	Orders   map[model.OrderStatus]int
	Rendered int
	Outcomes map[string]int
	Retired  int
}

// NewRecorderStub returns an empty RecorderStub.
func NewRecorderStub() *RecorderStub {
	return &RecorderStub{Orders: map[model.OrderStatus]int{}, Outcomes: map[string]int{}}
}

func (r *RecorderStub) OrderCreated(status model.OrderStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Orders[status]++
}

func (r *RecorderStub) InvoiceRendered() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rendered++
}

func (r *RecorderStub) DownloadRedeemed(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outcomes[outcome]++
}

func (r *RecorderStub) LinksDeactivated(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Retired += n
}

// RendererStub records the last rendered invoice.
type RendererStub struct {
	Invoice     model.Invoice
	Description string
	Content     []byte
	Err         error
}

// Render stores arguments and returns Content or Err.
func (r *RendererStub) Render(invoice model.Invoice, description string) ([]byte, error) {
	r.Invoice = invoice
	r.Description = description
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Content == nil {
		return []byte("%PDF-stub"), nil
	}
	return r.Content, nil
}
