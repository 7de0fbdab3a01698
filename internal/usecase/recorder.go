package usecase

import "github.com/tradsolution/storefront/internal/domain/model"

// Recorder observes business events, typically for metrics.
type Recorder interface {
	OrderCreated(status model.OrderStatus)
	InvoiceRendered()
	DownloadRedeemed(outcome string)
	LinksDeactivated(n int)
}

// Download redemption outcomes reported to Recorder.
const (
	OutcomeServed       = "served"
	OutcomeNotFound     = "not_found"
	OutcomeInactive     = "inactive"
	OutcomeExpired      = "expired"
	OutcomeLimitReached = "limit_reached"
	OutcomeError        = "error"
)

type nopRecorder struct{}

func (nopRecorder) OrderCreated(model.OrderStatus) {}
func (nopRecorder) InvoiceRendered()               {}
func (nopRecorder) DownloadRedeemed(string)        {}
func (nopRecorder) LinksDeactivated(int)           {}
