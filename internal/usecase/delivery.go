package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
	"github.com/tradsolution/storefront/internal/pkg/ident"
)

const unknownDevice = "unknown"

// Redemption is the result of a successful download.
type Redemption struct {
	Link  model.DownloadLink
	Order *model.Order
	Log   model.AccessLog
}

// DeliveryUseCase manages download links and their access logs.
type DeliveryUseCase struct {
	repos    repository.Factory
	policy   Policy
	recorder Recorder
	now      func() time.Time
}

// NewDeliveryUseCase constructs DeliveryUseCase.
func NewDeliveryUseCase(repos repository.Factory, policy Policy, recorder Recorder) *DeliveryUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &DeliveryUseCase{repos: repos, policy: policy, recorder: recorder, now: time.Now}
}

// Links returns all download links.
func (u *DeliveryUseCase) Links(ctx context.Context) ([]model.DownloadLink, error) {
	return u.repos.Links().List(ctx)
}

// Logs returns all access logs in the order they were recorded.
func (u *DeliveryUseCase) Logs(ctx context.Context) ([]model.AccessLog, error) {
	return u.repos.AccessLogs().List(ctx)
}

// CreateLink issues a fresh link for the order.
func (u *DeliveryUseCase) CreateLink(ctx context.Context, orderID string) (*model.DownloadLink, error) {
	var link model.DownloadLink
	err := u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		order, err := tx.Orders().Get(ctx, orderID)
		if err != nil {
			return err
		}
		link = newDownloadLink(*order, u.now().UTC(), u.policy)
		return tx.Links().Create(ctx, link)
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Redeem serves one download through the link with key. A completed order
// becomes DOWNLOADED on its first redemption.
func (u *DeliveryUseCase) Redeem(ctx context.Context, key, ip, userAgent string) (*Redemption, error) {
	var result Redemption
	err := u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		link, err := tx.Links().GetByKey(ctx, key)
		if err != nil {
			return err
		}

		now := u.now().UTC()
		switch {
		case !link.IsActive:
			return domainErrors.ErrLinkInactive
		case link.Expired(now):
			return domainErrors.ErrLinkExpired
		case link.Exhausted():
			return domainErrors.ErrDownloadLimitReached
		}

		link.DownloadCount++
		if err := tx.Links().Update(ctx, *link); err != nil {
			return err
		}

		if strings.TrimSpace(userAgent) == "" {
			userAgent = unknownDevice
		}
		entry := model.AccessLog{
			ID:              ident.LogID(),
			LinkID:          link.ID,
			Resource:        link.ProductName + " PDF",
			Timestamp:       now,
			IP:              ip,
			DeviceSignature: userAgent,
		}
		if err := tx.AccessLogs().Append(ctx, entry); err != nil {
			return err
		}

		order, err := tx.Orders().Get(ctx, link.OrderID)
		switch {
		case err == nil:
			if order.Status == model.OrderStatusCompleted {
				order.Status = model.OrderStatusDownloaded
				if err := tx.Orders().Update(ctx, *order); err != nil {
					return err
				}
			}
			result.Order = order
		case !errors.Is(err, domainErrors.ErrNotFound):
			return err
		}

		result.Link = *link
		result.Log = entry
		return nil
	})

	u.recorder.DownloadRedeemed(redeemOutcome(err))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func redeemOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeServed
	case errors.Is(err, domainErrors.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domainErrors.ErrLinkInactive):
		return OutcomeInactive
	case errors.Is(err, domainErrors.ErrLinkExpired):
		return OutcomeExpired
	case errors.Is(err, domainErrors.ErrDownloadLimitReached):
		return OutcomeLimitReached
	default:
		return OutcomeError
	}
}

// Deactivate disables a link. Deactivating an inactive link is a no-op.
func (u *DeliveryUseCase) Deactivate(ctx context.Context, id string) (*model.DownloadLink, error) {
	var link *model.DownloadLink
	err := u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		current, err := tx.Links().Get(ctx, id)
		if err != nil {
			return err
		}
		link = current
		if !link.IsActive {
			return nil
		}
		link.IsActive = false
		return tx.Links().Update(ctx, *link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// StaleLinks returns active links that can no longer serve downloads.
func (u *DeliveryUseCase) StaleLinks(ctx context.Context, limit int) ([]model.DownloadLink, error) {
	return u.repos.Links().ListStale(ctx, u.now().UTC(), limit)
}

// RetireLink deactivates a stale link and reports it. Links that are still usable are left alone.
func (u *DeliveryUseCase) RetireLink(ctx context.Context, id string) (bool, error) {
	retired := false
	err := u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		link, err := tx.Links().Get(ctx, id)
		if err != nil {
			return err
		}
		if !link.IsActive || (!link.Expired(u.now().UTC()) && !link.Exhausted()) {
			return nil
		}
		link.IsActive = false
		retired = true
		return tx.Links().Update(ctx, *link)
	})
	if err != nil {
		return false, err
	}
	if retired {
		u.recorder.LinksDeactivated(1)
	}
	return retired, nil
}
