package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// LinkFacade exposes the subset of application functionality required by the sweeper.
type LinkFacade interface {
	StaleLinks(ctx context.Context, limit int) ([]model.DownloadLink, error)
	RetireLink(ctx context.Context, id string) (bool, error)
}

// LinkSweeper periodically deactivates download links that expired or ran out of downloads.
type LinkSweeper struct {
	facade    LinkFacade
	interval  time.Duration
	batchSize int
	workers   int
	logger    *zap.Logger

	jobs   chan model.DownloadLink
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewLinkSweeper constructs sweeper worker pool.
func NewLinkSweeper(facade LinkFacade, interval time.Duration, batchSize, workers int, logger *zap.Logger) *LinkSweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkSweeper{
		facade:    facade,
		interval:  interval,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger.Named("sweeper"),
	}
}

// Start launches background processing. Calling Start on a running sweeper is a no-op.
func (s *LinkSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.jobs = make(chan model.DownloadLink, s.batchSize*s.workers)

	for range s.workers {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop cancels processing and waits for all workers to finish.
func (s *LinkSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *LinkSweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *LinkSweeper) fetchAndDispatch(ctx context.Context) {
	links, err := s.facade.StaleLinks(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch stale links failed", zap.Error(err))
		return
	}
	for _, link := range links {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- link:
		}
	}
}

func (s *LinkSweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case link, ok := <-s.jobs:
			if !ok {
				return
			}
			s.retire(ctx, link)
		}
	}
}

func (s *LinkSweeper) retire(ctx context.Context, link model.DownloadLink) {
	retired, err := s.facade.RetireLink(ctx, link.ID)
	if err != nil {
		s.logger.Error("deactivate link failed", zap.String("link", link.ID), zap.Error(err))
		return
	}
	if retired {
		s.logger.Info("link deactivated",
			zap.String("link", link.ID),
			zap.String("order", link.OrderID),
			zap.Int("downloads", link.DownloadCount),
			zap.Time("expires_at", link.ExpiresAt),
		)
	}
}
