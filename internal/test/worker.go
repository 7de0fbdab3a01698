package test

import (
	"context"
	"sync"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// WorkerFacadeStub serves batches of stale links and records retirements.
type WorkerFacadeStub struct {
	sync.Mutex
	Batches  [][]model.DownloadLink
	Limits   []int
	Retired  []string
	StaleErr error
	RetireFn func(context.Context, string) (bool, error)
}

// StaleLinks pops the next batch.
func (s *WorkerFacadeStub) StaleLinks(_ context.Context, limit int) ([]model.DownloadLink, error) {
	s.Lock()
	defer s.Unlock()
	s.Limits = append(s.Limits, limit)
	if s.StaleErr != nil {
		return nil, s.StaleErr
	}
	if len(s.Batches) == 0 {
		return nil, nil
	}
	batch := s.Batches[0]
	s.Batches = s.Batches[1:]
	return batch, nil
}

// RetireLink records id unless RetireFn says otherwise.
func (s *WorkerFacadeStub) RetireLink(ctx context.Context, id string) (bool, error) {
	if s.RetireFn != nil {
		retired, err := s.RetireFn(ctx, id)
		if err != nil || !retired {
			return retired, err
		}
	}
	s.Lock()
	defer s.Unlock()
	s.Retired = append(s.Retired, id)
	return true, nil
}

// RetiredIDs returns a copy of retired ids.
func (s *WorkerFacadeStub) RetiredIDs() []string {
	s.Lock()
	defer s.Unlock()
	return append([]string(nil), s.Retired...)
}
