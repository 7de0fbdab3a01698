package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradsolution/storefront/internal/catalog"
	"github.com/tradsolution/storefront/internal/test"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newOrderUseCase(t *testing.T) (*OrderUseCase, *test.Repositories, *test.RecorderStub) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	repos := test.NewRepositories()
	recorder := test.NewRecorderStub()
	uc := NewOrderUseCase(repos, c, DefaultPolicy(), test.AccessStub{IPVal: "10.0.0.1", SigVal: "TestAgent/1.0"}, recorder)
	uc.now = clock
	return uc, repos, recorder
}
