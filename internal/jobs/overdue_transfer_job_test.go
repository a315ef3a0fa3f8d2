package jobs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransferLister struct {
	pages   map[int][]queries.GetTransfersQueryResponse
	offsets []int
}

func (s *stubTransferLister) Handle(
	_ context.Context,
	query queries.GetTransfersQuery,
) ([]queries.GetTransfersQueryResponse, error) {
	s.offsets = append(s.offsets, query.Offset())
	return s.pages[query.Offset()], nil
}

func transfersPage(n int, eta *time.Time) []queries.GetTransfersQueryResponse {
	page := make([]queries.GetTransfersQueryResponse, 0, n)
	for range n {
		page = append(page, queries.GetTransfersQueryResponse{
			ID:           kernel.NewUUID(),
			UnitID:       kernel.NewUUID(),
			ToLocationID: kernel.NewUUID(),
			ETA:          eta,
			Status:       "IN_TRANSIT",
			CreatedAt:    time.Now().UTC(),
		})
	}
	return page
}

// An overdue transfer sitting beyond the first page must still be logged.
func TestOverdueTransferJob_ScanCoversAllPages(t *testing.T) {
	pastETA := time.Now().UTC().Add(-2 * time.Hour)
	overdue := queries.GetTransfersQueryResponse{
		ID:           kernel.NewUUID(),
		UnitID:       kernel.NewUUID(),
		ToLocationID: kernel.NewUUID(),
		ETA:          &pastETA,
		Status:       "IN_TRANSIT",
		CreatedAt:    time.Now().UTC(),
	}

	lister := &stubTransferLister{pages: map[int][]queries.GetTransfersQueryResponse{
		0:                   transfersPage(overdueScanPageSize, nil),
		overdueScanPageSize: append(transfersPage(2, nil), overdue),
	}}

	var buf bytes.Buffer
	job := NewOverdueTransferJob(lister, slog.New(slog.NewTextHandler(&buf, nil)))

	err := job.scan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{0, overdueScanPageSize}, lister.offsets)
	assert.Equal(t, 1, strings.Count(buf.String(), "Transfer overdue"))
	assert.Contains(t, buf.String(), overdue.ID.String())
}

func TestOverdueTransferJob_ScanIgnoresFutureETAs(t *testing.T) {
	futureETA := time.Now().UTC().Add(2 * time.Hour)

	lister := &stubTransferLister{pages: map[int][]queries.GetTransfersQueryResponse{
		0: transfersPage(3, &futureETA),
	}}

	var buf bytes.Buffer
	job := NewOverdueTransferJob(lister, slog.New(slog.NewTextHandler(&buf, nil)))

	err := job.scan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{0}, lister.offsets)
	assert.NotContains(t, buf.String(), "Transfer overdue")
}
