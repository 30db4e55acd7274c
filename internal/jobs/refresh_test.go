package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls int
	err   error
	ctxOK bool
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	_, f.ctxOK = ctx.Deadline()
	return f.err
}

func TestRefreshJobRunsServiceWithDeadline(t *testing.T) {
	svc := &fakeRefresher{}
	job := NewRefreshJob("orders-refresh", svc)

	require.NoError(t, job.Run())
	assert.Equal(t, 1, svc.calls)
	assert.True(t, svc.ctxOK, "refresh context must carry a deadline")
	assert.Equal(t, "orders-refresh", job.Name())
}

func TestRefreshJobPropagatesError(t *testing.T) {
	svc := &fakeRefresher{err: errors.New("fetch failed")}
	job := NewRefreshJob("reviews-refresh", svc)

	assert.Error(t, job.Run())
}
