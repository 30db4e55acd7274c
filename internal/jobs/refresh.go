package jobs

import (
	"context"
	"time"
)

// Refresher is anything that can refetch its snapshot from the shop API.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob refetches one screen's snapshot on a schedule so the dashboard
// stays current without an operator pressing refresh.
type RefreshJob struct {
	name    string
	service Refresher
	timeout time.Duration
}

// NewRefreshJob creates a refresh job for one screen.
func NewRefreshJob(name string, service Refresher) *RefreshJob {
	return &RefreshJob{
		name:    name,
		service: service,
		timeout: 60 * time.Second,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return j.name
}

// Run executes the refresh with a bounded context.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.service.Refresh(ctx)
}
