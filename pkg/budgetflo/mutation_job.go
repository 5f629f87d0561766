package budgetflo

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// MutationStatus represents the status of a tracked mutation
type MutationStatus string

const (
	// MutationStatusPending indicates the mutation has not started
	MutationStatusPending MutationStatus = "pending"
	// MutationStatusInProgress indicates the mutation is being applied
	MutationStatusInProgress MutationStatus = "in_progress"
	// MutationStatusCompleted indicates the mutation is visible on reads
	MutationStatusCompleted MutationStatus = "completed"
	// MutationStatusFailed indicates the mutation failed
	MutationStatusFailed MutationStatus = "failed"
	// MutationStatusCancelled indicates the caller cancelled the wait
	MutationStatusCancelled MutationStatus = "cancelled"
	// MutationStatusTimeout indicates the mutation did not settle in time
	MutationStatusTimeout MutationStatus = "timeout"
)

// MutationJobMetrics contains metrics about a mutation job
type MutationJobMetrics struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	PollAttempts int
	Status       MutationStatus
	Error        error
}

// checkFunc reports whether the mutation is visible on a fresh read.
type checkFunc func(ctx context.Context) (bool, error)

// mutationJob tracks a server-side write until it is readable. The
// server applies writes synchronously in the common case, but balance
// and installment updates fan out to trackers asynchronously, so a
// read immediately after a write can return stale figures.
type mutationJob struct {
	id      string
	client  *Client
	check   checkFunc
	timeout time.Duration

	mu      sync.RWMutex
	status  MutationStatus
	err     error
	metrics MutationJobMetrics

	cancelOnce sync.Once
	cancelCh   chan struct{}
}

var _ MutationJob = (*mutationJob)(nil)

func newMutationJob(client *Client, id string, timeout time.Duration, check checkFunc) *mutationJob {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &mutationJob{
		id:       id,
		client:   client,
		check:    check,
		timeout:  timeout,
		status:   MutationStatusPending,
		cancelCh: make(chan struct{}),
	}
}

// ID returns the job identifier
func (j *mutationJob) ID() string {
	return j.id
}

// Status returns the current job status
func (j *mutationJob) Status() MutationStatus {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.status
}

// IsComplete returns true if the job has reached a terminal state
func (j *mutationJob) IsComplete() bool {
	switch j.Status() {
	case MutationStatusCompleted, MutationStatusFailed, MutationStatusCancelled, MutationStatusTimeout:
		return true
	}
	return false
}

// Cancel stops the wait. It does not undo the server-side write.
func (j *mutationJob) Cancel() {
	j.cancelOnce.Do(func() {
		close(j.cancelCh)
	})
}

// Metrics returns metrics collected during the wait
func (j *mutationJob) Metrics() MutationJobMetrics {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.metrics
}

// Wait polls until the mutation is visible, the timeout elapses, the
// context is done, or the job is cancelled. Polling starts at one
// second and backs off by half every third attempt, capped at five
// seconds.
func (j *mutationJob) Wait(ctx context.Context) error {
	j.setStatus(MutationStatusInProgress, nil)

	start := time.Now()
	j.mu.Lock()
	j.metrics.StartTime = start
	j.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	interval := 1 * time.Second
	const maxInterval = 5 * time.Second

	attempts := 0
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		attempts++

		done, err := j.check(ctx)
		if err != nil {
			j.finish(MutationStatusFailed, err, start, attempts)
			return errors.Wrap(err, "mutation check failed")
		}
		if done {
			j.finish(MutationStatusCompleted, nil, start, attempts)
			return nil
		}

		if attempts%3 == 0 && interval < maxInterval {
			interval = interval * 3 / 2
			if interval > maxInterval {
				interval = maxInterval
			}
			ticker.Reset(interval)
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				j.finish(MutationStatusTimeout, ErrMutationTimeout, start, attempts)
				return ErrMutationTimeout
			}
			j.finish(MutationStatusCancelled, ctx.Err(), start, attempts)
			return ctx.Err()
		case <-j.cancelCh:
			j.finish(MutationStatusCancelled, nil, start, attempts)
			return errors.New("mutation wait cancelled")
		case <-ticker.C:
		}
	}
}

func (j *mutationJob) setStatus(status MutationStatus, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = status
	j.err = err
}

func (j *mutationJob) finish(status MutationStatus, err error, start time.Time, attempts int) {
	end := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = status
	j.err = err
	j.metrics.EndTime = end
	j.metrics.Duration = end.Sub(start)
	j.metrics.PollAttempts = attempts
	j.metrics.Status = status
	j.metrics.Error = err
}
