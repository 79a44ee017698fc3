package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// DefaultRefreshInterval is used when the job is created with a non-positive
// interval.
const DefaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	list     NoteListService
	interval time.Duration
	updates  chan RefreshResult

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientRefreshJob creates a clientRefreshJob that calls list.FetchAll on
// a ticker. The job is idle until Start is called.
func NewClientRefreshJob(list NoteListService, interval time.Duration, logger *logger.Logger) ClientRefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &clientRefreshJob{
		list:     list,
		interval: interval,
		updates:  make(chan RefreshResult, 1),
		logger:   logger,
	}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a goroutine that refetches every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				notes, err := j.list.FetchAll(jobCtx)
				if err != nil && jobCtx.Err() != nil {
					return
				}
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "clientRefreshJob.Start").Msg("background refresh failed")
				}
				j.publish(RefreshResult{Notes: notes, Err: err})
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientRefreshJob) Updates() <-chan RefreshResult {
	return j.updates
}

// publish replaces an unread result with res.
func (j *clientRefreshJob) publish(res RefreshResult) {
	for {
		select {
		case j.updates <- res:
			return
		default:
		}

		select {
		case <-j.updates:
		default:
		}
	}
}
