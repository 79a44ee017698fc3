// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyNoteList counts FetchAll calls and returns a fixed result.
type spyNoteList struct {
	calls atomic.Int64
	notes []models.Note
	err   error
}

func (s *spyNoteList) FetchAll(_ context.Context) ([]models.Note, error) {
	s.calls.Add(1)
	return s.notes, s.err
}

func (s *spyNoteList) Notes() []models.Note { return s.notes }
func (s *spyNoteList) Len() int             { return len(s.notes) }
func (s *spyNoteList) Clear()               {}

// ── NewClientRefreshJob ──────────────────────────────────────────────────────

func TestNewClientRefreshJob_DefaultInterval(t *testing.T) {
	job := NewClientRefreshJob(&spyNoteList{}, 0, logger.Nop())
	require.NotNil(t, job)

	assert.Equal(t, DefaultRefreshInterval, job.(*clientRefreshJob).interval)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientRefreshJob_Start_RefetchesPeriodically(t *testing.T) {
	spy := &spyNoteList{notes: []models.Note{{ID: "1", Name: "a"}}}
	job := NewClientRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))

	select {
	case res := <-job.Updates():
		require.NoError(t, res.Err)
		assert.Equal(t, spy.notes, res.Notes)
	default:
		t.Fatal("expected a buffered refresh result")
	}
}

func TestClientRefreshJob_PublishesErrors(t *testing.T) {
	spy := &spyNoteList{err: errors.New("boom")}
	job := NewClientRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	select {
	case res := <-job.Updates():
		assert.EqualError(t, res.Err, "boom")
	case <-time.After(time.Second):
		t.Fatal("no refresh result")
	}
}

func TestClientRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyNoteList{}
	job := NewClientRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestClientRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spyNoteList{}, time.Minute, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_Start_Twice_RestartsJob(t *testing.T) {
	spy := &spyNoteList{}
	job := NewClientRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	// a leaked first goroutine would roughly double the count
	assert.LessOrEqual(t, spy.calls.Load(), int64(5))
}

func TestClientRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyNoteList{}
	job := NewClientRefreshJob(spy, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	cancel()
	time.Sleep(30 * time.Millisecond)
	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, calls, spy.calls.Load())
	job.Stop()
}

func TestClientRefreshJob_Publish_KeepsLatest(t *testing.T) {
	job := NewClientRefreshJob(&spyNoteList{}, time.Minute, logger.Nop()).(*clientRefreshJob)

	job.publish(RefreshResult{Notes: []models.Note{{ID: "old"}}})
	job.publish(RefreshResult{Notes: []models.Note{{ID: "new"}}})

	res := <-job.Updates()
	assert.Equal(t, "new", res.Notes[0].ID)
	assert.Empty(t, job.Updates())
}
