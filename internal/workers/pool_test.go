// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, size int) *Pool {
	t.Helper()
	p, err := NewPool(size, logger.Nop())
	require.NoError(t, err)
	return p
}

func TestNewPool_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewPool(size, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidPoolSize)
	}
}

func TestPool_Do_ReturnsTaskResult(t *testing.T) {
	p := newTestPool(t, 2)
	errBoom := errors.New("boom")

	require.NoError(t, p.Do(context.Background(), func() error { return nil }))
	assert.ErrorIs(t, p.Do(context.Background(), func() error { return errBoom }), errBoom)
}

func TestPool_Do_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := newTestPool(t, size)

	var running, peak atomic.Int64
	var wg sync.WaitGroup

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int64(size))
	assert.Positive(t, peak.Load())
}

func TestPool_Do_CancelledWhileWaitingForSlot(t *testing.T) {
	p := newTestPool(t, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var ran atomic.Bool
	err := p.Do(ctx, func() error {
		ran.Store(true)
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.False(t, ran.Load(), "task must not run when its caller gave up before dispatch")
}

func TestPool_Do_CancelledTaskRunsToCompletion(t *testing.T) {
	p := newTestPool(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Do(ctx, func() error {
			close(started)
			<-release
			finished.Store(true)
			return nil
		})
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.False(t, finished.Load())

	close(release)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.True(t, finished.Load())
}

func TestPool_Do_RecoversPanic(t *testing.T) {
	p := newTestPool(t, 1)

	err := p.Do(context.Background(), func() error { panic("bad task") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad task")

	// the slot is released after a panic
	require.NoError(t, p.Do(context.Background(), func() error { return nil }))
}

func TestPool_Shutdown(t *testing.T) {
	p := newTestPool(t, 1)

	require.NoError(t, p.Shutdown(context.Background()))
	assert.ErrorIs(t, p.Do(context.Background(), func() error { return nil }), ErrPoolClosed)
}

func TestPool_Shutdown_Timeout(t *testing.T) {
	p := newTestPool(t, 1)

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
}
