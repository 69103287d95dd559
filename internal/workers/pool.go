// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-nft-market/internal/logger"
	"golang.org/x/sync/semaphore"
)

var (
	ErrPoolClosed      = errors.New("worker pool is shut down")
	ErrInvalidPoolSize = errors.New("worker pool size must be positive")
)

// Pool is an [Executor] backed by a weighted semaphore.
type Pool struct {
	sem    *semaphore.Weighted
	size   int64
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
	logger *logger.Logger
}

func NewPool(size int, log *logger.Logger) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPoolSize, size)
	}

	return &Pool{
		sem:    semaphore.NewWeighted(int64(size)),
		size:   int64(size),
		logger: log,
	}, nil
}

// Size returns the maximum number of tasks running at once.
func (p *Pool) Size() int {
	return int(p.size)
}

// Do implements [Executor].
func (p *Pool) Do(ctx context.Context, task func() error) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	p.wg.Add(1)
	p.mu.RUnlock()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.wg.Done()
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error().Interface("panic", r).Msg("worker task panicked")
				done <- fmt.Errorf("worker task panicked: %v", r)
			}
		}()

		done <- task()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		p.logger.Debug().Err(ctx.Err()).Msg("caller left before worker task finished")
		return ctx.Err()
	}
}

// Shutdown stops accepting tasks and waits for in-flight ones or ctx.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		p.logger.Info().Msg("worker pool drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for worker tasks: %w", ctx.Err())
	}
}
