package processing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

var (
	// ErrQueueFull is returned by Enqueue when every queue slot is taken.
	ErrQueueFull = errors.New("processing queue is full")
	// ErrNotRunning is returned by Enqueue before Start or after shutdown.
	ErrNotRunning = errors.New("processing pool is not running")
)

// Start launches the worker goroutines. They exit when ctx is cancelled;
// Wait blocks until they have.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	for i := 0; i < s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.log.Info("processing workers started", slog.Int("workers", s.cfg.Workers))
}

// Wait blocks until all workers have returned.
func (s *Service) Wait() { s.wg.Wait() }

// Enqueue schedules doc for processing without blocking.
func (s *Service) Enqueue(doc domain.Document) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return ErrNotRunning
	}

	select {
	case s.queue <- doc:
		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Service) worker(ctx context.Context, id int) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case doc := <-s.queue:
			s.runOne(ctx, doc, id)
		}
	}
}

// runOne isolates a worker from panics in format parsers.
func (s *Service) runOne(ctx context.Context, doc domain.Document, worker int) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			s.log.ErrorContext(ctx, "panic while processing document",
				slog.String("document_id", doc.ID.String()),
				slog.Any("panic", rec),
			)
			s.markFailed(context.WithoutCancel(ctx), doc)
			s.record(doc.FileType, false, time.Since(start))
		}
	}()

	s.log.DebugContext(ctx, "processing picked up",
		slog.Int("worker", worker),
		slog.String("document_id", doc.ID.String()),
	)
	_ = s.Process(ctx, doc)
}
