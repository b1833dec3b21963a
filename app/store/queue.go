package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/primes/app/prime"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// DefaultThreshold is the number of buffered records triggering flush
const DefaultThreshold = 10000

// DefaultResume is the latest prime reported for an empty store
const DefaultResume uint64 = 2

// ErrEmpty returned by Engine.MaxNumber if nothing stored
var ErrEmpty = errors.New("no primes stored")

// Engine defines durable storage used by Queue
type Engine interface {
	Initialize(ctx context.Context) error
	InsertBatch(ctx context.Context, recs []prime.Record) error
	MaxNumber(ctx context.Context) (uint64, error)
	Close() error
}

// Queue accumulates primes and flushes them to the engine in batches.
// Not thread safe, expected to be used by a single owner.
type Queue struct {
	engine    Engine
	threshold int
	buf       []prime.Record
}

// NewQueue makes Queue flushing every threshold records
func NewQueue(engine Engine, threshold int) *Queue {
	if threshold < 1 {
		threshold = 1
	}
	return &Queue{engine: engine, threshold: threshold, buf: make([]prime.Record, 0, threshold)}
}

// Setup prepares engine schema, must be called before any other operation
func (q *Queue) Setup(ctx context.Context) error {
	if err := q.engine.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	return nil
}

// Add buffers the record and flushes if threshold reached. On flush error the record stays buffered.
func (q *Queue) Add(ctx context.Context, rec prime.Record) error {
	q.buf = append(q.buf, rec)
	if len(q.buf) < q.threshold {
		return nil
	}
	return q.Flush(ctx)
}

// Flush writes all buffered records in one transaction and clears the buffer on success only
func (q *Queue) Flush(ctx context.Context) error {
	if len(q.buf) == 0 {
		return nil
	}
	if err := q.engine.InsertBatch(ctx, q.buf); err != nil {
		return fmt.Errorf("failed to flush %d primes: %w", len(q.buf), err)
	}
	log.Printf("[DEBUG] flushed %d primes, last %d", len(q.buf), q.buf[len(q.buf)-1].Number)
	q.buf = make([]prime.Record, 0, q.threshold)
	return nil
}

// Pending returns number of buffered records
func (q *Queue) Pending() int {
	return len(q.buf)
}

// LatestPrime returns the largest stored prime or DefaultResume if nothing stored.
// Buffered records are not included.
func (q *Queue) LatestPrime(ctx context.Context) (uint64, error) {
	n, err := q.engine.MaxNumber(ctx)
	if errors.Is(err, ErrEmpty) {
		return DefaultResume, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest prime: %w", err)
	}
	return n, nil
}

// Resume returns the first candidate to check, the one after the largest stored prime.
// For an empty store it is DefaultResume.
func (q *Queue) Resume(ctx context.Context) (uint64, error) {
	n, err := q.engine.MaxNumber(ctx)
	if errors.Is(err, ErrEmpty) {
		return DefaultResume, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get resume point: %w", err)
	}
	return n + 1, nil
}

// Close flushes pending records and closes the engine. Engine closed even if flush failed.
func (q *Queue) Close(ctx context.Context) error {
	flushErr := q.Flush(ctx)
	if err := q.engine.Close(); err != nil {
		if flushErr != nil {
			return fmt.Errorf("%w (also failed to close store: %v)", flushErr, err)
		}
		return fmt.Errorf("failed to close store: %w", err)
	}
	return flushErr
}
