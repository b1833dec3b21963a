// Package search provides top level prime search loop. It resumes after the largest stored prime,
// checks candidates one by one and hands confirmed primes to the persistence queue.
package search

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/primes/app/prime"
)

//go:generate moq -out mocks/checker.go -pkg mocks -skip-ensure -fmt goimports . Checker
//go:generate moq -out mocks/queue.go -pkg mocks -skip-ensure -fmt goimports . Queue

// Checker tests a candidate for primality
type Checker interface {
	IsPrime(n uint64) (bool, error)
}

// Queue persists confirmed primes and provides the resume point
type Queue interface {
	Resume(ctx context.Context) (uint64, error)
	Add(ctx context.Context, rec prime.Record) error
	Flush(ctx context.Context) error
	Pending() int
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Searcher runs candidates through Checker and stores found primes in Queue
type Searcher struct {
	Checker  Checker
	Queue    Queue
	Repeater Repeater
	Until    uint64 // last candidate to check, 0 for no limit
}

// Do runs blocking search until ctx canceled or Until reached. Cancellation is checked between candidates,
// the current check always runs to completion. Pending primes are flushed on exit.
func (s *Searcher) Do(ctx context.Context) error {
	start, err := s.Queue.Resume(ctx)
	if err != nil {
		return fmt.Errorf("can't get resume point: %w", err)
	}
	log.Printf("[INFO] search started from %d", start)

	// storage keeps numbers as signed 64-bit
	last := uint64(math.MaxInt64)
	if s.Until > 0 && s.Until < last {
		last = s.Until
	}

	// queue writes are not interrupted by ctx cancellation
	wctx := context.WithoutCancel(ctx)
	found := 0
	for n := start; n <= last; n++ {
		if ctx.Err() != nil {
			log.Printf("[INFO] search interrupted before %d", n)
			break
		}

		st := time.Now()
		ok, err := s.Checker.IsPrime(n)
		if err != nil {
			if ferr := s.flush(wctx); ferr != nil {
				log.Printf("[WARN] %v", ferr)
			}
			return fmt.Errorf("failed to check %d: %w", n, err)
		}
		if !ok {
			continue
		}

		rec := prime.NewRecord(n, time.Since(st))
		found++
		log.Printf("[DEBUG] %d is a prime, took %v", n, rec.Elapsed)
		if err := s.Queue.Add(wctx, rec); err != nil {
			log.Printf("[WARN] can't store primes, %v", err)
			if err := s.flush(wctx); err != nil {
				return err
			}
		}
	}

	log.Printf("[INFO] search stopped, %d primes found, %d pending", found, s.Queue.Pending())
	return s.flush(wctx)
}

// flush writes pending primes with retries
func (s *Searcher) flush(ctx context.Context) error {
	if s.Repeater == nil {
		if err := s.Queue.Flush(ctx); err != nil {
			return fmt.Errorf("failed to flush primes: %w", err)
		}
		return nil
	}
	err := s.Repeater.Do(ctx, func() error {
		if e := s.Queue.Flush(ctx); e != nil {
			log.Printf("[WARN] flush attempt failed, %v", e)
			return e
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to flush primes: %w", err)
	}
	return nil
}
