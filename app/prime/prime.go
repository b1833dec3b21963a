// Package prime checks candidates for primality by trial division. Divisor ranges of a single candidate
// are scanned concurrently, one worker per range; workers report a found divisor through a shared verdict
// and the result is read only after all of them are done. Workers are never cancelled.
package prime

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"

	"github.com/umputun/primes/app/divisor"
)

// DefaultWorkers is the max number of concurrent divisor scans per candidate
const DefaultWorkers = 12

// ErrWorkerFault returned when a divisor scan failed unexpectedly and the verdict can't be trusted
var ErrWorkerFault = errors.New("worker fault")

// Checker tests candidates for primality, safe for sequential use only
type Checker struct {
	workers   uint64
	divisible func(n, d uint64) bool
}

// Record is a confirmed prime with discovery time and time spent on the check
type Record struct {
	Number       uint64
	DiscoveredAt time.Time
	Elapsed      time.Duration
}

// NewRecord makes Record for n discovered now
func NewRecord(n uint64, elapsed time.Duration) Record {
	if elapsed < 0 {
		elapsed = 0
	}
	return Record{Number: n, DiscoveredAt: time.Now(), Elapsed: elapsed}
}

// NewChecker makes Checker splitting the divisor search into up to workers parts
func NewChecker(workers int) *Checker {
	if workers < 1 {
		workers = 1
	}
	return &Checker{workers: uint64(workers), divisible: func(n, d uint64) bool { return n%d == 0 }}
}

// Workers returns configured number of parts for the divisor search
func (c *Checker) Workers() int {
	return int(c.workers)
}

// IsPrime returns true if no divisor of n found in [2, n/2+1). Error returned if any worker failed,
// in this case the verdict is false and must not be treated as "not a prime".
func (c *Checker) IsPrime(n uint64) (bool, error) {
	if n <= 1 {
		return false, nil
	}

	ranges := divisor.Partition(n, c.workers)
	v := &verdict{prime: true}

	gr := syncs.NewErrSizedGroup(len(ranges))
	for _, r := range ranges {
		r := r // per-iteration copy, go.mod targets go 1.21 (pre-1.22 loop variable semantics)
		gr.Go(func() (err error) {
			defer func() {
				if x := recover(); x != nil {
					log.Printf("[WARN] divisor scan %s of %d panicked: %v\n%s", r, n, x, debug.Stack())
					err = fmt.Errorf("scan %s: %v", r, x)
				}
			}()
			c.scan(n, r, v)
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return false, fmt.Errorf("check %d: %w: %v", n, ErrWorkerFault, err)
	}
	return v.value(), nil
}

// scan checks divisors of r in increasing order and stops on the first one dividing n
func (c *Checker) scan(n uint64, r divisor.Range, v *verdict) {
	for d := r.Start; d < r.End; d++ {
		if c.divisible(n, d) {
			v.reject()
			return
		}
	}
}

// verdict shared by all workers of a single check, can only go from true to false
type verdict struct {
	lock  sync.Mutex
	prime bool
}

func (v *verdict) reject() {
	v.lock.Lock()
	v.prime = false
	v.lock.Unlock()
}

func (v *verdict) value() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.prime
}
