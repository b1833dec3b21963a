package prime

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_IsPrime(t *testing.T) {
	c := NewChecker(DefaultWorkers)
	tbl := []struct {
		n   uint64
		exp bool
	}{
		{0, false}, {1, false}, {2, true}, {3, true}, {4, false}, {5, true}, {6, false},
		{7, true}, {8, false}, {9, false}, {10, false}, {97, true}, {100, false},
		{7919, true}, {7921, false}, {104729, true}, {1093 * 1321, false},
	}
	for _, tt := range tbl {
		res, err := c.IsPrime(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.exp, res, "n=%d", tt.n)
	}
}

func TestChecker_IsPrimeMatchesNaive(t *testing.T) {
	for workers := 1; workers <= 16; workers++ {
		c := NewChecker(workers)
		for n := uint64(0); n < 3000; n++ {
			res, err := c.IsPrime(n)
			require.NoError(t, err)
			require.Equal(t, naive(n), res, "n=%d, workers=%d", n, workers)
		}
	}
}

func TestChecker_IsPrimeLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	c := NewChecker(DefaultWorkers)
	res, err := c.IsPrime(15_485_863) // millionth prime
	require.NoError(t, err)
	assert.True(t, res)

	res, err = c.IsPrime(1093 * 1321 * 2767)
	require.NoError(t, err)
	assert.False(t, res)
}

func TestChecker_WorkersNotCancelled(t *testing.T) {
	c := NewChecker(4)
	var lock sync.Mutex
	calls := map[uint64]int{}
	c.divisible = func(n, d uint64) bool {
		lock.Lock()
		calls[d]++
		lock.Unlock()
		return n%d == 0
	}

	res, err := c.IsPrime(100)
	require.NoError(t, err)
	assert.False(t, res)

	// ranges are [2,14) [14,26) [26,38) [38,50)
	// first stops on 2, second on 20, the rest have no divisors and scan to the end
	total := 0
	for d, cnt := range calls {
		assert.Equal(t, 1, cnt, "divisor %d checked once", d)
		total += cnt
	}
	assert.Equal(t, 1+7+12+12, total)
	assert.Equal(t, 0, calls[3], "first worker stopped after 2")
	assert.Equal(t, 0, calls[21], "second worker stopped after 20")
	assert.Equal(t, 1, calls[49], "last worker scanned the whole range")
}

func TestChecker_WorkerFault(t *testing.T) {
	c := NewChecker(4)
	c.divisible = func(n, d uint64) bool {
		if d == 30 {
			panic("boom")
		}
		return n%d == 0
	}

	res, err := c.IsPrime(101)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWorkerFault))
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "check 101")
	assert.False(t, res)

	// fault is reported even if another worker found a divisor
	res, err = c.IsPrime(100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWorkerFault))
	assert.False(t, res)
}

func TestNewChecker(t *testing.T) {
	assert.Equal(t, 1, NewChecker(0).Workers())
	assert.Equal(t, 1, NewChecker(-5).Workers())
	assert.Equal(t, 12, NewChecker(12).Workers())

	res, err := NewChecker(0).IsPrime(97)
	require.NoError(t, err)
	assert.True(t, res)
}

func TestNewRecord(t *testing.T) {
	r := NewRecord(97, 150*time.Millisecond)
	assert.Equal(t, uint64(97), r.Number)
	assert.Equal(t, 150*time.Millisecond, r.Elapsed)
	assert.WithinDuration(t, time.Now(), r.DiscoveredAt, time.Second)

	assert.Equal(t, time.Duration(0), NewRecord(3, -time.Second).Elapsed)
}

func naive(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
