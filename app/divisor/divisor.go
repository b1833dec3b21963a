// Package divisor splits the trial division search space of a candidate into disjoint ranges,
// one per worker. Divisors are tested in [2, n/2+1), the search is intentionally not bound by sqrt(n).
package divisor

import "fmt"

// MinDivisor is the smallest divisor ever tested
const MinDivisor uint64 = 2

// Range is a half-open interval [Start, End) of divisors
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of divisors in the range
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// MaxDivisor returns the exclusive upper bound of divisors tested for n
func MaxDivisor(n uint64) uint64 {
	return n/2 + 1
}

// Partition returns ordered, non-overlapping divisor ranges for n split into up to count parts.
// A single range [2, MaxDivisor) is returned for count <= 1 or when there are fewer divisors than parts.
// With a step not dividing the number of divisors evenly the remainder between the last boundary
// and MaxDivisor is not included in any range.
func Partition(n, count uint64) []Range {
	maxDiv := MaxDivisor(n)
	if maxDiv < MinDivisor {
		maxDiv = MinDivisor // n is 0 or 1, nothing to test
	}

	if count <= 1 || count > maxDiv-MinDivisor {
		return []Range{{Start: MinDivisor, End: maxDiv}}
	}

	step := Step(maxDiv, count)
	res := make([]Range, 0, count)
	for start := MinDivisor; start+step < maxDiv; start += step {
		res = append(res, Range{Start: start, End: start + step})
	}
	return res
}

// Step returns the size of each range for the given exclusive upper bound and number of parts
func Step(maxDiv, count uint64) uint64 {
	if count > maxDiv {
		return maxDiv
	}
	return (maxDiv - MinDivisor) / count
}
