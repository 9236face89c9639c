package shrinkcat_test

import (
	"testing"

	"github.com/kalbasit/shrinkcat"
)

// TestOverlap covers spec.md §8's literal overlap-predicate fixtures.
func TestOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b shrinkcat.Range
		want bool
	}{
		{"touching, a before b", shrinkcat.Range{Start: 10, End: 20}, shrinkcat.Range{Start: 20, End: 30}, false},
		{"partial overlap", shrinkcat.Range{Start: 10, End: 20}, shrinkcat.Range{Start: 15, End: 25}, true},
		{"identical ranges", shrinkcat.Range{Start: 10, End: 20}, shrinkcat.Range{Start: 10, End: 20}, true},
		{"touching, single-byte ranges", shrinkcat.Range{Start: 0, End: 1}, shrinkcat.Range{Start: 1, End: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shrinkcat.Overlap(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlap(%s, %s) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
			// overlap is symmetric.
			if got := shrinkcat.Overlap(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlap(%s, %s) = %t, want %t", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

// TestOverlapExhaustiveSweep checks overlap against a naive byte-membership
// definition across every pair of valid ranges with endpoints in [0, bound),
// as SPEC_FULL.md's testable-properties section promises.
func TestOverlapExhaustiveSweep(t *testing.T) {
	t.Parallel()

	const bound = 6

	var ranges []shrinkcat.Range
	for start := uint64(0); start < bound; start++ {
		for end := start + 1; end <= bound; end++ {
			ranges = append(ranges, shrinkcat.Range{Start: start, End: end})
		}
	}

	naiveOverlap := func(a, b shrinkcat.Range) bool {
		for i := a.Start; i < a.End; i++ {
			if i >= b.Start && i < b.End {
				return true
			}
		}
		return false
	}

	for _, a := range ranges {
		for _, b := range ranges {
			want := naiveOverlap(a, b)
			if got := shrinkcat.Overlap(a, b); got != want {
				t.Errorf("Overlap(%s, %s) = %t, want %t", a, b, got, want)
			}
		}
	}
}
