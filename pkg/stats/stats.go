// Package stats summarises a multiset of integer samples.
package stats

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// Stats is an immutable summary of a set of samples. Every field is zero
// when there are no samples.
type Stats struct {
	Count  int64
	Min    int64
	Max    int64
	Median float64
	Mean   float64
	// StdDev is the population standard deviation
	StdDev float64
}

// New computes the summary of values. The input slice is not modified.
func New(values []int64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	s := Stats{
		Count: int64(n),
		Min:   sorted[0],
		Max:   sorted[n-1],
	}

	if n%2 == 1 {
		s.Median = float64(sorted[n/2])
	} else {
		s.Median = (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
	}

	var sum float64
	for _, v := range sorted {
		sum += float64(v)
	}
	s.Mean = sum / float64(n)

	var squares float64
	for _, v := range sorted {
		d := float64(v) - s.Mean
		squares += d * d
	}
	s.StdDev = math.Sqrt(squares / float64(n))

	return s
}

// String renders the summary without a line prefix
func (s Stats) String() string {
	return s.Format("")
}

// Format renders one line per figure, each starting with prefix
func (s Stats) Format(prefix string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sCount: %s\n", prefix, humanize.Comma(s.Count))
	fmt.Fprintf(&b, "%sMin: %s\n", prefix, humanize.Comma(s.Min))
	fmt.Fprintf(&b, "%sMax: %s\n", prefix, humanize.Comma(s.Max))
	fmt.Fprintf(&b, "%sMedian: %s\n", prefix, humanize.Commaf(s.Median))
	fmt.Fprintf(&b, "%sAverage: %s\n", prefix, humanize.FormatFloat("#,###.##", s.Mean))
	fmt.Fprintf(&b, "%sStd of Dev: %s", prefix, humanize.FormatFloat("#,###.##", s.StdDev))
	return b.String()
}
