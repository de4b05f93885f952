package chart

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

// Filter selects rows for a chart.
type Filter struct {
	Categories   []string
	Since        time.Time
	PositiveOnly bool
}

// Apply returns the rows matching every set criterion.
func (f Filter) Apply(rows []entity.Row) []entity.Row {
	var out []entity.Row
	for _, r := range rows {
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.Category) {
			continue
		}
		if !f.Since.IsZero() && (r.Date.IsZero() || r.Date.Before(f.Since)) {
			continue
		}
		if f.PositiveOnly && !(r.Value > 0) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// splitList parses a comma separated option.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Period is one half-year bucket.
type Period struct {
	Start time.Time
	Mean  float64
	Count int
}

// Key formats the period as "2024-H1".
func (p Period) Key() string {
	half := 1
	if p.Start.Month() > time.June {
		half = 2
	}
	return fmt.Sprintf("%d-H%d", p.Start.Year(), half)
}

func halfStart(t time.Time) time.Time {
	month := time.January
	if t.Month() > time.June {
		month = time.July
	}
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, time.UTC)
}

// SemiannualMeans averages rows into half-year periods, oldest first.
// Rows without a date are skipped.
func SemiannualMeans(rows []entity.Row) []Period {
	type acc struct {
		sum float64
		n   int
	}
	buckets := map[time.Time]*acc{}
	for _, r := range rows {
		if r.Date.IsZero() || math.IsNaN(r.Value) {
			continue
		}
		k := halfStart(r.Date)
		a, ok := buckets[k]
		if !ok {
			a = &acc{}
			buckets[k] = a
		}
		a.sum += r.Value
		a.n++
	}

	out := make([]Period, 0, len(buckets))
	for start, a := range buckets {
		out = append(out, Period{Start: start, Mean: a.sum / float64(a.n), Count: a.n})
	}
	slices.SortFunc(out, func(a, b Period) int { return a.Start.Compare(b.Start) })
	return out
}

// LinearFit returns the ordinary least squares line through (xs, ys).
// A degenerate x spread yields a flat line through the mean.
func LinearFit(xs, ys []float64) (slope, intercept float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return 0, 0
	}
	var xm, ym float64
	for i := 0; i < n; i++ {
		xm += xs[i]
		ym += ys[i]
	}
	xm /= float64(n)
	ym /= float64(n)

	var num, den float64
	for i := 0; i < n; i++ {
		num += (xs[i] - xm) * (ys[i] - ym)
		den += (xs[i] - xm) * (xs[i] - xm)
	}
	if den != 0 {
		slope = num / den
	}
	return slope, ym - slope*xm
}

// TrendLine evaluates the least squares fit of the period means at every
// period. x is measured in days so uneven gaps weigh correctly.
func TrendLine(periods []Period) []float64 {
	if len(periods) == 0 {
		return nil
	}
	xs := make([]float64, len(periods))
	ys := make([]float64, len(periods))
	for i, p := range periods {
		xs[i] = p.Start.Sub(periods[0].Start).Hours() / 24
		ys[i] = p.Mean
	}
	slope, intercept := LinearFit(xs, ys)
	out := make([]float64, len(periods))
	for i, x := range xs {
		out[i] = intercept + slope*x
	}
	return out
}

// Resample stretches or squeezes values to n points. Shrinking averages each
// bucket; growing interpolates linearly.
func Resample(values []float64, n int) []float64 {
	if n <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) == n {
		return slices.Clone(values)
	}
	out := make([]float64, n)
	if len(values) > n {
		for i := range out {
			lo := i * len(values) / n
			hi := max((i+1)*len(values)/n, lo+1)
			var sum float64
			for _, v := range values[lo:hi] {
				sum += v
			}
			out[i] = sum / float64(hi-lo)
		}
		return out
	}
	if len(values) == 1 || n == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	step := float64(len(values)-1) / float64(n-1)
	for i := range out {
		pos := float64(i) * step
		lo := int(pos)
		if lo >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = values[lo]*(1-frac) + values[lo+1]*frac
	}
	return out
}

// bounds returns the min and max of values, ignoring NaN and infinities.
func bounds(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

// finiteRows drops rows whose value is NaN or infinite.
func finiteRows(rows []entity.Row) []entity.Row {
	for i, r := range rows {
		if !isFinite(r.Value) {
			out := slices.Clone(rows[:i])
			for _, r := range rows[i+1:] {
				if isFinite(r.Value) {
					out = append(out, r)
				}
			}
			return out
		}
	}
	return rows
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
