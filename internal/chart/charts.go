package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
)

const noData = "no data"

// eighths are the partial block glyphs, lowest first.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

func Line(m Mount) port.Disposable  { return draw(m, renderLine) }
func Bar(m Mount) port.Disposable   { return draw(m, renderBar) }
func Area(m Mount) port.Disposable  { return draw(m, renderArea) }
func Spark(m Mount) port.Disposable { return draw(m, renderSpark) }
func Trend(m Mount) port.Disposable { return draw(m, renderTrend) }

// labelWidth estimates the width asciigraph uses for y axis labels.
func labelWidth(lo, hi float64, precision int) int {
	a := len(fmt.Sprintf("%.*f", precision, lo))
	b := len(fmt.Sprintf("%.*f", precision, hi))
	return max(a, b) + 3
}

func plot(tk *Toolkit, series [][]float64, width, height, precision int, extra ...asciigraph.Option) string {
	var all []float64
	for _, s := range series {
		all = append(all, s...)
	}
	lo, hi := bounds(all)
	plotWidth := max(width-labelWidth(lo, hi, precision)-1, 4)

	for i, s := range series {
		if len(s) == 1 {
			series[i] = []float64{s[0], s[0]}
		}
	}

	opts := []asciigraph.Option{
		asciigraph.Height(max(height-1, 1)),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(uint(precision)),
	}
	opts = append(opts, tk.plotOptions(len(series))...)
	opts = append(opts, extra...)

	if len(series) == 1 {
		return asciigraph.Plot(series[0], opts...)
	}
	return asciigraph.PlotMany(series, opts...)
}

func precisionOption(slot entity.Slot) int {
	var p int
	if _, err := fmt.Sscanf(slot.Option("precision", "2"), "%d", &p); err != nil || p < 0 || p > 6 {
		return 2
	}
	return p
}

func legend(tk *Toolkit, names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = tk.SeriesStyle(i).Render("━ " + n)
	}
	return strings.Join(parts, "  ")
}

func renderLine(tk *Toolkit, slot entity.Slot, rows []entity.Row, width, height int) string {
	rows = finiteRows(rows)
	names, groups := entity.GroupByCategory(rows)
	if len(names) == 0 {
		return tk.MutedStyle().Render(noData)
	}

	series := make([][]float64, 0, len(names))
	for _, name := range names {
		series = append(series, entity.Values(groups[name]))
	}

	if len(series) > 1 {
		return plot(tk, series, width, height-1, precisionOption(slot)) + "\n" + legend(tk, names)
	}
	return plot(tk, series, width, height, precisionOption(slot))
}

func renderBar(tk *Toolkit, slot entity.Slot, rows []entity.Row, width, height int) string {
	rows = finiteRows(rows)
	values := entity.Values(rows)
	if len(values) == 0 {
		return tk.MutedStyle().Render(noData)
	}
	_, hi := bounds(values)
	if hi <= 0 {
		hi = 1
	}

	axis := fmt.Sprintf("%.*f", precisionOption(slot), hi)
	plotWidth := width - len(axis) - 2
	barW := 1
	if plotWidth/len(values) >= 3 {
		barW = plotWidth/len(values) - 1
	}
	if maxBars := max(plotWidth/(barW+1), 1); len(values) > maxBars {
		values = values[len(values)-maxBars:]
	}

	rowsN := max(height-1, 1)
	style := tk.SeriesStyle(1)
	var b strings.Builder
	for r := rowsN - 1; r >= 0; r-- {
		label := strings.Repeat(" ", len(axis))
		if r == rowsN-1 {
			label = axis
		}
		b.WriteString(label + " ┤")
		for _, v := range values {
			cell := column(v, hi, r, rowsN)
			b.WriteString(style.Render(strings.Repeat(string(cell), barW)) + " ")
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", len(axis)) + " └" + strings.Repeat("─", len(values)*(barW+1)))
	return b.String()
}

// column returns the glyph for row r (0 is the bottom) of a bar of value v
// scaled so that hi fills rows cells.
func column(v, hi float64, r, rows int) rune {
	if math.IsNaN(v) || v <= 0 {
		return ' '
	}
	filled := v / hi * float64(rows*8)
	level := int(math.Round(filled)) - r*8
	switch {
	case level <= 0:
		return ' '
	case level >= 8:
		return eighths[8]
	default:
		return eighths[level]
	}
}

func renderArea(tk *Toolkit, slot entity.Slot, rows []entity.Row, width, height int) string {
	rows = finiteRows(rows)
	values := entity.Values(rows)
	if len(values) == 0 {
		return tk.MutedStyle().Render(noData)
	}
	lo, hi := bounds(values)
	lo = math.Min(lo, 0)
	if hi <= lo {
		hi = lo + 1
	}

	p := precisionOption(slot)
	top := fmt.Sprintf("%.*f", p, hi)
	bottom := fmt.Sprintf("%.*f", p, lo)
	lw := max(len(top), len(bottom))
	cols := Resample(values, max(width-lw-2, 1))

	rowsN := max(height-1, 1)
	style := tk.SeriesStyle(1)
	var b strings.Builder
	for r := rowsN - 1; r >= 0; r-- {
		label := ""
		switch r {
		case rowsN - 1:
			label = top
		case 0:
			label = bottom
		}
		b.WriteString(fmt.Sprintf("%*s ┤", lw, label))
		var line strings.Builder
		for _, v := range cols {
			line.WriteRune(column(v-lo, hi-lo, r, rowsN))
		}
		b.WriteString(style.Render(line.String()))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", lw) + " └" + strings.Repeat("─", len(cols)))
	return b.String()
}

// sparkline draws values on one row using eighth blocks.
func sparkline(values []float64, lo, hi float64) string {
	span := hi - lo
	var b strings.Builder
	for _, v := range values {
		if !isFinite(v) {
			b.WriteRune(' ')
			continue
		}
		level := 8
		if span > 0 {
			level = min(max(1+int(math.Round((v-lo)/span*7)), 1), 8)
		}
		b.WriteRune(eighths[level])
	}
	return b.String()
}

func renderSpark(tk *Toolkit, slot entity.Slot, rows []entity.Row, width, height int) string {
	rows = finiteRows(rows)
	names, groups := entity.GroupByCategory(rows)
	if len(names) == 0 {
		return tk.MutedStyle().Render(noData)
	}
	if len(names) > height {
		names = names[:max(height, 1)]
	}

	nameW := 0
	for _, name := range names {
		nameW = max(nameW, len(name))
	}
	p := precisionOption(slot)

	var lines []string
	for i, name := range names {
		values := entity.Values(groups[name])
		lo, hi := bounds(values)
		last := fmt.Sprintf("%.*f", p, values[len(values)-1])
		n := max(width-nameW-len(last)-2, 1)
		spark := sparkline(Resample(values, n), lo, hi)
		lines = append(lines, fmt.Sprintf("%-*s %s %s", nameW, name, tk.SeriesStyle(i).Render(spark), last))
	}
	return strings.Join(lines, "\n")
}

func renderTrend(tk *Toolkit, slot entity.Slot, rows []entity.Row, width, height int) string {
	rows = finiteRows(rows)
	filter := Filter{
		Categories:   splitList(slot.Option("categories", "")),
		PositiveOnly: true,
	}
	if since, err := time.Parse(time.DateOnly, slot.Option("since", "")); err == nil {
		filter.Since = since
	}

	periods := SemiannualMeans(filter.Apply(rows))
	if len(periods) == 0 {
		return tk.MutedStyle().Render(noData)
	}

	means := make([]float64, len(periods))
	for i, p := range periods {
		means[i] = p.Mean
	}
	trend := TrendLine(periods)

	first, last := periods[0], periods[len(periods)-1]
	axis := first.Key() + " → " + last.Key()
	caption := axis
	if marker, err := time.Parse(time.DateOnly, slot.Option("marker", "")); err == nil &&
		!marker.Before(first.Start) && !marker.After(last.Start) {
		label := slot.Option("marker_label", "marker")
		caption += "   ▲ " + label + " (" + Period{Start: halfStart(marker)}.Key() + ")"
	}

	body := plot(tk, [][]float64{means, trend}, width, height-2, precisionOption(slot))
	return body + "\n" + legend(tk, []string{"semiannual mean", "trend"}) + "\n" + tk.MutedStyle().Render(caption)
}
