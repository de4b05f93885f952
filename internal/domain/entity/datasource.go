package entity

import (
	"sort"
	"strings"
	"time"
)

// DataSourceRef identifies external data bound to a content slot.
// URI selects the loader (file path, http(s) URL, "sqlite:", "wave:", "expr:"),
// Params configure it (column mapping, generator settings).
type DataSourceRef struct {
	URI    string
	Params map[string]string
}

// IsZero reports whether no source was declared.
func (r DataSourceRef) IsZero() bool {
	return strings.TrimSpace(r.URI) == ""
}

// Param returns the value for key, or def when unset.
func (r DataSourceRef) Param(key, def string) string {
	if v, ok := r.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// Key returns a canonical string identifying the reference.
// Two refs with the same URI and params share one cache entry.
func (r DataSourceRef) Key() string {
	if len(r.Params) == 0 {
		return r.URI
	}
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(r.URI)
	for i, k := range keys {
		if i == 0 {
			b.WriteByte('#')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(r.Params[k])
	}
	return b.String()
}

// Row is one record of a tabular data source.
type Row struct {
	Date     time.Time
	Value    float64
	Category string
}

// Values returns the Value column of rows in order.
func Values(rows []Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Value
	}
	return out
}

// GroupByCategory splits rows into per-category series, preserving the
// order in which categories first appear.
func GroupByCategory(rows []Row) (categories []string, series map[string][]Row) {
	series = make(map[string][]Row)
	for _, r := range rows {
		if _, ok := series[r.Category]; !ok {
			categories = append(categories, r.Category)
		}
		series[r.Category] = append(series[r.Category], r)
	}
	return categories, series
}
