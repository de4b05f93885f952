package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/logging"
)

const (
	defaultDateColumn     = "date"
	defaultValueColumn    = "value"
	defaultCategoryColumn = "category"
)

var ErrMissingColumn = errors.New("column not found")

// CSVLoader reads comma separated files from disk or over HTTP.
// Params: date, value and category name the columns; layout is the Go time
// layout of the date column.
type CSVLoader struct {
	baseDir string
	client  *http.Client
}

func NewCSVLoader(baseDir string, client *http.Client) *CSVLoader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CSVLoader{baseDir: baseDir, client: client}
}

func (l *CSVLoader) Accepts(ref entity.DataSourceRef) bool {
	switch Scheme(ref.URI) {
	case "", "file", "http", "https":
		return !ref.IsZero()
	default:
		return false
	}
}

func (l *CSVLoader) Load(ctx context.Context, ref entity.DataSourceRef) ([]entity.Row, error) {
	rc, err := l.open(ctx, ref.URI)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return ParseCSV(ctx, rc, ColumnMap{
		Date:     ref.Param("date", defaultDateColumn),
		Value:    ref.Param("value", defaultValueColumn),
		Category: ref.Param("category", defaultCategoryColumn),
		Layout:   ref.Param("layout", time.DateOnly),
	})
}

func (l *CSVLoader) open(ctx context.Context, uri string) (io.ReadCloser, error) {
	switch Scheme(uri) {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("GET %s: %s", uri, resp.Status)
		}
		return resp.Body, nil
	default:
		return os.Open(l.resolvePath(uri))
	}
}

// resolvePath strips a file: prefix and anchors relative paths at baseDir.
func (l *CSVLoader) resolvePath(uri string) string {
	path := strings.TrimPrefix(strings.TrimPrefix(uri, "file://"), "file:")
	if !filepath.IsAbs(path) && l.baseDir != "" {
		path = filepath.Join(l.baseDir, path)
	}
	return path
}

// ColumnMap names the CSV columns that become Row fields. Category is
// optional; Date may be empty to skip dates.
type ColumnMap struct {
	Date     string
	Value    string
	Category string
	Layout   string
}

// ParseCSV reads rows with a header line. Records whose value does not
// parse to a finite number are skipped; a missing value column is an error.
func ParseCSV(ctx context.Context, r io.Reader, cols ColumnMap) ([]entity.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))] = i
	}

	valueIdx, ok := index[cols.Value]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Value)
	}
	dateIdx, hasDate := index[cols.Date]
	catIdx, hasCat := index[cols.Category]

	var (
		rows    []entity.Row
		skipped int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		row, ok := parseRecord(rec, valueIdx, dateIdx, hasDate, catIdx, hasCat, cols.Layout)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		logging.FromContext(ctx).Debug().Int("skipped", skipped).Int("rows", len(rows)).Msg("skipped unparseable csv records")
	}
	return rows, nil
}

func parseRecord(rec []string, valueIdx, dateIdx int, hasDate bool, catIdx int, hasCat bool, layout string) (entity.Row, bool) {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	v, err := strconv.ParseFloat(field(valueIdx), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return entity.Row{}, false
	}
	row := entity.Row{Value: v}
	if hasDate {
		row.Date = parseDate(field(dateIdx), layout)
	}
	if hasCat {
		row.Category = field(catIdx)
	}
	return row, true
}

// parseDate tries layout, then RFC 3339 and the date prefix of a timestamp.
func parseDate(s, layout string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, l := range []string{layout, time.RFC3339, time.DateTime} {
		if l == "" {
			continue
		}
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	if len(s) >= 10 {
		if t, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return t
		}
	}
	return time.Time{}
}
