package datasource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/persistence/sqlite"
)

var ErrMissingTable = errors.New("sqlite source needs a table param")

// SQLiteLoader reads rows from a table of a SQLite file: "sqlite:path".
// Params: table (required), date, value and category columns, layout.
type SQLiteLoader struct {
	baseDir string
	pool    *sqlite.Pool
}

func NewSQLiteLoader(baseDir string, pool *sqlite.Pool) *SQLiteLoader {
	if pool == nil {
		pool = sqlite.NewPool()
	}
	return &SQLiteLoader{baseDir: baseDir, pool: pool}
}

func (l *SQLiteLoader) Accepts(ref entity.DataSourceRef) bool {
	return Scheme(ref.URI) == "sqlite"
}

func (l *SQLiteLoader) path(uri string) string {
	p := strings.TrimPrefix(uri[len("sqlite:"):], "//")
	if !filepath.IsAbs(p) && l.baseDir != "" {
		p = filepath.Join(l.baseDir, p)
	}
	return p
}

func (l *SQLiteLoader) Load(ctx context.Context, ref entity.DataSourceRef) ([]entity.Row, error) {
	query, err := buildQuery(ref)
	if err != nil {
		return nil, err
	}

	db, err := l.pool.Get(l.path(ref.URI)).DB(ctx)
	if err != nil {
		return nil, err
	}

	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rs.Close() }()

	layout := ref.Param("layout", time.DateOnly)
	var rows []entity.Row
	for rs.Next() {
		var (
			date, category sql.NullString
			value          sql.NullFloat64
		)
		if err := rs.Scan(&date, &value, &category); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if !value.Valid || math.IsNaN(value.Float64) || math.IsInf(value.Float64, 0) {
			continue
		}
		rows = append(rows, entity.Row{
			Date:     parseDate(date.String, layout),
			Value:    value.Float64,
			Category: category.String,
		})
	}
	return rows, rs.Err()
}

// buildQuery selects date, value and category in that order. Missing
// date or category columns select NULL.
func buildQuery(ref entity.DataSourceRef) (string, error) {
	table := ref.Param("table", "")
	if table == "" {
		return "", ErrMissingTable
	}
	qt, err := sqlite.QuoteIdent(table)
	if err != nil {
		return "", err
	}
	value, err := sqlite.QuoteIdent(ref.Param("value", defaultValueColumn))
	if err != nil {
		return "", err
	}

	optional := func(key string) (string, error) {
		name := ref.Param(key, "")
		if name == "" {
			return "NULL", nil
		}
		return sqlite.QuoteIdent(name)
	}
	date, err := optional("date")
	if err != nil {
		return "", err
	}
	category, err := optional("category")
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("SELECT %s, CAST(%s AS REAL), %s FROM %s", date, value, category, qt)
	if date != "NULL" {
		query += " ORDER BY " + date
	}
	return query, nil
}

// Close releases every database the loader opened.
func (l *SQLiteLoader) Close() error {
	return l.pool.Close()
}
