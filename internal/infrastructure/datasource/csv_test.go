package datasource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/datasource"
)

const bikeCSV = `colonnina,data,totale,direzione_centro
Colonnina 1,2024-01-01T00:00:00+01:00,120,60
Colonnina 1,2024-01-02T00:00:00+01:00,n/a,0
Colonnina 2,2024-01-02,95,40
`

func bikeRef(uri string) entity.DataSourceRef {
	return entity.DataSourceRef{URI: uri, Params: map[string]string{
		"date":     "data",
		"value":    "totale",
		"category": "colonnina",
	}}
}

func TestParseCSV_MapsColumnsAndSkipsBadValues(t *testing.T) {
	rows, err := datasource.ParseCSV(context.Background(), strings.NewReader(bikeCSV), datasource.ColumnMap{
		Date: "data", Value: "totale", Category: "colonnina", Layout: time.DateOnly,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 120.0, rows[0].Value)
	assert.Equal(t, "Colonnina 1", rows[0].Category)
	assert.Equal(t, 2024, rows[0].Date.Year())
	assert.Equal(t, time.January, rows[0].Date.Month())

	assert.Equal(t, 95.0, rows[1].Value)
	assert.Equal(t, "Colonnina 2", rows[1].Category)
	assert.Equal(t, 2, rows[1].Date.Day())
}

func TestParseCSV_SkipsNonFiniteValues(t *testing.T) {
	in := "value\n1\ninf\n-Inf\nNaN\n+infinity\n2\n"
	rows, err := datasource.ParseCSV(context.Background(), strings.NewReader(in), datasource.ColumnMap{Value: "value"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, entity.Values(rows))
}

func TestParseCSV_MissingValueColumn(t *testing.T) {
	_, err := datasource.ParseCSV(context.Background(), strings.NewReader(bikeCSV), datasource.ColumnMap{Value: "nope"})
	assert.ErrorIs(t, err, datasource.ErrMissingColumn)
}

func TestParseCSV_OptionalColumnsMayBeAbsent(t *testing.T) {
	rows, err := datasource.ParseCSV(context.Background(), strings.NewReader("value\n1\n2.5\n"), datasource.ColumnMap{
		Date: "date", Value: "value", Category: "category",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Date.IsZero())
	assert.Empty(t, rows[1].Category)
	assert.Equal(t, 2.5, rows[1].Value)
}

func TestCSVLoader_RelativePathUsesBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bike.csv"), []byte(bikeCSV), 0o600))

	loader := datasource.NewCSVLoader(dir, nil)
	for _, uri := range []string{"bike.csv", "file:bike.csv", filepath.Join(dir, "bike.csv")} {
		ref := bikeRef(uri)
		require.True(t, loader.Accepts(ref), uri)

		rows, err := loader.Load(context.Background(), ref)
		require.NoError(t, err, uri)
		assert.Len(t, rows, 2, uri)
	}
}

func TestCSVLoader_MissingFile(t *testing.T) {
	loader := datasource.NewCSVLoader(t.TempDir(), nil)
	_, err := loader.Load(context.Background(), bikeRef("missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bike.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(bikeCSV))
	}))
	defer srv.Close()

	loader := datasource.NewCSVLoader("", srv.Client())

	rows, err := loader.Load(context.Background(), bikeRef(srv.URL+"/bike.csv"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = loader.Load(context.Background(), bikeRef(srv.URL+"/other.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCSVLoader_Accepts(t *testing.T) {
	loader := datasource.NewCSVLoader("", nil)
	assert.True(t, loader.Accepts(entity.DataSourceRef{URI: "https://example.com/a.csv"}))
	assert.False(t, loader.Accepts(entity.DataSourceRef{URI: "sqlite:a.db"}))
	assert.False(t, loader.Accepts(entity.DataSourceRef{URI: "  "}))
}
