package datasource_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/datasource"
)

func TestWaveLoader_IsDeterministic(t *testing.T) {
	ref := entity.DataSourceRef{URI: "wave:", Params: map[string]string{"n": "40", "seed": "7"}}

	a, err := datasource.WaveLoader{}.Load(context.Background(), ref)
	require.NoError(t, err)
	b, err := datasource.WaveLoader{}.Load(context.Background(), ref)
	require.NoError(t, err)

	require.Len(t, a, 40)
	assert.Equal(t, a, b)
	assert.Empty(t, a[0].Category)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), a[1].Date)
}

func TestWaveLoader_ListsMakeSeries(t *testing.T) {
	rows, err := datasource.WaveLoader{}.Load(context.Background(), entity.DataSourceRef{
		URI:    "wave:",
		Params: map[string]string{"n": "5", "period": "3,7,9", "noise": "0", "amp": "0", "base": "1,2"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 15)

	names, series := entity.GroupByCategory(rows)
	assert.Equal(t, []string{"s1", "s2", "s3"}, names)
	assert.Equal(t, 1.0, series["s1"][0].Value)
	assert.Equal(t, 2.0, series["s3"][4].Value, "short lists repeat their last entry")
}

func TestWaveLoader_RejectsBadParams(t *testing.T) {
	for _, params := range []map[string]string{
		{"n": "-1"},
		{"n": "many"},
		{"period": "0"},
		{"amp": "x"},
		{"start": "yesterday"},
		{"step": "1 day"},
	} {
		_, err := datasource.WaveLoader{}.Load(context.Background(), entity.DataSourceRef{URI: "wave:", Params: params})
		assert.Error(t, err, params)
	}
}

func TestExprLoader_Evaluates(t *testing.T) {
	rows, err := datasource.ExprLoader{}.Load(context.Background(), entity.DataSourceRef{
		URI:    "expr:",
		Params: map[string]string{"y": "i * i + n", "n": "4", "category": "squares"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []float64{4, 5, 8, 13}, entity.Values(rows))
	assert.Equal(t, "squares", rows[3].Category)
}

func TestExprLoader_RandomIsSeeded(t *testing.T) {
	ref := entity.DataSourceRef{URI: "expr:", Params: map[string]string{"y": "Math.random()", "n": "10", "seed": "3"}}
	a, err := datasource.ExprLoader{}.Load(context.Background(), ref)
	require.NoError(t, err)
	b, err := datasource.ExprLoader{}.Load(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExprLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		y    string
	}{
		{"missing", ""},
		{"syntax", "i +"},
		{"throws", "undefinedName * 2"},
		{"not a number", "'abc'"},
		{"infinite", "1 / 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datasource.ExprLoader{}.Load(context.Background(), entity.DataSourceRef{
				URI:    "expr:",
				Params: map[string]string{"y": tt.y, "n": "3"},
			})
			assert.Error(t, err)
		})
	}
}

func TestExprLoader_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := datasource.ExprLoader{}.Load(ctx, entity.DataSourceRef{
		URI:    "expr:",
		Params: map[string]string{"y": "(function(){ while (true) {} })()", "n": "1"},
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewDefault_RoutesBySchemes(t *testing.T) {
	r, pool := datasource.NewDefault(context.Background(), datasource.Options{BaseDir: t.TempDir()})
	t.Cleanup(func() { _ = pool.Close() })

	for _, uri := range []string{"wave:", "expr:", "sqlite:x.db", "x.csv", "https://example.com/x.csv"} {
		assert.NoError(t, r.Check(entity.DataSourceRef{URI: uri}), uri)
	}
	assert.ErrorIs(t, r.Check(entity.DataSourceRef{URI: "ftp://x"}), datasource.ErrUnknownScheme)
}
