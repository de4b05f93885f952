package datasource_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/application/port/mocks"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/datasource"
)

func TestScheme(t *testing.T) {
	tests := map[string]string{
		"data/bike.csv":             "",
		"/abs/bike.csv":             "",
		`C:\data\bike.csv`:          "",
		"file:bike.csv":             "file",
		"HTTPS://example.com/x.csv": "https",
		"sqlite:counts.db":          "sqlite",
		"wave:":                     "wave",
		"expr:":                     "expr",
		"weird scheme:x":            "",
	}
	for uri, want := range tests {
		assert.Equal(t, want, datasource.Scheme(uri), uri)
	}
}

func TestResolver_CachesByKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockRowLoader(ctrl)
	ref := entity.DataSourceRef{URI: "bike.csv", Params: map[string]string{"value": "totale"}}
	rows := []entity.Row{{Value: 1}, {Value: 2}}

	loader.EXPECT().Accepts(gomock.Any()).Return(true).Times(1)
	loader.EXPECT().Load(gomock.Any(), ref).Return(rows, nil).Times(1)

	r := datasource.NewResolver(context.Background(), []port.RowLoader{loader})
	p := r.Provider(ref)

	for i := 0; i < 3; i++ {
		got, err := p.Rows(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	}
	assert.Equal(t, ref, p.Ref())
	assert.Equal(t, 1, r.Cached())
}

func TestResolver_FailedLoadsAreRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockRowLoader(ctrl)
	ref := entity.DataSourceRef{URI: "https://example.com/bike.csv"}
	boom := errors.New("503 Service Unavailable")

	loader.EXPECT().Accepts(gomock.Any()).Return(true).AnyTimes()
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any(), ref).Return(nil, boom),
		loader.EXPECT().Load(gomock.Any(), ref).Return([]entity.Row{{Value: 3}}, nil),
	)

	r := datasource.NewResolver(context.Background(), []port.RowLoader{loader})

	_, err := r.Load(context.Background(), ref)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, r.Cached())

	rows, err := r.Load(context.Background(), ref)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestResolver_ConcurrentLoadsShareOneCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockRowLoader(ctrl)
	ref := entity.DataSourceRef{URI: "wave:"}
	release := make(chan struct{})

	loader.EXPECT().Accepts(gomock.Any()).Return(true).AnyTimes()
	loader.EXPECT().Load(gomock.Any(), ref).DoAndReturn(func(context.Context, entity.DataSourceRef) ([]entity.Row, error) {
		<-release
		return []entity.Row{{Value: 9}}, nil
	}).Times(1)

	r := datasource.NewResolver(context.Background(), []port.RowLoader{loader})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := r.Load(context.Background(), ref)
			assert.NoError(t, err)
			assert.Len(t, rows, 1)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestResolver_UnknownScheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockRowLoader(ctrl)
	loader.EXPECT().Accepts(gomock.Any()).Return(false).AnyTimes()

	r := datasource.NewResolver(context.Background(), []port.RowLoader{loader})
	ref := entity.DataSourceRef{URI: "ftp://example.com/x.csv"}

	_, err := r.Load(context.Background(), ref)
	assert.ErrorIs(t, err, datasource.ErrUnknownScheme)
	assert.ErrorIs(t, r.Check(ref), datasource.ErrUnknownScheme)
}

func TestResolver_CacheSizeEvicts(t *testing.T) {
	r := datasource.NewResolver(context.Background(), []port.RowLoader{datasource.WaveLoader{}},
		datasource.WithCacheSize(1))

	_, err := r.Load(context.Background(), entity.DataSourceRef{URI: "wave:", Params: map[string]string{"n": "3"}})
	require.NoError(t, err)
	_, err = r.Load(context.Background(), entity.DataSourceRef{URI: "wave:", Params: map[string]string{"n": "4"}})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Cached())
}

// mapCache is a port.Cache that never evicts and counts writes.
type mapCache struct {
	mu   sync.Mutex
	m    map[string][]entity.Row
	sets int
}

func (c *mapCache) Get(key string) ([]entity.Row, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *mapCache) Set(key string, value []entity.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
	c.sets++
}

func (c *mapCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

func (c *mapCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func TestResolver_UsesInjectedCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockRowLoader(ctrl)
	ref := entity.DataSourceRef{URI: "bike.csv"}
	rows := []entity.Row{{Value: 3}}
	cache := &mapCache{m: map[string][]entity.Row{}}

	loader.EXPECT().Accepts(gomock.Any()).Return(true).Times(2)
	loader.EXPECT().Load(gomock.Any(), ref).Return(rows, nil).Times(2)

	r := datasource.NewResolver(context.Background(), []port.RowLoader{loader}, datasource.WithCache(cache))

	_, err := r.Load(context.Background(), ref)
	require.NoError(t, err)
	_, err = r.Load(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, rows, cache.m[ref.Key()])

	cache.Remove(ref.Key())
	_, err = r.Load(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
	assert.Equal(t, 1, r.Cached())
}
