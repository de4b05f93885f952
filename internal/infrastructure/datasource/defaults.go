package datasource

import (
	"context"
	"net/http"
	"time"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/infrastructure/persistence/sqlite"
)

// Options configures NewDefault.
type Options struct {
	// BaseDir anchors relative file and sqlite paths, usually the deck's directory.
	BaseDir     string
	HTTPTimeout time.Duration
	CacheSize   int
}

// NewDefault returns a resolver wired with every built-in loader and the
// SQLite pool backing it. Close the pool when the resolver is retired.
func NewDefault(ctx context.Context, opts Options) (*Resolver, *sqlite.Pool) {
	timeout := opts.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	pool := sqlite.NewPool()
	loaders := []port.RowLoader{
		NewSQLiteLoader(opts.BaseDir, pool),
		WaveLoader{},
		ExprLoader{},
		NewCSVLoader(opts.BaseDir, &http.Client{Timeout: timeout}),
	}
	return NewResolver(ctx, loaders, WithCacheSize(opts.CacheSize)), pool
}
