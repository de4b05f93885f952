// Package datasource loads the tabular rows charts draw from. Loaders handle
// one URI scheme each; the Resolver memoizes their results per reference.
package datasource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/cache"
	"github.com/bnema/chartdeck/internal/logging"
)

var ErrUnknownScheme = errors.New("no loader for data source")

// Scheme returns the lower-cased scheme of uri, or "" for a plain path.
// Single letters are treated as Windows drive names, not schemes.
func Scheme(uri string) string {
	i := strings.Index(uri, ":")
	if i < 2 {
		return ""
	}
	scheme := strings.ToLower(uri[:i])
	for _, r := range scheme {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return ""
		}
	}
	return scheme
}

// Resolver picks a loader per reference and caches successful loads by
// reference key. Concurrent requests for the same key share one load.
type Resolver struct {
	ctx     context.Context
	loaders []port.RowLoader
	cache   port.Cache[string, []entity.Row]
	group   singleflight.Group
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache stores loaded rows in c instead of the default LRU.
func WithCache(c port.Cache[string, []entity.Row]) ResolverOption {
	return func(r *Resolver) { r.cache = c }
}

// WithCacheSize bounds the number of cached sources with an LRU. Zero keeps
// every source for the process lifetime.
func WithCacheSize(n int) ResolverOption {
	return func(r *Resolver) {
		r.cache = cache.NewLRU(n, cache.WithEvictCallback(func(key string, _ []entity.Row) {
			logging.FromContext(r.ctx).Debug().Str("source", key).Msg("data source evicted from cache")
		}))
	}
}

func NewResolver(ctx context.Context, loaders []port.RowLoader, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		ctx:     logging.WithComponent(ctx, "datasource"),
		loaders: loaders,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = cache.NewLRU[string, []entity.Row](0)
	}
	return r
}

// Provider implements port.DataProviderResolver.
func (r *Resolver) Provider(ref entity.DataSourceRef) port.DataProvider {
	return &provider{resolver: r, ref: ref}
}

// Load returns the rows for ref, loading them at most once while cached.
// Failed loads are not cached, so a later mount retries.
func (r *Resolver) Load(ctx context.Context, ref entity.DataSourceRef) ([]entity.Row, error) {
	key := ref.Key()
	if rows, ok := r.cache.Get(key); ok {
		return rows, nil
	}

	v, err, shared := r.group.Do(key, func() (any, error) {
		if rows, ok := r.cache.Get(key); ok {
			return rows, nil
		}
		loader, err := r.loaderFor(ref)
		if err != nil {
			return nil, err
		}
		rows, err := loader.Load(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", ref.URI, err)
		}
		r.cache.Set(key, rows)
		logging.FromContext(r.ctx).Debug().Str("source", key).Int("rows", len(rows)).Msg("data source loaded")
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.FromContext(r.ctx).Trace().Str("source", key).Msg("joined in-flight load")
	}
	return v.([]entity.Row), nil
}

func (r *Resolver) loaderFor(ref entity.DataSourceRef) (port.RowLoader, error) {
	for _, l := range r.loaders {
		if l.Accepts(ref) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, ref.URI)
}

// Check reports whether some loader accepts ref without loading it.
func (r *Resolver) Check(ref entity.DataSourceRef) error {
	_, err := r.loaderFor(ref)
	return err
}

// Cached reports how many sources are cached.
func (r *Resolver) Cached() int { return r.cache.Len() }

type provider struct {
	resolver *Resolver
	ref      entity.DataSourceRef
}

func (p *provider) Ref() entity.DataSourceRef { return p.ref }

func (p *provider) Rows(ctx context.Context) ([]entity.Row, error) {
	return p.resolver.Load(ctx, p.ref)
}
