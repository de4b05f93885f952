package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/chartdeck/internal/logging"
)

// LazyDB opens a read-only database on first use. Loading the WASM engine
// is not free, so decks that never show a sqlite slot never pay for it.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		db, err := Open(ctx, l.dbPath, ReadOnly)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("path", l.dbPath).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

func (l *LazyDB) Path() string {
	return l.dbPath
}

// Pool hands out one LazyDB per path.
type Pool struct {
	mu  sync.Mutex
	dbs map[string]*LazyDB
}

func NewPool() *Pool {
	return &Pool{dbs: make(map[string]*LazyDB)}
}

func (p *Pool) Get(path string) *LazyDB {
	p.mu.Lock()
	defer p.mu.Unlock()

	if db, ok := p.dbs[path]; ok {
		return db
	}
	db := NewLazyDB(path)
	p.dbs[path] = db
	return db
}

// Close closes every database opened through the pool.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for path, db := range p.dbs {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %s: %w", path, err)
		}
	}
	p.dbs = make(map[string]*LazyDB)
	return firstErr
}
