package port

import (
	"context"
	"sync"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

// Disposable is a live, mounted resource that can be torn down.
// Dispose must be idempotent: calling it on an already-disposed handle is a no-op.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to Disposable.
// The function is not guarded; use DisposeOnce when idempotency matters.
type DisposeFunc func()

// Dispose implements Disposable.
func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}

// Noop is the disposable returned when nothing was mounted.
var Noop Disposable = DisposeFunc(nil)

// DisposeOnce wraps fn so that only the first Dispose call runs it.
func DisposeOnce(fn func()) Disposable {
	var once sync.Once
	return DisposeFunc(func() {
		once.Do(func() {
			if fn != nil {
				fn()
			}
		})
	})
}

// Canvas is the container a draw routine renders into.
// It is owned by the UI and only touched from the UI goroutine.
type Canvas interface {
	// Size returns the drawable area in terminal cells.
	Size() (width, height int)
	// SetContent replaces the rendered content.
	SetContent(content string)
	// Clear removes any rendered content.
	Clear()
}

// CanvasProvider returns the container for a content slot.
type CanvasProvider interface {
	Canvas(id entity.SlotID) Canvas
}

// DataProvider supplies the rows behind a data-source reference.
// Rows may block; callers run it off the UI goroutine.
type DataProvider interface {
	Ref() entity.DataSourceRef
	Rows(ctx context.Context) ([]entity.Row, error)
}

// DataProviderResolver maps a slot's data-source reference to a provider.
type DataProviderResolver interface {
	Provider(ref entity.DataSourceRef) DataProvider
}

// Scheduler runs blocking work off the UI goroutine and delivers the
// completion back onto it.
type Scheduler interface {
	// Go runs work in the background, then calls done on the UI goroutine.
	Go(work func(), done func())
	// Post queues fn to run on the UI goroutine.
	Post(fn func())
}
