// Package chart holds the draw routines mounted into carousel slots and the
// registry that selects one per slot type.
package chart

import (
	"sync"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
)

// Factory draws into m.Canvas and returns the handle that removes the
// drawing. With a nil Toolkit it must return a no-op handle.
type Factory func(m Mount) port.Disposable

// Registry maps chart type tags to factories. Lookups are case-insensitive
// and fall back to the default factory.
type Registry struct {
	mu        sync.RWMutex
	factories map[entity.ChartType]Factory
	def       entity.ChartType
}

func NewRegistry(def entity.ChartType) *Registry {
	return &Registry{
		factories: make(map[entity.ChartType]Factory),
		def:       def.Normalize(),
	}
}

// DefaultRegistry registers every built-in chart with line as the default.
func DefaultRegistry() *Registry {
	r := NewRegistry(entity.ChartLine)
	r.Register(entity.ChartLine, Line)
	r.Register(entity.ChartBar, Bar)
	r.Register(entity.ChartArea, Area)
	r.Register(entity.ChartSpark, Spark)
	r.Register(entity.ChartTrend, Trend)
	r.Register("bike-line", Trend)
	return r
}

func (r *Registry) Register(tag entity.ChartType, f Factory) {
	if f == nil {
		return
	}
	r.mu.Lock()
	r.factories[tag.Normalize()] = f
	r.mu.Unlock()
}

// Resolve returns the factory for tag, or the default factory when tag is
// empty or unknown. It returns nil only if no default is registered.
func (r *Registry) Resolve(tag entity.ChartType) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.factories[tag.Normalize()]; ok {
		return f
	}
	return r.factories[r.def]
}

// Known reports whether tag has its own factory.
func (r *Registry) Known(tag entity.ChartType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[tag.Normalize()]
	return ok
}

// Tags lists the registered tags.
func (r *Registry) Tags() []entity.ChartType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.ChartType, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	return out
}
