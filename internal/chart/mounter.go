package chart

import (
	"context"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/logging"
)

// ToolkitSource delivers the shared toolkit, loading it at most once.
// Callbacks run on the UI loop.
type ToolkitSource interface {
	Get(cb func(*Toolkit, error))
}

// Mounter resolves a slot to a Factory and mounts it into the slot's canvas
// once the toolkit is available.
type Mounter struct {
	registry  *Registry
	canvases  port.CanvasProvider
	sources   port.DataProviderResolver
	scheduler port.Scheduler
	toolkit   ToolkitSource

	toolkitFailed bool
}

func NewMounter(registry *Registry, canvases port.CanvasProvider, sources port.DataProviderResolver, scheduler port.Scheduler, toolkit ToolkitSource) *Mounter {
	return &Mounter{
		registry:  registry,
		canvases:  canvases,
		sources:   sources,
		scheduler: scheduler,
		toolkit:   toolkit,
	}
}

// slotHandle is installed synchronously so a slot disposed before the
// toolkit resolves never draws.
type slotHandle struct {
	disposed bool
	inner    port.Disposable
}

func (h *slotHandle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	if h.inner != nil {
		h.inner.Dispose()
		h.inner = nil
	}
}

// Mount implements the carousel slot mounter.
func (m *Mounter) Mount(ctx context.Context, slot entity.Slot) port.Disposable {
	h := &slotHandle{}

	m.toolkit.Get(func(tk *Toolkit, err error) {
		if h.disposed {
			return
		}
		if err != nil {
			if !m.toolkitFailed {
				logging.FromContext(ctx).Error().Err(err).Msg("chart toolkit unavailable, charts disabled")
				m.toolkitFailed = true
			}
			tk = nil
		}

		factory := m.registry.Resolve(slot.Type)
		if factory == nil {
			return
		}

		ref := slot.Source
		if ref.IsZero() {
			ref = DefaultSource(slot.Type)
		}
		var source port.DataProvider
		if m.sources != nil {
			source = m.sources.Provider(ref)
		}

		h.inner = factory(Mount{
			Ctx:       logging.WithSource(ctx, ref.URI),
			Slot:      slot,
			Canvas:    m.canvases.Canvas(slot.ID),
			Toolkit:   tk,
			Source:    source,
			Scheduler: m.scheduler,
		})
	})

	return h
}
