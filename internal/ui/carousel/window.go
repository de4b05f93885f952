package carousel

import (
	"context"
	"slices"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/logging"
)

// DefaultWindowRadius mounts the active panel and one neighbour each side.
const DefaultWindowRadius = 1

// SlotMounter draws one slot and returns the handle that removes it.
type SlotMounter interface {
	Mount(ctx context.Context, slot entity.Slot) port.Disposable
}

// SlotMounterFunc adapts a function to SlotMounter.
type SlotMounterFunc func(ctx context.Context, slot entity.Slot) port.Disposable

func (f SlotMounterFunc) Mount(ctx context.Context, slot entity.Slot) port.Disposable {
	return f(ctx, slot)
}

// WindowManager keeps content mounted for the panels within radius of the
// active index and disposes everything else. It is a Navigator Listener.
type WindowManager struct {
	ctx     context.Context
	mounter SlotMounter
	radius  int

	// handles holds at most one live handle per slot.
	handles map[entity.SlotID]port.Disposable
	// mounted maps a mounted panel to the slots mounted for it.
	mounted map[int][]entity.SlotID
}

// WindowOption configures a WindowManager.
type WindowOption func(*WindowManager)

// WithRadius sets the window radius. Negative values are ignored.
func WithRadius(radius int) WindowOption {
	return func(w *WindowManager) {
		if radius >= 0 {
			w.radius = radius
		}
	}
}

func NewWindowManager(ctx context.Context, mounter SlotMounter, opts ...WindowOption) *WindowManager {
	w := &WindowManager{
		ctx:     logging.WithComponent(ctx, "window"),
		mounter: mounter,
		radius:  DefaultWindowRadius,
		handles: make(map[entity.SlotID]port.Disposable),
		mounted: make(map[int][]entity.SlotID),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *WindowManager) Radius() int { return w.radius }

// HandleIndexChange reconciles mounted content with the window around
// change.Index. A resize remounts the panels inside the window so charts
// redraw at the new geometry.
func (w *WindowManager) HandleIndexChange(change IndexChange) {
	log := logging.FromContext(w.ctx)

	for _, idx := range w.MountedPanels() {
		outside := abs(idx-change.Index) > w.radius
		if outside || change.Reason == ReasonResize {
			w.unmountPanel(idx)
		}
	}

	for _, p := range change.Panels {
		if abs(p.Index-change.Index) > w.radius {
			continue
		}
		if _, ok := w.mounted[p.Index]; ok {
			continue
		}
		w.mountPanel(p)
	}

	log.Debug().
		Int("index", change.Index).
		Str("reason", change.Reason.String()).
		Ints("mounted", w.MountedPanels()).
		Int("handles", len(w.handles)).
		Msg("window reconciled")
}

func (w *WindowManager) mountPanel(p entity.Panel) {
	ctx := logging.WithPanel(w.ctx, p.Index)
	ids := make([]entity.SlotID, 0, len(p.Slots))
	for _, slot := range p.Slots {
		if old, ok := w.handles[slot.ID]; ok {
			old.Dispose()
		}
		w.handles[slot.ID] = w.mountSlot(ctx, slot)
		ids = append(ids, slot.ID)
	}
	w.mounted[p.Index] = ids
}

// mountSlot isolates a misbehaving mounter so it cannot break sibling slots
// or the navigator.
func (w *WindowManager) mountSlot(ctx context.Context, slot entity.Slot) (handle port.Disposable) {
	ctx = logging.WithSlot(ctx, string(slot.ID))
	handle = port.Noop
	defer logging.Recover(ctx, "mount "+string(slot.ID), func(error) { handle = port.Noop })

	if h := w.mounter.Mount(ctx, slot); h != nil {
		handle = h
	}
	return handle
}

func (w *WindowManager) unmountPanel(index int) {
	for _, id := range w.mounted[index] {
		if h, ok := w.handles[id]; ok {
			h.Dispose()
			delete(w.handles, id)
		}
	}
	delete(w.mounted, index)
}

// MountedPanels returns the mounted panel indices in ascending order.
func (w *WindowManager) MountedPanels() []int {
	out := make([]int, 0, len(w.mounted))
	for idx := range w.mounted {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// LiveHandles reports how many slot handles are mounted.
func (w *WindowManager) LiveHandles() int { return len(w.handles) }

// Close disposes every mounted handle.
func (w *WindowManager) Close() {
	for _, idx := range w.MountedPanels() {
		w.unmountPanel(idx)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
