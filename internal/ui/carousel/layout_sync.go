package carousel

import (
	"github.com/bnema/chartdeck/internal/ui/mainloop"
)

const resizeKey = "viewport-resize"

// LayoutSync keeps the track transform and the mounted content in step
// with the viewport size. It never changes the active index.
type LayoutSync struct {
	nav       *Navigator
	coalescer *mainloop.Coalescer
}

// LayoutOption configures a LayoutSync.
type LayoutOption func(*LayoutSync)

// WithCoalescer collapses bursts of resize notifications into the last one
// posted before the loop drains.
func WithCoalescer(c *mainloop.Coalescer) LayoutOption {
	return func(l *LayoutSync) { l.coalescer = c }
}

func NewLayoutSync(nav *Navigator, opts ...LayoutOption) *LayoutSync {
	l := &LayoutSync{nav: nav}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resize records the new viewport size and repositions the track at once.
// The resize notification follows, coalesced when a Coalescer is set.
func (l *LayoutSync) Resize(width, height int) {
	l.nav.host.Viewport.SetSize(width, height)
	l.nav.applyTransform()

	if l.coalescer == nil {
		l.nav.notify(ReasonResize)
		return
	}
	l.coalescer.Post(resizeKey, func() {
		// Width may have changed again since the post; re-read it.
		l.nav.applyTransform()
		l.nav.notify(ReasonResize)
	})
}
