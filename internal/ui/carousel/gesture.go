package carousel

import (
	"context"

	"github.com/bnema/chartdeck/internal/logging"
)

// DefaultSwipeThreshold is the fraction of the viewport width a drag must
// travel to commit to the adjacent panel.
const DefaultSwipeThreshold = 0.15

// GestureState is the drag state.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
)

func (s GestureState) String() string {
	if s == GestureDragging {
		return "dragging"
	}
	return "idle"
}

// Gesture turns pointer drags into navigation. While dragging the track
// follows the pointer without clamping; on release the drag either commits
// to a neighbour or snaps back through the Navigator.
type Gesture struct {
	ctx       context.Context
	nav       *Navigator
	threshold float64

	state       GestureState
	startX      int
	lastX       int
	startOffset int
}

// GestureOption configures a Gesture.
type GestureOption func(*Gesture)

// WithSwipeThreshold overrides the commit threshold. Values outside (0, 1)
// are ignored.
func WithSwipeThreshold(fraction float64) GestureOption {
	return func(g *Gesture) {
		if fraction > 0 && fraction < 1 {
			g.threshold = fraction
		}
	}
}

func NewGesture(ctx context.Context, nav *Navigator, opts ...GestureOption) *Gesture {
	g := &Gesture{
		ctx:       logging.WithComponent(ctx, "gesture"),
		nav:       nav,
		threshold: DefaultSwipeThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gesture) State() GestureState { return g.state }

// Start begins a drag at x. Presses on navigation controls and presses while
// a drag is already live are ignored. It reports whether a drag started.
func (g *Gesture) Start(x int, onControl bool) bool {
	if onControl || g.state == GestureDragging {
		return false
	}

	g.state = GestureDragging
	g.startX = x
	g.lastX = x
	g.startOffset = g.nav.host.Track.Offset()
	g.nav.host.Track.SetTransitionEnabled(false)
	return true
}

// Move drags the track to follow x.
func (g *Gesture) Move(x int) {
	if g.state != GestureDragging {
		return
	}
	g.lastX = x
	g.nav.host.Track.SetOffset(g.startOffset + (x - g.startX))
}

// End releases the drag at x and settles on a panel.
func (g *Gesture) End(x int) {
	if g.state != GestureDragging {
		return
	}
	g.lastX = x
	g.settle()
}

// Cancel settles the drag at the last known pointer position, as if it had
// been released there.
func (g *Gesture) Cancel() {
	if g.state != GestureDragging {
		return
	}
	g.settle()
}

func (g *Gesture) settle() {
	g.state = GestureIdle
	g.nav.host.Track.SetTransitionEnabled(true)

	dx := float64(g.lastX - g.startX)
	threshold := g.threshold * float64(g.nav.host.Viewport.Width())
	index := g.nav.Index()

	target := index
	switch {
	case dx > threshold:
		target = index - 1
	case dx < -threshold:
		target = index + 1
	}

	logging.FromContext(g.ctx).Debug().
		Float64("dx", dx).
		Float64("threshold", threshold).
		Int("from", index).
		Int("to", target).
		Msg("drag settled")

	g.nav.GoTo(target)
}
