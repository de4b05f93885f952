package carousel

import (
	"context"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/logging"
	"github.com/bnema/chartdeck/internal/ui/layout"
)

// Key is a navigation key request.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

// Navigator is the single authority for the active panel index. All derived
// widget state (track offset, button state, current quick-jump item, status
// text) is recomputed from the index on every GoTo.
type Navigator struct {
	ctx    context.Context
	host   Host
	panels []entity.Panel
	index  int
	items  []layout.NavItemWidget

	listeners []Listener
	pending   []IndexChange
	notifying bool
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithListener subscribes l before the initial GoTo(0), so it receives the
// startup notification.
func WithListener(l Listener) NavigatorOption {
	return func(n *Navigator) {
		if l != nil {
			n.listeners = append(n.listeners, l)
		}
	}
}

// NewNavigator builds one quick-jump item per panel, wires the controls to
// GoTo and activates the first panel.
func NewNavigator(ctx context.Context, host Host, panels []entity.Panel, opts ...NavigatorOption) (*Navigator, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	if err := host.validate(); err != nil {
		return nil, err
	}

	n := &Navigator{
		ctx:    logging.WithComponent(ctx, "navigator"),
		host:   host,
		panels: panels,
	}
	for _, opt := range opts {
		opt(n)
	}

	for i, p := range panels {
		target := i
		item := host.Factory.NewNavItem(p.DisplayLabel())
		item.SetAccessibleLabel("Go to " + p.DisplayLabel())
		item.ConnectClicked(func() { n.GoTo(target) })
		host.NavBar.Append(item)
		n.items = append(n.items, item)
	}

	host.Prev.ConnectClicked(func() { n.GoTo(n.index - 1) })
	host.Next.ConnectClicked(func() { n.GoTo(n.index + 1) })

	n.GoTo(0)
	return n, nil
}

// Subscribe registers l for future notifications and returns a func that
// removes it.
func (n *Navigator) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	n.listeners = append(n.listeners, l)
	id := len(n.listeners) - 1
	return func() {
		if id < len(n.listeners) {
			n.listeners[id] = nil
		}
	}
}

func (n *Navigator) Index() int { return n.index }

func (n *Navigator) Count() int { return len(n.panels) }

func (n *Navigator) Panels() []entity.Panel { return n.panels }

// GoTo clamps target into range, makes it the active index, refreshes every
// derived widget and notifies listeners. Calling it with the current index
// is valid and still notifies.
func (n *Navigator) GoTo(target int) {
	n.index = clamp(target, 0, len(n.panels)-1)
	n.applyTransform()

	n.host.Prev.SetDisabled(n.index == 0)
	n.host.Next.SetDisabled(n.index == len(n.panels)-1)
	for i, item := range n.items {
		item.SetCurrent(i == n.index)
	}
	if n.host.Status != nil {
		n.host.Status.SetText(Announcement(n.index, len(n.panels)))
	}

	if target != n.index {
		logging.FromContext(n.ctx).Trace().Int("requested", target).Int("index", n.index).Msg("clamped navigation target")
	}
	n.notify(ReasonNavigate)
}

// HandleKey maps a navigation key to GoTo. It reports whether the key was
// consumed; consumed keys must not be handled further.
func (n *Navigator) HandleKey(k Key) bool {
	switch k {
	case KeyLeft:
		n.GoTo(n.index - 1)
		return true
	case KeyRight:
		n.GoTo(n.index + 1)
		return true
	default:
		return false
	}
}

// applyTransform positions the track using the viewport width as it is now.
func (n *Navigator) applyTransform() {
	n.host.Track.SetOffset(-n.index * n.host.Viewport.Width())
}

// notify delivers a notification for the current index. Notifications raised
// by a listener are queued and delivered after the current one, so every
// listener sees them in call order.
func (n *Navigator) notify(reason Reason) {
	n.pending = append(n.pending, IndexChange{Index: n.index, Panels: n.panels, Reason: reason})
	if n.notifying {
		return
	}

	n.notifying = true
	defer func() { n.notifying = false }()

	for len(n.pending) > 0 {
		change := n.pending[0]
		n.pending = n.pending[1:]
		for _, l := range n.listeners {
			if l != nil {
				l(change)
			}
		}
	}
}
