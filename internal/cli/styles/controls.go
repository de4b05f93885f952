package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/chartdeck/internal/ui/layout"
)

// Viewport is the fixed area the track is seen through.
type Viewport struct {
	width, height int
}

func (v *Viewport) Width() int  { return v.width }
func (v *Viewport) Height() int { return v.height }

func (v *Viewport) SetSize(width, height int) {
	v.width, v.height = max(width, 0), max(height, 0)
}

// clickHandlers is the ConnectClicked bookkeeping shared by clickable widgets.
type clickHandlers struct {
	next     uint32
	handlers map[uint32]func()
	order    []uint32
}

func (c *clickHandlers) connect(cb func()) uint32 {
	if c.handlers == nil {
		c.handlers = make(map[uint32]func())
	}
	c.next++
	c.handlers[c.next] = cb
	c.order = append(c.order, c.next)
	return c.next
}

func (c *clickHandlers) fire() bool {
	fired := false
	for _, id := range c.order {
		if cb := c.handlers[id]; cb != nil {
			cb()
			fired = true
		}
	}
	return fired
}

// Button is a previous/next control.
type Button struct {
	Label    string
	disabled bool
	clicks   clickHandlers
}

func NewButton(label string) *Button { return &Button{Label: label} }

func (b *Button) SetDisabled(disabled bool) { b.disabled = disabled }
func (b *Button) IsDisabled() bool          { return b.disabled }

func (b *Button) ConnectClicked(cb func()) uint32 { return b.clicks.connect(cb) }

// Click runs the click handlers unless the button is disabled, and reports
// whether any ran.
func (b *Button) Click() bool {
	if b.disabled {
		return false
	}
	return b.clicks.fire()
}

// View renders the button with the theme.
func (b *Button) View(theme *Theme) string {
	if b.disabled {
		return theme.ButtonDisabled.Render(b.Label)
	}
	return theme.Button.Render(b.Label)
}

// NavItem is one quick-jump entry.
type NavItem struct {
	Label      string
	current    bool
	accessible string
	clicks     clickHandlers
}

func (n *NavItem) SetCurrent(current bool)         { n.current = current }
func (n *NavItem) IsCurrent() bool                 { return n.current }
func (n *NavItem) SetAccessibleLabel(label string) { n.accessible = label }

// AccessibleLabel is the label read out for the item, such as "Go to Summary".
func (n *NavItem) AccessibleLabel() string { return n.accessible }

func (n *NavItem) ConnectClicked(cb func()) uint32 { return n.clicks.connect(cb) }

// Click runs the click handlers.
func (n *NavItem) Click() bool { return n.clicks.fire() }

// NavBar lays out quick-jump items in panel order.
type NavBar struct {
	items []layout.NavItemWidget
}

func (b *NavBar) Append(item layout.NavItemWidget) { b.items = append(b.items, item) }
func (b *NavBar) Items() []layout.NavItemWidget    { return b.items }

// minNavLabel is the narrowest label kept before items collapse to numbers.
const minNavLabel = 3

// View renders the items into at most width cells. mark wraps each rendered
// item, which lets callers register mouse zones; it may be nil.
func (b *NavBar) View(theme *Theme, width int, mark func(i int, s string) string) string {
	if len(b.items) == 0 {
		return ""
	}
	// Each item carries one cell of padding each side plus one separator.
	per := width/len(b.items) - 3
	numbered := per < minNavLabel

	parts := make([]string, 0, len(b.items))
	for i, it := range b.items {
		label := strconv.Itoa(i + 1)
		if ni, ok := it.(*NavItem); ok && !numbered {
			label = runewidth.Truncate(ni.Label, per, "…")
		}
		style := theme.NavItem
		if it.IsCurrent() {
			style = theme.NavItemCurrent
		}
		s := style.Render(label)
		if mark != nil {
			s = mark(i, s)
		}
		parts = append(parts, s)
	}
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(strings.Join(parts, " "))
}

// StatusLabel carries the live-region announcement.
type StatusLabel struct {
	text string
}

func (l *StatusLabel) SetText(text string) { l.text = text }
func (l *StatusLabel) Text() string        { return l.text }

// Factory creates NavItems for the navigator.
type Factory struct{}

func (Factory) NewNavItem(label string) layout.NavItemWidget {
	return &NavItem{Label: label}
}

var (
	_ layout.TrackWidget        = (*Track)(nil)
	_ layout.ViewportWidget     = (*Viewport)(nil)
	_ layout.ButtonWidget       = (*Button)(nil)
	_ layout.NavItemWidget      = (*NavItem)(nil)
	_ layout.NavContainerWidget = (*NavBar)(nil)
	_ layout.LabelWidget        = (*StatusLabel)(nil)
	_ layout.WidgetFactory      = Factory{}
)
