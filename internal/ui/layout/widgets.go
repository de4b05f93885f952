// Package layout defines the widget abstractions the carousel drives.
// The terminal UI implements them; tests use the generated mocks so the
// controller logic runs without a terminal.
package layout

// TrackWidget is the horizontal strip holding every panel side by side.
// Its offset is in viewport columns; negative values scroll right.
type TrackWidget interface {
	SetOffset(offset int)
	Offset() int
	// SetTransitionEnabled toggles the eased animation between offsets.
	// Drags disable it so the track follows the pointer 1:1.
	SetTransitionEnabled(enabled bool)
}

// ViewportWidget is the fixed window the track is seen through.
type ViewportWidget interface {
	Width() int
	Height() int
	SetSize(width, height int)
}

// ButtonWidget is a clickable control such as previous or next.
type ButtonWidget interface {
	SetDisabled(disabled bool)
	IsDisabled() bool
	// ConnectClicked registers a click handler and returns its handler ID.
	ConnectClicked(callback func()) uint32
}

// NavItemWidget is one quick-jump control in the navigation bar.
type NavItemWidget interface {
	SetCurrent(current bool)
	IsCurrent() bool
	SetAccessibleLabel(label string)
	ConnectClicked(callback func()) uint32
}

// NavContainerWidget holds the quick-jump controls in panel order.
type NavContainerWidget interface {
	Append(item NavItemWidget)
	Items() []NavItemWidget
}

// LabelWidget displays a single line of text.
type LabelWidget interface {
	SetText(text string)
	Text() string
}

// WidgetFactory creates widgets that are built at runtime.
type WidgetFactory interface {
	NewNavItem(label string) NavItemWidget
}
