// Package carousel implements the paginated deck controller: the navigator
// that owns the active panel index, the drag gesture state machine, the
// layout synchronizer, and the window manager that keeps chart content
// mounted only around the active panel.
//
// Every type in this package is driven from the UI loop goroutine.
package carousel

import (
	"errors"
	"fmt"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/ui/layout"
)

var (
	ErrNoPanels       = errors.New("carousel: at least one panel is required")
	ErrIncompleteHost = errors.New("carousel: host is missing a required widget")
)

// Reason tells listeners what caused an IndexChange.
type Reason int

const (
	ReasonNavigate Reason = iota
	ReasonResize
)

func (r Reason) String() string {
	switch r {
	case ReasonNavigate:
		return "navigate"
	case ReasonResize:
		return "resize"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// IndexChange is delivered to listeners after every GoTo and every resize,
// including ones that leave the index unchanged.
type IndexChange struct {
	Index  int
	Panels []entity.Panel
	Reason Reason
}

// Listener receives index change notifications.
type Listener func(IndexChange)

// Host bundles the widgets the carousel drives. Status is optional.
type Host struct {
	Track    layout.TrackWidget
	Viewport layout.ViewportWidget
	Prev     layout.ButtonWidget
	Next     layout.ButtonWidget
	NavBar   layout.NavContainerWidget
	Status   layout.LabelWidget
	Factory  layout.WidgetFactory
}

func (h Host) validate() error {
	missing := ""
	switch {
	case h.Track == nil:
		missing = "track"
	case h.Viewport == nil:
		missing = "viewport"
	case h.Prev == nil:
		missing = "prev button"
	case h.Next == nil:
		missing = "next button"
	case h.NavBar == nil:
		missing = "nav container"
	case h.Factory == nil:
		missing = "widget factory"
	}
	if missing != "" {
		return fmt.Errorf("%w: %s", ErrIncompleteHost, missing)
	}
	return nil
}

// Announcement is the live-region text for the given index.
func Announcement(index, count int) string {
	return fmt.Sprintf("Slide %d of %d", index+1, count)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
