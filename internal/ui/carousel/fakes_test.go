package carousel_test

import (
	"context"
	"fmt"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/ui/carousel"
	"github.com/bnema/chartdeck/internal/ui/layout"
)

type fakeTrack struct {
	offset     int
	transition bool
}

func (t *fakeTrack) SetOffset(offset int)              { t.offset = offset }
func (t *fakeTrack) Offset() int                       { return t.offset }
func (t *fakeTrack) SetTransitionEnabled(enabled bool) { t.transition = enabled }

type fakeViewport struct{ width, height int }

func (v *fakeViewport) Width() int                { return v.width }
func (v *fakeViewport) Height() int               { return v.height }
func (v *fakeViewport) SetSize(width, height int) { v.width, v.height = width, height }

type fakeButton struct {
	disabled bool
	onClick  func()
}

func (b *fakeButton) SetDisabled(disabled bool) { b.disabled = disabled }
func (b *fakeButton) IsDisabled() bool          { return b.disabled }
func (b *fakeButton) ConnectClicked(cb func()) uint32 {
	b.onClick = cb
	return 1
}
func (b *fakeButton) click() {
	if !b.disabled && b.onClick != nil {
		b.onClick()
	}
}

type fakeNavItem struct {
	label      string
	accessible string
	current    bool
	onClick    func()
}

func (i *fakeNavItem) SetCurrent(current bool)         { i.current = current }
func (i *fakeNavItem) IsCurrent() bool                 { return i.current }
func (i *fakeNavItem) SetAccessibleLabel(label string) { i.accessible = label }
func (i *fakeNavItem) ConnectClicked(cb func()) uint32 {
	i.onClick = cb
	return 1
}

type fakeNavBar struct{ items []layout.NavItemWidget }

func (b *fakeNavBar) Append(item layout.NavItemWidget) { b.items = append(b.items, item) }
func (b *fakeNavBar) Items() []layout.NavItemWidget    { return b.items }

type fakeLabel struct{ text string }

func (l *fakeLabel) SetText(text string) { l.text = text }
func (l *fakeLabel) Text() string        { return l.text }

type fakeFactory struct{}

func (fakeFactory) NewNavItem(label string) layout.NavItemWidget {
	return &fakeNavItem{label: label}
}

type fakeHost struct {
	track    *fakeTrack
	viewport *fakeViewport
	prev     *fakeButton
	next     *fakeButton
	navBar   *fakeNavBar
	status   *fakeLabel
}

func newFakeHost(width int) *fakeHost {
	return &fakeHost{
		track:    &fakeTrack{transition: true},
		viewport: &fakeViewport{width: width, height: 24},
		prev:     &fakeButton{},
		next:     &fakeButton{},
		navBar:   &fakeNavBar{},
		status:   &fakeLabel{},
	}
}

func (h *fakeHost) host() carousel.Host {
	return carousel.Host{
		Track:    h.track,
		Viewport: h.viewport,
		Prev:     h.prev,
		Next:     h.next,
		NavBar:   h.navBar,
		Status:   h.status,
		Factory:  fakeFactory{},
	}
}

func (h *fakeHost) item(i int) *fakeNavItem {
	return h.navBar.items[i].(*fakeNavItem)
}

func (h *fakeHost) currentItems() []int {
	var out []int
	for i, it := range h.navBar.items {
		if it.IsCurrent() {
			out = append(out, i)
		}
	}
	return out
}

func makePanels(n, slotsPer int) []entity.Panel {
	panels := make([]entity.Panel, n)
	for i := range panels {
		panels[i] = entity.Panel{Index: i}
		for s := 0; s < slotsPer; s++ {
			panels[i].Slots = append(panels[i].Slots, entity.Slot{
				ID:   entity.NewSlotID(i, s),
				Type: entity.ChartLine,
			})
		}
	}
	return panels
}

// countingMounter records every mount and dispose per slot.
type countingMounter struct {
	mounts   map[entity.SlotID]int
	disposes map[entity.SlotID]int
	live     map[entity.SlotID]bool
}

func newCountingMounter() *countingMounter {
	return &countingMounter{
		mounts:   map[entity.SlotID]int{},
		disposes: map[entity.SlotID]int{},
		live:     map[entity.SlotID]bool{},
	}
}

func (m *countingMounter) Mount(_ context.Context, slot entity.Slot) port.Disposable {
	if m.live[slot.ID] {
		panic(fmt.Sprintf("slot %s mounted twice", slot.ID))
	}
	m.mounts[slot.ID]++
	m.live[slot.ID] = true
	return port.DisposeOnce(func() {
		m.disposes[slot.ID]++
		m.live[slot.ID] = false
	})
}

func (m *countingMounter) livePanels() map[int]bool {
	out := map[int]bool{}
	for id, live := range m.live {
		if !live {
			continue
		}
		var p, s int
		_, _ = fmt.Sscanf(string(id), "p%d/s%d", &p, &s)
		out[p] = true
	}
	return out
}

func (m *countingMounter) totals() (mounts, disposes int) {
	for _, n := range m.mounts {
		mounts += n
	}
	for _, n := range m.disposes {
		disposes += n
	}
	return mounts, disposes
}
