package model

import (
	"context"
	"fmt"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/chart"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/infrastructure/config"
	"github.com/bnema/chartdeck/internal/ui/carousel"
	"github.com/bnema/chartdeck/internal/ui/mainloop"
)

// fakeHits reports every event as landing on the zone named under.
type fakeHits struct {
	under  string
	closed bool
}

func (f *fakeHits) Mark(_, s string) string { return s }
func (f *fakeHits) Scan(s string) string    { return s }
func (f *fakeHits) Close()                  { f.closed = true }

func (f *fakeHits) InBounds(id string, _ tea.MouseMsg) bool { return f.under == id }

type deckFixture struct {
	model  *DeckModel
	queue  *mainloop.Queue
	hits   *fakeHits
	mounts map[entity.SlotID]int
}

func testDeck(n int) *entity.Deck {
	deck := &entity.Deck{Title: "Bikes"}
	for i := 0; i < n; i++ {
		deck.Panels = append(deck.Panels, entity.Panel{
			Index: i,
			Label: fmt.Sprintf("Panel %d", i+1),
			Slots: []entity.Slot{{ID: entity.NewSlotID(i, 0), Type: "probe"}},
		})
	}
	return deck
}

func newDeckFixture(t *testing.T, coalesce bool) *deckFixture {
	t.Helper()
	ctx := context.Background()

	f := &deckFixture{
		queue:  mainloop.NewQueue(ctx),
		hits:   &fakeHits{},
		mounts: make(map[entity.SlotID]int),
	}

	registry := chart.NewRegistry("probe")
	registry.Register("probe", func(m chart.Mount) port.Disposable {
		f.mounts[m.Slot.ID]++
		w, _ := m.Canvas.Size()
		m.Canvas.SetContent(fmt.Sprintf("%s@%d", m.Slot.ID, w))
		return port.DisposeOnce(m.Canvas.Clear)
	})
	toolkit := mainloop.NewLazy(f.queue, func() (*chart.Toolkit, error) {
		return chart.NewToolkit(lipgloss.NewRenderer(io.Discard), chart.DefaultPalette())
	})

	m, err := NewDeckModel(ctx, testDeck(4), DeckOptions{
		Registry:       registry,
		Toolkit:        toolkit,
		Queue:          f.queue,
		Hits:           f.hits,
		Radius:         1,
		CoalesceResize: coalesce,
		Mouse:          true,
		Width:          80,
		Height:         24,
	})
	require.NoError(t, err)
	f.model = m
	f.settle(t)
	return f
}

func (f *deckFixture) settle(t *testing.T) {
	t.Helper()
	require.NoError(t, f.queue.RunUntilIdle(context.Background()))
}

func (f *deckFixture) key(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := f.model.Update(msg)
	f.settle(t)
	return cmd
}

func (f *deckFixture) mouse(t *testing.T, under string, action tea.MouseAction, button tea.MouseButton, x int) {
	t.Helper()
	f.hits.under = under
	f.model.Update(tea.MouseMsg{X: x, Y: 5, Action: action, Button: button})
	f.settle(t)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewDeckModel_MountsWindowAroundFirstPanel(t *testing.T) {
	f := newDeckFixture(t, false)

	assert.Equal(t, 0, f.model.Index())
	assert.Equal(t, []int{0, 1}, f.model.Window().MountedPanels())
	assert.Contains(t, f.model.SlideView(0), "p0/s0@80")
	assert.Empty(t, f.model.SlideView(2))
}

func TestNewDeckModel_RequiresPanelsAndQueue(t *testing.T) {
	_, err := NewDeckModel(context.Background(), &entity.Deck{}, DeckOptions{Queue: mainloop.NewQueue(context.Background())})
	require.ErrorIs(t, err, carousel.ErrNoPanels)

	_, err = NewDeckModel(context.Background(), testDeck(1), DeckOptions{})
	require.Error(t, err)
}

func TestDeckModel_KeysNavigate(t *testing.T) {
	f := newDeckFixture(t, false)

	f.key(t, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, f.model.Index())
	assert.Equal(t, []int{0, 1, 2}, f.model.Window().MountedPanels())

	f.key(t, runeKey('4'))
	assert.Equal(t, 3, f.model.Index())
	assert.Equal(t, []int{2, 3}, f.model.Window().MountedPanels())
	assert.Empty(t, f.model.SlideView(0), "disposed panels are cleared")

	f.key(t, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, f.model.Index(), "next on the last panel is clamped")

	f.key(t, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, f.model.Index())

	f.key(t, runeKey('9'))
	assert.Equal(t, 3, f.model.Index(), "jump past the end is clamped")

	f.key(t, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, f.model.Index())
}

func TestDeckModel_ViewShowsStatusAndControls(t *testing.T) {
	f := newDeckFixture(t, false)
	f.key(t, tea.KeyMsg{Type: tea.KeyRight})

	view := f.model.View()
	assert.Contains(t, view, "Bikes")
	assert.Contains(t, view, "Slide 2 of 4")
	assert.Contains(t, view, "p1/s0@80")
	assert.Contains(t, view, "Panel 1")
}

func TestDeckModel_QuitDisposesEverything(t *testing.T) {
	f := newDeckFixture(t, false)

	cmd := f.key(t, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, f.model.Window().LiveHandles())
	assert.True(t, f.hits.closed)
	assert.Empty(t, f.model.View())
}

func TestDeckModel_DragCommitsPastThreshold(t *testing.T) {
	f := newDeckFixture(t, false)

	f.mouse(t, zoneTrack, tea.MouseActionPress, tea.MouseButtonLeft, 60)
	f.mouse(t, zoneTrack, tea.MouseActionMotion, tea.MouseButtonLeft, 30)
	assert.Equal(t, 0, f.model.Index(), "index only changes on release")
	f.mouse(t, zoneTrack, tea.MouseActionRelease, tea.MouseButtonLeft, 30)

	assert.Equal(t, 1, f.model.Index())
	assert.Equal(t, carousel.GestureIdle, f.model.gesture.State())
}

func TestDeckModel_ShortDragSnapsBack(t *testing.T) {
	f := newDeckFixture(t, false)

	f.mouse(t, zoneTrack, tea.MouseActionPress, tea.MouseButtonLeft, 40)
	f.mouse(t, zoneTrack, tea.MouseActionMotion, tea.MouseButtonLeft, 35)
	f.mouse(t, zoneTrack, tea.MouseActionRelease, tea.MouseButtonLeft, 35)

	assert.Equal(t, 0, f.model.Index())
	assert.Equal(t, 0, f.model.track.Offset())
}

func TestDeckModel_EscCancelsDrag(t *testing.T) {
	f := newDeckFixture(t, false)

	f.mouse(t, zoneTrack, tea.MouseActionPress, tea.MouseButtonLeft, 60)
	f.mouse(t, zoneTrack, tea.MouseActionMotion, tea.MouseButtonLeft, 10)
	f.key(t, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, carousel.GestureIdle, f.model.gesture.State())
	assert.Equal(t, 1, f.model.Index(), "cancel settles at the last pointer position")
}

func TestDeckModel_ClickControlsDoesNotDrag(t *testing.T) {
	f := newDeckFixture(t, false)

	f.mouse(t, zoneNext, tea.MouseActionPress, tea.MouseButtonLeft, 78)
	assert.Equal(t, 1, f.model.Index())
	assert.Equal(t, carousel.GestureIdle, f.model.gesture.State())

	f.mouse(t, navZone(3), tea.MouseActionPress, tea.MouseButtonLeft, 40)
	assert.Equal(t, 3, f.model.Index())

	f.mouse(t, zonePrev, tea.MouseActionPress, tea.MouseButtonLeft, 1)
	assert.Equal(t, 2, f.model.Index())
}

func TestDeckModel_PressOutsideTrackIgnored(t *testing.T) {
	f := newDeckFixture(t, false)

	f.mouse(t, "", tea.MouseActionPress, tea.MouseButtonLeft, 10)
	assert.Equal(t, carousel.GestureIdle, f.model.gesture.State())
}

func TestDeckModel_WheelPages(t *testing.T) {
	f := newDeckFixture(t, false)

	f.mouse(t, zoneTrack, tea.MouseActionPress, tea.MouseButtonWheelDown, 10)
	assert.Equal(t, 1, f.model.Index())
	f.mouse(t, zoneTrack, tea.MouseActionPress, tea.MouseButtonWheelUp, 10)
	assert.Equal(t, 0, f.model.Index())
}

func TestDeckModel_ResizeRemountsWindow(t *testing.T) {
	f := newDeckFixture(t, false)
	require.Equal(t, 1, f.mounts[entity.NewSlotID(0, 0)])

	f.model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	f.settle(t)

	assert.Equal(t, 2, f.mounts[entity.NewSlotID(0, 0)])
	assert.Equal(t, 2, f.mounts[entity.NewSlotID(1, 0)])
	assert.Zero(t, f.mounts[entity.NewSlotID(2, 0)])
	assert.Contains(t, f.model.SlideView(0), "p0/s0@100")
	assert.Equal(t, 0, f.model.track.Offset())
}

func TestDeckModel_CoalescedResizeRemountsOnce(t *testing.T) {
	f := newDeckFixture(t, true)
	f.key(t, tea.KeyMsg{Type: tea.KeyRight})
	before := f.mounts[entity.NewSlotID(1, 0)]

	for _, w := range []int{90, 100, 120} {
		f.model.Update(tea.WindowSizeMsg{Width: w, Height: 30})
	}
	assert.Equal(t, -120, f.model.track.Offset(), "transform follows each resize at once")
	f.settle(t)

	assert.Equal(t, before+1, f.mounts[entity.NewSlotID(1, 0)])
	assert.Contains(t, f.model.SlideView(1), "p1/s0@120")
}

func TestDeckModel_HelpToggleShrinksViewport(t *testing.T) {
	f := newDeckFixture(t, false)
	short := f.model.viewport.Height()

	f.key(t, runeKey('?'))
	assert.Less(t, f.model.viewport.Height(), short)
}

func TestDeckModel_ApplyConfigChangesTheme(t *testing.T) {
	f := newDeckFixture(t, false)

	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Series = []string{"#ff0000"}
	f.model.Update(ConfigMsg{Config: cfg})

	assert.Equal(t, lipgloss.Color("#ff0000"), f.model.theme.Accent)
}

func TestDeckModel_ToolkitFailureKeepsNavigating(t *testing.T) {
	ctx := context.Background()
	q := mainloop.NewQueue(ctx)
	toolkit := mainloop.NewLazy(q, func() (*chart.Toolkit, error) {
		return nil, chart.ErrProbeTimeout
	})

	m, err := NewDeckModel(ctx, testDeck(3), DeckOptions{
		Toolkit: toolkit,
		Queue:   q,
		Hits:    &fakeHits{},
		Radius:  1,
		Width:   60,
		Height:  20,
	})
	require.NoError(t, err)
	require.NoError(t, q.RunUntilIdle(ctx))

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NoError(t, q.RunUntilIdle(ctx))

	assert.Equal(t, 1, m.Index())
	assert.Empty(t, m.SlideView(1))
}
