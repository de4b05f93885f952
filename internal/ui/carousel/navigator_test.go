package carousel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/ui/carousel"
	"github.com/bnema/chartdeck/internal/ui/layout/mocks"
)

func newNavigator(t *testing.T, h *fakeHost, n int, opts ...carousel.NavigatorOption) *carousel.Navigator {
	t.Helper()
	nav, err := carousel.NewNavigator(context.Background(), h.host(), makePanels(n, 1), opts...)
	require.NoError(t, err)
	return nav
}

func TestNewNavigator_WiresQuickJumpItems(t *testing.T) {
	// Arrange
	factory := mocks.NewMockWidgetFactory(t)
	navBar := mocks.NewMockNavContainerWidget(t)
	track := mocks.NewMockTrackWidget(t)
	viewport := mocks.NewMockViewportWidget(t)
	prev := mocks.NewMockButtonWidget(t)
	next := mocks.NewMockButtonWidget(t)
	status := mocks.NewMockLabelWidget(t)

	panels := []entity.Panel{{Index: 0, Label: "Traffic"}, {Index: 1}}
	first := mocks.NewMockNavItemWidget(t)
	second := mocks.NewMockNavItemWidget(t)

	factory.EXPECT().NewNavItem("Traffic").Return(first).Once()
	factory.EXPECT().NewNavItem("Slide 2").Return(second).Once()
	first.EXPECT().SetAccessibleLabel("Go to Traffic").Once()
	second.EXPECT().SetAccessibleLabel("Go to Slide 2").Once()
	first.EXPECT().ConnectClicked(mock.Anything).Return(uint32(1)).Once()
	second.EXPECT().ConnectClicked(mock.Anything).Return(uint32(2)).Once()
	navBar.EXPECT().Append(first).Once()
	navBar.EXPECT().Append(second).Once()
	prev.EXPECT().ConnectClicked(mock.Anything).Return(uint32(3)).Once()
	next.EXPECT().ConnectClicked(mock.Anything).Return(uint32(4)).Once()

	// Initial GoTo(0)
	viewport.EXPECT().Width().Return(80).Once()
	track.EXPECT().SetOffset(0).Once()
	prev.EXPECT().SetDisabled(true).Once()
	next.EXPECT().SetDisabled(false).Once()
	first.EXPECT().SetCurrent(true).Once()
	second.EXPECT().SetCurrent(false).Once()
	status.EXPECT().SetText("Slide 1 of 2").Once()

	var changes []carousel.IndexChange

	// Act
	nav, err := carousel.NewNavigator(context.Background(), carousel.Host{
		Track:    track,
		Viewport: viewport,
		Prev:     prev,
		Next:     next,
		NavBar:   navBar,
		Status:   status,
		Factory:  factory,
	}, panels, carousel.WithListener(func(c carousel.IndexChange) { changes = append(changes, c) }))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, nav.Index())
	require.Len(t, changes, 1, "startup must notify listeners")
	assert.Equal(t, carousel.ReasonNavigate, changes[0].Reason)
	assert.Len(t, changes[0].Panels, 2)
}

func TestNewNavigator_Errors(t *testing.T) {
	h := newFakeHost(80)

	_, err := carousel.NewNavigator(context.Background(), h.host(), nil)
	assert.ErrorIs(t, err, carousel.ErrNoPanels)

	host := h.host()
	host.Track = nil
	_, err = carousel.NewNavigator(context.Background(), host, makePanels(2, 0))
	assert.ErrorIs(t, err, carousel.ErrIncompleteHost)
}

func TestGoTo_Clamps(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{name: "negative", target: -3, want: 0},
		{name: "zero", target: 0, want: 0},
		{name: "middle", target: 2, want: 2},
		{name: "last", target: 4, want: 4},
		{name: "overflow", target: 99, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(100)
			nav := newNavigator(t, h, 5)

			nav.GoTo(tt.target)

			assert.Equal(t, tt.want, nav.Index())
			assert.Equal(t, -tt.want*100, h.track.offset)
			assert.Equal(t, []int{tt.want}, h.currentItems())
		})
	}
}

func TestGoTo_NegativeDisablesPrevious(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 5)
	nav.GoTo(3)

	nav.GoTo(-3)

	assert.Equal(t, 0, nav.Index())
	assert.True(t, h.prev.disabled)
	assert.False(t, h.next.disabled)
	assert.Equal(t, 0, h.track.offset)
}

func TestGoTo_IdempotentAndAlwaysNotifies(t *testing.T) {
	h := newFakeHost(120)
	var notified []int
	nav := newNavigator(t, h, 4, carousel.WithListener(func(c carousel.IndexChange) {
		notified = append(notified, c.Index)
	}))

	nav.GoTo(2)
	offset, prev, next, current, status := h.track.offset, h.prev.disabled, h.next.disabled, h.currentItems(), h.status.text
	nav.GoTo(2)

	assert.Equal(t, offset, h.track.offset)
	assert.Equal(t, prev, h.prev.disabled)
	assert.Equal(t, next, h.next.disabled)
	assert.Equal(t, current, h.currentItems())
	assert.Equal(t, status, h.status.text)
	assert.Equal(t, []int{0, 2, 2}, notified)
}

func TestGoTo_LastPanelDisablesNext(t *testing.T) {
	h := newFakeHost(80)
	nav := newNavigator(t, h, 3)

	nav.GoTo(2)

	assert.False(t, h.prev.disabled)
	assert.True(t, h.next.disabled)
	assert.Equal(t, "Slide 3 of 3", h.status.text)
}

func TestGoTo_ReadsViewportWidthAtApplyTime(t *testing.T) {
	h := newFakeHost(80)
	nav := newNavigator(t, h, 3)
	nav.GoTo(1)
	require.Equal(t, -80, h.track.offset)

	h.viewport.width = 50
	nav.GoTo(2)

	assert.Equal(t, -100, h.track.offset)
}

func TestSinglePanelDisablesBothButtons(t *testing.T) {
	h := newFakeHost(80)
	nav := newNavigator(t, h, 1)

	nav.GoTo(1)

	assert.Equal(t, 0, nav.Index())
	assert.True(t, h.prev.disabled)
	assert.True(t, h.next.disabled)
}

func TestControlsDriveGoTo(t *testing.T) {
	h := newFakeHost(80)
	nav := newNavigator(t, h, 4)

	h.next.click()
	h.next.click()
	assert.Equal(t, 2, nav.Index())

	h.prev.click()
	assert.Equal(t, 1, nav.Index())

	h.item(3).onClick()
	assert.Equal(t, 3, nav.Index())
	assert.Equal(t, "Go to Slide 4", h.item(3).accessible)
}

func TestHandleKey(t *testing.T) {
	h := newFakeHost(80)
	nav := newNavigator(t, h, 3)

	assert.True(t, nav.HandleKey(carousel.KeyRight))
	assert.Equal(t, 1, nav.Index())

	assert.True(t, nav.HandleKey(carousel.KeyLeft))
	assert.True(t, nav.HandleKey(carousel.KeyLeft), "clamped keys are still consumed")
	assert.Equal(t, 0, nav.Index())

	assert.False(t, nav.HandleKey(carousel.KeyNone))
}

func TestNotificationsRaisedByListenersKeepOrder(t *testing.T) {
	h := newFakeHost(80)
	var nav *carousel.Navigator
	var first, second []int

	nav = newNavigator(t, h, 5,
		carousel.WithListener(func(c carousel.IndexChange) {
			first = append(first, c.Index)
			if c.Index == 1 {
				nav.GoTo(3)
			}
		}),
		carousel.WithListener(func(c carousel.IndexChange) {
			second = append(second, c.Index)
		}),
	)

	nav.GoTo(1)

	assert.Equal(t, []int{0, 1, 3}, first)
	assert.Equal(t, []int{0, 1, 3}, second)
	assert.Equal(t, 3, nav.Index())
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	h := newFakeHost(80)
	nav := newNavigator(t, h, 3)

	calls := 0
	unsubscribe := nav.Subscribe(func(carousel.IndexChange) { calls++ })
	nav.GoTo(1)
	unsubscribe()
	nav.GoTo(2)

	assert.Equal(t, 1, calls)
}
