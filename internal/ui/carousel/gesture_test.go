package carousel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/ui/carousel"
)

func TestGesture_DragBelowThresholdSnapsBack(t *testing.T) {
	// 1000 wide viewport: threshold is 150.
	h := newFakeHost(1000)
	nav := newNavigator(t, h, 5)
	nav.GoTo(1)
	g := carousel.NewGesture(context.Background(), nav)

	require.True(t, g.Start(500, false))
	assert.False(t, h.track.transition, "drag disables the transition")
	g.Move(400)
	assert.Equal(t, -1100, h.track.offset)
	g.End(400)

	assert.Equal(t, 1, nav.Index())
	assert.Equal(t, -1000, h.track.offset)
	assert.True(t, h.track.transition)
	assert.Equal(t, carousel.GestureIdle, g.State())
}

func TestGesture_DragPastThresholdCommitsNext(t *testing.T) {
	h := newFakeHost(1000)
	nav := newNavigator(t, h, 5)
	nav.GoTo(1)
	g := carousel.NewGesture(context.Background(), nav)

	g.Start(500, false)
	g.Move(250)
	g.End(250)

	assert.Equal(t, 2, nav.Index())
	assert.Equal(t, -2000, h.track.offset)
}

func TestGesture_Threshold(t *testing.T) {
	tests := []struct {
		name string
		dx   int
		want int
	}{
		{name: "right past threshold goes back", dx: 151, want: 1},
		{name: "exactly threshold right stays", dx: 150, want: 2},
		{name: "inside band stays", dx: 40, want: 2},
		{name: "exactly threshold left stays", dx: -150, want: 2},
		{name: "left past threshold advances", dx: -151, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(1000)
			nav := newNavigator(t, h, 5)
			nav.GoTo(2)
			g := carousel.NewGesture(context.Background(), nav)

			g.Start(300, false)
			g.End(300 + tt.dx)

			assert.Equal(t, tt.want, nav.Index())
			assert.Equal(t, -tt.want*1000, h.track.offset)
		})
	}
}

func TestGesture_OverscrollIsClampedOnRelease(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 3)
	g := carousel.NewGesture(context.Background(), nav)

	g.Start(10, false)
	g.Move(90)
	assert.Equal(t, 80, h.track.offset, "no clamping while dragging")
	g.End(90)

	assert.Equal(t, 0, nav.Index())
	assert.Equal(t, 0, h.track.offset)
}

func TestGesture_IgnoresControlsAndSecondStart(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 3)
	g := carousel.NewGesture(context.Background(), nav)

	assert.False(t, g.Start(10, true))
	assert.Equal(t, carousel.GestureIdle, g.State())

	require.True(t, g.Start(50, false))
	assert.False(t, g.Start(5, false))
	g.Move(40)

	assert.Equal(t, -10, h.track.offset, "second start must not reset the origin")
}

func TestGesture_CancelUsesLastPosition(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 3)
	g := carousel.NewGesture(context.Background(), nav)

	g.Start(80, false)
	g.Move(20)
	g.Cancel()

	assert.Equal(t, 1, nav.Index())
	assert.True(t, h.track.transition)
}

func TestGesture_MoveAndEndWhileIdleAreIgnored(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 3)
	g := carousel.NewGesture(context.Background(), nav)
	calls := 0
	nav.Subscribe(func(carousel.IndexChange) { calls++ })

	g.Move(50)
	g.End(0)
	g.Cancel()

	assert.Equal(t, 0, h.track.offset)
	assert.Zero(t, calls)
}

func TestGesture_SnapBackNotifies(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 3)
	g := carousel.NewGesture(context.Background(), nav)
	var got []carousel.IndexChange
	nav.Subscribe(func(c carousel.IndexChange) { got = append(got, c) })

	g.Start(50, false)
	g.End(55)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Index)
}

func TestWithSwipeThreshold(t *testing.T) {
	h := newFakeHost(100)
	nav := newNavigator(t, h, 3)
	g := carousel.NewGesture(context.Background(), nav, carousel.WithSwipeThreshold(0.5))

	g.Start(80, false)
	g.End(40)
	assert.Equal(t, 0, nav.Index(), "40 columns is under half the viewport")

	g.Start(80, false)
	g.End(20)
	assert.Equal(t, 1, nav.Index())
}
