package carousel_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/ui/carousel"
)

func newWindowedNavigator(t *testing.T, panels, slots int, opts ...carousel.WindowOption) (*carousel.Navigator, *carousel.WindowManager, *countingMounter, *fakeHost) {
	t.Helper()
	h := newFakeHost(100)
	m := newCountingMounter()
	w := carousel.NewWindowManager(context.Background(), m, opts...)
	nav, err := carousel.NewNavigator(context.Background(), h.host(), makePanels(panels, slots),
		carousel.WithListener(w.HandleIndexChange))
	require.NoError(t, err)
	return nav, w, m, h
}

func TestWindowManager_StartupMountsFirstWindow(t *testing.T) {
	_, w, m, _ := newWindowedNavigator(t, 5, 1)

	assert.Equal(t, []int{0, 1}, w.MountedPanels())
	assert.Equal(t, map[int]bool{0: true, 1: true}, m.livePanels())
}

func TestWindowManager_GoToSlidesWindow(t *testing.T) {
	nav, w, m, _ := newWindowedNavigator(t, 5, 1)

	nav.GoTo(2)

	assert.Equal(t, []int{1, 2, 3}, w.MountedPanels())
	assert.Equal(t, 1, m.disposes[entity.NewSlotID(0, 0)])
	assert.Equal(t, 1, m.mounts[entity.NewSlotID(1, 0)], "panel 1 stays mounted")
	assert.Zero(t, m.disposes[entity.NewSlotID(1, 0)])
}

func TestWindowManager_RepeatedGoToDoesNotRemount(t *testing.T) {
	nav, _, m, _ := newWindowedNavigator(t, 5, 2)

	nav.GoTo(2)
	nav.GoTo(2)

	mounts, disposes := m.totals()
	assert.Equal(t, 8, mounts, "panels 0..3 with two slots each")
	assert.Equal(t, 2, disposes)
}

func TestWindowManager_WindowBoundAfterRandomWalk(t *testing.T) {
	nav, w, m, _ := newWindowedNavigator(t, 12, 2)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		nav.GoTo(rng.Intn(16) - 2)

		mounted := w.MountedPanels()
		assert.LessOrEqual(t, len(mounted), 3)

		a := nav.Index()
		var want []int
		for p := a - 1; p <= a+1; p++ {
			if p >= 0 && p < 12 {
				want = append(want, p)
			}
		}
		require.Equal(t, want, mounted)
		require.Len(t, m.livePanels(), len(want))
	}
}

func TestWindowManager_DisposalMatchesMounts(t *testing.T) {
	nav, w, m, _ := newWindowedNavigator(t, 6, 3)

	for _, i := range []int{5, 0, 3, 3, 1, 4, 2} {
		nav.GoTo(i)
	}
	w.Close()

	mounts, disposes := m.totals()
	assert.Equal(t, mounts, disposes)
	assert.Empty(t, m.livePanels())
	assert.Zero(t, w.LiveHandles())
}

func TestWindowManager_Radius(t *testing.T) {
	nav, w, _, _ := newWindowedNavigator(t, 9, 1, carousel.WithRadius(2))

	nav.GoTo(4)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, w.MountedPanels())

	_, w0, _, _ := newWindowedNavigator(t, 3, 1, carousel.WithRadius(0))
	assert.Equal(t, []int{0}, w0.MountedPanels())
}

func TestWindowManager_ResizeRemountsWindow(t *testing.T) {
	nav, w, m, _ := newWindowedNavigator(t, 5, 1)
	nav.GoTo(2)
	sync := carousel.NewLayoutSync(nav)

	sync.Resize(60, 20)

	assert.Equal(t, []int{1, 2, 3}, w.MountedPanels())
	assert.Equal(t, 2, m.mounts[entity.NewSlotID(2, 0)])
	assert.Equal(t, 1, m.disposes[entity.NewSlotID(2, 0)])
	assert.Equal(t, 2, nav.Index())
}

func TestWindowManager_NilAndPanickingMountersYieldNoop(t *testing.T) {
	calls := 0
	mounter := carousel.SlotMounterFunc(func(_ context.Context, slot entity.Slot) port.Disposable {
		calls++
		if slot.ID == entity.NewSlotID(0, 0) {
			panic("draw failed")
		}
		return nil
	})
	h := newFakeHost(80)
	w := carousel.NewWindowManager(context.Background(), mounter)

	nav, err := carousel.NewNavigator(context.Background(), h.host(), makePanels(3, 2),
		carousel.WithListener(w.HandleIndexChange))
	require.NoError(t, err)

	assert.Equal(t, 4, calls, "a panicking slot must not stop its siblings")
	assert.Equal(t, 4, w.LiveHandles())

	assert.NotPanics(t, func() {
		nav.GoTo(2)
		w.Close()
	})
}

// A mount whose asynchronous work finishes after disposal must not draw.
func TestWindowManager_DisposeBeforeAsyncCompletion(t *testing.T) {
	type pending struct {
		alive  *bool
		finish func()
	}
	var inflight []pending
	drawn := map[entity.SlotID]bool{}

	mounter := carousel.SlotMounterFunc(func(_ context.Context, slot entity.Slot) port.Disposable {
		alive := true
		inflight = append(inflight, pending{alive: &alive, finish: func() {
			if alive {
				drawn[slot.ID] = true
			}
		}})
		return port.DisposeOnce(func() {
			alive = false
			delete(drawn, slot.ID)
		})
	})
	h := newFakeHost(80)
	w := carousel.NewWindowManager(context.Background(), mounter)
	nav, err := carousel.NewNavigator(context.Background(), h.host(), makePanels(6, 1),
		carousel.WithListener(w.HandleIndexChange))
	require.NoError(t, err)

	nav.GoTo(4)
	for _, p := range inflight {
		p.finish()
	}

	assert.Equal(t, map[entity.SlotID]bool{
		entity.NewSlotID(3, 0): true,
		entity.NewSlotID(4, 0): true,
		entity.NewSlotID(5, 0): true,
	}, drawn)
}
