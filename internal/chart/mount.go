package chart

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
	"github.com/bnema/chartdeck/internal/logging"
)

var ErrNoSource = errors.New("slot has no data source")

// Mount is everything a Factory needs to draw one slot.
type Mount struct {
	Ctx       context.Context
	Slot      entity.Slot
	Canvas    port.Canvas
	Toolkit   *Toolkit
	Source    port.DataProvider
	Scheduler port.Scheduler
}

// renderFunc draws rows into a body of at most width x height cells.
type renderFunc func(tk *Toolkit, slot entity.Slot, rows []entity.Row, width, height int) string

// draw runs the lifecycle shared by every chart: a loading placeholder is
// shown at once, rows are fetched off the loop, and the chart is rendered
// only if the handle has not been disposed in the meantime.
func draw(m Mount, render renderFunc) port.Disposable {
	if m.Toolkit == nil || m.Canvas == nil {
		return port.Noop
	}
	ctx := m.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	alive := true
	m.Canvas.SetContent(frame(m.Toolkit, m.Slot, m.Canvas, m.Toolkit.MutedStyle().Render("loading…")))

	var (
		rows []entity.Row
		err  error
	)
	work := func() {
		defer logging.Recover(ctx, "load "+string(m.Slot.ID), func(perr error) { err = perr })
		if m.Source == nil {
			err = ErrNoSource
			return
		}
		rows, err = m.Source.Rows(ctx)
	}
	fail := func(err error) {
		m.Canvas.SetContent(frame(m.Toolkit, m.Slot, m.Canvas, failedPlaceholder(m.Toolkit, err)))
	}
	done := func() {
		if !alive {
			return
		}
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("chart data failed to load")
			fail(err)
			return
		}
		defer logging.Recover(ctx, "render "+string(m.Slot.ID), fail)
		w, h := bodySize(m.Canvas, m.Slot)
		m.Canvas.SetContent(frame(m.Toolkit, m.Slot, m.Canvas, render(m.Toolkit, m.Slot, rows, w, h)))
	}

	if m.Scheduler == nil {
		work()
		done()
	} else {
		m.Scheduler.Go(work, done)
	}

	return port.DisposeOnce(func() {
		alive = false
		m.Canvas.Clear()
	})
}

func failedPlaceholder(tk *Toolkit, err error) string {
	return tk.ErrorStyle().Render("failed to load") + "\n" + tk.MutedStyle().Render(err.Error())
}

// bodySize is the canvas area left after the title line.
func bodySize(c port.Canvas, slot entity.Slot) (int, int) {
	w, h := c.Size()
	if slot.Title != "" {
		h--
	}
	return max(w, 1), max(h, 1)
}

// frame prefixes the title and clips body to the canvas.
func frame(tk *Toolkit, slot entity.Slot, c port.Canvas, body string) string {
	w, h := c.Size()
	var lines []string
	if slot.Title != "" {
		lines = append(lines, tk.TitleStyle().Render(slot.Title))
	}
	lines = append(lines, strings.Split(body, "\n")...)
	if h > 0 && len(lines) > h {
		lines = lines[:h]
	}
	if w > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, w, "")
		}
	}
	return strings.Join(lines, "\n")
}
