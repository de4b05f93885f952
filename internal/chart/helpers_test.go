package chart

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
)

type fakeCanvas struct {
	width, height int
	content       string
	sets          int
	clears        int
}

func (c *fakeCanvas) Size() (int, int)          { return c.width, c.height }
func (c *fakeCanvas) SetContent(content string) { c.content = content; c.sets++ }
func (c *fakeCanvas) Clear()                    { c.content = ""; c.clears++ }

type fakeCanvases map[entity.SlotID]*fakeCanvas

func (f fakeCanvases) Canvas(id entity.SlotID) port.Canvas {
	c, ok := f[id]
	if !ok {
		c = &fakeCanvas{width: 60, height: 12}
		f[id] = c
	}
	return c
}

type staticProvider struct {
	ref  entity.DataSourceRef
	rows []entity.Row
	err  error
}

func (p staticProvider) Ref() entity.DataSourceRef { return p.ref }
func (p staticProvider) Rows(context.Context) ([]entity.Row, error) {
	return p.rows, p.err
}

type staticResolver struct{ provider staticProvider }

func (r staticResolver) Provider(ref entity.DataSourceRef) port.DataProvider {
	p := r.provider
	p.ref = ref
	return p
}

// readyToolkit resolves immediately, like a loaded toolkit.
type readyToolkit struct {
	tk  *Toolkit
	err error
}

func (r readyToolkit) Get(cb func(*Toolkit, error)) { cb(r.tk, r.err) }

// deferredToolkit holds callbacks until resolve is called.
type deferredToolkit struct{ waiters []func(*Toolkit, error) }

func (d *deferredToolkit) Get(cb func(*Toolkit, error)) { d.waiters = append(d.waiters, cb) }
func (d *deferredToolkit) resolve(tk *Toolkit, err error) {
	for _, w := range d.waiters {
		w(tk, err)
	}
	d.waiters = nil
}

func asciiToolkit(t *testing.T) *Toolkit {
	t.Helper()
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	tk, err := NewToolkit(r, DefaultPalette())
	require.NoError(t, err)
	return tk
}

type resolverFunc func(ref entity.DataSourceRef) staticProvider

func (f resolverFunc) Provider(ref entity.DataSourceRef) port.DataProvider { return f(ref) }

type panickingProvider struct{ ref entity.DataSourceRef }

func (p panickingProvider) Ref() entity.DataSourceRef { return p.ref }
func (p panickingProvider) Rows(context.Context) ([]entity.Row, error) {
	panic("source exploded")
}

type panickingResolver struct{}

func (panickingResolver) Provider(ref entity.DataSourceRef) port.DataProvider {
	return panickingProvider{ref: ref}
}
