package styles

import (
	"strings"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
)

// SlotCanvas is the region of a panel one chart draws into.
type SlotCanvas struct {
	width, height int
	content       string
}

func (c *SlotCanvas) Size() (int, int)          { return c.width, c.height }
func (c *SlotCanvas) SetContent(content string) { c.content = content }
func (c *SlotCanvas) Clear()                    { c.content = "" }

// Content is what was last drawn.
func (c *SlotCanvas) Content() string { return c.content }

// Canvases owns one SlotCanvas per slot and stacks them into panel views.
type Canvases struct {
	canvases map[entity.SlotID]*SlotCanvas
	order    map[int][]entity.SlotID
}

func NewCanvases() *Canvases {
	return &Canvases{
		canvases: make(map[entity.SlotID]*SlotCanvas),
		order:    make(map[int][]entity.SlotID),
	}
}

// Canvas implements port.CanvasProvider. Unknown slots get a canvas of
// size zero so drawing into them is harmless.
func (c *Canvases) Canvas(id entity.SlotID) port.Canvas {
	return c.slot(id)
}

func (c *Canvases) slot(id entity.SlotID) *SlotCanvas {
	sc, ok := c.canvases[id]
	if !ok {
		sc = &SlotCanvas{}
		c.canvases[id] = sc
	}
	return sc
}

// Layout sizes every slot canvas for a width x height panel. Slots are
// stacked vertically with one blank line between them; leftover rows go
// to the first slots.
func (c *Canvases) Layout(panels []entity.Panel, width, height int) {
	for _, p := range panels {
		n := len(p.Slots)
		ids := make([]entity.SlotID, 0, n)
		if n == 0 {
			c.order[p.Index] = ids
			continue
		}
		avail := max(height-(n-1), 0)
		base, extra := avail/n, avail%n
		for i, s := range p.Slots {
			h := base
			if i < extra {
				h++
			}
			sc := c.slot(s.ID)
			sc.width, sc.height = max(width, 0), h
			ids = append(ids, s.ID)
		}
		c.order[p.Index] = ids
	}
}

// PanelView joins the panel's slot contents, each padded to its height.
func (c *Canvases) PanelView(panel int) string {
	ids := c.order[panel]
	if len(ids) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(ids))
	for _, id := range ids {
		sc := c.canvases[id]
		lines := strings.Split(sc.content, "\n")
		if len(lines) > sc.height {
			lines = lines[:sc.height]
		}
		for len(lines) < sc.height {
			lines = append(lines, "")
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
