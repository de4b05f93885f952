package styles

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/bnema/chartdeck/internal/infrastructure/config"
)

// Easing maps a configured easing name to its curve, defaulting to out-cubic.
func Easing(name config.Easing) ease.TweenFunc {
	switch name {
	case config.EasingLinear:
		return ease.Linear
	case config.EasingOutQuad:
		return ease.OutQuad
	case config.EasingInOutQuad:
		return ease.InOutQuad
	case config.EasingInOutSine:
		return ease.InOutSine
	default:
		return ease.OutCubic
	}
}

// Track is the strip of panels seen through the viewport. It implements
// layout.TrackWidget; offsets are in columns.
type Track struct {
	target      int
	pos         float32
	tween       *gween.Tween
	transitions bool
	duration    time.Duration
	easing      ease.TweenFunc
}

// NewTrack creates a track that eases between offsets over duration.
// A zero duration moves instantly.
func NewTrack(duration time.Duration, easing ease.TweenFunc) *Track {
	if easing == nil {
		easing = ease.OutCubic
	}
	return &Track{transitions: true, duration: duration, easing: easing}
}

func (t *Track) SetOffset(offset int) {
	t.target = offset
	if !t.transitions || t.duration <= 0 || float32(offset) == t.pos {
		t.pos = float32(offset)
		t.tween = nil
		return
	}
	t.tween = gween.New(t.pos, float32(offset), float32(t.duration.Seconds()), t.easing)
}

// SetTiming changes the duration and curve used by later moves.
func (t *Track) SetTiming(duration time.Duration, easing ease.TweenFunc) {
	if easing == nil {
		easing = ease.OutCubic
	}
	t.duration, t.easing = duration, easing
}

// Offset is the offset last requested, even while the animation runs.
func (t *Track) Offset() int { return t.target }

// SetTransitionEnabled toggles easing. Disabling it snaps to the target.
func (t *Track) SetTransitionEnabled(enabled bool) {
	t.transitions = enabled
	if !enabled {
		t.tween = nil
		t.pos = float32(t.target)
	}
}

// Animating reports whether an eased move is in progress.
func (t *Track) Animating() bool { return t.tween != nil }

// Advance steps the animation by dt and reports whether it is still running.
func (t *Track) Advance(dt time.Duration) bool {
	if t.tween == nil {
		return false
	}
	pos, done := t.tween.Update(float32(dt.Seconds()))
	t.pos = pos
	if done {
		t.pos = float32(t.target)
		t.tween = nil
	}
	return !done
}

// Position is the column offset currently on screen.
func (t *Track) Position() int {
	if t.pos < 0 {
		return int(t.pos - 0.5)
	}
	return int(t.pos + 0.5)
}

// View renders the columns of panels visible through a width x height
// viewport at the current position. Each panel is width columns wide.
func (t *Track) View(panels []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	left := -t.Position()
	first := floorDiv(left, width)
	last := floorDiv(left+width-1, width)
	start := left - first*width

	lines := make(map[int][]string, last-first+1)
	for i := first; i <= last; i++ {
		if i >= 0 && i < len(panels) {
			lines[i] = strings.Split(panels[i], "\n")
		}
	}

	rows := make([]string, height)
	var b strings.Builder
	for r := range rows {
		b.Reset()
		for i := first; i <= last; i++ {
			line := ""
			if l := lines[i]; r < len(l) {
				line = l[r]
			}
			b.WriteString(fit(line, width))
		}
		rows[r] = ansi.Cut(b.String(), start, start+width)
	}
	return strings.Join(rows, "\n")
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
