package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"

	"github.com/bnema/chartdeck/internal/logging"
)

var (
	ErrProbeTimeout   = errors.New("chart toolkit probe timed out")
	ErrInvalidPalette = errors.New("invalid chart palette")
)

// Palette holds the colors charts draw with. Entries are ANSI 256 indices
// ("39") or hex colors ("#e11d48").
type Palette struct {
	Series []string
	Axis   string
	Muted  string
	Error  string
}

// DefaultPalette mirrors the original deck colors: steelblue, crimson and
// near-black, with a green for a third series.
func DefaultPalette() Palette {
	return Palette{
		Series: []string{"#4682b4", "#e11d48", "#22c55e", "#a855f7"},
		Axis:   "244",
		Muted:  "240",
		Error:  "#ef4444",
	}
}

func (p Palette) validate() error {
	if len(p.Series) == 0 {
		return fmt.Errorf("%w: no series colors", ErrInvalidPalette)
	}
	for _, c := range append(append([]string{}, p.Series...), p.Axis, p.Muted, p.Error) {
		if c == "" {
			continue
		}
		if _, err := ansiIndex(c); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPalette, err)
		}
	}
	return nil
}

// Toolkit is the shared drawing capability handed to every chart. It is
// read-only once built.
type Toolkit struct {
	renderer *lipgloss.Renderer
	palette  Palette
	series   []asciigraph.AnsiColor
}

// NewToolkit builds a toolkit around renderer. The palette must be valid.
func NewToolkit(renderer *lipgloss.Renderer, palette Palette) (*Toolkit, error) {
	if err := palette.validate(); err != nil {
		return nil, err
	}
	t := &Toolkit{renderer: renderer, palette: palette}
	for _, c := range palette.Series {
		idx, _ := ansiIndex(c)
		t.series = append(t.series, asciigraph.AnsiColor(idx))
	}
	return t, nil
}

// Colored reports whether the output supports color.
func (t *Toolkit) Colored() bool {
	return t.renderer.ColorProfile() != termenv.Ascii
}

func (t *Toolkit) SeriesStyle(i int) lipgloss.Style {
	return t.renderer.NewStyle().Foreground(lipgloss.Color(t.palette.Series[i%len(t.palette.Series)]))
}

// SeriesColor is the asciigraph color for series i.
func (t *Toolkit) SeriesColor(i int) asciigraph.AnsiColor {
	return t.series[i%len(t.series)]
}

func (t *Toolkit) MutedStyle() lipgloss.Style {
	return t.renderer.NewStyle().Foreground(lipgloss.Color(t.palette.Muted))
}

func (t *Toolkit) ErrorStyle() lipgloss.Style {
	return t.renderer.NewStyle().Foreground(lipgloss.Color(t.palette.Error))
}

func (t *Toolkit) TitleStyle() lipgloss.Style {
	return t.renderer.NewStyle().Bold(true)
}

// plotOptions returns the asciigraph options shared by every plot.
func (t *Toolkit) plotOptions(series int) []asciigraph.Option {
	if !t.Colored() {
		return nil
	}
	colors := make([]asciigraph.AnsiColor, series)
	for i := range colors {
		colors[i] = t.SeriesColor(i)
	}
	axis, _ := ansiIndex(t.palette.Axis)
	return []asciigraph.Option{
		asciigraph.SeriesColors(colors...),
		asciigraph.AxisColor(asciigraph.AnsiColor(axis)),
		asciigraph.LabelColor(asciigraph.AnsiColor(axis)),
	}
}

// ProbeConfig controls toolkit detection.
type ProbeConfig struct {
	Output  io.Writer
	Palette Palette
	// Profile forces a color profile: "auto", "ascii", "ansi", "ansi256"
	// or "truecolor".
	Profile string
	Timeout time.Duration
}

// Probe detects the output's color profile and builds the toolkit. It is the
// one expensive, possibly failing initialization all charts share.
func Probe(ctx context.Context, cfg ProbeConfig) (*Toolkit, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	type result struct {
		profile termenv.Profile
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		p, err := detectProfile(cfg.Output, cfg.Profile)
		ch <- result{p, err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrProbeTimeout
		}
		return nil, ctx.Err()
	}
	if res.err != nil {
		return nil, res.err
	}

	renderer := lipgloss.NewRenderer(cfg.Output)
	renderer.SetColorProfile(res.profile)

	tk, err := NewToolkit(renderer, cfg.Palette)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("profile", profileName(res.profile)).Msg("chart toolkit ready")
	return tk, nil
}

func detectProfile(out io.Writer, forced string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(forced)) {
	case "", "auto":
		return termenv.NewOutput(out).EnvColorProfile(), nil
	case "ascii", "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color profile %q", forced)
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// ansiIndex converts a palette entry to its nearest ANSI 256 index.
func ansiIndex(color string) (uint8, error) {
	if color == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(color); err == nil {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("color index %d out of range", n)
		}
		return uint8(n), nil
	}
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return 0, fmt.Errorf("color %q is neither an ANSI index nor a hex value", color)
	}
	c, ok := termenv.ANSI256.Color(color).(termenv.ANSI256Color)
	if !ok {
		return 0, fmt.Errorf("color %q cannot be converted", color)
	}
	return uint8(c), nil
}
