package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// SlideBadge renders the "n/total" position badge shown in the header.
func (t *Theme) SlideBadge(index, count int) string {
	return t.Badge.Render(fmt.Sprintf("%d/%d", index+1, count))
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// CheckMark renders a pass or fail icon.
func (t *Theme) CheckMark(ok bool) string {
	if ok {
		return t.SuccessStyle.Render(IconCheck)
	}
	return t.ErrorStyle.Render(IconX)
}
