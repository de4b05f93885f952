// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strings"
)

// ChartType tags a content slot with the draw routine that renders it.
type ChartType string

const (
	ChartLine  ChartType = "line"
	ChartBar   ChartType = "bar"
	ChartArea  ChartType = "area"
	ChartSpark ChartType = "spark"
	ChartTrend ChartType = "trend"
)

// Normalize returns the case-normalized form of the tag used for registry lookups.
func (t ChartType) Normalize() ChartType {
	return ChartType(strings.ToLower(strings.TrimSpace(string(t))))
}

// SlotID uniquely identifies a content slot within a deck.
type SlotID string

// NewSlotID builds the identifier for slot j of panel i.
func NewSlotID(panel, slot int) SlotID {
	return SlotID(fmt.Sprintf("p%d/s%d", panel, slot))
}

// Slot is a region within a panel hosting one lazily rendered chart.
type Slot struct {
	ID      SlotID
	Type    ChartType
	Title   string
	Source  DataSourceRef
	Options map[string]string
}

// Option returns the chart option for key, or def when unset.
func (s Slot) Option(key, def string) string {
	if v, ok := s.Options[key]; ok && v != "" {
		return v
	}
	return def
}

// Panel is one page of the paginated sequence.
// Index is assigned once when the deck is laid out and never changes.
type Panel struct {
	Index int
	Label string
	Slots []Slot
}

// DisplayLabel returns the panel label, falling back to its position.
func (p Panel) DisplayLabel() string {
	if strings.TrimSpace(p.Label) != "" {
		return p.Label
	}
	return fmt.Sprintf("Slide %d", p.Index+1)
}

// Deck is the ordered, fixed-size sequence of panels shown by the carousel.
type Deck struct {
	Title  string
	Path   string
	Panels []Panel
}

// SlotCount returns the total number of content slots across all panels.
func (d *Deck) SlotCount() int {
	n := 0
	for _, p := range d.Panels {
		n += len(p.Slots)
	}
	return n
}

// Sources returns the distinct data-source references used by the deck,
// in first-seen order. Slots without an explicit source are skipped.
func (d *Deck) Sources() []DataSourceRef {
	seen := make(map[string]bool)
	var refs []DataSourceRef
	for _, p := range d.Panels {
		for _, s := range p.Slots {
			if s.Source.IsZero() {
				continue
			}
			key := s.Source.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, s.Source)
		}
	}
	return refs
}
