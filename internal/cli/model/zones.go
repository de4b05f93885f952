package model

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// HitTester maps mouse events to named regions of the rendered view.
type HitTester interface {
	// Mark tags s as region id.
	Mark(id, s string) string
	// Scan strips the markers from a full view and records region bounds.
	Scan(s string) string
	InBounds(id string, msg tea.MouseMsg) bool
	Close()
}

type zoneHitTester struct {
	zones *zone.Manager
}

// NewZoneHitTester returns a HitTester backed by bubblezone.
func NewZoneHitTester() HitTester {
	return &zoneHitTester{zones: zone.New()}
}

func (z *zoneHitTester) Mark(id, s string) string { return z.zones.Mark(id, s) }
func (z *zoneHitTester) Scan(s string) string     { return z.zones.Scan(s) }

func (z *zoneHitTester) InBounds(id string, msg tea.MouseMsg) bool {
	info := z.zones.Get(id)
	return info != nil && info.InBounds(msg)
}

func (z *zoneHitTester) Close() { z.zones.Close() }

type plainHitTester struct{}

// NewPlainHitTester returns a HitTester with no regions, for output that
// is printed rather than clicked.
func NewPlainHitTester() HitTester { return plainHitTester{} }

func (plainHitTester) Mark(_, s string) string                { return s }
func (plainHitTester) Scan(s string) string                   { return s }
func (plainHitTester) InBounds(_ string, _ tea.MouseMsg) bool { return false }
func (plainHitTester) Close()                                 {}
