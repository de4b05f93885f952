// Package deckfile reads deck documents: YAML files listing the panels of a
// carousel and the chart slots on each panel.
package deckfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/chartdeck/internal/domain/entity"
)

var (
	ErrEmptyDeck = errors.New("deck has no panels")
	ErrNoPath    = errors.New("deck path is empty")
)

// File mirrors the on-disk layout.
type File struct {
	Title  string      `yaml:"title"`
	Panels []PanelFile `yaml:"panels"`
}

type PanelFile struct {
	Label string     `yaml:"label"`
	Slots []SlotFile `yaml:"slots"`
}

type SlotFile struct {
	Type    string            `yaml:"type"`
	Title   string            `yaml:"title"`
	Source  string            `yaml:"source"`
	Params  map[string]string `yaml:"params"`
	Options map[string]string `yaml:"options"`
}

// Load reads and parses the deck at path. The returned deck records the
// absolute path so relative sources can be resolved against its directory.
func Load(path string) (*entity.Deck, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	deck, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		deck.Path = abs
	} else {
		deck.Path = path
	}
	return deck, nil
}

// Parse decodes a deck document. Unknown keys are rejected.
func Parse(r io.Reader) (*entity.Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDeck
		}
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	return f.Deck()
}

// Deck converts the document into the domain model, assigning panel
// indices and slot identifiers.
func (f File) Deck() (*entity.Deck, error) {
	if len(f.Panels) == 0 {
		return nil, ErrEmptyDeck
	}

	deck := &entity.Deck{
		Title:  strings.TrimSpace(f.Title),
		Panels: make([]entity.Panel, len(f.Panels)),
	}
	for i, pf := range f.Panels {
		panel := entity.Panel{
			Index: i,
			Label: strings.TrimSpace(pf.Label),
			Slots: make([]entity.Slot, len(pf.Slots)),
		}
		for j, sf := range pf.Slots {
			if sf.Source == "" && len(sf.Params) > 0 {
				return nil, fmt.Errorf("panel %d slot %d: params given without a source", i+1, j+1)
			}
			panel.Slots[j] = entity.Slot{
				ID:      entity.NewSlotID(i, j),
				Type:    entity.ChartType(sf.Type).Normalize(),
				Title:   strings.TrimSpace(sf.Title),
				Source:  entity.DataSourceRef{URI: strings.TrimSpace(sf.Source), Params: sf.Params},
				Options: sf.Options,
			}
		}
		deck.Panels[i] = panel
	}
	return deck, nil
}

// Dir returns the directory relative sources of deck resolve against.
func Dir(deck *entity.Deck) string {
	if deck == nil || deck.Path == "" {
		return "."
	}
	return filepath.Dir(deck.Path)
}
