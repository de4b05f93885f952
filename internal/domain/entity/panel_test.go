package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPanel_DisplayLabel(t *testing.T) {
	tests := []struct {
		name     string
		panel    Panel
		expected string
	}{
		{name: "explicit label", panel: Panel{Index: 0, Label: "Overview"}, expected: "Overview"},
		{name: "empty label falls back to position", panel: Panel{Index: 2}, expected: "Slide 3"},
		{name: "blank label falls back to position", panel: Panel{Index: 0, Label: "   "}, expected: "Slide 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.panel.DisplayLabel())
		})
	}
}

func TestChartType_Normalize(t *testing.T) {
	assert.Equal(t, ChartTrend, ChartType("  TREND ").Normalize())
	assert.Equal(t, ChartType(""), ChartType("").Normalize())
}

func TestDataSourceRef_KeyIsOrderIndependent(t *testing.T) {
	a := DataSourceRef{URI: "bike.csv", Params: map[string]string{"value": "totale", "date": "data"}}
	b := DataSourceRef{URI: "bike.csv", Params: map[string]string{"date": "data", "value": "totale"}}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "bike.csv#date=data&value=totale", a.Key())
	assert.Equal(t, "wave:", DataSourceRef{URI: "wave:"}.Key())
}

func TestDeck_SourcesDeduplicates(t *testing.T) {
	ref := DataSourceRef{URI: "bike.csv"}
	deck := &Deck{Panels: []Panel{
		{Index: 0, Slots: []Slot{{ID: NewSlotID(0, 0), Source: ref}, {ID: NewSlotID(0, 1)}}},
		{Index: 1, Slots: []Slot{{ID: NewSlotID(1, 0), Source: ref}}},
	}}

	assert.Equal(t, []DataSourceRef{ref}, deck.Sources())
	assert.Equal(t, 3, deck.SlotCount())
}

func TestGroupByCategory_PreservesFirstSeenOrder(t *testing.T) {
	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{Date: day, Value: 1, Category: "b"},
		{Date: day, Value: 2, Category: "a"},
		{Date: day, Value: 3, Category: "b"},
	}

	cats, series := GroupByCategory(rows)

	assert.Equal(t, []string{"b", "a"}, cats)
	assert.Equal(t, []float64{1, 3}, Values(series["b"]))
	assert.Equal(t, []float64{2}, Values(series["a"]))
}
