package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
)

func TestRegistry_Resolve(t *testing.T) {
	var hit string
	factory := func(name string) Factory {
		return func(Mount) port.Disposable {
			hit = name
			return port.Noop
		}
	}

	r := NewRegistry("line")
	r.Register("line", factory("line"))
	r.Register("Bar", factory("bar"))

	tests := []struct {
		tag  entity.ChartType
		want string
	}{
		{tag: "line", want: "line"},
		{tag: "bar", want: "bar"},
		{tag: "  BAR ", want: "bar"},
		{tag: "", want: "line"},
		{tag: "pie", want: "line"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			hit = ""
			r.Resolve(tt.tag)(Mount{})
			assert.Equal(t, tt.want, hit)
		})
	}
}

func TestRegistry_NoDefaultResolvesNil(t *testing.T) {
	r := NewRegistry("line")
	assert.Nil(t, r.Resolve("area"))
}

func TestDefaultRegistry_Builtins(t *testing.T) {
	r := DefaultRegistry()
	for _, tag := range []entity.ChartType{"line", "bar", "area", "spark", "trend", "bike-line"} {
		assert.True(t, r.Known(tag), tag)
	}
	assert.False(t, r.Known("pie"))
	assert.Len(t, r.Tags(), 6)
}

// With no toolkit every factory returns a handle that is safe to dispose.
func TestFactories_NilToolkitReturnsNoop(t *testing.T) {
	canvas := &fakeCanvas{width: 40, height: 10}
	for _, f := range []Factory{Line, Bar, Area, Spark, Trend} {
		h := f(Mount{Canvas: canvas})
		assert.NotPanics(t, func() {
			h.Dispose()
			h.Dispose()
		})
	}
	assert.Zero(t, canvas.sets)
	assert.Zero(t, canvas.clears)
}
