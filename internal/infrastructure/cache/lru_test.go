package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chartdeck/internal/application/port"
	"github.com/bnema/chartdeck/internal/domain/entity"
)

var _ port.Cache[string, []entity.Row] = (*LRU[string, []entity.Row])(nil)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[string, []entity.Row](3)

	c.Set("wave:#n=10", []entity.Row{{Value: 1}})
	c.Set("data/bike.csv", []entity.Row{{Value: 2}, {Value: 3}})

	rows, ok := c.Get("data/bike.csv")
	require.True(t, ok)
	assert.Len(t, rows, 2)

	_, ok = c.Get("missing.csv")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []string
	c := NewLRU(2, WithEvictCallback(func(k string, _ int) { evicted = append(evicted, k) }))

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b was least recently used")
	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, []string{"c", "a"}, c.Keys())
}

func TestLRU_UpdateDoesNotEvict(t *testing.T) {
	evictions := 0
	c := NewLRU(2, WithEvictCallback(func(string, int) { evictions++ }))

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)

	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
	assert.Zero(t, evictions)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_ZeroCapacityIsUnbounded(t *testing.T) {
	c := NewLRU[int, int](0)
	for i := 0; i < 500; i++ {
		c.Set(i, i)
	}
	assert.Equal(t, 500, c.Len())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Remove("a")
	c.Remove("nope")
	assert.Equal(t, []string{"b"}, c.Keys())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*i)%32)
				c.Set(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
