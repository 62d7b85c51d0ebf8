package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed_Now(t *testing.T) {
	f := Fixed(1700000000)
	assert.Equal(t, int64(1700000000), f.Now())
}

func TestULIDGenerator_ProducesUniqueSortableIDs(t *testing.T) {
	gen := NewULIDGenerator()

	a := gen.NewID()
	b := gen.NewID()

	assert.Len(t, a, 26)
	assert.Len(t, b, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, a < b, "monotonic entropy should keep same-millisecond IDs ordered")
}

func TestULIDGenerator_ConcurrentSafe(t *testing.T) {
	gen := NewULIDGenerator()

	ids := make(chan string, 100)
	for i := 0; i < 100; i++ {
		go func() { ids <- gen.NewID() }()
	}

	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		id := <-ids
		assert.False(t, seen[id], "duplicate id generated under concurrency")
		seen[id] = true
	}
}
