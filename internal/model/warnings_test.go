package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings_ConcurrentAppend(t *testing.T) {
	w := NewWarnings()

	const writers, perWriter = 16, 50

	var wg sync.WaitGroup
	for w0 := 0; w0 < writers; w0++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for p0 := 0; p0 < perWriter; p0++ {
				w.Append("warning")
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, writers*perWriter, w.Len())
	assert.Len(t, w.List(), writers*perWriter)
}

func TestWarnings_ListIsSnapshot(t *testing.T) {
	w := NewWarnings()
	w.Append("first")

	list := w.List()
	list[0] = "changed"
	w.Append("second")

	assert.Equal(t, []string{"first", "second"}, w.List())
}
