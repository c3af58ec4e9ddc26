package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/raspador"
	"github.com/fwojciec/raspador/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	hash := raspador.HashContent("COO:001234\n")

	assert.False(t, f.Seen(hash), "first sighting")
	assert.True(t, f.Seen(hash), "second sighting")
	assert.False(t, f.Seen(raspador.HashContent("COO:001235\n")))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Seen("a")
	f.Seen("b")
	f.Seen("c")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_SeenIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Seen("doc")
	countAfterFirst := f.EstimatedCount()

	f.Seen("doc")
	f.Seen("doc")

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
}

func TestFilter_ConcurrentSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fresh int
	)
	for j := 0; j < 8; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !f.Seen("same") {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fresh, "exactly one goroutine should see the key first")
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 1000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := 0; i < numItems; i++ {
		f.Seen(fmt.Sprintf("added/%d", i))
	}

	falsePositives := 0
	for i := 0; i < testProbes; i++ {
		if f.Seen(fmt.Sprintf("notadded/%d", i)) {
			falsePositives++
		}
	}

	// Probes are added too, so keep them few relative to numItems.
	// Allow up to 2% to account for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
