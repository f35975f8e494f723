package splitvec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/gosplitvec/splitvec"
)

// TestConcurrentReadersSeeStableAddresses demonstrates the concurrency
// property described in the package doc: addresses captured after a batch
// of writes stay valid and unchanged through later growth. All writes
// complete, sequentially on the single writer, before any reader goroutine
// starts — SplitVec makes no promise about reads interleaved with a write,
// only about what a batch of concurrent readers sees once the writer has
// stopped.
func TestConcurrentReadersSeeStableAddresses(t *testing.T) {
	v := splitvec.New[int]()
	for i := 0; i < 64; i++ {
		v.Push(i)
	}

	addrs := make([]*int, v.Len())
	for i := range addrs {
		addrs[i], _ = v.Get(i)
	}
	snapshot := v.Len()

	for i := 64; i < 4096; i++ {
		v.Push(i)
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)
	for r := 0; r < 8; r++ {
		g.Go(func() error {
			for i := 0; i < snapshot; i++ {
				got, err := v.Get(i)
				if err != nil {
					return err
				}
				if got != addrs[i] {
					t.Errorf("reader observed address drift at index %d", i)
				}
				if *got != i {
					t.Errorf("reader observed value drift at index %d: got %d", i, *got)
				}
			}
			return nil
		})
	}

	assert.NoError(t, g.Wait())
	for i := 0; i < snapshot; i++ {
		got, _ := v.Get(i)
		assert.Same(t, addrs[i], got, "growth must not move already-pinned elements")
	}
}
