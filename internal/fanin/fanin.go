// Package fanin merges a set of connector outputs into a single ordered
// stream, preserving arrival order across venues without dropping frames
// under backpressure (spec §4.3).
package fanin

import (
	"sync"

	"github.com/BullionBear/orderbook/internal/connector"
)

// Merge forwards every Frame read from any of sources onto a single
// returned channel, closing it once all sources are drained or stop fires.
// Because each source is read by its own goroutine and the merged channel
// is bounded, a slow consumer applies backpressure to every source fairly
// rather than dropping frames.
func Merge(sources []<-chan connector.Frame, stop <-chan struct{}) <-chan connector.Frame {
	out := make(chan connector.Frame, 1000)

	var wg sync.WaitGroup
	wg.Add(len(sources))
	for _, src := range sources {
		go func(src <-chan connector.Frame) {
			defer wg.Done()
			for {
				select {
				case frame, ok := <-src:
					if !ok {
						return
					}
					select {
					case out <- frame:
					case <-stop:
						return
					}
				case <-stop:
					return
				}
			}
		}(src)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
