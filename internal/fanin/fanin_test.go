package fanin

import (
	"testing"
	"time"

	"github.com/BullionBear/orderbook/internal/connector"
	"github.com/BullionBear/orderbook/internal/model"
)

func TestMergeInterleavesAllSources(t *testing.T) {
	a := make(chan connector.Frame, 2)
	b := make(chan connector.Frame, 2)
	a <- connector.Frame{Venue: model.Binance, Raw: []byte("1")}
	a <- connector.Frame{Venue: model.Binance, Raw: []byte("2")}
	b <- connector.Frame{Venue: model.Bitstamp, Raw: []byte("3")}
	close(a)
	close(b)

	stop := make(chan struct{})
	out := Merge([]<-chan connector.Frame{a, b}, stop)

	seen := map[string]bool{}
	timeout := time.After(2 * time.Second)
	for i := 0; i < 3; i++ {
		select {
		case f := <-out:
			seen[string(f.Raw)] = true
		case <-timeout:
			t.Fatal("timed out waiting for merged frames")
		}
	}
	for _, want := range []string{"1", "2", "3"} {
		if !seen[want] {
			t.Fatalf("missing frame %q in merged output: %v", want, seen)
		}
	}

	select {
	case _, ok := <-out:
		if ok {
			t.Fatal("expected output channel to close once sources drain")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("output channel never closed")
	}
}

func TestMergeStopsOnSignal(t *testing.T) {
	a := make(chan connector.Frame)
	stop := make(chan struct{})
	out := Merge([]<-chan connector.Frame{a}, stop)

	close(stop)
	select {
	case _, ok := <-out:
		if ok {
			t.Fatal("expected no frames after stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Merge did not tear down after stop fired")
	}
}
