// Package bookqueue implements the venue-keyed double-ended priority queue
// that backs each side of a merged order book.
package bookqueue

import (
	"container/heap"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/BullionBear/orderbook/internal/model"
)

// Kind distinguishes which side of the book a Queue holds. It only affects
// labeling; the ordering is identical on both sides (model.PriceLevel.Less),
// and callers reorient the output for asks (see internal/merge).
type Kind int

const (
	Bids Kind = iota
	Asks
)

func (k Kind) String() string {
	if k == Asks {
		return "asks"
	}
	return "bids"
}

type entry struct {
	venue model.Venue
	level model.PriceLevel
}

// Queue is a double-ended priority queue with a secondary venue index, so
// that inserting a level for a venue already present replaces it instead of
// accumulating a second entry. It implements container/heap.Interface
// directly; callers use the typed methods below, not heap.* directly.
type Queue struct {
	kind  Kind
	cap   int
	data  []entry
	index map[model.Venue]int
}

// New creates an empty queue of the given kind and result-size capacity.
// Capacity is informational: the queue does not enforce it, Take is bounded
// only by its own n argument, and the underlying store holds at most one
// entry per venue regardless of N.
func New(kind Kind, capacity int) *Queue {
	return &Queue{
		kind:  kind,
		cap:   capacity,
		index: make(map[model.Venue]int),
	}
}

func (q *Queue) Kind() Kind { return q.kind }

// Len returns the number of distinct venues currently held.
func (q *Queue) Len() int { return len(q.data) }

func (q *Queue) heapLess(i, j int) bool { return q.data[i].level.Less(q.data[j].level) }

// The four methods below satisfy container/heap.Interface.
func (q *Queue) Less(i, j int) bool { return q.heapLess(i, j) }

func (q *Queue) Swap(i, j int) {
	q.data[i], q.data[j] = q.data[j], q.data[i]
	q.index[q.data[i].venue] = i
	q.index[q.data[j].venue] = j
}

func (q *Queue) Push(x any) {
	e := x.(entry)
	q.index[e.venue] = len(q.data)
	q.data = append(q.data, e)
}

func (q *Queue) Pop() any {
	old := q.data
	n := len(old)
	e := old[n-1]
	q.data = old[:n-1]
	delete(q.index, e.venue)
	return e
}

// Upsert inserts level, replacing any existing entry for level.Venue. This
// is the multimap-with-one-entry-per-venue semantics §4.4 requires: it is
// not an accumulating push.
func (q *Queue) Upsert(level model.PriceLevel) {
	if i, ok := q.index[level.Venue]; ok {
		q.data[i].level = level
		heap.Fix(q, i)
		return
	}
	heap.Push(q, entry{venue: level.Venue, level: level})
}

// PopMin removes and returns the minimum element by the shared total order.
func (q *Queue) PopMin() (model.PriceLevel, bool) {
	if len(q.data) == 0 {
		return model.PriceLevel{}, false
	}
	e := heap.Pop(q).(entry)
	return e.level, true
}

// PeekMax returns the maximum element by the shared total order without
// removing it. The queue is expected to hold one entry per configured
// venue, so a linear scan is cheap and avoids maintaining a second heap.
func (q *Queue) PeekMax() (model.PriceLevel, bool) {
	if len(q.data) == 0 {
		return model.PriceLevel{}, false
	}
	max := 0
	for i := 1; i < len(q.data); i++ {
		if q.data[max].level.Less(q.data[i].level) {
			max = i
		}
	}
	return q.data[max].level, true
}

// MaxPrice returns the price of the queue's maximum element, or zero when
// the queue is empty.
func (q *Queue) MaxPrice() decimal.Decimal {
	level, ok := q.PeekMax()
	if !ok {
		return decimal.Zero
	}
	return level.Price
}

// Take returns the top n levels: the queue in sorted order, reversed
// (largest-priority first), truncated to n. It does not mutate the queue.
func (q *Queue) Take(n int) []model.PriceLevel {
	if n <= 0 || len(q.data) == 0 {
		return nil
	}
	sorted := make([]entry, len(q.data))
	copy(sorted, q.data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].level.Less(sorted[j].level) })

	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]model.PriceLevel, 0, n)
	for i := len(sorted) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, sorted[i].level)
	}
	return out
}
