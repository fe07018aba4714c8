// Package merge implements the merge engine: applying decoded updates to
// the two venue-keyed side books and emitting a Summary per update
// (spec §4.4, §4.5).
package merge

import (
	"github.com/BullionBear/orderbook/internal/bookqueue"
	"github.com/BullionBear/orderbook/internal/model"
)

// Engine owns one Bids and one Asks side book. It is not safe for
// concurrent use: the subscription manager runs it on a single goroutine
// per §5 ("SideBooks are owned exclusively by the merge engine task").
type Engine struct {
	resultSize int
	bids       *bookqueue.Queue
	asks       *bookqueue.Queue
}

// New builds an Engine that emits top-resultSize summaries.
func New(resultSize int) *Engine {
	return &Engine{
		resultSize: resultSize,
		bids:       bookqueue.New(bookqueue.Bids, resultSize),
		asks:       bookqueue.New(bookqueue.Asks, resultSize),
	}
}

// Apply ingests one DepthUpdate and returns the resulting Summary.
func (e *Engine) Apply(update model.DepthUpdate) model.Summary {
	for _, level := range update.Bids {
		e.bids.Upsert(level)
	}
	for _, level := range update.Asks {
		e.asks.Upsert(level)
	}
	return e.summary()
}

func (e *Engine) summary() model.Summary {
	bidLevels := e.bids.Take(e.resultSize)
	askLevels := e.asks.Take(e.resultSize)

	spread := e.asks.MaxPrice().Sub(e.bids.MaxPrice()).Abs()

	return model.Summary{
		Spread: spread.String(),
		Bids:   toBooks(bidLevels),
		// The shared total order makes Take best-first by amount (smallest
		// amount first, price only breaking ties). Asks are additionally
		// reversed, so they come out largest amount first; bids are passed
		// through as Take returns them. Neither side is sorted by price.
		Asks: toBooks(reorient(askLevels)),
	}
}

func toBooks(levels []model.PriceLevel) []model.Book {
	books := make([]model.Book, len(levels))
	for i, l := range levels {
		books[i] = model.Book{
			Price:    l.Price.String(),
			Amount:   l.Amount.String(),
			Exchange: l.Venue.String(),
		}
	}
	return books
}

// reorient reverses a slice in place and returns it. Take(n) always hands
// back a freshly allocated slice, so mutating it here is safe.
func reorient(levels []model.PriceLevel) []model.PriceLevel {
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
	return levels
}
