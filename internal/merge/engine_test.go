package merge

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BullionBear/orderbook/internal/model"
)

func level(t *testing.T, price, amount string, venue model.Venue) model.PriceLevel {
	t.Helper()
	pl, err := model.NewPriceLevel(price, amount, venue)
	if err != nil {
		t.Fatalf("NewPriceLevel: %v", err)
	}
	return pl
}

// TestS1SingleVenue reproduces spec.md scenario S1.
func TestS1SingleVenue(t *testing.T) {
	e := New(1)
	update := model.DepthUpdate{
		Venue: model.Binance,
		Bids:  []model.PriceLevel{level(t, "1.0", "2.0", model.Binance)},
		Asks:  []model.PriceLevel{level(t, "3.0", "4.0", model.Binance)},
	}
	summary := e.Apply(update)

	if summary.Spread != "2" {
		t.Fatalf("expected spread 2, got %s", summary.Spread)
	}
	if len(summary.Bids) != 1 || summary.Bids[0].Price != "1" || summary.Bids[0].Amount != "2" || summary.Bids[0].Exchange != "binance" {
		t.Fatalf("unexpected bids: %+v", summary.Bids)
	}
	if len(summary.Asks) != 1 || summary.Asks[0].Price != "3" || summary.Asks[0].Amount != "4" || summary.Asks[0].Exchange != "binance" {
		t.Fatalf("unexpected asks: %+v", summary.Asks)
	}
}

// TestS2TwoVenues reproduces spec.md scenario S2.
func TestS2TwoVenues(t *testing.T) {
	e := New(2)
	e.Apply(model.DepthUpdate{
		Venue: model.Binance,
		Bids:  []model.PriceLevel{level(t, "10", "1", model.Binance)},
		Asks:  []model.PriceLevel{level(t, "20", "1", model.Binance)},
	})
	summary := e.Apply(model.DepthUpdate{
		Venue: model.Bitstamp,
		Bids:  []model.PriceLevel{level(t, "11", "2", model.Bitstamp)},
		Asks:  []model.PriceLevel{level(t, "19", "2", model.Bitstamp)},
	})

	if len(summary.Bids) != 2 {
		t.Fatalf("expected both venues in bids, got %+v", summary.Bids)
	}
	if len(summary.Asks) != 2 {
		t.Fatalf("expected both venues in asks, got %+v", summary.Asks)
	}
	seenBidVenues := map[string]bool{}
	for _, b := range summary.Bids {
		seenBidVenues[b.Exchange] = true
	}
	if !seenBidVenues["binance"] || !seenBidVenues["bitstamp"] {
		t.Fatalf("expected both venues present in bids: %+v", summary.Bids)
	}
}

// TestS5VenueUniqueness reproduces spec.md scenario S5.
func TestS5VenueUniqueness(t *testing.T) {
	e := New(3)
	var summary model.Summary
	for i := 0; i < 5; i++ {
		summary = e.Apply(model.DepthUpdate{
			Venue: model.Binance,
			Bids:  []model.PriceLevel{level(t, "10", "1", model.Binance)},
		})
	}
	if len(summary.Bids) != 1 {
		t.Fatalf("expected exactly one bid entry for a repeated venue, got %+v", summary.Bids)
	}
}

func TestTopNBound(t *testing.T) {
	e := New(2)
	summary := e.Apply(model.DepthUpdate{
		Venue: model.Binance,
		Bids: []model.PriceLevel{
			level(t, "10", "1", model.Binance),
		},
		Asks: []model.PriceLevel{
			level(t, "20", "1", model.Binance),
		},
	})
	summary = e.Apply(model.DepthUpdate{
		Venue: model.Bitstamp,
		Bids: []model.PriceLevel{
			level(t, "11", "2", model.Bitstamp),
		},
		Asks: []model.PriceLevel{
			level(t, "19", "2", model.Bitstamp),
		},
	})
	if len(summary.Bids) > 2 || len(summary.Asks) > 2 {
		t.Fatalf("top-N bound violated: %+v", summary)
	}
}

func TestSpreadNonNegative(t *testing.T) {
	e := New(1)
	summary := e.Apply(model.DepthUpdate{
		Venue: model.Binance,
		Bids:  []model.PriceLevel{level(t, "100", "1", model.Binance)},
		Asks:  []model.PriceLevel{level(t, "1", "1", model.Binance)},
	})
	spread, err := decimal.NewFromString(summary.Spread)
	if err != nil {
		t.Fatalf("unexpected spread format: %v", err)
	}
	if spread.IsNegative() {
		t.Fatalf("spread must be non-negative, got %s", summary.Spread)
	}
}
