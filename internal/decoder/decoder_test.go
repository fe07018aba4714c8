package decoder

import (
	"testing"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/model"
)

func TestDecodeBinanceFrame(t *testing.T) {
	raw := []byte(`{"b":[["1.0","2.0"]],"a":[["3.0","4.0"]]}`)
	update, err := Decode(model.Binance, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if update.Venue != model.Binance {
		t.Fatalf("expected venue binance, got %s", update.Venue)
	}
	if len(update.Bids) != 1 || update.Bids[0].Price.String() != "1" || update.Bids[0].Amount.String() != "2" {
		t.Fatalf("unexpected bids: %+v", update.Bids)
	}
	if len(update.Asks) != 1 || update.Asks[0].Price.String() != "3" || update.Asks[0].Amount.String() != "4" {
		t.Fatalf("unexpected asks: %+v", update.Asks)
	}
}

func TestDecodeBitstampFrame(t *testing.T) {
	raw := []byte(`{"data":{"bids":[["11","2"]],"asks":[["19","2"]]}}`)
	update, err := Decode(model.Bitstamp, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(update.Bids) != 1 || update.Bids[0].Price.String() != "11" {
		t.Fatalf("unexpected bids: %+v", update.Bids)
	}
	if len(update.Asks) != 1 || update.Asks[0].Price.String() != "19" {
		t.Fatalf("unexpected asks: %+v", update.Asks)
	}
}

func TestDecodeMalformedFrame(t *testing.T) {
	_, err := Decode(model.Binance, []byte(`not json`))
	if apperr.KindOf(err) != apperr.Parse {
		t.Fatalf("expected Parse error, got %v", err)
	}
}

func TestDecodeEmptyObjectIsParseError(t *testing.T) {
	// An empty object matches neither dialect and must produce a Parse
	// error rather than an empty DepthUpdate.
	_, err := Decode(model.Binance, []byte(`{}`))
	if apperr.KindOf(err) != apperr.Parse {
		t.Fatalf("expected Parse error for empty object, got %v", err)
	}
}
