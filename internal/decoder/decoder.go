// Package decoder parses inbound venue frames into the normalized
// model.DepthUpdate shape, trying each known wire dialect in turn.
package decoder

import (
	"encoding/json"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/model"
)

// rawLevel is a [price, amount] pair as the wire sends it: two strings.
type rawLevel [2]string

// binanceFrame is the `{"b": [...], "a": [...]}` shape.
type binanceFrame struct {
	Bids []rawLevel `json:"b"`
	Asks []rawLevel `json:"a"`
}

func (f binanceFrame) present() bool { return f.Bids != nil || f.Asks != nil }

// bitstampFrame is the `{"data": {"bids": [...], "asks": [...]}}` shape.
type bitstampFrame struct {
	Data struct {
		Bids []rawLevel `json:"bids"`
		Asks []rawLevel `json:"asks"`
	} `json:"data"`
}

func (f bitstampFrame) present() bool { return f.Data.Bids != nil || f.Data.Asks != nil }

// Decode parses one UTF-8 text frame into a DepthUpdate tagged with venue.
// Dialects are tried in order (Binance, then Bitstamp); the first one that
// both unmarshals and populates at least one side wins. Malformed frames
// return an *apperr.Error of kind apperr.Parse.
func Decode(venue model.Venue, raw []byte) (model.DepthUpdate, error) {
	var bf binanceFrame
	if err := json.Unmarshal(raw, &bf); err == nil && bf.present() {
		return toUpdate(venue, bf.Bids, bf.Asks)
	}

	var sf bitstampFrame
	if err := json.Unmarshal(raw, &sf); err == nil && sf.present() {
		return toUpdate(venue, sf.Data.Bids, sf.Data.Asks)
	}

	return model.DepthUpdate{}, apperr.New(apperr.Parse, "decoder.Decode", "frame matched no known dialect")
}

func toUpdate(venue model.Venue, rawBids, rawAsks []rawLevel) (model.DepthUpdate, error) {
	bids, err := toLevels(venue, rawBids)
	if err != nil {
		return model.DepthUpdate{}, apperr.Wrap(apperr.Parse, "decoder.toUpdate", err)
	}
	asks, err := toLevels(venue, rawAsks)
	if err != nil {
		return model.DepthUpdate{}, apperr.Wrap(apperr.Parse, "decoder.toUpdate", err)
	}
	return model.DepthUpdate{Venue: venue, Bids: bids, Asks: asks}, nil
}

func toLevels(venue model.Venue, raw []rawLevel) ([]model.PriceLevel, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	levels := make([]model.PriceLevel, 0, len(raw))
	for _, pair := range raw {
		level, err := model.NewPriceLevel(pair[0], pair[1], venue)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
