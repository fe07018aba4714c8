package model

import "github.com/shopspring/decimal"

// PriceLevel is one venue's best level on one side of the book. An amount of
// zero gets no special treatment: bookqueue replaces the venue's entry with
// the zero-amount level and does not remove the venue.
type PriceLevel struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
	Venue  Venue
}

// NewPriceLevel builds a PriceLevel from decimal-string wire fields.
func NewPriceLevel(price, amount string, venue Venue) (PriceLevel, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return PriceLevel{}, err
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return PriceLevel{}, err
	}
	return PriceLevel{Price: p, Amount: a, Venue: venue}, nil
}

// Less implements the total order both side books share: amount first,
// inverted (a larger amount sorts first), price second, natural order.
// This ranks levels by amount rather than price; see the open question in
// the design notes before "fixing" it to price-first.
func (pl PriceLevel) Less(other PriceLevel) bool {
	switch pl.Amount.Cmp(other.Amount) {
	case 1:
		return true
	case -1:
		return false
	}
	return pl.Price.Cmp(other.Price) < 0
}
