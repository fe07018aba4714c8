package model

// DepthUpdate is the normalized form of one inbound venue frame, regardless
// of wire dialect. The venue tag comes from the connector, never the
// payload (a frame carries no self-identification).
type DepthUpdate struct {
	Venue Venue
	Bids  []PriceLevel
	Asks  []PriceLevel
}

// Book is one rendered level of a Summary, keyed to the string wire format
// the RPC surface publishes.
type Book struct {
	Price    string
	Amount   string
	Exchange string
}

// Summary is the merged top-N snapshot emitted after each processed update.
type Summary struct {
	Spread string
	Bids   []Book
	Asks   []Book
}
