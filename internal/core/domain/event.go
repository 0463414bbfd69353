package domain

// NoBid is the winner recorded for a minute in which no campaign entered
// the auction.
const NoBid = "no-bid"

// TickRecord is one entry of the simulation log.
type TickRecord struct {
	Minute    int     `json:"minute"`
	Winner    string  `json:"winner"`
	PricePaid float64 `json:"price_paid"`
	PCTR      float64 `json:"pctr"`
	Spend     float64 `json:"spend"` // price_paid * pctr * impressions
	Bidders   int     `json:"bidders"`
}

// Filled reports whether some campaign won the impression this minute.
func (t TickRecord) Filled() bool {
	return t.Winner != NoBid
}
