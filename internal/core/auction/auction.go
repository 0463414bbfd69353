// Package auction resolves a single sealed-bid impression auction.
package auction

import (
	"errors"
	"slices"

	"rtb-pacing/internal/core/random"
)

// DefaultMaxDiscount is the upper bound of the random discount applied to
// every base bid.
const DefaultMaxDiscount = 0.2

var ErrNoBidders = errors.New("auction has no bidders")

// Bidder is a participant in one auction round.
type Bidder struct {
	Name    string
	BaseBid float64
}

// Outcome is the result of one auction round. EffectiveBids is aligned with
// the bidders passed to Resolve.
type Outcome struct {
	WinnerIndex   int
	Winner        string
	PricePaid     float64
	EffectiveBids []float64
}

// Auction runs randomized second-price auctions. The discount stands in for
// quality-score and ranking noise of real exchanges.
type Auction struct {
	MaxDiscount float64
}

// New returns an auction drawing discounts from [0, maxDiscount).
func New(maxDiscount float64) *Auction {
	return &Auction{MaxDiscount: maxDiscount}
}

// Resolve draws one discount per bidder in order, picks the first bidder
// with the highest effective bid and charges it the second-highest
// effective bid. A lone bidder pays its own effective bid. The price is
// floored at zero.
func (a *Auction) Resolve(bidders []Bidder, src random.Source) (Outcome, error) {
	if len(bidders) == 0 {
		return Outcome{}, ErrNoBidders
	}

	bids := make([]float64, len(bidders))
	winner := 0
	for i, b := range bidders {
		bids[i] = b.BaseBid - random.Uniform(src, 0, a.MaxDiscount)
		if bids[i] > bids[winner] {
			winner = i
		}
	}

	price := bids[winner]
	if len(bids) > 1 {
		price = SecondHighest(bids)
	}

	return Outcome{
		WinnerIndex:   winner,
		Winner:        bidders[winner].Name,
		PricePaid:     max(price, 0),
		EffectiveBids: bids,
	}, nil
}

// SecondHighest returns the second element of bids sorted in descending
// order. Ties count twice.
func SecondHighest(bids []float64) float64 {
	sorted := slices.Clone(bids)
	slices.Sort(sorted)
	return sorted[len(sorted)-2]
}
