package domain

import (
	"fmt"
	"math"
	"sort"
)

type Side int

const (
	SideAsks Side = iota
	SideBids
)

// DefaultDepth is the top-N depth served when a subscriber does not ask
// for a specific one.
const DefaultDepth = 10

// AggregateTop merges one side of two summaries into the top n levels.
// Either summary may be nil (a venue that produced nothing yet)
// and then contributes zero levels.
//
// Ranking: asks ascending by price, bids descending by price. On equal
// price the larger amount ranks better on both sides. Levels equal in
// price and amount keep encounter order, summary a before summary b,
// which is why the sort must be stable.
func AggregateTop(n int, a, b *Summary, side Side) []Level {
	combined := make([]Level, 0, 2*n)
	combined = append(combined, top(n, sideLevels(a, side))...)
	combined = append(combined, top(n, sideLevels(b, side))...)

	if side == SideAsks {
		sort.SliceStable(combined, func(i, j int) bool {
			if combined[i].Price == combined[j].Price {
				return combined[i].Amount > combined[j].Amount
			}
			return combined[i].Price < combined[j].Price
		})
	} else {
		sort.SliceStable(combined, func(i, j int) bool {
			if combined[i].Price == combined[j].Price {
				return combined[i].Amount > combined[j].Amount
			}
			return combined[i].Price > combined[j].Price
		})
	}

	return top(n, combined)
}

// MergeSummaries builds the merged top-n Summary out of the last known
// summary of each venue. The spread is the cross-venue best bid minus
// best ask, NaN when either merged side is empty. Summaries are checked
// for NaN before ranking runs so a bad value is an error, not a broken
// sort order.
func MergeSummaries(n int, a, b *Summary) (*Summary, error) {
	if err := checkComparable(a); err != nil {
		return nil, err
	}
	if err := checkComparable(b); err != nil {
		return nil, err
	}

	asks := AggregateTop(n, a, b, SideAsks)
	bids := AggregateTop(n, a, b, SideBids)

	spread := math.NaN()
	if len(asks) > 0 && len(bids) > 0 {
		spread = bids[0].Price - asks[0].Price
	}

	return &Summary{Bids: bids, Asks: asks, Spread: spread}, nil
}

func sideLevels(s *Summary, side Side) []Level {
	if s == nil {
		return nil
	}
	if side == SideAsks {
		return s.Asks
	}
	return s.Bids
}

// top returns the first n levels. The input is expected to already be
// in the order wanted by the caller.
func top(n int, levels []Level) []Level {
	if len(levels) > n {
		return levels[:n]
	}
	return levels
}

func checkComparable(s *Summary) error {
	if s == nil {
		return nil
	}
	for _, levels := range [][]Level{s.Bids, s.Asks} {
		for _, l := range levels {
			if math.IsNaN(l.Price) || math.IsNaN(l.Amount) {
				return fmt.Errorf("%w: venue %s", ErrInvalidComparison, l.Venue)
			}
		}
	}
	return nil
}
