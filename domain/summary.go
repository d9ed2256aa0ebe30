package domain

import "fmt"

// Level is a Quote tagged with the venue it came from.
type Level struct {
	Venue  string
	Price  float64
	Amount float64
}

// Summary is the common shape every venue book is normalized into:
// bids ordered best first (descending price), asks ordered best first
// (ascending price), and the spread between the two top levels.
// Immutable once constructed.
type Summary struct {
	Bids   []Level
	Asks   []Level
	Spread float64
}

// Summarize converts one venue book into a Summary. The inputs are
// trusted to be sorted best first by the venue itself; they are not
// re-sorted here. Bids and asks are zipped by index, so when a venue
// sends sides of unequal length the extra entries on the longer side
// are dropped.
func Summarize(venue string, bids, asks []Quote) (*Summary, error) {
	if len(bids) == 0 || len(asks) == 0 {
		return nil, fmt.Errorf("%w: venue %s sent %d bids and %d asks",
			ErrMalformedBook, venue, len(bids), len(asks))
	}

	depth := len(bids)
	if len(asks) < depth {
		depth = len(asks)
	}

	summary := &Summary{
		Bids: make([]Level, 0, depth),
		Asks: make([]Level, 0, depth),
	}

	for i := 0; i < depth; i++ {
		if !bids[i].Valid() || !asks[i].Valid() {
			return nil, fmt.Errorf("%w: venue %s sent a non-finite or negative quote at depth %d",
				ErrMalformedBook, venue, i)
		}

		summary.Bids = append(summary.Bids, Level{
			Venue:  venue,
			Price:  bids[i].Price,
			Amount: bids[i].Amount,
		})
		summary.Asks = append(summary.Asks, Level{
			Venue:  venue,
			Price:  asks[i].Price,
			Amount: asks[i].Amount,
		})
	}

	summary.Spread = summary.Bids[0].Price - summary.Asks[0].Price
	return summary, nil
}
