package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Quote is a single price level as a venue reports it: price and the
// amount resting at that price. Venues send both numbers as strings
// inside a two element json array, e.g. ["0.06824", "3.51"].
type Quote struct {
	Price  float64
	Amount float64
}

func (q *Quote) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) < 2 {
		return fmt.Errorf("expected [price, amount] pair, got %d elements", len(pair))
	}

	price, err := strconv.ParseFloat(pair[0], 64)
	if err != nil {
		return fmt.Errorf("failed to parse price %q: %w", pair[0], err)
	}

	amount, err := strconv.ParseFloat(pair[1], 64)
	if err != nil {
		return fmt.Errorf("failed to parse amount %q: %w", pair[1], err)
	}

	q.Price = price
	q.Amount = amount
	return nil
}

// Valid reports whether both fields are finite and non-negative.
// Checked at normalization time so that NaN never reaches a comparator.
func (q Quote) Valid() bool {
	if math.IsNaN(q.Price) || math.IsInf(q.Price, 0) {
		return false
	}
	if math.IsNaN(q.Amount) || math.IsInf(q.Amount, 0) {
		return false
	}
	return q.Price >= 0 && q.Amount >= 0
}
