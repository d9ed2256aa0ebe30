package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	bids := []Quote{{Price: 100, Amount: 1}, {Price: 99, Amount: 2}}
	asks := []Quote{{Price: 101, Amount: 1.5}, {Price: 102, Amount: 2.5}}

	summary, err := Summarize("binance", bids, asks)

	assert.NoError(t, err)
	assert.Equal(t, []Level{
		{Venue: "binance", Price: 100, Amount: 1},
		{Venue: "binance", Price: 99, Amount: 2},
	}, summary.Bids)
	assert.Equal(t, []Level{
		{Venue: "binance", Price: 101, Amount: 1.5},
		{Venue: "binance", Price: 102, Amount: 2.5},
	}, summary.Asks)
	assert.Equal(t, -1.0, summary.Spread)
}

func TestSummarize_ZipsToShorterSide(t *testing.T) {
	bids := []Quote{{Price: 100, Amount: 1}, {Price: 99, Amount: 1}, {Price: 98, Amount: 1}}
	asks := []Quote{{Price: 101, Amount: 1}}

	summary, err := Summarize("bitstamp", bids, asks)

	assert.NoError(t, err)
	assert.Len(t, summary.Bids, 1)
	assert.Len(t, summary.Asks, 1)
}

func TestSummarize_RejectsBadBooks(t *testing.T) {
	tests := []struct {
		name string
		bids []Quote
		asks []Quote
	}{
		{"EmptyBids", nil, []Quote{{Price: 1, Amount: 1}}},
		{"EmptyAsks", []Quote{{Price: 1, Amount: 1}}, nil},
		{"NaNPrice", []Quote{{Price: math.NaN(), Amount: 1}}, []Quote{{Price: 1, Amount: 1}}},
		{"InfAmount", []Quote{{Price: 1, Amount: math.Inf(1)}}, []Quote{{Price: 1, Amount: 1}}},
		{"NegativePrice", []Quote{{Price: -1, Amount: 1}}, []Quote{{Price: 1, Amount: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Summarize("binance", tt.bids, tt.asks)

			assert.ErrorIs(t, err, ErrMalformedBook)
		})
	}
}

func TestQuote_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expected    Quote
		expectError bool
	}{
		{"ValidPair", `["1.2345", "2.1234"]`, Quote{Price: 1.2345, Amount: 2.1234}, false},
		{"LeadingDot", `["0", ".1234"]`, Quote{Price: 0, Amount: 0.1234}, false},
		{"TrailingDot", `["1.", "2"]`, Quote{Price: 1, Amount: 2}, false},
		{"NotANumber", `["invalid", "2.1234"]`, Quote{}, true},
		{"EmptyString", `["", "2.1234"]`, Quote{}, true},
		{"DoubleSign", `["1.2345", "--2.1234"]`, Quote{}, true},
		{"TooShort", `["1.2345"]`, Quote{}, true},
		{"NotAnArray", `{"price": "1"}`, Quote{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quote
			err := json.Unmarshal([]byte(tt.data), &q)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, q)
			}
		})
	}
}
