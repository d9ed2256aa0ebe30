package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaryOf(venue string, bids, asks [][2]float64) *Summary {
	s := &Summary{}
	for _, b := range bids {
		s.Bids = append(s.Bids, Level{Venue: venue, Price: b[0], Amount: b[1]})
	}
	for _, a := range asks {
		s.Asks = append(s.Asks, Level{Venue: venue, Price: a[0], Amount: a[1]})
	}
	if len(s.Bids) > 0 && len(s.Asks) > 0 {
		s.Spread = s.Bids[0].Price - s.Asks[0].Price
	}
	return s
}

func TestAggregateTop_BidTieBreakByAmount(t *testing.T) {
	a := summaryOf("binance", [][2]float64{{100.0, 5}}, [][2]float64{{101.0, 1}})
	b := summaryOf("bitstamp", [][2]float64{{100.0, 3}}, [][2]float64{{101.0, 1}})

	result := AggregateTop(1, a, b, SideBids)

	assert.Equal(t, []Level{{Venue: "binance", Price: 100.0, Amount: 5}}, result)
}

func TestAggregateTop_AsksAcrossVenues(t *testing.T) {
	a := summaryOf("binance", [][2]float64{{48, 1}, {47, 1}}, [][2]float64{{50, 1}, {51, 2}})
	b := summaryOf("bitstamp", [][2]float64{{48, 1}}, [][2]float64{{49, 4}})

	result := AggregateTop(2, a, b, SideAsks)

	assert.Equal(t, []Level{
		{Venue: "bitstamp", Price: 49, Amount: 4},
		{Venue: "binance", Price: 50, Amount: 1},
	}, result)
}

func TestAggregateTop_AskTieBreakByAmount(t *testing.T) {
	a := summaryOf("binance", [][2]float64{{40, 1}}, [][2]float64{{50, 1}})
	b := summaryOf("bitstamp", [][2]float64{{40, 1}}, [][2]float64{{50, 7}})

	result := AggregateTop(2, a, b, SideAsks)

	assert.Equal(t, []Level{
		{Venue: "bitstamp", Price: 50, Amount: 7},
		{Venue: "binance", Price: 50, Amount: 1},
	}, result)
}

func TestAggregateTop_ExactTiesKeepFirstVenueFirst(t *testing.T) {
	a := summaryOf("binance", [][2]float64{{100, 2}}, [][2]float64{{101, 2}})
	b := summaryOf("bitstamp", [][2]float64{{100, 2}}, [][2]float64{{101, 2}})

	for _, side := range []Side{SideBids, SideAsks} {
		result := AggregateTop(2, a, b, side)

		assert.Len(t, result, 2)
		assert.Equal(t, "binance", result[0].Venue, "first venue should win exact ties")
		assert.Equal(t, "bitstamp", result[1].Venue)
	}
}

func TestAggregateTop_MissingVenueContributesNothing(t *testing.T) {
	a := summaryOf("binance",
		[][2]float64{{100, 1}, {99, 2}, {98, 3}},
		[][2]float64{{101, 1}, {102, 2}, {103, 3}})

	bids := AggregateTop(2, a, nil, SideBids)
	asks := AggregateTop(2, nil, a, SideAsks)

	assert.Equal(t, a.Bids[:2], bids, "top-N of the present venue, order untouched")
	assert.Equal(t, a.Asks[:2], asks)

	assert.Empty(t, AggregateTop(10, nil, nil, SideBids))
}

func TestAggregateTop_TruncatesAndIsIdempotent(t *testing.T) {
	a := summaryOf("binance",
		[][2]float64{{100, 1}, {99, 1}, {98, 1}, {97, 1}},
		[][2]float64{{101, 1}, {102, 1}, {103, 1}, {104, 1}})
	b := summaryOf("bitstamp",
		[][2]float64{{100.5, 1}, {98.5, 1}},
		[][2]float64{{100.7, 1}, {102.5, 1}})

	bids := AggregateTop(3, a, b, SideBids)

	assert.Len(t, bids, 3)
	for i := 1; i < len(bids); i++ {
		assert.LessOrEqual(t, bids[i].Price, bids[i-1].Price, "bids must descend")
	}

	again := AggregateTop(3, &Summary{Bids: bids}, nil, SideBids)
	assert.Equal(t, bids, again, "re-aggregating own output should be a no-op")
}

func TestMergeSummaries_Spread(t *testing.T) {
	a := summaryOf("binance", [][2]float64{{10, 1}}, [][2]float64{{11, 1}})

	merged, err := MergeSummaries(10, nil, a)

	assert.NoError(t, err)
	assert.Equal(t, 1.0, merged.Asks[0].Price-merged.Bids[0].Price)
	assert.Equal(t, -1.0, merged.Spread)
	assert.Equal(t, merged.Bids[0].Price-merged.Asks[0].Price, merged.Spread)
}

func TestMergeSummaries_CrossVenueSpread(t *testing.T) {
	a := summaryOf("binance", [][2]float64{{99, 1}}, [][2]float64{{102, 1}})
	b := summaryOf("bitstamp", [][2]float64{{100, 1}}, [][2]float64{{101, 1}})

	merged, err := MergeSummaries(10, a, b)

	assert.NoError(t, err)
	assert.Equal(t, 101.0-100.0, merged.Asks[0].Price-merged.Bids[0].Price)
	assert.Equal(t, -1.0, merged.Spread, "spread reflects cross-venue best bid/ask")
}

func TestMergeSummaries_EmptySideMeansNaNSpread(t *testing.T) {
	merged, err := MergeSummaries(10, nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, merged.Bids)
	assert.Empty(t, merged.Asks)
	assert.True(t, math.IsNaN(merged.Spread))
}

func TestMergeSummaries_RejectsNaN(t *testing.T) {
	bad := &Summary{
		Bids: []Level{{Venue: "binance", Price: math.NaN(), Amount: 1}},
		Asks: []Level{{Venue: "binance", Price: 1, Amount: 1}},
	}

	_, err := MergeSummaries(10, bad, nil)

	assert.ErrorIs(t, err, ErrInvalidComparison)
}
