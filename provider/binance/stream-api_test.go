package binance

import (
	"errors"
	"testing"

	"github.com/msareena/orderbook-aggregator/domain"
	"github.com/stretchr/testify/assert"
)

func newTestStream() *Stream {
	return &Stream{buf: domain.NewFrameBuffer()}
}

func TestStream_PollDecodesBook(t *testing.T) {
	s := newTestStream()
	s.buf.Push([]byte(`{
		"lastUpdateId": 160,
		"bids": [["0.0024", "10"], ["0.0023", "5"]],
		"asks": [["0.0026", "100"], ["0.0027", "3"]]
	}`))

	summary, err := s.Poll()

	assert.NoError(t, err)
	assert.Equal(t, []domain.Level{
		{Venue: "binance", Price: 0.0024, Amount: 10},
		{Venue: "binance", Price: 0.0023, Amount: 5},
	}, summary.Bids)
	assert.Equal(t, []domain.Level{
		{Venue: "binance", Price: 0.0026, Amount: 100},
		{Venue: "binance", Price: 0.0027, Amount: 3},
	}, summary.Asks)
	assert.InDelta(t, -0.0002, summary.Spread, 1e-12)
}

func TestStream_PollDedupsByUpdateID(t *testing.T) {
	book := `{"lastUpdateId": 160, "bids": [["1", "1"]], "asks": [["2", "1"]]}`

	s := newTestStream()
	s.buf.Push([]byte(book))
	s.buf.Push([]byte(book))
	s.buf.Push([]byte(`{"lastUpdateId": 161, "bids": [["1", "1"]], "asks": [["2", "1"]]}`))

	first, err := s.Poll()
	assert.NoError(t, err)
	assert.NotNil(t, first)

	unchanged, err := s.Poll()
	assert.NoError(t, err)
	assert.Nil(t, unchanged, "repeated update id should poll as unchanged")

	fresh, err := s.Poll()
	assert.NoError(t, err)
	assert.NotNil(t, fresh, "new update id should poll as fresh")
}

func TestStream_PollReportsDecodeError(t *testing.T) {
	s := newTestStream()
	s.buf.Push([]byte(`{"lastUpdateId": "not a number"}`))

	_, err := s.Poll()

	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestStream_PollReportsMalformedBook(t *testing.T) {
	s := newTestStream()
	s.buf.Push([]byte(`{"lastUpdateId": 160, "bids": [], "asks": [["2", "1"]]}`))

	_, err := s.Poll()

	assert.ErrorIs(t, err, domain.ErrMalformedBook)
}

func TestStream_PollSurfacesPumpFailure(t *testing.T) {
	cause := errors.New("eof")

	s := newTestStream()
	s.buf.Push([]byte(`{"lastUpdateId": 160, "bids": [["1", "1"]], "asks": [["2", "1"]]}`))
	s.buf.Fail(cause)

	_, err := s.Poll()
	assert.NoError(t, err, "buffered frame is delivered before the failure")

	_, err = s.Poll()
	assert.Equal(t, cause, err)
}
