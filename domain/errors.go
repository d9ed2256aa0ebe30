package domain

import "errors"

var (
	// the venue socket is absent or was closed under us
	ErrNoConnection = errors.New("no connection to venue")
	// a frame could not be read from the venue socket
	ErrSocketRead = errors.New("error reading from venue socket")
	// a frame arrived but did not match the expected venue schema
	ErrDecode = errors.New("error decoding venue message")
	// the venue rejected the subscribe handshake
	ErrSubscription = errors.New("error subscribing to venue order book")
	// a venue book is empty or carries quotes unusable for ranking
	ErrMalformedBook = errors.New("malformed order book")
	// a summary handed to the aggregator contains a non-numeric price or amount
	ErrInvalidComparison = errors.New("summary contains non-numeric price or amount")
)
