package domain

// VenueStream is one live order book subscription on one venue.
//
// Poll blocks until the venue delivers the next message or the
// connection fails, with three observable outcomes:
//
//	(summary, nil) — a new, materially different book arrived
//	(nil, nil)     — a message arrived but represents no new state
//	(nil, err)     — terminal: the stream is dead and must be closed
//
// What "materially different" means is a venue concern (an update id,
// a timestamp pair); callers only rely on the three outcomes.
type VenueStream interface {
	Venue() string
	Poll() (*Summary, error)
	Close() error
}

// VenueDialer opens a fresh VenueStream for a symbol. Each client
// worker owns its own streams, so OpenStream is called once per venue
// per session.
type VenueDialer interface {
	Venue() string
	OpenStream(symbol *MarketSymbol) (VenueStream, error)
}
