package domain

// Session binds one subscription to one client worker. The value is
// fully constructed before the worker is spawned and handed over by
// ownership transfer; nothing mutates it afterwards, so no lock guards
// it.
//
// Out holds at most one undelivered merged summary. A slow consumer
// therefore stalls its worker instead of growing a backlog, and FIFO
// order to the subscriber is trivial.
type Session struct {
	Symbol *MarketSymbol
	Depth  int
	Out    chan *Summary
}

func NewSession(symbol *MarketSymbol, depth int) *Session {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Session{
		Symbol: symbol,
		Depth:  depth,
		Out:    make(chan *Summary, 1),
	}
}
