package usecase

import (
	"context"

	"github.com/msareena/orderbook-aggregator/domain"
)

type BookSummaryUseCase struct {
	connector domain.VenueConnector
}

func NewBookSummaryUseCase(connector domain.VenueConnector) *BookSummaryUseCase {
	return &BookSummaryUseCase{
		connector: connector,
	}
}

// StartSession opens one stream per venue for the symbol, spawns the
// client worker bound to them and hands the caller the receive side of
// the outbound channel. The channel closes when the worker terminates.
//
// Sessions are independent: each call dials fresh venue connections
// and shares nothing with other sessions. depth <= 0 selects the
// default top-N depth.
func (u *BookSummaryUseCase) StartSession(
	ctx context.Context, symbol *domain.MarketSymbol, depth int,
) (<-chan *domain.Summary, error) {
	streams, err := u.connector.OpenStreams(symbol)
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(symbol, depth)
	worker := NewClientWorker(session, streams)
	go worker.Run(ctx)

	return session.Out, nil
}
