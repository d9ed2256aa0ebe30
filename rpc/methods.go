package rpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/msareena/orderbook-aggregator/domain"
	gen "github.com/msareena/orderbook-aggregator/gen"
)

// BookSummary creates one session per call: venue streams are dialed,
// a worker is spawned, and every merged summary it publishes is pushed
// to the caller. The stream ends when the worker terminates or the
// caller goes away; resubscribing always builds a brand-new session.
func (s *server) BookSummary(in *gen.Symbol, stream gen.OrderbookAggregator_BookSummaryServer) error {
	symbol, depth, err := s.validationService.ValidateRequest(in)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	out, err := s.bookSummaryUseCase.StartSession(stream.Context(), symbol, depth)
	if err != nil {
		return status.Errorf(codes.Unavailable, "failed to start session for %s: %s", symbol, err)
	}
	logger.Printf("session started for %s, depth=%d", symbol, depth)

	for summary := range out {
		if err := stream.Send(toProtoSummary(summary)); err != nil {
			return err
		}
	}

	logger.Printf("session ended for %s", symbol)
	return nil
}

func toProtoSummary(summary *domain.Summary) *gen.Summary {
	bids := make([]*gen.Level, 0, len(summary.Bids))
	for _, bid := range summary.Bids {
		bids = append(bids, &gen.Level{
			Exchange: bid.Venue,
			Price:    bid.Price,
			Amount:   bid.Amount,
		})
	}

	asks := make([]*gen.Level, 0, len(summary.Asks))
	for _, ask := range summary.Asks {
		asks = append(asks, &gen.Level{
			Exchange: ask.Venue,
			Price:    ask.Price,
			Amount:   ask.Amount,
		})
	}

	return &gen.Summary{
		Spread: summary.Spread,
		Bids:   bids,
		Asks:   asks,
	}
}
