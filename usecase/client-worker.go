package usecase

import (
	"context"
	"log"
	"os"

	"github.com/msareena/orderbook-aggregator/config"
	"github.com/msareena/orderbook-aggregator/domain"
	"github.com/msareena/orderbook-aggregator/helpers"
	promclient "github.com/msareena/orderbook-aggregator/infrastructure/prometheus"
)

var logger = log.New(os.Stdout, "[client-worker] ", log.LstdFlags)

// ClientWorker drives one subscription: it polls each venue stream in
// turn, remembers the last summary every venue produced, merges them
// and publishes the result on the session's outbound channel.
//
// A quiet venue keeps contributing its last known book; only a venue
// error or the subscriber going away ends the worker. There is no
// reconnect: a dead venue ends the whole merged stream for this
// subscriber.
type ClientWorker struct {
	session *domain.Session
	streams []domain.VenueStream
	last    []*domain.Summary
}

func NewClientWorker(session *domain.Session, streams []domain.VenueStream) *ClientWorker {
	return &ClientWorker{
		session: session,
		streams: streams,
		last:    make([]*domain.Summary, len(streams)),
	}
}

// Run loops until termination and then closes the outbound channel and
// releases every venue connection. ctx is the subscriber's context:
// once it is done no further summary is published.
func (w *ClientWorker) Run(ctx context.Context) {
	defer w.release()
	defer close(w.session.Out)

	promclient.ActiveClientWorkers.Inc()
	defer promclient.ActiveClientWorkers.Dec()

	for {
		// Streams are polled in fixed order, so a cycle is paced by
		// whichever venue is slower. Known limitation, not an accident.
		for i, stream := range w.streams {
			summary, err := stream.Poll()
			if err != nil {
				logger.Printf("venue %s ended stream for %s: %s",
					stream.Venue(), w.session.Symbol, err)
				promclient.VenueStreamFailures.WithLabelValues(stream.Venue()).Inc()
				return
			}
			if summary != nil {
				w.last[i] = summary
			}
		}

		merged, err := domain.MergeSummaries(w.session.Depth, w.last[0], w.last[1])
		if err != nil {
			logger.Printf("cannot merge books for %s: %s", w.session.Symbol, err)
			return
		}

		// Nothing new and nothing previously known to show.
		if len(merged.Bids) == 0 && len(merged.Asks) == 0 {
			continue
		}

		if config.DebugMode {
			logger.Printf("publishing summary for %s: %s",
				w.session.Symbol, helpers.ToJsonString(merged))
		}

		select {
		case w.session.Out <- merged:
			promclient.PublishedSummaries.Inc()
		case <-ctx.Done():
			logger.Printf("subscriber for %s went away", w.session.Symbol)
			return
		}
	}
}

func (w *ClientWorker) release() {
	for _, stream := range w.streams {
		if err := stream.Close(); err != nil && config.DebugMode {
			logger.Printf("error closing %s stream: %s", stream.Venue(), err)
		}
	}
}
