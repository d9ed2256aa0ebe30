package provider

import (
	"log"
	"os"

	"github.com/msareena/orderbook-aggregator/config"
	"github.com/msareena/orderbook-aggregator/domain"
	"github.com/msareena/orderbook-aggregator/helpers"
	"github.com/msareena/orderbook-aggregator/provider/binance"
	"github.com/msareena/orderbook-aggregator/provider/bitstamp"
)

var logger = log.New(os.Stdout, "[conn-manager] ", log.LstdFlags)

// ConnectionManager knows how to dial every configured venue. Streams
// are opened per session: each client worker owns its own sockets and
// closes them when it terminates.
type ConnectionManager struct {
	dialers []domain.VenueDialer
}

func NewConnectionManager(conf *config.Config) *ConnectionManager {
	// Dialer order is the venue order of every session: an earlier
	// venue's levels win exact ties in the merged book.
	return &ConnectionManager{
		dialers: []domain.VenueDialer{
			&binance.Dialer{Endpoint: conf.BinanceWsEndpoint},
			&bitstamp.Dialer{Endpoint: conf.BitstampWsEndpoint},
		},
	}
}

// OpenStreams dials both venues concurrently and waits for both
// attempts to settle. On any failure every stream that did open is
// closed and the first error is returned.
func (cm *ConnectionManager) OpenStreams(symbol *domain.MarketSymbol) ([]domain.VenueStream, error) {
	streams := make([]domain.VenueStream, len(cm.dialers))
	errs := make([]error, len(cm.dialers))

	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	signals := []chan struct{}{first, second}

	for i, dialer := range cm.dialers {
		go func(i int, dialer domain.VenueDialer) {
			streams[i], errs[i] = dialer.OpenStream(symbol)
			signals[i] <- struct{}{}
		}(i, dialer)
	}

	<-helpers.WithLatestFrom(first, second)

	for i, err := range errs {
		if err == nil {
			continue
		}

		logger.Printf("failed to open %s stream for %s: %s", cm.dialers[i].Venue(), symbol, err)
		for _, s := range streams {
			if s != nil {
				s.Close()
			}
		}
		return nil, err
	}

	return streams, nil
}
