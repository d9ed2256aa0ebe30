package binance

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/msareena/orderbook-aggregator/config"
	"github.com/msareena/orderbook-aggregator/domain"
	"github.com/msareena/orderbook-aggregator/helpers"
)

const VenueName = "binance"

var logger = log.New(os.Stdout, "[binance] ", log.LstdFlags)

// Book is the payload of the partial book depth stream: the top levels
// of both sides, already sorted best first, republished every 100ms
// under a monotonically increasing update id.
type Book struct {
	LastUpdateID int64          `json:"lastUpdateId"`
	Bids         []domain.Quote `json:"bids"`
	Asks         []domain.Quote `json:"asks"`
}

type Dialer struct {
	Endpoint string
}

func (d *Dialer) Venue() string {
	return VenueName
}

// OpenStream subscribes to the partial book depth stream for the
// symbol. There is no subscribe handshake: the channel is part of the
// endpoint path.
func (d *Dialer) OpenStream(symbol *domain.MarketSymbol) (domain.VenueStream, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 5 * time.Second,
	}

	endpoint := fmt.Sprintf("%s/ws/%s@depth%d@100ms",
		d.Endpoint, symbol.Join(""), domain.DefaultDepth)

	conn, _, err := dialer.Dial(endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: binance: %s", domain.ErrNoConnection, err)
	}
	logger.Printf("connected to %s", endpoint)

	s := &Stream{conn: conn, buf: domain.NewFrameBuffer()}
	go s.readPump()

	return s, nil
}

// Stream is one live partial depth subscription. A frame repeating the
// previous update id carries no new state and polls as unchanged.
type Stream struct {
	conn *websocket.Conn
	buf  *domain.FrameBuffer

	lastUpdateID int64
	seenBook     bool
}

func (s *Stream) Venue() string {
	return VenueName
}

func (s *Stream) Poll() (*domain.Summary, error) {
	frame, err := s.buf.Next()
	if err != nil {
		return nil, err
	}

	var book Book
	if err := json.Unmarshal(frame, &book); err != nil {
		return nil, fmt.Errorf("%w: binance: %s", domain.ErrDecode, err)
	}

	if s.seenBook && book.LastUpdateID == s.lastUpdateID {
		return nil, nil
	}
	s.lastUpdateID = book.LastUpdateID
	s.seenBook = true

	if config.DebugMode {
		logger.Printf("fresh book, lastUpdateId=%s", helpers.IntToString(book.LastUpdateID))
	}

	return domain.Summarize(VenueName, book.Bids, book.Asks)
}

func (s *Stream) Close() error {
	s.buf.Fail(domain.ErrNoConnection)
	return s.conn.Close()
}

func (s *Stream) readPump() {
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			s.buf.Fail(fmt.Errorf("%w: binance: %s", domain.ErrSocketRead, err))
			return
		}
		s.buf.Push(msg)
	}
}
