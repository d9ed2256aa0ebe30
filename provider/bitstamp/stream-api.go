package bitstamp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/msareena/orderbook-aggregator/domain"
)

const VenueName = "bitstamp"

var logger = log.New(os.Stdout, "[bitstamp] ", log.LstdFlags)

type subscribeMessage struct {
	Event string        `json:"event"`
	Data  subscribeData `json:"data"`
}

type subscribeData struct {
	Channel string `json:"channel"`
}

// message is the envelope of every inbound frame. Data stays raw until
// the event tells us whether it is a book or a control payload.
type message struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
}

// Book is the data payload of the order_book channel: top levels of
// both sides, sorted best first, tagged with a timestamp pair that
// identifies the tick.
type Book struct {
	Timestamp      string         `json:"timestamp"`
	Microtimestamp string         `json:"microtimestamp"`
	Bids           []domain.Quote `json:"bids"`
	Asks           []domain.Quote `json:"asks"`
}

type Dialer struct {
	Endpoint string
}

func (d *Dialer) Venue() string {
	return VenueName
}

// OpenStream connects and sends the bts:subscribe handshake for the
// symbol's order_book channel.
func (d *Dialer) OpenStream(symbol *domain.MarketSymbol) (domain.VenueStream, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 5 * time.Second,
	}

	conn, _, err := dialer.Dial(d.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bitstamp: %s", domain.ErrNoConnection, err)
	}

	channel := "order_book_" + symbol.Join("")
	err = conn.WriteJSON(subscribeMessage{
		Event: "bts:subscribe",
		Data:  subscribeData{Channel: channel},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: bitstamp: %s", domain.ErrSubscription, err)
	}
	logger.Printf("subscribed to %s", channel)

	s := &Stream{conn: conn, buf: domain.NewFrameBuffer()}
	go s.readPump()

	return s, nil
}

// Stream is one live order_book subscription. A book repeating the
// previous timestamp pair polls as unchanged.
type Stream struct {
	conn *websocket.Conn
	buf  *domain.FrameBuffer

	lastTimestamp      string
	lastMicrotimestamp string
}

func (s *Stream) Venue() string {
	return VenueName
}

func (s *Stream) Poll() (*domain.Summary, error) {
	// Control events (subscription ack, reconnect requests) are not
	// book state; keep reading until a data frame arrives.
	for {
		frame, err := s.buf.Next()
		if err != nil {
			return nil, err
		}

		var msg message
		if err := json.Unmarshal(frame, &msg); err != nil {
			return nil, fmt.Errorf("%w: bitstamp: %s", domain.ErrDecode, err)
		}

		if msg.Event == "bts:error" {
			return nil, fmt.Errorf("%w: bitstamp: %s", domain.ErrSubscription, msg.Data)
		}
		if msg.Event != "data" {
			continue
		}

		var book Book
		if err := json.Unmarshal(msg.Data, &book); err != nil {
			return nil, fmt.Errorf("%w: bitstamp: %s", domain.ErrDecode, err)
		}

		if book.Timestamp == s.lastTimestamp && book.Microtimestamp == s.lastMicrotimestamp {
			return nil, nil
		}
		s.lastTimestamp = book.Timestamp
		s.lastMicrotimestamp = book.Microtimestamp

		return domain.Summarize(VenueName, book.Bids, book.Asks)
	}
}

func (s *Stream) Close() error {
	s.buf.Fail(domain.ErrNoConnection)
	return s.conn.Close()
}

func (s *Stream) readPump() {
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			s.buf.Fail(fmt.Errorf("%w: bitstamp: %s", domain.ErrSocketRead, err))
			return
		}
		s.buf.Push(msg)
	}
}
