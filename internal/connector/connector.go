// Package connector owns the per-venue duplex websocket connection: the
// §4.2 Init -> Connected -> Streaming -> Closed state machine, the
// dialect-specific subscribe frame, and cooperative shutdown.
package connector

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/model"
)

// State is the connector's position in the §4.2 state machine.
type State int

const (
	StateInit State = iota
	StateConnected
	StateStreaming
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	default:
		return "init"
	}
}

// Config names the venue and channel a Connector dials.
type Config struct {
	Venue   model.Venue
	Channel string
	URL     string
}

// Frame pairs a raw inbound text frame with the venue it arrived from.
type Frame struct {
	Venue model.Venue
	Raw   []byte
}

// Connector owns one duplex socket to a single venue. It never reconnects
// on its own; that policy belongs to the subscription manager (spec §4.2,
// §9).
type Connector struct {
	cfg    Config
	logger zerolog.Logger

	mu    sync.Mutex
	conn  *websocket.Conn
	state State
}

// New builds a Connector in the Init state.
func New(cfg Config, logger zerolog.Logger) *Connector {
	return &Connector{
		cfg:    cfg,
		logger: logger.With().Str("venue", cfg.Venue.String()).Logger(),
		state:  StateInit,
	}
}

// State reports the connector's current state machine position.
func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect opens the socket to cfg.URL. Failure is an apperr.Transport
// error and leaves the connector in Init.
func (c *Connector) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return apperr.Wrap(apperr.Transport, "connector.Connect", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()
	return nil
}

// Subscribe sends the dialect-specific subscribe frame for cfg.Venue.
func (c *Connector) Subscribe() error {
	frame, err := subscribeFrame(c.cfg.Venue, c.cfg.Channel)
	if err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return apperr.New(apperr.Transport, "connector.Subscribe", "not connected")
	}

	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return apperr.Wrap(apperr.Transport, "connector.Subscribe", err)
	}

	c.mu.Lock()
	c.state = StateStreaming
	c.mu.Unlock()
	return nil
}

func subscribeFrame(venue model.Venue, channel string) ([]byte, error) {
	switch venue {
	case model.Binance:
		return json.Marshal(map[string]any{
			"method": "SUBSCRIBE",
			"params": []string{channel + "@depth"},
			"id":     1,
		})
	case model.Bitstamp:
		return json.Marshal(map[string]any{
			"event": "bts:subscribe",
			"data": map[string]string{
				"channel": "order_book_" + channel,
			},
		})
	default:
		return nil, apperr.New(apperr.Config, "connector.subscribeFrame", "unsupported venue: "+venue.String())
	}
}

// Run reads frames until stop fires or the socket errors, forwarding each
// onto out tagged with the connector's venue. Run always closes the socket
// before returning, transitioning to Closed; a clean stop returns nil, a
// socket error returns an apperr.Transport error.
func (c *Connector) Run(out chan<- Frame, stop <-chan struct{}) error {
	defer c.closeSocket()

	unblockOnStop := make(chan struct{})
	defer close(unblockOnStop)
	go func() {
		select {
		case <-stop:
			c.mu.Lock()
			if c.conn != nil {
				c.conn.SetReadDeadline(time.Now())
			}
			c.mu.Unlock()
		case <-unblockOnStop:
		}
	}()

	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return apperr.New(apperr.Transport, "connector.Run", "not connected")
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-stop:
				return nil
			default:
			}
			return apperr.Wrap(apperr.Transport, "connector.Run", err)
		}

		select {
		case out <- Frame{Venue: c.cfg.Venue, Raw: raw}:
		case <-stop:
			return nil
		}
	}
}

func (c *Connector) closeSocket() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.state = StateClosed
}
