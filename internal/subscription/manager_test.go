package subscription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/model"
)

func newFrameServer(t *testing.T, frame []byte) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// subscribe frame
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.WriteMessage(websocket.TextMessage, frame)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestStartEmitsSummaryAndStopsCleanly(t *testing.T) {
	srv := newFrameServer(t, []byte(`{"b":[["1.0","2.0"]],"a":[["3.0","4.0"]]}`))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := Start(ctx, []VenueConfig{{Venue: model.Binance, Channel: "ethbtc", URL: wsURL(t, srv)}}, 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case summary := <-p.Out():
		if summary.Spread != "2" {
			t.Fatalf("expected spread 2, got %s", summary.Spread)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("did not receive a summary")
	}

	p.Stop()
	select {
	case <-p.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("pipeline did not tear down after Stop")
	}
}

func TestStartNoVenuesConfigured(t *testing.T) {
	_, err := Start(context.Background(), nil, 1, zerolog.Nop())
	if apperr.KindOf(err) != apperr.Config {
		t.Fatalf("expected Config error for zero venues, got %v", err)
	}
}

func TestStartAllVenuesUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := Start(ctx, []VenueConfig{{Venue: model.Binance, Channel: "x", URL: "ws://127.0.0.1:1"}}, 1, zerolog.Nop())
	if apperr.KindOf(err) != apperr.NoVenues {
		t.Fatalf("expected NoVenues error, got %v", err)
	}
}
