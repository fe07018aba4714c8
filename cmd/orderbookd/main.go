// Command orderbookd runs the OrderBook.BookSummary gRPC server: it loads
// configuration, builds the injected logger, and serves the streaming
// aggregation pipeline until interrupted.
package main

import (
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/BullionBear/orderbook/internal/config"
	"github.com/BullionBear/orderbook/internal/rpcserver"
	"github.com/BullionBear/orderbook/internal/subscription"
	"github.com/BullionBear/orderbook/internal/telemetry"
	pb "github.com/BullionBear/orderbook/pkg/protobuf/orderbook"
	"github.com/BullionBear/orderbook/pkg/shutdown"
)

func main() {
	environ := os.Getenv("APP_ENVIRON")
	logger := telemetry.New(environ)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	venues := make([]subscription.VenueConfig, 0, len(cfg.Exchanges))
	for _, e := range cfg.Exchanges {
		venue, err := e.Venue()
		if err != nil {
			logger.Fatal().Err(err).Str("exchange", e.Exchange).Msg("invalid exchange configuration")
		}
		venues = append(venues, subscription.VenueConfig{Venue: venue, Channel: e.Channel, URL: e.URL})
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Server.Addr()).Msg("failed to bind server address")
	}

	grpcServer := grpc.NewServer()
	pb.RegisterOrderBookServer(grpcServer, rpcserver.New(venues, cfg.ResultSize, logger))

	down := shutdown.NewShutdown(logger)
	down.HookShutdownCallback("grpc-server", grpcServer.GracefulStop, 10*time.Second)

	go func() {
		logger.Info().Str("addr", cfg.Server.Addr()).Msg(fmt.Sprintf("orderbookd listening at %s", cfg.Server.Addr()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server stopped serving")
		}
	}()

	down.WaitForShutdown(syscall.SIGTERM)
}
