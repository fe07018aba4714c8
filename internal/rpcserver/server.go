// Package rpcserver implements the OrderBook.BookSummary gRPC handler: it
// translates one RPC call into a subscription.Pipeline and streams its
// summaries back, translating pipeline-start failures into gRPC status
// codes (spec §4.7, §7).
package rpcserver

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/BullionBear/orderbook/internal/apperr"
	"github.com/BullionBear/orderbook/internal/model"
	"github.com/BullionBear/orderbook/internal/subscription"
	pb "github.com/BullionBear/orderbook/pkg/protobuf/orderbook"
)

// Server implements pb.OrderBookServer. It is stateless across calls: every
// BookSummary call builds a fresh subscription.Pipeline.
type Server struct {
	pb.UnimplementedOrderBookServer

	venues     []subscription.VenueConfig
	resultSize int
	logger     zerolog.Logger
}

// New builds a Server that subscribes to venues and emits top-resultSize
// summaries on each call.
func New(venues []subscription.VenueConfig, resultSize int, logger zerolog.Logger) *Server {
	return &Server{
		venues:     venues,
		resultSize: resultSize,
		logger:     logger,
	}
}

// BookSummary implements the single streaming RPC: it starts a pipeline,
// forwards every summary it produces until the pipeline closes its output
// (cooperative shutdown, §7) or the client cancels the call (which fires
// the pipeline's stop signal in turn).
func (s *Server) BookSummary(_ *pb.Empty, stream pb.OrderBook_BookSummaryServer) error {
	ctx := stream.Context()

	pipeline, err := subscription.Start(ctx, s.venues, s.resultSize, s.logger)
	if err != nil {
		return statusFromErr(err)
	}
	defer pipeline.Stop()

	for {
		select {
		case summary, ok := <-pipeline.Out():
			if !ok {
				return nil
			}
			if err := stream.Send(toProto(summary)); err != nil {
				cerr := apperr.Wrap(apperr.ChannelClosed, "rpcserver.BookSummary", err)
				s.logger.Info().Err(cerr).Str("subscription_id", pipeline.ID()).Msg("subscriber cancelled, tearing down pipeline")
				return nil
			}
		case <-ctx.Done():
			cerr := apperr.New(apperr.ChannelClosed, "rpcserver.BookSummary", "subscriber context done")
			s.logger.Info().Err(cerr).Str("subscription_id", pipeline.ID()).Msg("subscriber cancelled, tearing down pipeline")
			return nil
		}
	}
}

func statusFromErr(err error) error {
	switch apperr.KindOf(err) {
	case apperr.NoVenues, apperr.Config:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toProto(s model.Summary) *pb.Summary {
	return &pb.Summary{
		Spread: s.Spread,
		Bids:   toProtoBooks(s.Bids),
		Asks:   toProtoBooks(s.Asks),
	}
}

func toProtoBooks(books []model.Book) []*pb.Book {
	out := make([]*pb.Book, len(books))
	for i, b := range books {
		out[i] = &pb.Book{
			Price:    b.Price,
			Amount:   b.Amount,
			Exchange: b.Exchange,
		}
	}
	return out
}
