// Command orderbook-client dials the OrderBook gRPC server and prints each
// merged Summary until the stream ends or the process is interrupted. This
// is the "Client binary" spec.md §1 names as external to the core; it
// exists here as a runnable example of the wire contract, not as part of
// the aggregation pipeline itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/BullionBear/orderbook/pkg/protobuf/orderbook"
)

func main() {
	addr := flag.String("addr", "[::1]:12000", "orderbookd server address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewOrderBookClient(conn)
	stream, err := client.BookSummary(context.Background(), &pb.Empty{})
	if err != nil {
		log.Fatalf("BookSummary: %v", err)
	}

	for {
		summary, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalf("stream.Recv: %v", err)
		}
		fmt.Printf("spread=%s bids=%d asks=%d\n", summary.Spread, len(summary.Bids), len(summary.Asks))
	}
}
