package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gen "github.com/msareena/orderbook-aggregator/gen"
)

// Demo subscriber: connects to the aggregator, subscribes to one
// symbol and prints every merged summary it receives.
func main() {
	addr := flag.String("addr", "127.0.0.1:8888", "aggregator grpc address")
	symbol := flag.String("symbol", "eth_btc", "market symbol, base_quote")
	depth := flag.Uint("depth", 0, "top-N depth, 0 for server default")
	flag.Parse()

	conn, err := grpc.Dial(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", *addr, err)
	}
	defer conn.Close()

	client := gen.NewOrderbookAggregatorClient(conn)
	stream, err := client.BookSummary(context.Background(), &gen.Symbol{
		Symbol: *symbol,
		Depth:  uint32(*depth),
	})
	if err != nil {
		log.Fatalf("subscribe failed: %v", err)
	}

	for {
		summary, err := stream.Recv()
		if err == io.EOF {
			log.Println("stream ended")
			return
		}
		if err != nil {
			log.Fatalf("stream error: %v", err)
		}
		printSummary(summary)
	}
}

func printSummary(summary *gen.Summary) {
	fmt.Println(strings.Repeat("=", 33) + " merged book " + strings.Repeat("=", 34))
	fmt.Printf("spread: %v\n", summary.Spread)
	fmt.Printf("%15s %15s %12s   %15s %15s %12s\n",
		"bid price", "bid amount", "bid venue",
		"ask price", "ask amount", "ask venue")

	n := len(summary.Bids)
	if len(summary.Asks) > n {
		n = len(summary.Asks)
	}
	for i := 0; i < n; i++ {
		var bid, ask string
		if i < len(summary.Bids) {
			b := summary.Bids[i]
			bid = fmt.Sprintf("%15v %15v %12s", b.Price, b.Amount, b.Exchange)
		} else {
			bid = fmt.Sprintf("%44s", "")
		}
		if i < len(summary.Asks) {
			a := summary.Asks[i]
			ask = fmt.Sprintf("%15v %15v %12s", a.Price, a.Amount, a.Exchange)
		} else {
			ask = fmt.Sprintf("%44s", "")
		}
		fmt.Printf("%s   %s\n", bid, ask)
	}
	fmt.Println()
}
