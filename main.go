package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/msareena/orderbook-aggregator/config"
	promclient "github.com/msareena/orderbook-aggregator/infrastructure/prometheus"
	"github.com/msareena/orderbook-aggregator/rpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	conf := config.Load()

	go promclient.StartPromClientServer(conf.MetricsAddr)

	server := rpc.NewServer(conf)
	if err := server.Serve(conf.ListenAddr); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
