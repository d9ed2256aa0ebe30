package rpc

import (
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/msareena/orderbook-aggregator/config"
	gen "github.com/msareena/orderbook-aggregator/gen"
	"github.com/msareena/orderbook-aggregator/provider"
	"github.com/msareena/orderbook-aggregator/usecase"
)

var logger = log.New(os.Stdout, "[rpc] ", log.LstdFlags)

type server struct {
	gen.UnimplementedOrderbookAggregatorServer

	bookSummaryUseCase *usecase.BookSummaryUseCase
	validationService  *ValidationService
}

func NewServer(conf *config.Config) *server {
	connManager := provider.NewConnectionManager(conf)

	return &server{
		bookSummaryUseCase: usecase.NewBookSummaryUseCase(connManager),
		validationService:  NewValidationService(&ValidationServiceConfig{MaxDepth: 100}),
	}
}

func (s *server) Serve(listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	gen.RegisterOrderbookAggregatorServer(grpcServer, s)

	logger.Printf("grpc server listening at %s", listenAddr)
	return grpcServer.Serve(lis)
}
