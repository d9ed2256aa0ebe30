package rpc

import (
	"fmt"

	"github.com/msareena/orderbook-aggregator/domain"
	gen "github.com/msareena/orderbook-aggregator/gen"
)

type ValidationServiceConfig struct {
	MaxDepth int
}

type ValidationService struct {
	config *ValidationServiceConfig
}

func NewValidationService(config *ValidationServiceConfig) *ValidationService {
	return &ValidationService{
		config: config,
	}
}

// ValidateRequest checks a subscribe request and resolves its depth.
// Zero depth selects the default; anything beyond MaxDepth is refused
// rather than silently clamped.
func (s *ValidationService) ValidateRequest(in *gen.Symbol) (*domain.MarketSymbol, int, error) {
	symbol, err := domain.NewMarketSymbolFromString(in.Symbol)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid market symbol %q: use base_quote, e.g. eth_btc", in.Symbol)
	}

	depth := int(in.Depth)
	if depth == 0 {
		depth = domain.DefaultDepth
	}
	if depth > s.config.MaxDepth {
		return nil, 0, fmt.Errorf("requested depth %d exceeds maximum %d", depth, s.config.MaxDepth)
	}

	return symbol, depth, nil
}
