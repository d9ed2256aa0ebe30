package rpc

import (
	"testing"

	gen "github.com/msareena/orderbook-aggregator/gen"
	"github.com/stretchr/testify/assert"
)

func TestValidationService_ValidateRequest(t *testing.T) {
	v := NewValidationService(&ValidationServiceConfig{MaxDepth: 100})

	tests := []struct {
		name          string
		request       *gen.Symbol
		expectedDepth int
		expectError   bool
	}{
		{"ValidDefaultDepth", &gen.Symbol{Symbol: "eth_btc"}, 10, false},
		{"ValidExplicitDepth", &gen.Symbol{Symbol: "eth_btc", Depth: 25}, 25, false},
		{"DepthTooLarge", &gen.Symbol{Symbol: "eth_btc", Depth: 101}, 0, true},
		{"BadSeparator", &gen.Symbol{Symbol: "eth-btc"}, 0, true},
		{"EmptySymbol", &gen.Symbol{Symbol: ""}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbol, depth, err := v.ValidateRequest(tt.request)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "eth_btc", symbol.String())
			assert.Equal(t, tt.expectedDepth, depth)
		})
	}
}
