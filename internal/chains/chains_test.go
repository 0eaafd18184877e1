package chains_test

import (
	"testing"

	"github.com/chainpay/chainpay-api/internal/chains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBySelector(t *testing.T) {
	tests := []struct {
		name         string
		selector     string
		wantFound    bool
		wantName     string
		wantChainID  int64
	}{
		{
			name:        "ethereum selector resolves",
			selector:    "16015286601757825753",
			wantFound:   true,
			wantName:    "Ethereum",
			wantChainID: 11155111,
		},
		{
			name:        "base selector resolves",
			selector:    "10344971235874465080",
			wantFound:   true,
			wantName:    "Base",
			wantChainID: 84532,
		},
		{
			name:      "unknown selector",
			selector:  "123456789",
			wantFound: false,
		},
		{
			name:      "empty selector",
			selector:  "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := chains.BySelector(tt.selector)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantName, c.Name)
				assert.Equal(t, tt.wantChainID, c.ID)
			}
		})
	}
}

func TestName_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, "Arbitrum", chains.Name("3478487238524512106"))
	assert.Equal(t, "Unknown Chain", chains.Name("0"))
}

func TestLogo_UnknownFallsBack(t *testing.T) {
	assert.NotEqual(t, "/placeholder.svg", chains.Logo("5224473277236331295"))
	assert.Equal(t, "/placeholder.svg", chains.Logo("not-a-selector"))
}

func TestSelectorByName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantFound bool
	}{
		{"exact match", "Ethereum", "16015286601757825753", true},
		{"lowercase match", "avalanche", "14767482510784806043", true},
		{"uppercase match", "OPTIMISM", "5224473277236331295", true},
		{"surrounding whitespace", "  Base  ", "10344971235874465080", true},
		{"unsupported chain", "Polygon", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chains.SelectorByName(tt.input)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedNames(t *testing.T) {
	names := chains.SupportedNames()
	require.Len(t, names, 5)
	assert.Equal(t, []string{"Ethereum", "Arbitrum", "Optimism", "Avalanche", "Base"}, names)
}

func TestRegistryRoundTrip(t *testing.T) {
	for _, c := range chains.DestinationChains {
		selector, ok := chains.SelectorByName(c.Name)
		require.True(t, ok, "name %s should invert", c.Name)
		assert.Equal(t, c.Selector, selector)
		assert.Equal(t, c.Name, chains.Name(selector))
	}
}
