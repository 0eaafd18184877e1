// Package chains holds the static registry of destination chains supported
// by the bridge batcher contract. Chains are addressed by their CCIP chain
// selector, an opaque numeric string distinct from the EVM chain ID.
package chains

import "strings"

// Chain describes one supported destination network.
type Chain struct {
	ID       int64  // EVM chain ID of the testnet
	Name     string // display name
	Selector string // CCIP chain selector, decimal string
	Logo     string
}

// DestinationChains lists every network the batcher contract can bridge to,
// in the order they are presented to users.
var DestinationChains = []Chain{
	{ID: 11155111, Name: "Ethereum", Selector: "16015286601757825753", Logo: "https://assets.coingecko.com/coins/images/279/small/ethereum.png"},
	{ID: 421614, Name: "Arbitrum", Selector: "3478487238524512106", Logo: "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/arbitrum/info/logo.png"},
	{ID: 11155420, Name: "Optimism", Selector: "5224473277236331295", Logo: "https://assets.coingecko.com/coins/images/25244/small/Optimism.png"},
	{ID: 43113, Name: "Avalanche", Selector: "14767482510784806043", Logo: "https://assets.coingecko.com/coins/images/12559/small/Avalanche_Circle_RedWhite_Trans.png"},
	{ID: 84532, Name: "Base", Selector: "10344971235874465080", Logo: "https://raw.githubusercontent.com/base/brand-kit/main/logo/symbol/Base_Symbol_Blue.png"},
}

var bySelector = func() map[string]Chain {
	m := make(map[string]Chain, len(DestinationChains))
	for _, c := range DestinationChains {
		m[c.Selector] = c
	}
	return m
}()

var byName = func() map[string]Chain {
	m := make(map[string]Chain, len(DestinationChains))
	for _, c := range DestinationChains {
		m[strings.ToLower(c.Name)] = c
	}
	return m
}()

// BySelector looks up a chain by its selector string.
func BySelector(selector string) (Chain, bool) {
	c, ok := bySelector[selector]
	return c, ok
}

// Name returns the display name for a selector, or "Unknown Chain" when the
// selector is not registered.
func Name(selector string) string {
	if c, ok := bySelector[selector]; ok {
		return c.Name
	}
	return "Unknown Chain"
}

// Logo returns the logo URL for a selector, or a placeholder when the
// selector is not registered.
func Logo(selector string) string {
	if c, ok := bySelector[selector]; ok {
		return c.Logo
	}
	return "/placeholder.svg"
}

// SelectorByName inverts a chain display name to its selector. Matching is
// case-insensitive and exact.
func SelectorByName(name string) (string, bool) {
	c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return c.Selector, true
}

// SupportedNames returns the display names of every registered chain.
func SupportedNames() []string {
	names := make([]string, len(DestinationChains))
	for i, c := range DestinationChains {
		names[i] = c.Name
	}
	return names
}
