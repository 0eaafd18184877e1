package helpers

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// usdcDecimals is the number of decimal places USDC carries on chain.
const usdcDecimals = 6

// IsAddressValid checks if the provided string is a valid Ethereum address
// It verifies:
// 1. The address is exactly 42 characters long
// 2. The address starts with "0x"
// 3. The remaining 40 characters are valid hexadecimal
func IsAddressValid(address string) bool {
	if len(address) != 42 {
		return false
	}

	if !strings.HasPrefix(address, "0x") {
		return false
	}

	for _, c := range address[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}

// ParseAmount parses a user-supplied amount string and validates that it is
// a positive number. Returns the parsed decimal on success.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", amount)
	}
	if d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("amount must be greater than 0")
	}
	return d, nil
}

// IsAmountValid reports whether the string parses to a positive number.
func IsAmountValid(amount string) bool {
	_, err := ParseAmount(amount)
	return err == nil
}

// ToUSDCBaseUnits converts a decimal USDC amount to smallest-unit integer
// form (scaled by 10^6). Fails when the amount carries more precision than
// USDC supports, rather than silently truncating.
func ToUSDCBaseUnits(amount decimal.Decimal) (*big.Int, error) {
	scaled := amount.Shift(usdcDecimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("amount %s exceeds USDC precision of %d decimals", amount.String(), usdcDecimals)
	}
	return scaled.BigInt(), nil
}

// FromWeiToEther converts a wei amount to a float ether value. Used for
// reporting gas fees in human units; precision loss past float64 is
// acceptable for display.
func FromWeiToEther(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	eth, _ := decimal.NewFromBigInt(wei, -18).Float64()
	return eth
}
