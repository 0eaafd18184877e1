// Package payroll implements the batch-transfer staging pipeline: CSV
// beneficiary ingestion and the in-memory batch builder.
package payroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chainpay/chainpay-api/internal/chains"
)

// Beneficiary is a staged, not-yet-submitted recipient entry of a batch.
// Amount stays a decimal string until execution time, when it is scaled to
// USDC base units.
type Beneficiary struct {
	Nickname                 string `json:"nickname"`
	DestinationChainSelector string `json:"destinationChainSelector"`
	BeneficiaryAddress       string `json:"beneficiaryAddress"`
	USDCAmount               string `json:"usdcAmount"`
}

// CSVTemplate is the reference import file handed out to users. Columns:
// wallet_address, amount, chain, name (optional).
const CSVTemplate = "wallet_address,amount,chain,name\n" +
	"0x1234567890123456789012345678901234567890,100,Ethereum,John Doe\n" +
	"0x0987654321098765432109876543210987654321,250,Arbitrum,Jane Smith"

// Accepted header synonyms, matched case-insensitively.
var (
	addressHeaders = map[string]bool{"wallet_address": true, "address": true, "wallet": true}
	amountHeaders  = map[string]bool{"amount": true, "usdc_amount": true, "usdc": true}
	chainHeaders   = map[string]bool{"chain": true, "chain_name": true, "network": true}
	nameHeaders    = map[string]bool{"name": true, "nickname": true}
)

// ParseBeneficiariesCSV parses an uploaded CSV into beneficiaries. The
// first line is the header; fields are split naively on commas (quoted
// fields are not supported). The import is all-or-nothing: if any row
// fails validation the full list of row errors is returned and no
// beneficiaries are produced. Row numbers in errors are 1-based over the
// data rows.
func ParseBeneficiariesCSV(content string) ([]Beneficiary, []string) {
	lines := splitLines(content)
	if len(lines) < 2 {
		return nil, []string{"CSV file must contain a header row and at least one data row"}
	}

	header := strings.Split(lines[0], ",")
	addressIdx, amountIdx, chainIdx, nameIdx := -1, -1, -1, -1
	for i, col := range header {
		switch key := strings.ToLower(strings.TrimSpace(col)); {
		case addressHeaders[key]:
			addressIdx = i
		case amountHeaders[key]:
			amountIdx = i
		case chainHeaders[key]:
			chainIdx = i
		case nameHeaders[key]:
			nameIdx = i
		}
	}

	var (
		beneficiaries []Beneficiary
		errs          []string
	)

	for rowNum, line := range lines[1:] {
		fields := strings.Split(line, ",")
		row := rowNum + 1

		address := fieldAt(fields, addressIdx)
		if address == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing wallet address", row))
			continue
		}

		amount := fieldAt(fields, amountIdx)
		if amount == "" || !isNumeric(amount) {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid amount", row))
			continue
		}

		chainName := fieldAt(fields, chainIdx)
		if chainName == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing chain name", row))
			continue
		}

		selector, ok := chains.SelectorByName(chainName)
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: Unsupported chain %q. Supported chains: %s",
				row, chainName, strings.Join(chains.SupportedNames(), ", ")))
			continue
		}

		name := fieldAt(fields, nameIdx)
		if name == "" {
			name = fmt.Sprintf("Recipient %d", row)
		}

		beneficiaries = append(beneficiaries, Beneficiary{
			Nickname:                 name,
			DestinationChainSelector: selector,
			BeneficiaryAddress:       address,
			USDCAmount:               amount,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return beneficiaries, nil
}

// splitLines normalizes line endings and drops blank lines.
func splitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func fieldAt(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
