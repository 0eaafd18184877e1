package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Employee is a payroll recipient with a stored wallet, preferred
// destination chain and monthly USDC salary.
type Employee struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	WalletAddress  string             `json:"walletAddress"`
	PreferredChain string             `json:"preferredChain"`
	MonthlySalary  float64            `json:"monthlySalary"`
	CreatedAt      pgtype.Timestamptz `json:"createdAt"`
	UpdatedAt      pgtype.Timestamptz `json:"updatedAt"`
}

// Transaction is a persisted bridge transfer record. Recipients are stored
// as a JSONB array; see TransactionRecipient for the element shape.
type Transaction struct {
	ID              uuid.UUID          `json:"id"`
	TransactionID   string             `json:"transactionId"`
	Type            string             `json:"type"`
	SenderAddress   string             `json:"senderAddress"`
	SenderName      pgtype.Text        `json:"senderName"`
	Recipients      []byte             `json:"recipients"`
	SourceChain     string             `json:"sourceChain"`
	SourceChainName string             `json:"sourceChainName"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          string             `json:"status"`
	TransactionHash pgtype.Text        `json:"transactionHash"`
	GasUsed         pgtype.Int8        `json:"gasUsed"`
	GasFee          pgtype.Float8      `json:"gasFee"`
	CreatedAt       pgtype.Timestamptz `json:"createdAt"`
	UpdatedAt       pgtype.Timestamptz `json:"updatedAt"`
	CompletedAt     pgtype.Timestamptz `json:"completedAt"`
}

// TransactionStatus values a transaction record can carry. Pending records
// move to exactly one of the terminal states once the chain confirms.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// TransactionType values.
const (
	TransactionTypeOneToOne  = "one-to-one"
	TransactionTypeOneToMany = "one-to-many"
)

// TransactionRecipient is the JSON shape of one element of a transaction's
// recipients array.
type TransactionRecipient struct {
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address"`
	Amount    float64 `json:"amount"`
	Chain     string  `json:"chain"`
	ChainName string  `json:"chainName"`
}
