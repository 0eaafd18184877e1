package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// Transaction service errors. Handlers map these to HTTP status codes.
var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrTransactionFieldsMissing = errors.New("transaction id, type, sender address, and recipients are required")
	ErrTransactionBadType       = errors.New("type must be one-to-one or one-to-many")
	ErrTransactionBadStatus     = errors.New("status must be pending, completed, or failed")
	ErrDuplicateTransaction     = errors.New("a transaction with this transaction id already exists")
)

// TransactionService handles business logic for transaction operations
type TransactionService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(queries db.Querier) *TransactionService {
	return &TransactionService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateTransactionParams carries the fields of a new transaction record.
type CreateTransactionParams struct {
	TransactionID   string
	Type            string
	SenderAddress   string
	SenderName      string
	Recipients      []db.TransactionRecipient
	SourceChain     string
	SourceChainName string
	TotalAmount     float64
	Status          string
	TransactionHash string
}

// UpdateTransactionParams carries the partial fields of a transaction
// update. Nil fields are left unchanged.
type UpdateTransactionParams struct {
	Status          *string
	TransactionHash *string
	GasUsed         *int64
	GasFee          *float64
}

// ListTransactionsFilter narrows a transaction listing. Empty fields match
// everything.
type ListTransactionsFilter struct {
	Status string
	Type   string
	Search string
}

// TransactionStats aggregates the whole transaction history.
type TransactionStats struct {
	TotalTransactions      int64   `json:"totalTransactions"`
	TotalVolume            float64 `json:"totalVolume"`
	SuccessfulTransactions int64   `json:"successfulTransactions"`
	PendingTransactions    int64   `json:"pendingTransactions"`
	FailedTransactions     int64   `json:"failedTransactions"`
	TotalGasFees           float64 `json:"totalGasFees"`
	AverageTransactionSize float64 `json:"averageTransactionSize"`
	MostUsedChain          string  `json:"mostUsedChain"`
}

// CreateTransaction validates and inserts a new transaction record. The
// transaction id (the on-chain hash) must be unique.
func (s *TransactionService) CreateTransaction(ctx context.Context, params CreateTransactionParams) (*db.Transaction, error) {
	if params.TransactionID == "" || params.Type == "" || params.SenderAddress == "" || len(params.Recipients) == 0 {
		return nil, ErrTransactionFieldsMissing
	}
	if params.Type != db.TransactionTypeOneToOne && params.Type != db.TransactionTypeOneToMany {
		return nil, ErrTransactionBadType
	}

	status := params.Status
	if status == "" {
		status = db.TransactionStatusPending
	}
	if !validStatus(status) {
		return nil, ErrTransactionBadStatus
	}

	_, err := s.queries.GetTransactionByTransactionID(ctx, params.TransactionID)
	if err == nil {
		return nil, ErrDuplicateTransaction
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("Failed to check transaction uniqueness",
			zap.String("transaction_id", params.TransactionID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	recipientsJSON, err := json.Marshal(params.Recipients)
	if err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}

	transaction, err := s.queries.CreateTransaction(ctx, db.CreateTransactionParams{
		TransactionID:   params.TransactionID,
		Type:            params.Type,
		SenderAddress:   params.SenderAddress,
		SenderName:      pgtype.Text{String: params.SenderName, Valid: params.SenderName != ""},
		Recipients:      recipientsJSON,
		SourceChain:     params.SourceChain,
		SourceChainName: params.SourceChainName,
		TotalAmount:     params.TotalAmount,
		Status:          status,
		TransactionHash: pgtype.Text{String: params.TransactionHash, Valid: params.TransactionHash != ""},
	})
	if err != nil {
		s.logger.Error("Failed to create transaction",
			zap.String("transaction_id", params.TransactionID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("Transaction recorded",
		zap.String("transaction_id", transaction.TransactionID),
		zap.Float64("total_amount", transaction.TotalAmount))

	return &transaction, nil
}

// GetTransaction retrieves a transaction by its on-chain transaction id.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (*db.Transaction, error) {
	transaction, err := s.queries.GetTransactionByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("Failed to get transaction",
			zap.String("transaction_id", transactionID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve transaction: %w", err)
	}
	return &transaction, nil
}

// UpdateTransaction merges the given fields into an existing record and
// stamps the update time. Setting status to completed also stamps the
// completion time.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, params UpdateTransactionParams) (*db.Transaction, error) {
	dbParams := db.UpdateTransactionByTransactionIDParams{
		TransactionID: transactionID,
	}

	if params.Status != nil {
		if !validStatus(*params.Status) {
			return nil, ErrTransactionBadStatus
		}
		dbParams.Status = pgtype.Text{String: *params.Status, Valid: true}
		if *params.Status == db.TransactionStatusCompleted {
			dbParams.CompletedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
		}
	}
	if params.TransactionHash != nil {
		dbParams.TransactionHash = pgtype.Text{String: *params.TransactionHash, Valid: true}
	}
	if params.GasUsed != nil {
		dbParams.GasUsed = pgtype.Int8{Int64: *params.GasUsed, Valid: true}
	}
	if params.GasFee != nil {
		dbParams.GasFee = pgtype.Float8{Float64: *params.GasFee, Valid: true}
	}

	transaction, err := s.queries.UpdateTransactionByTransactionID(ctx, dbParams)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("Failed to update transaction",
			zap.String("transaction_id", transactionID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.logger.Info("Transaction updated",
		zap.String("transaction_id", transactionID),
		zap.String("status", transaction.Status))

	return &transaction, nil
}

// ListTransactions returns one page of transactions matching the filter,
// newest first, along with the total match count. An out-of-range page
// yields an empty list, not an error.
func (s *TransactionService) ListTransactions(ctx context.Context, filter ListTransactionsFilter, limit, offset int32) ([]db.Transaction, int64, error) {
	status := pgtype.Text{String: filter.Status, Valid: filter.Status != ""}
	txType := pgtype.Text{String: filter.Type, Valid: filter.Type != ""}
	search := pgtype.Text{String: filter.Search, Valid: filter.Search != ""}

	transactions, err := s.queries.ListTransactions(ctx, db.ListTransactionsParams{
		Status: status,
		Type:   txType,
		Search: search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.logger.Error("Failed to list transactions", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	total, err := s.queries.CountTransactions(ctx, db.CountTransactionsParams{
		Status: status,
		Type:   txType,
		Search: search,
	})
	if err != nil {
		s.logger.Error("Failed to count transactions", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return transactions, total, nil
}

// GetStats aggregates the full transaction history. The most-used chain is
// "N/A" until at least one recipient exists.
func (s *TransactionService) GetStats(ctx context.Context) (*TransactionStats, error) {
	totals, err := s.queries.GetTransactionTotals(ctx)
	if err != nil {
		s.logger.Error("Failed to aggregate transaction totals", zap.Error(err))
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	stats := &TransactionStats{
		TotalTransactions:      totals.TotalTransactions,
		TotalVolume:            totals.TotalVolume,
		SuccessfulTransactions: totals.SuccessfulTransactions,
		PendingTransactions:    totals.PendingTransactions,
		FailedTransactions:     totals.FailedTransactions,
		TotalGasFees:           totals.TotalGasFees,
		MostUsedChain:          "N/A",
	}
	if totals.TotalTransactions > 0 {
		stats.AverageTransactionSize = totals.TotalVolume / float64(totals.TotalTransactions)
	}

	mostUsed, err := s.queries.GetMostUsedChain(ctx)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to compute most used chain", zap.Error(err))
			return nil, fmt.Errorf("failed to compute stats: %w", err)
		}
	} else {
		stats.MostUsedChain = mostUsed.ChainName
	}

	return stats, nil
}

func validStatus(status string) bool {
	switch status {
	case db.TransactionStatusPending, db.TransactionStatusCompleted, db.TransactionStatusFailed:
		return true
	}
	return false
}
