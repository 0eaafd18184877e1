package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the query interface implemented by Queries. Services depend on
// this interface so tests can substitute a mock (internal/mocks).
type Querier interface {
	CreateEmployee(ctx context.Context, arg CreateEmployeeParams) (Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (Employee, error)
	GetEmployeeByWalletAddress(ctx context.Context, walletAddress string) (Employee, error)
	GetEmployeeByWalletAddressExcluding(ctx context.Context, arg GetEmployeeByWalletAddressExcludingParams) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, arg UpdateEmployeeParams) (Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) (int64, error)

	CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error)
	GetTransactionByTransactionID(ctx context.Context, transactionID string) (Transaction, error)
	UpdateTransactionByTransactionID(ctx context.Context, arg UpdateTransactionByTransactionIDParams) (Transaction, error)
	ListTransactions(ctx context.Context, arg ListTransactionsParams) ([]Transaction, error)
	CountTransactions(ctx context.Context, arg CountTransactionsParams) (int64, error)
	GetTransactionTotals(ctx context.Context) (GetTransactionTotalsRow, error)
	GetMostUsedChain(ctx context.Context) (GetMostUsedChainRow, error)
}

var _ Querier = (*Queries)(nil)
