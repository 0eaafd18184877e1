package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTransaction = `
INSERT INTO transactions (
    transaction_id, type, sender_address, sender_name, recipients,
    source_chain, source_chain_name, total_amount, status, transaction_hash
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, transaction_id, type, sender_address, sender_name, recipients,
    source_chain, source_chain_name, total_amount, status, transaction_hash,
    gas_used, gas_fee, created_at, updated_at, completed_at
`

type CreateTransactionParams struct {
	TransactionID   string
	Type            string
	SenderAddress   string
	SenderName      pgtype.Text
	Recipients      []byte
	SourceChain     string
	SourceChainName string
	TotalAmount     float64
	Status          string
	TransactionHash pgtype.Text
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRow(ctx, createTransaction,
		arg.TransactionID,
		arg.Type,
		arg.SenderAddress,
		arg.SenderName,
		arg.Recipients,
		arg.SourceChain,
		arg.SourceChainName,
		arg.TotalAmount,
		arg.Status,
		arg.TransactionHash,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.Type,
		&i.SenderAddress,
		&i.SenderName,
		&i.Recipients,
		&i.SourceChain,
		&i.SourceChainName,
		&i.TotalAmount,
		&i.Status,
		&i.TransactionHash,
		&i.GasUsed,
		&i.GasFee,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const getTransactionByTransactionID = `
SELECT id, transaction_id, type, sender_address, sender_name, recipients,
    source_chain, source_chain_name, total_amount, status, transaction_hash,
    gas_used, gas_fee, created_at, updated_at, completed_at
FROM transactions
WHERE transaction_id = $1
`

func (q *Queries) GetTransactionByTransactionID(ctx context.Context, transactionID string) (Transaction, error) {
	row := q.db.QueryRow(ctx, getTransactionByTransactionID, transactionID)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.Type,
		&i.SenderAddress,
		&i.SenderName,
		&i.Recipients,
		&i.SourceChain,
		&i.SourceChainName,
		&i.TotalAmount,
		&i.Status,
		&i.TransactionHash,
		&i.GasUsed,
		&i.GasFee,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const updateTransactionByTransactionID = `
UPDATE transactions
SET status = COALESCE($2, status),
    transaction_hash = COALESCE($3, transaction_hash),
    gas_used = COALESCE($4, gas_used),
    gas_fee = COALESCE($5, gas_fee),
    completed_at = COALESCE($6, completed_at),
    updated_at = now()
WHERE transaction_id = $1
RETURNING id, transaction_id, type, sender_address, sender_name, recipients,
    source_chain, source_chain_name, total_amount, status, transaction_hash,
    gas_used, gas_fee, created_at, updated_at, completed_at
`

type UpdateTransactionByTransactionIDParams struct {
	TransactionID   string
	Status          pgtype.Text
	TransactionHash pgtype.Text
	GasUsed         pgtype.Int8
	GasFee          pgtype.Float8
	CompletedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateTransactionByTransactionID(ctx context.Context, arg UpdateTransactionByTransactionIDParams) (Transaction, error) {
	row := q.db.QueryRow(ctx, updateTransactionByTransactionID,
		arg.TransactionID,
		arg.Status,
		arg.TransactionHash,
		arg.GasUsed,
		arg.GasFee,
		arg.CompletedAt,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.Type,
		&i.SenderAddress,
		&i.SenderName,
		&i.Recipients,
		&i.SourceChain,
		&i.SourceChainName,
		&i.TotalAmount,
		&i.Status,
		&i.TransactionHash,
		&i.GasUsed,
		&i.GasFee,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const listTransactions = `
SELECT id, transaction_id, type, sender_address, sender_name, recipients,
    source_chain, source_chain_name, total_amount, status, transaction_hash,
    gas_used, gas_fee, created_at, updated_at, completed_at
FROM transactions
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR type = $2)
  AND ($3::text IS NULL
       OR transaction_id ILIKE '%' || $3 || '%'
       OR sender_address ILIKE '%' || $3 || '%'
       OR sender_name ILIKE '%' || $3 || '%'
       OR EXISTS (
            SELECT 1 FROM jsonb_array_elements(recipients) AS r
            WHERE r->>'name' ILIKE '%' || $3 || '%'
               OR r->>'address' ILIKE '%' || $3 || '%'
       ))
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

type ListTransactionsParams struct {
	Status pgtype.Text
	Type   pgtype.Text
	Search pgtype.Text
	Limit  int32
	Offset int32
}

func (q *Queries) ListTransactions(ctx context.Context, arg ListTransactionsParams) ([]Transaction, error) {
	rows, err := q.db.Query(ctx, listTransactions,
		arg.Status,
		arg.Type,
		arg.Search,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Transaction{}
	for rows.Next() {
		var i Transaction
		if err := rows.Scan(
			&i.ID,
			&i.TransactionID,
			&i.Type,
			&i.SenderAddress,
			&i.SenderName,
			&i.Recipients,
			&i.SourceChain,
			&i.SourceChainName,
			&i.TotalAmount,
			&i.Status,
			&i.TransactionHash,
			&i.GasUsed,
			&i.GasFee,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CompletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countTransactions = `
SELECT COUNT(*)
FROM transactions
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR type = $2)
  AND ($3::text IS NULL
       OR transaction_id ILIKE '%' || $3 || '%'
       OR sender_address ILIKE '%' || $3 || '%'
       OR sender_name ILIKE '%' || $3 || '%'
       OR EXISTS (
            SELECT 1 FROM jsonb_array_elements(recipients) AS r
            WHERE r->>'name' ILIKE '%' || $3 || '%'
               OR r->>'address' ILIKE '%' || $3 || '%'
       ))
`

type CountTransactionsParams struct {
	Status pgtype.Text
	Type   pgtype.Text
	Search pgtype.Text
}

func (q *Queries) CountTransactions(ctx context.Context, arg CountTransactionsParams) (int64, error) {
	row := q.db.QueryRow(ctx, countTransactions, arg.Status, arg.Type, arg.Search)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getTransactionTotals = `
SELECT COUNT(*) AS total_transactions,
    COALESCE(SUM(total_amount), 0)::double precision AS total_volume,
    COUNT(*) FILTER (WHERE status = 'completed') AS successful_transactions,
    COUNT(*) FILTER (WHERE status = 'pending') AS pending_transactions,
    COUNT(*) FILTER (WHERE status = 'failed') AS failed_transactions,
    COALESCE(SUM(gas_fee), 0)::double precision AS total_gas_fees
FROM transactions
`

type GetTransactionTotalsRow struct {
	TotalTransactions      int64
	TotalVolume            float64
	SuccessfulTransactions int64
	PendingTransactions    int64
	FailedTransactions     int64
	TotalGasFees           float64
}

func (q *Queries) GetTransactionTotals(ctx context.Context) (GetTransactionTotalsRow, error) {
	row := q.db.QueryRow(ctx, getTransactionTotals)
	var i GetTransactionTotalsRow
	err := row.Scan(
		&i.TotalTransactions,
		&i.TotalVolume,
		&i.SuccessfulTransactions,
		&i.PendingTransactions,
		&i.FailedTransactions,
		&i.TotalGasFees,
	)
	return i, err
}

const getMostUsedChain = `
SELECT r->>'chainName' AS chain_name, COUNT(*) AS recipient_count
FROM transactions, jsonb_array_elements(recipients) AS r
GROUP BY 1
ORDER BY recipient_count DESC, chain_name ASC
LIMIT 1
`

type GetMostUsedChainRow struct {
	ChainName      string
	RecipientCount int64
}

func (q *Queries) GetMostUsedChain(ctx context.Context) (GetMostUsedChainRow, error) {
	row := q.db.QueryRow(ctx, getMostUsedChain)
	var i GetMostUsedChainRow
	err := row.Scan(&i.ChainName, &i.RecipientCount)
	return i, err
}
