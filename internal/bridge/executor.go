package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/chainpay/chainpay-api/internal/chains"
	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/helpers"
	"github.com/chainpay/chainpay-api/internal/logger"
	"github.com/chainpay/chainpay-api/internal/payroll"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// Executor turns a staged batch into a single on-chain batch transfer and
// records its lifecycle. Per submission the flow is:
//
//	submit batchSendUSDC -> persist pending record -> await receipt
//	  -> mark completed (with gas fields) or failed
//
// A rejected submission restores the staged batch so the user can retry;
// nothing is retried automatically.
type Executor struct {
	queries        db.Querier
	client         Client
	batches        *payroll.Store
	logger         *zap.Logger
	sourceChain    chains.Chain
	receiptTimeout time.Duration

	// syncReceipts makes Execute wait for the receipt inline instead of
	// in a background goroutine. Used by tests.
	syncReceipts bool
}

// ExecutorConfig configures an Executor.
type ExecutorConfig struct {
	SourceChainID  int64
	ReceiptTimeout time.Duration
	SyncReceipts   bool
}

// NewExecutor creates a batch transfer executor.
func NewExecutor(queries db.Querier, client Client, batches *payroll.Store, cfg ExecutorConfig) *Executor {
	source := chains.Chain{Name: "Unknown Chain"}
	for _, c := range chains.DestinationChains {
		if c.ID == cfg.SourceChainID {
			source = c
			break
		}
	}

	timeout := cfg.ReceiptTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &Executor{
		queries:        queries,
		client:         client,
		batches:        batches,
		logger:         logger.Log,
		sourceChain:    source,
		receiptTimeout: timeout,
		syncReceipts:   cfg.SyncReceipts,
	}
}

// ExecuteParams identifies the batch to submit and optional sender display
// metadata recorded alongside the transaction.
type ExecuteParams struct {
	BatchID    uuid.UUID
	SenderName string
}

// ExecuteResult reports a successful submission.
type ExecuteResult struct {
	TransactionHash string  `json:"transactionHash"`
	TotalAmount     float64 `json:"totalAmount"`
	Recipients      int     `json:"recipients"`
}

// Execute consumes the staged batch and submits it as one batchSendUSDC
// call. On submission failure the batch is restored and an error returned;
// on success a pending Transaction record is written and the receipt watch
// begins. The record moves to completed or failed exactly once.
func (e *Executor) Execute(ctx context.Context, params ExecuteParams) (*ExecuteResult, error) {
	beneficiaries, err := e.batches.Consume(params.BatchID)
	if err != nil {
		return nil, err
	}

	transfers, recipients, totalAmount, err := e.buildTransfers(beneficiaries)
	if err != nil {
		e.batches.Restore(params.BatchID, beneficiaries)
		return nil, err
	}

	txHash, err := e.client.SubmitBatch(ctx, transfers)
	if err != nil {
		e.batches.Restore(params.BatchID, beneficiaries)
		e.logger.Error("Batch submission failed",
			zap.String("batch_id", params.BatchID.String()),
			zap.Int("transfers", len(transfers)),
			zap.Error(err))
		return nil, fmt.Errorf("batch transfer failed: %w", err)
	}

	recipientsJSON, err := json.Marshal(recipients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipients: %w", err)
	}

	hash := txHash.Hex()
	_, err = e.queries.CreateTransaction(ctx, db.CreateTransactionParams{
		TransactionID:   hash,
		Type:            db.TransactionTypeOneToMany,
		SenderAddress:   e.client.SenderAddress().Hex(),
		SenderName:      pgtype.Text{String: params.SenderName, Valid: params.SenderName != ""},
		Recipients:      recipientsJSON,
		SourceChain:     e.sourceChain.Selector,
		SourceChainName: e.sourceChain.Name,
		TotalAmount:     totalAmount,
		Status:          db.TransactionStatusPending,
		TransactionHash: pgtype.Text{String: hash, Valid: true},
	})
	if err != nil {
		// The transfer is already on chain; the record is best-effort at
		// this point and the receipt watcher cannot run without it.
		e.logger.Error("Failed to persist pending transaction",
			zap.String("tx_hash", hash),
			zap.Error(err))
		return nil, fmt.Errorf("transaction submitted as %s but record could not be saved: %w", hash, err)
	}

	e.logger.Info("Batch transfer submitted",
		zap.String("tx_hash", hash),
		zap.Int("recipients", len(recipients)),
		zap.Float64("total_amount", totalAmount))

	if e.syncReceipts {
		e.watchReceipt(ctx, txHash)
	} else {
		go e.watchReceipt(context.Background(), txHash)
	}

	return &ExecuteResult{
		TransactionHash: hash,
		TotalAmount:     totalAmount,
		Recipients:      len(recipients),
	}, nil
}

// buildTransfers converts beneficiaries into contract transfer requests,
// validating addresses and amounts at the last gate before submission.
func (e *Executor) buildTransfers(beneficiaries []payroll.Beneficiary) ([]TransferRequest, []db.TransactionRecipient, float64, error) {
	transfers := make([]TransferRequest, 0, len(beneficiaries))
	recipients := make([]db.TransactionRecipient, 0, len(beneficiaries))
	var totalAmount float64

	for i, bn := range beneficiaries {
		if !common.IsHexAddress(bn.BeneficiaryAddress) {
			return nil, nil, 0, fmt.Errorf("beneficiary %d has an invalid address %q", i+1, bn.BeneficiaryAddress)
		}

		amount, err := helpers.ParseAmount(bn.USDCAmount)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("beneficiary %d: %w", i+1, err)
		}

		baseUnits, err := helpers.ToUSDCBaseUnits(amount)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("beneficiary %d: %w", i+1, err)
		}

		selector, err := strconv.ParseUint(bn.DestinationChainSelector, 10, 64)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("beneficiary %d has an invalid chain selector %q", i+1, bn.DestinationChainSelector)
		}

		transfers = append(transfers, TransferRequest{
			DestinationChainSelector: selector,
			Receiver:                 common.HexToAddress(bn.BeneficiaryAddress),
			Amount:                   baseUnits,
		})

		amountFloat, _ := amount.Float64()
		totalAmount += amountFloat
		recipients = append(recipients, db.TransactionRecipient{
			Name:      bn.Nickname,
			Address:   bn.BeneficiaryAddress,
			Amount:    amountFloat,
			Chain:     bn.DestinationChainSelector,
			ChainName: chains.Name(bn.DestinationChainSelector),
		})
	}

	return transfers, recipients, totalAmount, nil
}

// watchReceipt awaits confirmation of a submitted batch and finalizes the
// persisted record. Terminal states are never revisited.
func (e *Executor) watchReceipt(ctx context.Context, txHash common.Hash) {
	ctx, cancel := context.WithTimeout(ctx, e.receiptTimeout)
	defer cancel()

	hash := txHash.Hex()
	receipt, err := e.client.WaitForReceipt(ctx, txHash)
	if err != nil || receipt.Status != 1 {
		if err != nil {
			e.logger.Error("Receipt wait failed", zap.String("tx_hash", hash), zap.Error(err))
		} else {
			e.logger.Warn("Batch transfer reverted on chain", zap.String("tx_hash", hash))
		}
		e.finalize(hash, db.UpdateTransactionByTransactionIDParams{
			TransactionID: hash,
			Status:        pgtype.Text{String: db.TransactionStatusFailed, Valid: true},
		})
		return
	}

	gasFee := helpers.FromWeiToEther(receipt.TotalGasCostWei())
	e.finalize(hash, db.UpdateTransactionByTransactionIDParams{
		TransactionID: hash,
		Status:        pgtype.Text{String: db.TransactionStatusCompleted, Valid: true},
		GasUsed:       pgtype.Int8{Int64: int64(receipt.GasUsed), Valid: true},
		GasFee:        pgtype.Float8{Float64: gasFee, Valid: true},
		CompletedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	})

	e.logger.Info("Batch transfer completed",
		zap.String("tx_hash", hash),
		zap.Uint64("gas_used", receipt.GasUsed),
		zap.Float64("gas_fee_eth", gasFee))
}

func (e *Executor) finalize(hash string, params db.UpdateTransactionByTransactionIDParams) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := e.queries.UpdateTransactionByTransactionID(ctx, params); err != nil {
		e.logger.Error("Failed to finalize transaction record",
			zap.String("tx_hash", hash),
			zap.String("status", params.Status.String),
			zap.Error(err))
	}
}
