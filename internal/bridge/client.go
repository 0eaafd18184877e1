// Package bridge submits staged batches to the USDC bridge batcher
// contract and tracks their on-chain lifecycle. The contract itself is an
// external collaborator; this package only speaks its ABI.
package bridge

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// batcherABI covers the single entrypoint this service uses. The full
// contract carries fee queries and events we do not need server-side.
const batcherABI = `[{"type":"function","name":"batchSendUSDC","inputs":[{"name":"transfers","type":"tuple[]","internalType":"struct USDCBridgeBatcher.TransferRequest[]","components":[{"name":"destinationChainSelector","type":"uint64","internalType":"uint64"},{"name":"receiver","type":"address","internalType":"address"},{"name":"amount","type":"uint256","internalType":"uint256"}]}],"outputs":[{"name":"messageIds","type":"bytes32[]","internalType":"bytes32[]"}],"stateMutability":"nonpayable"}]`

// TransferRequest mirrors the contract's TransferRequest tuple. Amounts are
// USDC base units (scaled by 10^6).
type TransferRequest struct {
	DestinationChainSelector uint64         `abi:"destinationChainSelector"`
	Receiver                 common.Address `abi:"receiver"`
	Amount                   *big.Int       `abi:"amount"`
}

// Receipt is the confirmation record of a mined batch submission.
type Receipt struct {
	TxHash            common.Hash
	Status            uint64 // 1 = success, 0 = reverted
	GasUsed           uint64
	EffectiveGasPrice *big.Int
}

// TotalGasCostWei returns gasUsed multiplied by the effective gas price.
func (r *Receipt) TotalGasCostWei() *big.Int {
	if r.EffectiveGasPrice == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(r.GasUsed), r.EffectiveGasPrice)
}

// Client is the capability surface the executor depends on. The contract
// implementation talks to a real node; tests substitute a stub.
type Client interface {
	// SubmitBatch sends one batchSendUSDC call carrying every transfer and
	// returns the transaction hash once the node accepts it.
	SubmitBatch(ctx context.Context, transfers []TransferRequest) (common.Hash, error)
	// WaitForReceipt blocks until the transaction is mined or ctx expires.
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*Receipt, error)
	// SenderAddress is the account submitting batches.
	SenderAddress() common.Address
}

// ContractClient submits batches through an Ethereum node.
type ContractClient struct {
	eth          *ethclient.Client
	contract     *bind.BoundContract
	opts         *bind.TransactOpts
	sender       common.Address
	pollInterval time.Duration
}

// ContractClientConfig configures a ContractClient.
type ContractClientConfig struct {
	RPCURL          string
	ContractAddress string
	PrivateKeyHex   string
	ChainID         int64
	PollInterval    time.Duration
}

// NewContractClient connects to the node and binds the batcher contract.
func NewContractClient(cfg ContractClientConfig) (*ContractClient, error) {
	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RPC endpoint")
	}

	parsed, err := abi.JSON(strings.NewReader(batcherABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse batcher ABI")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKeyHex, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid bridge private key")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transactor")
	}

	address := common.HexToAddress(cfg.ContractAddress)
	contract := bind.NewBoundContract(address, parsed, eth, eth, eth)

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	return &ContractClient{
		eth:          eth,
		contract:     contract,
		opts:         opts,
		sender:       crypto.PubkeyToAddress(key.PublicKey),
		pollInterval: pollInterval,
	}, nil
}

// SubmitBatch calls batchSendUSDC with the given transfer array.
func (c *ContractClient) SubmitBatch(ctx context.Context, transfers []TransferRequest) (common.Hash, error) {
	if len(transfers) == 0 {
		return common.Hash{}, errors.New("no transfers specified")
	}

	opts := *c.opts
	opts.Context = ctx

	tx, err := c.contract.Transact(&opts, "batchSendUSDC", transfers)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "batchSendUSDC submission failed")
	}
	return tx.Hash(), nil
}

// WaitForReceipt polls the node until the transaction is mined. The caller
// bounds the wait through ctx; polling backs off at a constant interval.
func (c *ContractClient) WaitForReceipt(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	var receipt *types.Receipt

	operation := func() error {
		r, err := c.eth.TransactionReceipt(ctx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return err // not mined yet, retry
			}
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(c.pollInterval), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, errors.Wrapf(err, "waiting for receipt of %s", txHash.Hex())
	}

	return &Receipt{
		TxHash:            txHash,
		Status:            receipt.Status,
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: receipt.EffectiveGasPrice,
	}, nil
}

// SenderAddress returns the submitting account.
func (c *ContractClient) SenderAddress() common.Address {
	return c.sender
}

// Close releases the underlying RPC connection.
func (c *ContractClient) Close() {
	c.eth.Close()
}
