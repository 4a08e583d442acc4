package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"chainsentry/internal/detect"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var ErrBlockNotFound = errors.New("block not found")

type receiptResult struct {
	index   int
	receipt *types.Receipt
	err     error
}

// NodeService reads blocks from an Ethereum node and normalizes them for the matchers.
type NodeService struct {
	logs   *zap.SugaredLogger
	client EthClient
}

func NewNodeService(logger *zap.SugaredLogger, ethClient EthClient) *NodeService {
	return &NodeService{
		logs:   logger,
		client: ethClient,
	}
}

// FetchBlock returns block number with every transaction whose sender and receipt could be read.
// Transactions that cannot be decoded are logged and left out.
func (s *NodeService) FetchBlock(ctx context.Context, number uint64) (detect.Block, error) {
	block, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if errors.Is(err, goethereum.NotFound) || (err == nil && block == nil) {
		return detect.Block{}, fmt.Errorf("%w: %d", ErrBlockNotFound, number)
	}
	if err != nil {
		return detect.Block{}, fmt.Errorf("fetch block %d: %w", number, err)
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return detect.Block{}, fmt.Errorf("get network id: %w", err)
	}
	signer := types.LatestSignerForChainID(chainID)

	txs := block.Transactions()
	receipts := s.fetchReceipts(ctx, txs)
	if err := ctx.Err(); err != nil {
		return detect.Block{}, err
	}

	out := detect.Block{
		Number:       block.NumberU64(),
		Transactions: make([]detect.Transaction, 0, len(txs)),
	}

	for i, tx := range txs {
		if receipts[i] == nil {
			continue
		}
		from, err := types.Sender(signer, tx)
		if err != nil {
			s.logs.Warnw("skipping transaction with unrecoverable sender",
				"block", number,
				"tx_hash", tx.Hash().Hex(),
				"error", err)
			continue
		}
		out.Transactions = append(out.Transactions, toTransaction(tx, receipts[i], from, block.NumberU64(), uint64(i)))
	}

	return out, nil
}

// fetchReceipts returns receipts aligned with txs; failed lookups are logged and left nil.
func (s *NodeService) fetchReceipts(ctx context.Context, txs types.Transactions) []*types.Receipt {
	resultsChan := make(chan receiptResult)

	var wg sync.WaitGroup
	for i, tx := range txs {
		wg.Add(1)
		go func(i int, hash common.Hash) {
			defer wg.Done()
			receipt, err := s.client.TransactionReceipt(ctx, hash)
			if err == nil && receipt == nil {
				err = goethereum.NotFound
			}
			if err != nil {
				err = fmt.Errorf("fetching receipt %q: %w", hash.Hex(), err)
			}
			resultsChan <- receiptResult{index: i, receipt: receipt, err: err}
		}(i, tx.Hash())
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	receipts := make([]*types.Receipt, len(txs))
	for result := range resultsChan {
		if result.err != nil {
			if ctx.Err() == nil {
				s.logs.Warnw("skipping transaction without receipt",
					"tx_hash", txs[result.index].Hash().Hex(),
					"error", result.err)
			}
			continue
		}
		receipts[result.index] = result.receipt
	}

	return receipts
}

func toTransaction(tx *types.Transaction, receipt *types.Receipt, from common.Address, blockNumber, position uint64) detect.Transaction {
	gasPrice := tx.GasPrice()
	var gasUsed uint64
	if receipt != nil {
		gasUsed = receipt.GasUsed
		if receipt.EffectiveGasPrice != nil && receipt.EffectiveGasPrice.Sign() > 0 {
			gasPrice = receipt.EffectiveGasPrice
		}
	}

	var to *string
	if tx.To() != nil {
		addr := strings.ToLower(tx.To().Hex())
		to = &addr
	}

	return detect.Transaction{
		Hash:            tx.Hash().Hex(),
		From:            strings.ToLower(from.Hex()),
		To:              to,
		ValueWei:        tx.Value(),
		GasPriceWei:     gasPrice,
		GasUsed:         gasUsed,
		GasLimit:        tx.Gas(),
		BlockNumber:     blockNumber,
		PositionInBlock: position,
		Input:           tx.Data(),
	}
}
