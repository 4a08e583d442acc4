package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"chainsentry/internal/detect"
	"chainsentry/internal/ethereum"
	"chainsentry/internal/ethereum/fake"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NodeService", func() {
	var (
		service    *ethereum.NodeService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		service = ethereum.NewNodeService(zap.NewNop().Sugar(), fakeClient)
	})

	Describe("FetchBlock", func() {
		var (
			raw       *types.Block
			block     detect.Block
			err       error
			chainID   *big.Int
			signedTx1 *types.Transaction
			signedTx2 *types.Transaction
			sender    common.Address
			router    common.Address
			receipts  map[common.Hash]*types.Receipt
		)

		BeforeEach(func() {
			privateKey, keyErr := crypto.GenerateKey()
			Expect(keyErr).NotTo(HaveOccurred())
			sender = crypto.PubkeyToAddress(privateKey.PublicKey)
			router = common.HexToAddress("0x7a250d5630b4cf539739df2c5dacb4c659f2488d")

			chainID = big.NewInt(1)
			signer := types.LatestSignerForChainID(chainID)

			tx1 := types.NewTransaction(0, router, big.NewInt(1_000_000_000_000_000_000), 21000, big.NewInt(40_000_000_000), []byte{0x38, 0xed, 0x17, 0x39})
			tx2 := types.NewContractCreation(1, big.NewInt(0), 500000, big.NewInt(300_000_000_000), []byte{0x60, 0x80})

			signedTx1, _ = types.SignTx(tx1, signer, privateKey)
			signedTx2, _ = types.SignTx(tx2, signer, privateKey)

			receipts = map[common.Hash]*types.Receipt{
				signedTx1.Hash(): {Status: 1, GasUsed: 21000},
				signedTx2.Hash(): {Status: 1, GasUsed: 400000, EffectiveGasPrice: big.NewInt(250_000_000_000)},
			}

			header := &types.Header{Number: big.NewInt(18_000_000)}
			raw = types.NewBlockWithHeader(header).WithBody(types.Body{
				Transactions: []*types.Transaction{signedTx1, signedTx2},
			})

			fakeClient.NetworkIDReturns(chainID, nil)
			fakeClient.BlockByNumberStub = func(_ context.Context, number *big.Int) (*types.Block, error) {
				return raw, nil
			}
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				return receipts[hash], nil
			}
		})

		JustBeforeEach(func() {
			block, err = service.FetchBlock(ctx, 18_000_000)
		})

		When("the node answers", func() {
			It("should normalize every transaction in block order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(block.Number).To(Equal(uint64(18_000_000)))
				Expect(block.Transactions).To(HaveLen(2))

				_, number := fakeClient.BlockByNumberArgsForCall(0)
				Expect(number.Uint64()).To(Equal(uint64(18_000_000)))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))

				first := block.Transactions[0]
				Expect(first.Hash).To(Equal(signedTx1.Hash().Hex()))
				Expect(first.From).To(Equal(strings.ToLower(sender.Hex())))
				Expect(*first.To).To(Equal(strings.ToLower(router.Hex())))
				Expect(first.ValueEth()).To(Equal(1.0))
				Expect(first.GasPriceGwei()).To(Equal(40.0))
				Expect(first.GasUsed).To(Equal(uint64(21000)))
				Expect(first.PositionInBlock).To(Equal(uint64(0)))
				Expect(first.Input).To(Equal([]byte{0x38, 0xed, 0x17, 0x39}))

				second := block.Transactions[1]
				Expect(second.To).To(BeNil())
				Expect(second.GasPriceGwei()).To(Equal(250.0))
				Expect(second.PositionInBlock).To(Equal(uint64(1)))
			})
		})

		When("the block cannot be fetched", func() {
			BeforeEach(func() {
				fakeClient.BlockByNumberStub = nil
				fakeClient.BlockByNumberReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(0))
			})
		})

		When("the node has no such block", func() {
			BeforeEach(func() {
				fakeClient.BlockByNumberStub = nil
				fakeClient.BlockByNumberReturns(nil, goethereum.NotFound)
			})

			It("should report it as not found", func() {
				Expect(err).To(MatchError(ethereum.ErrBlockNotFound))
				Expect(err.Error()).To(ContainSubstring("18000000"))
				Expect(fakeClient.NetworkIDCallCount()).To(Equal(0))
			})
		})

		When("a receipt fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
					if hash == signedTx2.Hash() {
						return nil, testErr
					}
					return receipts[hash], nil
				}
			})

			It("should skip the transaction and keep the rest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(block.Transactions).To(HaveLen(1))
				Expect(block.Transactions[0].Hash).To(Equal(signedTx1.Hash().Hex()))
			})
		})

		When("a sender cannot be recovered", func() {
			BeforeEach(func() {
				unsigned := types.NewTransaction(7, router, big.NewInt(1), 21000, big.NewInt(1_000_000_000), nil)
				receipts[unsigned.Hash()] = &types.Receipt{Status: 1, GasUsed: 21000}
				raw = types.NewBlockWithHeader(&types.Header{Number: big.NewInt(18_000_000)}).WithBody(types.Body{
					Transactions: []*types.Transaction{unsigned, signedTx1, signedTx2},
				})
			})

			It("should skip the transaction and keep block positions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(block.Transactions).To(HaveLen(2))
				Expect(block.Transactions[0].Hash).To(Equal(signedTx1.Hash().Hex()))
				Expect(block.Transactions[0].PositionInBlock).To(Equal(uint64(1)))
				Expect(block.Transactions[1].PositionInBlock).To(Equal(uint64(2)))
			})
		})

		When("the context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionReceiptStub = func(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
					return nil, ctx.Err()
				}
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})
})
