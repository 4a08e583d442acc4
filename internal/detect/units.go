package detect

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	ethDecimals  = 18
	gweiDecimals = 9
)

func WeiToEth(wei *big.Int) float64 {
	return scaleWei(wei, ethDecimals)
}

func WeiToGwei(wei *big.Int) float64 {
	return scaleWei(wei, gweiDecimals)
}

// EthToWei converts an ETH amount to wei, truncating below one wei.
func EthToWei(eth float64) *big.Int {
	return decimal.NewFromFloat(eth).Shift(ethDecimals).BigInt()
}

func GweiToWei(gwei float64) *big.Int {
	return decimal.NewFromFloat(gwei).Shift(gweiDecimals).BigInt()
}

func scaleWei(wei *big.Int, decimals int32) float64 {
	if wei == nil || wei.Sign() < 0 {
		return 0
	}
	f, _ := decimal.NewFromBigInt(wei, -decimals).Float64()
	return f
}

// gasCostEth is gasUsed × gasPrice expressed in ETH.
func gasCostEth(gasUsed uint64, gasPriceWei *big.Int) float64 {
	if gasPriceWei == nil || gasPriceWei.Sign() <= 0 {
		return 0
	}
	cost := decimal.NewFromBigInt(gasPriceWei, 0).Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(gasUsed), 0))
	f, _ := cost.Shift(-ethDecimals).Float64()
	return f
}
