package detect

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

var TimeNow = time.Now

func newSignal(typ SignalType, blockNumber uint64) Signal {
	return Signal{
		ID:          uuid.NewString(),
		Type:        typ,
		BlockNumber: blockNumber,
		DetectedAt:  TimeNow().UTC(),
	}
}

func sortedByPosition(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PositionInBlock < sorted[j].PositionInBlock
	})
	return sorted
}

func uniqueAddresses(addresses ...string) []string {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = NormalizeAddress(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func blockNumberOf(block Block) uint64 {
	if block.Number != 0 || len(block.Transactions) == 0 {
		return block.Number
	}
	return block.Transactions[0].BlockNumber
}
