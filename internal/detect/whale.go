package detect

import (
	"sort"
)

const (
	directionIncoming = "incoming"
	directionOutgoing = "outgoing"
)

// WhaleMatcher groups a batch of transfers per address and flags large
// exchange-linked flows and single large transfers.
type WhaleMatcher struct {
	classifier *Classifier
}

func NewWhaleMatcher(classifier *Classifier) *WhaleMatcher {
	return &WhaleMatcher{
		classifier: classifier,
	}
}

func (m *WhaleMatcher) Name() string {
	return "whale"
}

func (m *WhaleMatcher) Match(block Block) []Signal {
	rules := m.classifier.Snapshot()
	th := rules.Thresholds()
	txs := sortedByPosition(block.Transactions)
	number := blockNumberOf(block)

	incoming := make(map[string][]Transaction)
	outgoing := make(map[string][]Transaction)
	for _, tx := range txs {
		if to := tx.ToAddress(); to != "" {
			incoming[to] = append(incoming[to], tx)
		}
		if from := tx.FromAddress(); from != "" {
			outgoing[from] = append(outgoing[from], tx)
		}
	}

	var signals []Signal
	for _, recipient := range sortedKeys(incoming) {
		group := incoming[recipient]
		exchange, ok := m.firstExchange(rules, group, func(tx Transaction) string { return tx.FromAddress() })
		if !ok || !m.isWhaleGroup(group, th) {
			continue
		}
		signals = append(signals, m.groupSignal(SignalAccumulation, number, recipient, group, exchange, directionIncoming, th))
	}

	for _, sender := range sortedKeys(outgoing) {
		group := outgoing[sender]
		exchange, ok := m.firstExchange(rules, group, func(tx Transaction) string { return tx.ToAddress() })
		if !ok || !m.isWhaleGroup(group, th) {
			continue
		}
		signals = append(signals, m.groupSignal(SignalDistribution, number, sender, group, exchange, directionOutgoing, th))
	}

	for _, tx := range txs {
		if s, ok := m.largeTransfer(rules, number, tx); ok {
			signals = append(signals, s)
		}
	}

	return signals
}

func (m *WhaleMatcher) isWhaleGroup(group []Transaction, th Thresholds) bool {
	return len(group) >= th.WhaleMinTransactions && sumValueEth(group) > th.WhaleGroupValueEth
}

func (m *WhaleMatcher) firstExchange(rules *Rules, group []Transaction, counterparty func(Transaction) string) (string, bool) {
	for _, tx := range group {
		if name, ok := rules.ExchangeName(counterparty(tx)); ok {
			return name, true
		}
	}
	return "", false
}

func (m *WhaleMatcher) groupSignal(typ SignalType, number uint64, subject string, group []Transaction, exchange, direction string, th Thresholds) Signal {
	total := sumValueEth(group)

	hashes := make([]string, 0, len(group))
	addresses := []string{subject}
	var gasUsed uint64
	for _, tx := range group {
		hashes = append(hashes, tx.Hash)
		addresses = append(addresses, tx.FromAddress(), tx.ToAddress())
		gasUsed += tx.GasUsed
	}

	s := newSignal(typ, number)
	s.Confidence = clampUnit(th.WhaleConfidence)
	s.TargetTransaction = hashes[0]
	s.SupportingTransactions = hashes[1:]
	s.ProfitEstimateEth = nonNegative(total)
	s.ValueEth = nonNegative(total)
	s.GasUsed = gasUsed
	s.AddressesInvolved = uniqueAddresses(addresses...)
	s.Metadata = Metadata{
		Whale: &WhaleMetadata{
			TransactionCount: len(group),
			AverageValueEth:  total / float64(len(group)),
			TotalValueEth:    total,
			Exchange:         exchange,
			Direction:        direction,
		},
	}
	return s
}

func (m *WhaleMatcher) largeTransfer(rules *Rules, number uint64, tx Transaction) (Signal, bool) {
	th := rules.Thresholds()
	value := tx.ValueEth()
	if value <= th.LargeTransferEth {
		return Signal{}, false
	}

	fromExchange, fromIsExchange := rules.ExchangeName(tx.FromAddress())
	toExchange, toIsExchange := rules.ExchangeName(tx.ToAddress())

	var (
		typ        SignalType
		exchange   string
		direction  string
		confidence = th.ExchangeFlowConfidence
	)
	switch {
	case fromIsExchange && toIsExchange:
		// internal exchange movement
		return Signal{}, false
	case toIsExchange:
		typ, exchange, direction = SignalExchangeDeposit, toExchange, directionIncoming
	case fromIsExchange:
		typ, exchange, direction = SignalExchangeWithdrawal, fromExchange, directionOutgoing
	default:
		typ, direction, confidence = SignalLargeTransfer, directionOutgoing, th.LargeTransferConfidence
	}

	s := newSignal(typ, number)
	s.Confidence = clampUnit(confidence)
	s.TargetTransaction = tx.Hash
	s.SupportingTransactions = []string{}
	s.ProfitEstimateEth = nonNegative(value)
	s.ValueEth = nonNegative(value)
	s.GasUsed = tx.GasUsed
	s.AddressesInvolved = uniqueAddresses(tx.From, tx.ToAddress())
	s.Metadata = Metadata{
		Whale: &WhaleMetadata{
			TransactionCount: 1,
			AverageValueEth:  value,
			TotalValueEth:    value,
			Exchange:         exchange,
			Direction:        direction,
		},
	}
	return s, true
}

func sumValueEth(txs []Transaction) float64 {
	var total float64
	for _, tx := range txs {
		total += tx.ValueEth()
	}
	return total
}

func sortedKeys(m map[string][]Transaction) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
