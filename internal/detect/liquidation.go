package detect

const unknownProtocol = "unknown"

type LiquidationMatcher struct {
	classifier *Classifier
}

func NewLiquidationMatcher(classifier *Classifier) *LiquidationMatcher {
	return &LiquidationMatcher{
		classifier: classifier,
	}
}

func (m *LiquidationMatcher) Name() string {
	return "liquidation"
}

func (m *LiquidationMatcher) Match(block Block) []Signal {
	rules := m.classifier.Snapshot()
	th := rules.Thresholds()

	var signals []Signal
	for _, tx := range sortedByPosition(block.Transactions) {
		if !rules.Classify(tx).IsLiquidation {
			continue
		}

		matchedBy := "selector"
		protocol, ok := rules.ProtocolFor(tx.ToAddress())
		if ok {
			matchedBy = "contract"
		} else {
			protocol = unknownProtocol
		}

		s := newSignal(SignalLiquidation, blockNumberOf(block))
		s.Confidence = clampUnit(th.LiquidationConfidence)
		s.TargetTransaction = tx.Hash
		s.SupportingTransactions = []string{}
		// flat estimate until liquidation bonus decoding exists
		s.ProfitEstimateEth = nonNegative(th.LiquidationProfitPlaceholderEth)
		s.ValueEth = tx.ValueEth()
		s.GasUsed = tx.GasUsed
		s.AddressesInvolved = uniqueAddresses(tx.From, tx.ToAddress())
		s.Metadata = Metadata{
			Liquidation: &LiquidationMetadata{
				Protocol:  protocol,
				MatchedBy: matchedBy,
			},
		}
		signals = append(signals, s)
	}

	return signals
}
