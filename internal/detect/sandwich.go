package detect

// SandwichMatcher finds victim transactions bracketed by a higher-priced
// front-run and back-run in the same block.
type SandwichMatcher struct {
	classifier *Classifier
}

func NewSandwichMatcher(classifier *Classifier) *SandwichMatcher {
	return &SandwichMatcher{
		classifier: classifier,
	}
}

func (m *SandwichMatcher) Name() string {
	return "sandwich"
}

func (m *SandwichMatcher) Match(block Block) []Signal {
	rules := m.classifier.Snapshot()
	th := rules.Thresholds()
	txs := sortedByPosition(block.Transactions)

	classes := make([]Classification, len(txs))
	for i, tx := range txs {
		classes[i] = rules.Classify(tx)
	}

	var signals []Signal
	for vi, victim := range txs {
		if !classes[vi].IsVictimCandidate {
			continue
		}

		victimGas := victim.GasPriceGwei()
		if victimGas <= 0 {
			continue
		}

		front, ok := m.pick(txs, classes, vi, true, th)
		if !ok {
			continue
		}
		back, ok := m.pick(txs, classes, vi, false, th)
		if !ok {
			continue
		}

		frontRatio := txs[front].GasPriceGwei() / victimGas
		backRatio := txs[back].GasPriceGwei() / victimGas
		signals = append(signals, m.buildSignal(block, txs[front], victim, txs[back], frontRatio, backRatio, th))
	}

	return signals
}

// pick selects the front-run (before=true) or back-run candidate for the victim at index vi.
func (m *SandwichMatcher) pick(txs []Transaction, classes []Classification, vi int, before bool, th Thresholds) (int, bool) {
	victim := txs[vi]
	minGas := victim.GasPriceGwei() * th.SandwichGasMultiplier

	best := -1
	bestGas := 0.0
	for i, tx := range txs {
		if i == vi || !classes[i].IsMEVCandidate {
			continue
		}
		if before && tx.PositionInBlock >= victim.PositionInBlock {
			continue
		}
		if !before && tx.PositionInBlock <= victim.PositionInBlock {
			continue
		}

		gas := tx.GasPriceGwei()
		if gas <= minGas {
			continue
		}

		if th.SandwichTieBreak == TieBreakFirstMatch {
			return i, true
		}

		switch {
		case best < 0, gas > bestGas:
			best, bestGas = i, gas
		case gas == bestGas && closer(tx, txs[best], victim):
			best = i
		}
	}

	return best, best >= 0
}

func closer(a, b, victim Transaction) bool {
	return distance(a.PositionInBlock, victim.PositionInBlock) < distance(b.PositionInBlock, victim.PositionInBlock)
}

func distance(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func (m *SandwichMatcher) buildSignal(block Block, front, victim, back Transaction, frontRatio, backRatio float64, th Thresholds) Signal {
	victimValue := victim.ValueEth()
	cost := gasCostEth(front.GasUsed+back.GasUsed, front.GasPriceWei)

	s := newSignal(SignalSandwichAttack, blockNumberOf(block))
	s.Confidence = clampUnit(frontRatio * backRatio / th.SandwichConfidenceDivisor)
	s.TargetTransaction = victim.Hash
	s.SupportingTransactions = []string{front.Hash, back.Hash}
	s.ProfitEstimateEth = nonNegative(victimValue*th.SandwichVictimCaptureRate - cost)
	s.ValueEth = victimValue
	s.GasUsed = front.GasUsed + victim.GasUsed + back.GasUsed
	s.AddressesInvolved = uniqueAddresses(front.From, victim.From, back.From)
	s.Metadata = Metadata{
		Sandwich: &SandwichMetadata{
			FrontRunMultiplier: frontRatio,
			BackRunMultiplier:  backRatio,
			VictimValueEth:     victimValue,
			TieBreak:           th.SandwichTieBreak,
		},
	}
	return s
}
