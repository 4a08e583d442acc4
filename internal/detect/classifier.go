package detect

import (
	"bytes"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const selectorLength = 4

// KnownAddresses is the raw, file-level form of the address and selector sets.
type KnownAddresses struct {
	Version              string            `yaml:"version" json:"version"`
	DEXRouters           []string          `yaml:"dex_routers" json:"dexRouters"`
	MEVBots              []string          `yaml:"mev_bots" json:"mevBots"`
	FlashLoanSelectors   []string          `yaml:"flash_loan_selectors" json:"flashLoanSelectors"`
	LiquidationContracts map[string]string `yaml:"liquidation_contracts" json:"liquidationContracts"`
	LiquidationSelectors []string          `yaml:"liquidation_selectors" json:"liquidationSelectors"`
	Exchanges            map[string]string `yaml:"exchanges" json:"exchanges"`
	Sanctioned           []string          `yaml:"sanctioned" json:"sanctioned"`
	Thresholds           Thresholds        `yaml:"thresholds" json:"thresholds"`
}

// SetSizes reports the number of entries per set, keyed by the yaml name.
func (k KnownAddresses) SetSizes() map[string]int {
	return map[string]int{
		"dex_routers":           len(k.DEXRouters),
		"mev_bots":              len(k.MEVBots),
		"flash_loan_selectors":  len(k.FlashLoanSelectors),
		"liquidation_contracts": len(k.LiquidationContracts),
		"liquidation_selectors": len(k.LiquidationSelectors),
		"exchanges":             len(k.Exchanges),
		"sanctioned":            len(k.Sanctioned),
	}
}

// EmptySets lists the names of sets that have no entries, sorted.
func (k KnownAddresses) EmptySets() []string {
	var empty []string
	for name, size := range k.SetSizes() {
		if size == 0 {
			empty = append(empty, name)
		}
	}
	sort.Strings(empty)
	return empty
}

// Rules is one compiled, immutable version of the known-address configuration.
// Matchers take a single snapshot per block so a reload never mixes versions within a match.
type Rules struct {
	version              string
	thresholds           Thresholds
	dexRouters           map[string]struct{}
	mevBots              map[string]struct{}
	flashLoanSelectors   [][]byte
	liquidationContracts map[string]string
	liquidationSelectors [][]byte
	exchanges            map[string]string
}

// Classifier tags transactions as victim, MEV or liquidation candidates.
// Its rule set is swapped atomically so readers never block on a reload.
type Classifier struct {
	rules atomic.Pointer[Rules]
}

func NewClassifier(known KnownAddresses) (*Classifier, error) {
	c := &Classifier{}
	if err := c.Reload(known); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload compiles known and replaces the active rule set. On error the previous set stays active.
func (c *Classifier) Reload(known KnownAddresses) error {
	if err := known.Thresholds.Validate(); err != nil {
		return err
	}

	flash, err := parseSelectors(known.FlashLoanSelectors)
	if err != nil {
		return fmt.Errorf("parse flash loan selectors: %w", err)
	}
	liq, err := parseSelectors(known.LiquidationSelectors)
	if err != nil {
		return fmt.Errorf("parse liquidation selectors: %w", err)
	}

	rules := &Rules{
		version:              known.Version,
		thresholds:           known.Thresholds,
		dexRouters:           addressSet(known.DEXRouters),
		mevBots:              addressSet(known.MEVBots),
		flashLoanSelectors:   flash,
		liquidationContracts: addressMap(known.LiquidationContracts),
		liquidationSelectors: liq,
		exchanges:            addressMap(known.Exchanges),
	}
	c.rules.Store(rules)
	return nil
}

// Snapshot returns the active rule set.
func (c *Classifier) Snapshot() *Rules {
	return c.rules.Load()
}

func (c *Classifier) Thresholds() Thresholds {
	return c.Snapshot().thresholds
}

func (c *Classifier) Version() string {
	return c.Snapshot().version
}

func (c *Classifier) Classify(tx Transaction) Classification {
	return c.Snapshot().Classify(tx)
}

func (c *Classifier) ProtocolFor(address string) (string, bool) {
	return c.Snapshot().ProtocolFor(address)
}

func (c *Classifier) ExchangeName(address string) (string, bool) {
	return c.Snapshot().ExchangeName(address)
}

func (c *Classifier) IsExchange(address string) bool {
	_, ok := c.ExchangeName(address)
	return ok
}

func (r *Rules) Thresholds() Thresholds {
	return r.thresholds
}

func (r *Rules) Version() string {
	return r.version
}

func (r *Rules) Classify(tx Transaction) Classification {
	gasGwei := tx.GasPriceGwei()
	to := tx.ToAddress()

	_, toDEX := r.dexRouters[to]
	_, fromBot := r.mevBots[tx.FromAddress()]
	_, toLiquidator := r.liquidationContracts[to]

	return Classification{
		IsVictimCandidate: gasGwei < r.thresholds.VictimGasPriceGwei || toDEX,
		IsMEVCandidate:    gasGwei > r.thresholds.MEVGasPriceGwei || fromBot || hasSelector(tx.Input, r.flashLoanSelectors),
		IsLiquidation:     toLiquidator || hasSelector(tx.Input, r.liquidationSelectors),
	}
}

// ProtocolFor returns the lending protocol registered for a liquidation contract.
func (r *Rules) ProtocolFor(address string) (string, bool) {
	p, ok := r.liquidationContracts[NormalizeAddress(address)]
	return p, ok
}

// ExchangeName returns the exchange label registered for address.
func (r *Rules) ExchangeName(address string) (string, bool) {
	name, ok := r.exchanges[NormalizeAddress(address)]
	return name, ok
}

func hasSelector(input []byte, selectors [][]byte) bool {
	if len(input) < selectorLength {
		return false
	}
	for _, s := range selectors {
		if bytes.Equal(input[:selectorLength], s) {
			return true
		}
	}
	return false
}

func parseSelectors(raw []string) ([][]byte, error) {
	selectors := make([][]byte, 0, len(raw))
	for _, s := range raw {
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", s, err)
		}
		if len(b) != selectorLength {
			return nil, fmt.Errorf("selector %q: want %d bytes, got %d", s, selectorLength, len(b))
		}
		selectors = append(selectors, b)
	}
	return selectors, nil
}

func addressSet(addresses []string) map[string]struct{} {
	set := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		set[NormalizeAddress(a)] = struct{}{}
	}
	return set
}

func addressMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for a, v := range m {
		out[NormalizeAddress(a)] = v
	}
	return out
}
