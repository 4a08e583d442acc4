package sanctions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"chainsentry/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidAddress  = errors.New("invalid address")
	ErrProviderTimeout = errors.New("provider timed out")
)

var TimeNow = time.Now

const (
	DefaultProviderTimeout = 10 * time.Second
	DefaultCacheTTL        = 24 * time.Hour
)

type Config struct {
	ProviderTimeout time.Duration
	CacheTTL        time.Duration
}

type Screener struct {
	logs      *zap.SugaredLogger
	providers []Provider
	cache     Cache
	denylist  *Denylist
	metrics   *metrics.Metrics
	timeout   time.Duration
	ttl       time.Duration

	mu       sync.Mutex
	inflight map[string]int
}

func NewScreener(logger *zap.SugaredLogger, cache Cache, denylist *Denylist, m *metrics.Metrics, cfg Config, providers ...Provider) *Screener {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if len(providers) == 0 {
		logger.Warnw("no sanctions providers configured, screening relies on the local denylist",
			"denylist_size", denylist.Len())
	}
	return &Screener{
		logs:      logger,
		providers: providers,
		cache:     cache,
		denylist:  denylist,
		metrics:   m,
		timeout:   cfg.ProviderTimeout,
		ttl:       cfg.CacheTTL,
		inflight:  make(map[string]int),
	}
}

// Check screens one address. Provider failures never surface as errors; only an
// invalid address or a cancelled ctx does.
func (s *Screener) Check(ctx context.Context, address string) (Result, error) {
	addr, err := normalize(address)
	if err != nil {
		return Result{}, err
	}

	if s.denylist.Contains(addr) {
		return Result{
			Address:        addr,
			IsSanctioned:   true,
			Lists:          []string{LocalDenylistSource},
			Confidence:     1.0,
			LastChecked:    TimeNow().UTC(),
			SourcesChecked: 1,
		}, nil
	}

	if cached, ok := s.cache.Get(ctx, addr); ok {
		if s.fresh(cached) {
			s.metrics.CacheLookup("hit")
			return cached, nil
		}
		s.metrics.CacheLookup("stale")
	} else {
		s.metrics.CacheLookup("miss")
	}

	s.begin(addr)
	defer s.end(addr)

	outcomes, err := s.fanOut(ctx, addr)
	if err != nil {
		return Result{}, fmt.Errorf("check address %s: %w", addr, err)
	}

	result := merge(addr, outcomes)
	s.cache.Set(context.WithoutCancel(ctx), result)

	s.logs.Infow("address screened",
		"address", addr,
		"is_sanctioned", result.IsSanctioned,
		"sources_checked", result.SourcesChecked,
		"confidence", result.Confidence)

	return result, nil
}

// BatchCheck screens every address at once, so a batch takes no longer than its slowest
// provider timeout. The returned slice is aligned with addresses; entries that failed keep
// only their Address.
func (s *Screener) BatchCheck(ctx context.Context, addresses []string) ([]Result, error) {
	results := make([]Result, len(addresses))
	errs := make([]error, len(addresses))

	var g errgroup.Group
	for i, address := range addresses {
		g.Go(func() error {
			res, err := s.Check(ctx, address)
			if err != nil {
				results[i] = Result{Address: strings.ToLower(address)}
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

// Status reports where address is in its screening lifecycle.
func (s *Screener) Status(ctx context.Context, address string) (State, error) {
	addr, err := normalize(address)
	if err != nil {
		return "", err
	}
	if s.checking(addr) {
		return StateChecking, nil
	}
	cached, ok := s.cache.Get(ctx, addr)
	switch {
	case !ok:
		return StateUnchecked, nil
	case s.fresh(cached):
		return StateCached, nil
	default:
		return StateStale, nil
	}
}

// begin and end count concurrent checks per address; Status reports checking until the last one ends.
func (s *Screener) begin(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[addr]++
}

func (s *Screener) end(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[addr] <= 1 {
		delete(s.inflight, addr)
		return
	}
	s.inflight[addr]--
}

func (s *Screener) checking(addr string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[addr] > 0
}

func (s *Screener) fresh(r Result) bool {
	return TimeNow().Sub(r.LastChecked) < s.ttl
}

func (s *Screener) fanOut(ctx context.Context, address string) ([]ProviderOutcome, error) {
	outcomes := make(chan ProviderOutcome, len(s.providers))

	var wg sync.WaitGroup
	for _, p := range s.providers {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			outcomes <- s.query(ctx, p, address)
		}(p)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var results []ProviderOutcome
	for o := range outcomes {
		results = append(results, o)
	}

	// results gathered after the caller gave up are discarded
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Provider < results[j].Provider
	})
	return results, nil
}

func (s *Screener) query(ctx context.Context, p Provider, address string) ProviderOutcome {
	name := p.Name()
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type reply struct {
		res ProviderResult
		err error
	}
	done := make(chan reply, 1)
	start := time.Now()
	go func() {
		res, err := p.Check(pctx, address)
		done <- reply{res, err}
	}()

	var r reply
	select {
	case r = <-done:
	case <-pctx.Done():
		r = reply{err: fmt.Errorf("%w: %w", ErrProviderTimeout, pctx.Err())}
	}
	elapsed := time.Since(start).Seconds()

	if r.err != nil {
		s.metrics.ProviderRequest(name, "error", elapsed)
		s.logs.Warnw("sanctions provider failed",
			"provider", name,
			"address", address,
			"error", r.err)
		return ProviderOutcome{Provider: name, Error: r.err.Error()}
	}

	s.metrics.ProviderRequest(name, "ok", elapsed)
	return ProviderOutcome{
		Provider:   name,
		Lists:      r.res.Lists,
		Confidence: clampUnit(r.res.Confidence),
	}
}

func merge(address string, outcomes []ProviderOutcome) Result {
	lists := make(map[string]struct{})
	var (
		responded int
		total     float64
	)
	for _, o := range outcomes {
		if o.Error != "" {
			continue
		}
		responded++
		total += o.Confidence
		for _, l := range o.Lists {
			lists[l] = struct{}{}
		}
	}

	merged := make([]string, 0, len(lists))
	for l := range lists {
		merged = append(merged, l)
	}
	sort.Strings(merged)

	var confidence float64
	if responded > 0 {
		confidence = total / float64(responded)
	}

	return Result{
		Address:        address,
		IsSanctioned:   len(merged) > 0,
		Lists:          merged,
		Confidence:     confidence,
		LastChecked:    TimeNow().UTC(),
		SourcesChecked: responded,
		Providers:      outcomes,
	}
}

func normalize(address string) (string, error) {
	addr := strings.ToLower(strings.TrimSpace(address))
	if addr == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	if !common.IsHexAddress(addr) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if !strings.HasPrefix(addr, "0x") {
		addr = "0x" + addr
	}
	return addr, nil
}

func clampUnit(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
