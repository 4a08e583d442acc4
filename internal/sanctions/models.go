package sanctions

import "time"

type State string

const (
	StateUnchecked State = "UNCHECKED"
	StateChecking  State = "CHECKING"
	StateCached    State = "CACHED"
	StateStale     State = "STALE"
)

// LocalDenylistSource names the in-process list in results.
const LocalDenylistSource = "local_denylist"

type Result struct {
	Address        string            `json:"address"`
	IsSanctioned   bool              `json:"isSanctioned"`
	Lists          []string          `json:"lists"`
	Confidence     float64           `json:"confidenceScore"`
	LastChecked    time.Time         `json:"lastChecked"`
	SourcesChecked int               `json:"sourcesChecked"`
	Providers      []ProviderOutcome `json:"providers,omitempty"`
}

// ProviderResult is what a single provider reports for an address.
type ProviderResult struct {
	Lists      []string
	Confidence float64
}

// ProviderOutcome records one provider's contribution to a Result.
type ProviderOutcome struct {
	Provider   string   `json:"provider"`
	Lists      []string `json:"lists,omitempty"`
	Confidence float64  `json:"confidence"`
	Error      string   `json:"error,omitempty"`
}
