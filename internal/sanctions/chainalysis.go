package sanctions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrUnexpectedStatus = errors.New("unexpected provider status")

const (
	ChainalysisBaseURL    = "https://public.chainalysis.com"
	chainalysisConfidence = 0.95
)

type chainalysisResponse struct {
	Identifications []struct {
		Category    string `json:"category"`
		Name        string `json:"name"`
		Description string `json:"description"`
		URL         string `json:"url"`
	} `json:"identifications"`
}

// ChainalysisProvider queries the Chainalysis public sanctions API.
type ChainalysisProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewChainalysisProvider(client *http.Client, baseURL, apiKey string) *ChainalysisProvider {
	return &ChainalysisProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (p *ChainalysisProvider) Name() string {
	return "chainalysis"
}

func (p *ChainalysisProvider) Check(ctx context.Context, address string) (ProviderResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/v1/address/"+address, nil)
	if err != nil {
		return ProviderResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return ProviderResult{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ProviderResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body chainalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ProviderResult{}, fmt.Errorf("decode response: %w", err)
	}

	var lists []string
	for _, id := range body.Identifications {
		if strings.EqualFold(id.Category, "sanctions") {
			lists = append(lists, id.Name)
		}
	}

	return ProviderResult{
		Lists:      lists,
		Confidence: chainalysisConfidence,
	}, nil
}
