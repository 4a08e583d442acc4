package sanctions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	TRMBaseURL    = "https://api.trmlabs.com"
	trmConfidence = 0.9
)

type trmScreeningRequest struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

type trmScreeningResponse []struct {
	Address               string `json:"address"`
	AddressRiskIndicators []struct {
		Category                    string `json:"category"`
		CategoryRiskScoreLevelLabel string `json:"categoryRiskScoreLevelLabel"`
		RiskType                    string `json:"riskType"`
	} `json:"addressRiskIndicators"`
	Entities []struct {
		Category            string `json:"category"`
		Entity              string `json:"entity"`
		RiskScoreLevelLabel string `json:"riskScoreLevelLabel"`
	} `json:"entities"`
}

// TRMProvider queries the TRM Labs address screening API.
type TRMProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewTRMProvider(client *http.Client, baseURL, apiKey string) *TRMProvider {
	return &TRMProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (p *TRMProvider) Name() string {
	return "trm"
}

func (p *TRMProvider) Check(ctx context.Context, address string) (ProviderResult, error) {
	payload, err := json.Marshal([]trmScreeningRequest{{Address: address, Chain: "ethereum"}})
	if err != nil {
		return ProviderResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/public/v2/screening/addresses", bytes.NewReader(payload))
	if err != nil {
		return ProviderResult{}, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(p.apiKey, p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return ProviderResult{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ProviderResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body trmScreeningResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ProviderResult{}, fmt.Errorf("decode response: %w", err)
	}

	var lists []string
	for _, screened := range body {
		for _, e := range screened.Entities {
			if strings.EqualFold(e.Category, "sanctions") {
				lists = append(lists, e.Entity)
			}
		}
		for _, ind := range screened.AddressRiskIndicators {
			if strings.EqualFold(ind.Category, "sanctions") && strings.EqualFold(ind.RiskType, "OWNERSHIP") {
				lists = append(lists, "TRM: "+ind.Category)
			}
		}
	}

	return ProviderResult{
		Lists:      lists,
		Confidence: trmConfidence,
	}, nil
}
