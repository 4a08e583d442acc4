package payload

import (
	"chainsentry/internal/detect"
	"chainsentry/internal/risk"

	"github.com/jellydator/validation"
)

type AddressVerdictRequest struct {
	History risk.History    `json:"history"`
	Signals []detect.Signal `json:"signals"`
}

type TransactionVerdictRequest struct {
	Transaction Transaction     `json:"transaction"`
	Signals     []detect.Signal `json:"signals"`
}

func (t TransactionVerdictRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transaction),
	)
}

type SanctionsBatchRequest struct {
	Addresses []string `json:"addresses"`
}

func (s SanctionsBatchRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Addresses,
			validation.Required,
			validation.Length(1, 100),
			validation.Each(validation.Required, hexAddress)),
	)
}
