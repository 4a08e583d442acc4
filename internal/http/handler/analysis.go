package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"chainsentry/internal/http/handler/middleware"
	"chainsentry/internal/http/payload"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"

	"go.uber.org/zap"
)

var (
	AnalyzeBlocks      = "POST /v1/blocks/analyze"
	AnalyzeBlockNumber = "GET /v1/blocks/{number}/analyze"
	GetSignals         = "GET /v1/signals"
	AddressVerdict     = "POST /v1/addresses/{address}/verdict"
	AddressRisk        = "POST /v1/addresses/{address}/risk"
	GetSanctions       = "GET /v1/sanctions/{address}"
	GetSanctionsStatus = "GET /v1/sanctions/{address}/status"
	SanctionsBatch     = "POST /v1/sanctions/batch"
	TransactionVerdict = "POST /v1/transactions/verdict"
	Health             = "GET /healthz"
)

type AnalysisHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	analyzer         AnalysisService
}

func NewAnalysisHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, analysisService AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		logs:             logger,
		requestValidator: requestValidator,
		analyzer:         analysisService,
	}
}

// Register adds every route to mux.
func (h *AnalysisHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(AnalyzeBlocks, h.HandleAnalyzeBlocks)
	mux.HandleFunc(AnalyzeBlockNumber, h.HandleAnalyzeBlockNumber)
	mux.HandleFunc(GetSignals, h.HandleGetSignals)
	mux.HandleFunc(AddressVerdict, h.HandleAddressVerdict)
	mux.HandleFunc(AddressRisk, h.HandleAddressRisk)
	mux.HandleFunc(GetSanctions, h.HandleGetSanctions)
	mux.HandleFunc(GetSanctionsStatus, h.HandleGetSanctionsStatus)
	mux.HandleFunc(SanctionsBatch, h.HandleSanctionsBatch)
	mux.HandleFunc(TransactionVerdict, h.HandleTransactionVerdict)
	mux.HandleFunc(Health, h.HandleHealth)
}

func (h *AnalysisHandler) HandleAnalyzeBlocks(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var body payload.AnalyzeBlocksRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.fail(w, AnalyzeBlocks, requestId, "Could not analyze blocks",
			fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest)
		return
	}

	blocks := body.ToBlocks()
	h.logs.Infow("analyze blocks request received",
		"blocks", len(blocks),
		"handler", AnalyzeBlocks,
		"request_id", requestId)

	signals, err := h.analyzer.AnalyzeBlocks(r.Context(), blocks)
	if err != nil {
		h.fail(w, AnalyzeBlocks, requestId, "Could not analyze blocks", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: map[string]any{"signals": signals}}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleAnalyzeBlockNumber(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	number, err := strconv.ParseUint(r.PathValue("number"), 0, 64)
	if err != nil {
		h.fail(w, AnalyzeBlockNumber, requestId, "Could not analyze block",
			fmt.Errorf("parse block number: %w", err), http.StatusBadRequest)
		return
	}

	signals, err := h.analyzer.AnalyzeBlockNumber(r.Context(), number)
	if err != nil {
		h.fail(w, AnalyzeBlockNumber, requestId, "Could not analyze block", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: map[string]any{
		"blockNumber": number,
		"signals":     signals,
	}}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleGetSignals(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	number, err := strconv.ParseUint(r.URL.Query().Get("block"), 0, 64)
	if err != nil {
		h.fail(w, GetSignals, requestId, "Could not retrieve signals",
			fmt.Errorf("parse block query parameter: %w", err), http.StatusBadRequest)
		return
	}

	signals, err := h.analyzer.StoredSignals(r.Context(), number)
	if err != nil {
		h.fail(w, GetSignals, requestId, "Could not retrieve signals", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: map[string]any{
		"blockNumber": number,
		"signals":     signals,
	}}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleAddressVerdict(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	address := r.PathValue("address")

	if err := payload.ValidateAddress(address); err != nil {
		h.fail(w, AddressVerdict, requestId, "Could not build verdict",
			fmt.Errorf("address: %w", err), http.StatusBadRequest)
		return
	}

	var body payload.AddressVerdictRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.fail(w, AddressVerdict, requestId, "Could not build verdict",
			fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest)
		return
	}

	verdict, err := h.analyzer.AddressVerdict(r.Context(), address, body.History, body.Signals)
	if err != nil {
		h.fail(w, AddressVerdict, requestId, "Could not build verdict", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: verdict}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleAddressRisk(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	address := r.PathValue("address")

	if err := payload.ValidateAddress(address); err != nil {
		h.fail(w, AddressRisk, requestId, "Could not score address",
			fmt.Errorf("address: %w", err), http.StatusBadRequest)
		return
	}

	var history risk.History
	if err := h.requestValidator.DecodeJSONPayload(r, &history); err != nil {
		h.fail(w, AddressRisk, requestId, "Could not score address",
			fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest)
		return
	}

	h.respond(w, Response{Data: h.analyzer.RiskScore(address, history)}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleGetSanctions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	result, err := h.analyzer.Sanctions(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, GetSanctions, requestId, "Could not screen address", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: result}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleGetSanctionsStatus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	state, err := h.analyzer.SanctionsStatus(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, GetSanctionsStatus, requestId, "Could not read screening status", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: map[string]sanctions.State{"state": state}}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleSanctionsBatch(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var body payload.SanctionsBatchRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.fail(w, SanctionsBatch, requestId, "Could not screen addresses",
			fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest)
		return
	}

	results, err := h.analyzer.SanctionsBatch(r.Context(), body.Addresses)
	if err != nil {
		h.logs.Errorw("sanctions batch incomplete",
			"error", err,
			"handler", SanctionsBatch,
			"request_id", requestId)
		h.respond(w, Response{
			Message: "Some addresses could not be screened",
			Data:    map[string]any{"results": results},
			Error:   err.Error(),
		}, statusFor(err), requestId)
		return
	}

	h.respond(w, Response{Data: map[string]any{"results": results}}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleTransactionVerdict(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var body payload.TransactionVerdictRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.fail(w, TransactionVerdict, requestId, "Could not build verdict",
			fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest)
		return
	}

	tx := body.Transaction.ToTransaction(0, 0)
	verdict, err := h.analyzer.TransactionVerdict(r.Context(), tx, body.Signals)
	if err != nil {
		h.fail(w, TransactionVerdict, requestId, "Could not build verdict", err, statusFor(err))
		return
	}

	h.respond(w, Response{Data: verdict}, http.StatusOK, requestId)
}

func (h *AnalysisHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.analyzer.Health(), http.StatusOK, middleware.RequestIDFrom(r.Context()))
}
