package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/funddesk/fundchat"
	"github.com/funddesk/fundchat/agent"
)

type handler struct {
	store     *fundchat.Store
	assistant *agent.Assistant
}

func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": h.assistant.Configured(),
	})
}

func (h *handler) Funds(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"funds": h.store.Funds()})
}

func (h *handler) FundSummary(w http.ResponseWriter, r *http.Request) {
	fund := chi.URLParam(r, "fund")
	respondJSON(w, http.StatusOK, summaryResponse(h.store.Summary(fund)))
}

func (h *handler) Overview(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Overview())
}

func (h *handler) Performance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"performance": h.store.Performance()})
}

func (h *handler) TopHoldings(w http.ResponseWriter, r *http.Request) {
	fund := r.URL.Query().Get("fund")
	n := 10
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	respondJSON(w, http.StatusOK, map[string]any{"holdings": h.store.TopSecurities(fund, n)})
}

func (h *handler) Custodians(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"custodians": h.store.CustodianSummary()})
}

func (h *handler) SecurityTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"securityTypes": h.store.SecurityTypeSummary()})
}

func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	if r.URL.Query().Get("table") == "trades" {
		respondJSON(w, http.StatusOK, map[string]any{"trades": h.store.SearchTrades(q)})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"holdings": h.store.SearchHoldings(q)})
}

// askRequest is the body of POST /api/ask.
type askRequest struct {
	Question string `json:"question"`
}

func (h *handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.assistant.Answer(r.Context(), req.Question)
	if err != nil {
		var queryErr *fundchat.QueryError
		var configErr *fundchat.ConfigError
		switch {
		case errors.As(err, &queryErr):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &configErr):
			respondError(w, http.StatusServiceUnavailable, err.Error())
		default:
			respondError(w, http.StatusBadGateway, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"answer": answer})
}

// summaryResponse shapes a FundSummary for JSON, rendering the as-of date as
// a string and an absent date as null.
func summaryResponse(sum fundchat.FundSummary) map[string]any {
	var asOf any
	if !sum.AsOf.IsZero() {
		asOf = sum.AsOf.String()
	}
	custodians := sum.Custodians
	if custodians == nil {
		custodians = []string{}
	}
	return map[string]any{
		"fund":             sum.Fund,
		"holdings":         sum.Holdings,
		"trades":           sum.Trades,
		"totalPLYTD":       sum.TotalPLYTD,
		"totalMarketValue": sum.TotalMarketValue,
		"uniqueSecurities": sum.UniqueSecurities,
		"custodians":       custodians,
		"asOfDate":         asOf,
	}
}
