// Package bff implements the backend-for-frontend server. It proxies
// API traffic to the BudgetFlo backend and serves the tracker
// calculations locally, with results cached by input.
package bff

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/internal/cache"
	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
)

// calc results are immutable, so the TTL only bounds memory growth
const calcCacheTTL = 24 * time.Hour

// CalcHandler serves the local calculation endpoints
type CalcHandler struct {
	cache cache.Cache
}

// NewCalcHandler creates a calculation handler backed by the given cache
func NewCalcHandler(c cache.Cache) *CalcHandler {
	return &CalcHandler{cache: c}
}

type emiRequest struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annualRate"`
	TenureMonths int     `json:"tenureMonths"`
	Schedule     bool    `json:"schedule,omitempty"`
}

type emiResponse struct {
	EMI      float64                     `json:"emi"`
	Schedule []trackermath.ScheduleEntry `json:"schedule,omitempty"`
}

// ComputeEMI handles POST /calc/emi
func (h *CalcHandler) ComputeEMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req emiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("emi:%g:%g:%d:%t", req.Principal, req.AnnualRate, req.TenureMonths, req.Schedule)
	if cached, ok := h.cache.Get(r.Context(), key); ok {
		writeCachedJSON(w, cached)
		return
	}

	emi, err := trackermath.ComputeEMI(req.Principal, req.AnnualRate, req.TenureMonths)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := emiResponse{EMI: emi}
	if req.Schedule {
		resp.Schedule = trackermath.AmortizationSchedule(req.Principal, req.AnnualRate, req.TenureMonths, time.Now())
	}

	h.writeAndCache(w, r, key, resp)
}

type contributionRequest struct {
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount,omitempty"`
	TargetDate    string  `json:"targetDate"`
}

type contributionResponse struct {
	SuggestedContribution *float64 `json:"suggestedContribution"`
}

// SuggestContribution handles POST /calc/contribution
func (h *CalcHandler) SuggestContribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		http.Error(w, "targetDate must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// Keyed by day so suggestions age with the calendar
	today := time.Now()
	key := fmt.Sprintf("contrib:%g:%g:%s:%s",
		req.TargetAmount, req.CurrentAmount, req.TargetDate, today.Format("2006-01-02"))
	if cached, ok := h.cache.Get(r.Context(), key); ok {
		writeCachedJSON(w, cached)
		return
	}

	remaining := req.TargetAmount - req.CurrentAmount
	resp := contributionResponse{
		SuggestedContribution: trackermath.SuggestedContribution(remaining, targetDate, today),
	}

	h.writeAndCache(w, r, key, resp)
}

// Healthz handles GET /healthz
func (h *CalcHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *CalcHandler) writeAndCache(w http.ResponseWriter, r *http.Request, key string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	// Cache failures are not fatal, the response is still served
	_ = h.cache.Set(r.Context(), key, string(payload), calcCacheTTL)

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func writeCachedJSON(w http.ResponseWriter, payload string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "HIT")
	w.Write([]byte(payload))
}
