package http

import (
	"net/http"

	"joke-api/internal/service"
)

type RateLimitResponse struct {
	RemainingRequests int64 `json:"remaining_requests"`
	LimitWindowSecs   int   `json:"limit_window_seconds"`
	UsedRequests      int64 `json:"used_requests"`
}

type RateLimitHandler struct {
	rateLimit service.RateLimitService
}

func NewRateLimitHandler(rateLimit service.RateLimitService) *RateLimitHandler {
	return &RateLimitHandler{rateLimit: rateLimit}
}

func (h *RateLimitHandler) Check(w http.ResponseWriter, r *http.Request) {
	status, err := h.rateLimit.Check(r.Context(), r.Header.Get(APIKeyHeader))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, RateLimitResponse{
		RemainingRequests: status.RemainingRequests,
		LimitWindowSecs:   status.LimitWindowSecs,
		UsedRequests:      status.UsedRequests,
	})
}
