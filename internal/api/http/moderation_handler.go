package http

import (
	"encoding/json"
	"net/http"

	"joke-api/internal/service"

	"github.com/gorilla/mux"
)

type SubmitJokeRequest struct {
	Setup       string `json:"setup"`
	Punchline   string `json:"punchline"`
	SubmitterID string `json:"submitter_id"`
	Language    string `json:"language,omitempty"`
}

type SubmitJokeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JokeID  string `json:"jokeId,omitempty"`
}

type ReviewJokeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	JokeID   string `json:"jokeId"`
	Decision string `json:"decision"`
}

type ModerationHandler struct {
	moderation service.ModerationService
}

func NewModerationHandler(moderation service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

func (h *ModerationHandler) SubmitJoke(w http.ResponseWriter, r *http.Request) {
	var req SubmitJokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.moderation.SubmitJokeForReview(r.Context(), req.Setup, req.Punchline, req.SubmitterID, req.Language)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitJokeResponse{
		Success: result.Success,
		Message: result.Message,
		JokeID:  result.JokeID,
	})
}

func (h *ModerationHandler) ReviewJoke(w http.ResponseWriter, r *http.Request) {
	jokeID := mux.Vars(r)["jokeId"]
	decision := r.URL.Query().Get("decision")

	result, err := h.moderation.ReviewJoke(r.Context(), jokeID, decision)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, ReviewJokeResponse{
		Success:  result.Success,
		Message:  result.Message,
		JokeID:   result.JokeID,
		Decision: result.Decision,
	})
}
