package http

import (
	"errors"
	"net/http"

	"joke-api/internal/domain"
	"joke-api/internal/service"

	"github.com/gorilla/mux"
)

// RandomJokeResponse is the public shape served by GET /joke.
type RandomJokeResponse struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Language  string `json:"language"`
}

// JokeResponse additionally carries the joke id, served by GET /joke/{language}.
type JokeResponse struct {
	ID        string `json:"id"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Language  string `json:"language"`
}

type JokeHandler struct {
	catalog service.CatalogService
}

func NewJokeHandler(catalog service.CatalogService) *JokeHandler {
	return &JokeHandler{catalog: catalog}
}

func (h *JokeHandler) GetRandomJoke(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = domain.DefaultLanguage
	}

	joke, err := h.catalog.GetRandomJoke(r.Context(), language)
	if err != nil {
		if errors.Is(err, service.ErrNoJokesFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, RandomJokeResponse{
		Setup:     joke.Setup,
		Punchline: joke.Punchline,
		Language:  joke.Language,
	})
}

// GetJokeInLanguage surfaces an empty candidate set as a generic error body,
// not a 404. The asymmetry with GetRandomJoke is part of the contract.
func (h *JokeHandler) GetJokeInLanguage(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]

	joke, err := h.catalog.GetJokeInLanguage(r.Context(), language)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, JokeResponse{
		ID:        joke.ID,
		Setup:     joke.Setup,
		Punchline: joke.Punchline,
		Language:  joke.Language,
	})
}
