package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"joke-api/internal/domain"
	"joke-api/internal/repository"
)

var (
	ErrNoJokesFound      = errors.New("no jokes found for the specified language")
	ErrNoJokesInLanguage = errors.New("no jokes found in the specified language")
)

type catalogService struct {
	jokeRepo repository.JokeRepository

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewCatalogService takes an explicit randomness source so tests can pin the
// selection.
func NewCatalogService(jokeRepo repository.JokeRepository, rng *rand.Rand) CatalogService {
	return &catalogService{
		jokeRepo: jokeRepo,
		rng:      rng,
	}
}

func (s *catalogService) GetRandomJoke(ctx context.Context, language string) (*domain.Joke, error) {
	jokes, err := s.jokeRepo.ListApprovedByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	if len(jokes) == 0 {
		return nil, ErrNoJokesFound
	}
	return s.pick(jokes), nil
}

func (s *catalogService) GetJokeInLanguage(ctx context.Context, language string) (*domain.Joke, error) {
	jokes, err := s.jokeRepo.ListApprovedByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	if len(jokes) == 0 {
		return nil, ErrNoJokesInLanguage
	}
	return s.pick(jokes), nil
}

func (s *catalogService) pick(jokes []domain.Joke) *domain.Joke {
	s.mu.Lock()
	i := s.rng.Intn(len(jokes))
	s.mu.Unlock()
	return &jokes[i]
}
