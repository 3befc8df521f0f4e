package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"joke-api/internal/domain"
	"joke-api/internal/logger"
	"joke-api/internal/repository"

	"github.com/google/uuid"
)

type moderationService struct {
	jokeRepo repository.JokeRepository
}

func NewModerationService(jokeRepo repository.JokeRepository) ModerationService {
	return &moderationService{jokeRepo: jokeRepo}
}

func (s *moderationService) SubmitJokeForReview(ctx context.Context, setup, punchline, submitterID, language string) (*SubmitResult, error) {
	if language == "" {
		language = domain.DefaultLanguage
	}

	joke := &domain.Joke{
		ID:              uuid.NewString(),
		Setup:           setup,
		Punchline:       punchline,
		Language:        language,
		Approved:        false,
		CreatedByUserID: submitterID,
	}

	if err := s.jokeRepo.CreateWithQueueEntry(ctx, joke); err != nil {
		logger.Error("Joke submission failed", "submitter_id", submitterID, "error", err)
		return &SubmitResult{
			Success: false,
			Message: fmt.Sprintf("Failed to submit joke for review. Error: %v", err),
		}, nil
	}

	return &SubmitResult{
		Success: true,
		Message: "Joke submitted for review successfully.",
		JokeID:  joke.ID,
	}, nil
}

func (s *moderationService) ReviewJoke(ctx context.Context, jokeID, decision string) (*ReviewResult, error) {
	normalized := strings.ToUpper(decision)
	if normalized != string(domain.ModerationStatusApproved) && normalized != string(domain.ModerationStatusRejected) {
		return &ReviewResult{
			Success:  false,
			Message:  "Invalid decision. Choices are 'APPROVED' or 'REJECTED'.",
			JokeID:   jokeID,
			Decision: decision,
		}, nil
	}

	if _, err := s.jokeRepo.GetByID(ctx, jokeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ReviewResult{
				Success:  false,
				Message:  fmt.Sprintf("Joke with ID %s not found.", jokeID),
				JokeID:   jokeID,
				Decision: decision,
			}, nil
		}
		return nil, err
	}

	approved := normalized == string(domain.ModerationStatusApproved)
	status := domain.ModerationStatusRejected
	if approved {
		status = domain.ModerationStatusApproved
	}

	if err := s.jokeRepo.ApplyReview(ctx, jokeID, approved, status); err != nil {
		return nil, err
	}

	return &ReviewResult{
		Success:  true,
		Message:  fmt.Sprintf("Joke %s has been %s.", jokeID, strings.ToLower(normalized)),
		JokeID:   jokeID,
		Decision: decision,
	}, nil
}
