package question

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/portfolio-qa-api/internal/domain"
)

const systemPrompt = "You are a portfolio assistant. Answer only using the provided profile text. " +
	"If the answer is not in the profile text, say you don't have that information."

// Verifier reports whether an email completed OTP verification.
type Verifier interface {
	IsVerified(email string) bool
}

// Answerer produces a completion for a system+user prompt pair.
type Answerer interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

type Service interface {
	// Ask answers a question about the profile document. The email must have
	// completed OTP verification; unverified callers get ErrUnauthorized.
	Ask(ctx context.Context, email, question string) (string, error)
}

type service struct {
	verifier    Verifier
	answerer    Answerer
	profilePath string
}

func NewService(verifier Verifier, answerer Answerer, profilePath string) Service {
	return &service{verifier: verifier, answerer: answerer, profilePath: profilePath}
}

func (s *service) Ask(ctx context.Context, email, question string) (string, error) {
	if !s.verifier.IsVerified(email) {
		return "", fmt.Errorf("email not verified, complete OTP verification first: %w", domain.ErrUnauthorized)
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required: %w", domain.ErrBadRequest)
	}

	// Read per request so profile edits take effect without a restart.
	profile, err := s.loadProfile()
	if err != nil {
		return "", err
	}

	user := fmt.Sprintf("Profile:\n%s\n\nQuestion: %s", profile, question)
	answer, err := s.answerer.ChatCompletion(ctx, systemPrompt, user)
	if err != nil {
		slog.Error("completion failed", "email", email, "err", err)
		return "", fmt.Errorf("Groq API error: %v: %w", err, domain.ErrUnavailable)
	}
	return answer, nil
}

func (s *service) loadProfile() (string, error) {
	data, err := os.ReadFile(s.profilePath)
	if err != nil {
		return "", fmt.Errorf("read profile text %s: %w", s.profilePath, err)
	}
	return strings.TrimSpace(string(data)), nil
}
