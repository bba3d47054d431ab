package question

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/portfolio-qa-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockVerifier struct{ mock.Mock }

func (m *mockVerifier) IsVerified(email string) bool {
	return m.Called(email).Bool(0)
}

type mockAnswerer struct{ mock.Mock }

func (m *mockAnswerer) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

// --- helpers ---

func writeProfile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "information.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

// --- Ask ---

func TestAsk_UnverifiedEmail_ReturnsUnauthorized(t *testing.T) {
	v := &mockVerifier{}
	v.On("IsVerified", "u@test.com").Return(false)

	svc := NewService(v, &mockAnswerer{}, "unused")
	_, err := svc.Ask(context.Background(), "u@test.com", "Who are you?")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAsk_EmptyQuestion_ReturnsBadRequest(t *testing.T) {
	v := &mockVerifier{}
	v.On("IsVerified", "u@test.com").Return(true)

	svc := NewService(v, &mockAnswerer{}, "unused")
	_, err := svc.Ask(context.Background(), "u@test.com", "   ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestAsk_MissingProfile_ReturnsError(t *testing.T) {
	v := &mockVerifier{}
	v.On("IsVerified", "u@test.com").Return(true)

	svc := NewService(v, &mockAnswerer{}, filepath.Join(t.TempDir(), "missing.txt"))
	_, err := svc.Ask(context.Background(), "u@test.com", "Who are you?")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnavailable))
}

func TestAsk_HappyPath_BuildsPromptFromProfile(t *testing.T) {
	v := &mockVerifier{}
	a := &mockAnswerer{}
	v.On("IsVerified", "u@test.com").Return(true)
	a.On("ChatCompletion", mock.Anything, systemPrompt, "Profile:\nI build Go services.\n\nQuestion: What do you build?").
		Return("Go services.", nil)

	path := writeProfile(t, "I build Go services.\n")
	svc := NewService(v, a, path)

	answer, err := svc.Ask(context.Background(), "u@test.com", "What do you build?")

	require.NoError(t, err)
	assert.Equal(t, "Go services.", answer)
	a.AssertExpectations(t)
}

func TestAsk_UpstreamFailure_ReturnsUnavailable(t *testing.T) {
	v := &mockVerifier{}
	a := &mockAnswerer{}
	v.On("IsVerified", "u@test.com").Return(true)
	a.On("ChatCompletion", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("groq API status 500"))

	svc := NewService(v, a, writeProfile(t, "profile"))
	_, err := svc.Ask(context.Background(), "u@test.com", "Anything?")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
	assert.Contains(t, err.Error(), "Groq API error")
}
