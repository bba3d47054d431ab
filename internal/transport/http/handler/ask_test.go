package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio-qa-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockQuestionSvc struct{ mock.Mock }

func (m *mockQuestionSvc) Ask(ctx context.Context, email, question string) (string, error) {
	args := m.Called(ctx, email, question)
	return args.String(0), args.Error(1)
}

// --- helpers ---

func newAskRouter(svc *mockQuestionSvc) http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/ask", NewAskHandler(svc).Ask)
	return r
}

// --- tests ---

func TestAsk_HappyPath(t *testing.T) {
	svc := &mockQuestionSvc{}
	svc.On("Ask", mock.Anything, "u@test.com", "What do you build?").
		Return("Go services.", nil)

	rec := doJSON(t, newAskRouter(svc), http.MethodPost, "/v1/ask",
		map[string]string{"email": "u@test.com", "question": "What do you build?"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var env AskEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, "Go services.", env.Answer)
}

func TestAsk_UnverifiedEmail_Returns401(t *testing.T) {
	svc := &mockQuestionSvc{}
	svc.On("Ask", mock.Anything, "u@test.com", "Hello?").
		Return("", fmt.Errorf("email not verified: %w", domain.ErrUnauthorized))

	rec := doJSON(t, newAskRouter(svc), http.MethodPost, "/v1/ask",
		map[string]string{"email": "u@test.com", "question": "Hello?"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAsk_MissingQuestion_Returns400(t *testing.T) {
	svc := &mockQuestionSvc{}

	rec := doJSON(t, newAskRouter(svc), http.MethodPost, "/v1/ask",
		map[string]string{"email": "u@test.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything, mock.Anything)
}

func TestAsk_UpstreamFailure_Returns502(t *testing.T) {
	svc := &mockQuestionSvc{}
	svc.On("Ask", mock.Anything, "u@test.com", "Hello?").
		Return("", fmt.Errorf("Groq API error: boom: %w", domain.ErrUnavailable))

	rec := doJSON(t, newAskRouter(svc), http.MethodPost, "/v1/ask",
		map[string]string{"email": "u@test.com", "question": "Hello?"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error, "Groq API error")
}

func TestAsk_InternalFailure_Returns500(t *testing.T) {
	svc := &mockQuestionSvc{}
	svc.On("Ask", mock.Anything, "u@test.com", "Hello?").
		Return("", fmt.Errorf("read profile text ./information.txt: no such file"))

	rec := doJSON(t, newAskRouter(svc), http.MethodPost, "/v1/ask",
		map[string]string{"email": "u@test.com", "question": "Hello?"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
