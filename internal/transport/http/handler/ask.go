package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/portfolio-qa-api/internal/application/question"
	"github.com/portfolio-qa-api/internal/domain"
	"github.com/portfolio-qa-api/internal/pkg/validate"
)

// AskHandler handles the privileged question endpoint. It is gated on the
// verified-set, not on sessions or tokens.
type AskHandler struct {
	svc question.Service
}

func NewAskHandler(svc question.Service) *AskHandler {
	return &AskHandler{svc: svc}
}

func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var body domain.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	answer, err := h.svc.Ask(r.Context(), body.Email, body.Question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, domain.ErrBadRequest):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnavailable):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, AskEnvelope{Answer: answer})
}
