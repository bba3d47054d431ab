package verification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/portfolio-qa-api/internal/domain"
)

// Store is the minimal interface the service requires from the OTP store.
type Store interface {
	Issue(email string) (*domain.OTPRecord, error)
	Validate(email, submitted string) error
	IsVerified(email string) bool
}

// Sender delivers a code to an email address. Implementations: SMTP mailer,
// SES sender.
type Sender interface {
	SendCode(to, code string) error
}

type Service interface {
	// Request issues a fresh OTP for the email and delivers it. A repeated
	// Request is the resend path: the newly issued code replaces any earlier
	// one, so only the latest delivered code is ever valid.
	Request(ctx context.Context, email string) error
	// Confirm validates the submitted code and, on success, marks the email
	// verified for the remainder of the process lifetime.
	Confirm(ctx context.Context, email, otp string) error
	IsVerified(email string) bool
}

type service struct {
	store  Store
	sender Sender
}

func NewService(store Store, sender Sender) Service {
	return &service{store: store, sender: sender}
}

func (s *service) Request(_ context.Context, email string) error {
	rec, err := s.store.Issue(email)
	if err != nil {
		return err
	}

	// Delivery happens after Issue has committed and outside any store lock.
	// On failure the record stays valid: the store is not rolled back, and a
	// resend simply re-issues rather than double-sending this code.
	if err := s.sender.SendCode(rec.Email, rec.Code); err != nil {
		slog.Error("OTP delivery failed", "record_id", rec.ID, "email", rec.Email, "err", err)
		return fmt.Errorf("could not send verification email: %w", domain.ErrDeliveryFailed)
	}

	slog.Info("OTP issued", "record_id", rec.ID, "email", rec.Email, "expires_at", rec.ExpiresAt)
	return nil
}

func (s *service) Confirm(_ context.Context, email, otp string) error {
	if err := s.store.Validate(email, otp); err != nil {
		return err
	}
	slog.Info("email verified", "email", email)
	return nil
}

func (s *service) IsVerified(email string) bool {
	return s.store.IsVerified(email)
}
