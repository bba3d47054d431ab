package domain

import "time"

// OTPRecord is the single outstanding verification code for an email address.
// Keyed by the normalized (lowercased, trimmed) email; at most one record per
// email exists at any time — re-issuing overwrites the previous one.
type OTPRecord struct {
	ID        string    `json:"id"` // ULID, used for log correlation only
	Email     string    `json:"email"`
	Code      string    `json:"-"` // never serialized or logged
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the record is past its TTL at the given instant.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// RequestOTPRequest starts a verification flow for an email address.
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmOTPRequest completes a verification flow.
type ConfirmOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// AskRequest is a question for the profile assistant. The email must have
// completed OTP verification during this process lifetime.
type AskRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Question string `json:"question" validate:"required"`
}
