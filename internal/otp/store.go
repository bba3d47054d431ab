// Package otp holds the in-memory OTP lifecycle state: one pending code per
// email address plus the set of emails that completed verification. All state
// is process-local and lost on restart — a documented property of the system,
// not a defect.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/portfolio-qa-api/internal/domain"
	"github.com/portfolio-qa-api/internal/pkg/id"
)

// codeSpace is the number of possible codes; codes are zero-padded to 6 digits.
const codeSpace = 1000000

// Store is the single source of truth for pending and completed verifications.
// One mutex guards both maps so every lookup-then-mutate sequence is atomic:
// two concurrent Validate calls for the same email can never both consume one
// code, and an Issue racing a Validate leaves either the old or the new record
// intact, never a torn mix. No I/O happens under the lock.
//
// The verified set never expires entries, so it grows with the number of
// distinct verified emails over the process lifetime. Revoke is the only way
// to shrink it.
type Store struct {
	mu       sync.Mutex
	pending  map[string]*domain.OTPRecord
	verified map[string]struct{}
	ttl      time.Duration

	now func() time.Time // overridable in tests
}

// NewStore creates a store whose codes are valid for ttl and starts a janitor
// goroutine that sweeps expired records every sweepInterval to bound memory.
// Lazy expiry on read remains the correctness mechanism; the janitor is only
// a memory bound. A non-positive sweepInterval disables the janitor.
func NewStore(ttl, sweepInterval time.Duration) *Store {
	s := &Store{
		pending:  make(map[string]*domain.OTPRecord),
		verified: make(map[string]struct{}),
		ttl:      ttl,
		now:      time.Now,
	}
	if sweepInterval > 0 {
		go s.janitor(sweepInterval)
	}
	return s
}

// Normalize canonicalizes an email address for use as a store key.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Issue generates a uniformly random 6-digit code (leading zeros kept) and
// records it for the email, overwriting any previously issued code for the
// same address. Only the most recently issued code is ever valid. Delivery is
// the caller's responsibility and happens after Issue has committed.
func (s *Store) Issue(email string) (*domain.OTPRecord, error) {
	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	key := Normalize(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec := &domain.OTPRecord{
		ID:        id.New(),
		Email:     key,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.pending[key] = rec
	return rec, nil
}

// Validate checks the submitted code against the pending record for the email.
//
//   - No record → ErrNotFound.
//   - Record past its TTL → the record is removed and ErrExpired is returned.
//   - Wrong code → ErrMismatch; the record is kept so the user can retry
//     until expiry or until a new code is issued.
//   - Match → the record is consumed (single use) and the email joins the
//     verified set.
func (s *Store) Validate(email, submitted string) error {
	key := Normalize(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.pending[key]
	if !ok {
		return fmt.Errorf("no OTP found for this email or OTP has expired: %w", domain.ErrNotFound)
	}
	if rec.Expired(s.now()) {
		delete(s.pending, key)
		return fmt.Errorf("OTP has expired, request a new one: %w", domain.ErrExpired)
	}
	// Codes are numeric strings; exact match only.
	if rec.Code != submitted {
		return fmt.Errorf("invalid OTP, try again: %w", domain.ErrMismatch)
	}

	delete(s.pending, key)
	s.verified[key] = struct{}{}
	return nil
}

// IsVerified reports whether the email completed verification during this
// process lifetime. Verification does not time out once granted.
func (s *Store) IsVerified(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.verified[Normalize(email)]
	return ok
}

// Revoke removes an email from the verified set. The next privileged call for
// that address will require a fresh verification.
func (s *Store) Revoke(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.verified, Normalize(email))
}

// PendingCount returns the number of outstanding (possibly expired but not yet
// swept) records.
func (s *Store) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// janitor sweeps expired records periodically.
func (s *Store) janitor(interval time.Duration) {
	for {
		time.Sleep(interval)
		s.sweep()
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, rec := range s.pending {
		if rec.Expired(now) {
			delete(s.pending, key)
		}
	}
}

// generateCode draws a uniform value in [0, codeSpace) so every 6-digit string
// from 000000 to 999999 is equally likely.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
