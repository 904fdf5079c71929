package services

import (
	"context"
	"fmt"

	"github.com/evkarev/cozydiary/internal/common"
	"github.com/evkarev/cozydiary/internal/logging"
	"github.com/evkarev/cozydiary/internal/repositories/records"
	"golang.org/x/crypto/bcrypt"
)

// AuthService gates access to the diary behind the single shared unlock
// password. It owns exactly one stored record: the bcrypt hash of that
// password. bcrypt bundles a fresh random salt and the cost factor into one
// opaque string, and its comparison is constant-time.
//
// There is deliberately no attempt throttling; repeated failed verifications
// are allowed.
type AuthService struct {
	records records.Repository
	cost    int
	log     logging.Logger
}

// NewAuthService constructs the gate over the given record store. Costs
// outside bcrypt's supported range fall back to bcrypt.DefaultCost.
func NewAuthService(repo records.Repository, cost int, log logging.Logger) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{records: repo, cost: cost, log: log}
}

// HasCredential reports whether an unlock password has ever been set.
func (a *AuthService) HasCredential(ctx context.Context) (bool, error) {
	hash, err := a.records.Get(ctx, records.CredentialRecord)
	if err != nil {
		return false, fmt.Errorf("failed to read credential record: %w", err)
	}
	return len(hash) > 0, nil
}

// SetCredential hashes the password and persists it, overwriting any prior
// credential. The password bytes are not retained; callers may wipe them
// afterwards.
func (a *AuthService) SetCredential(ctx context.Context, password []byte) error {
	if len(password) == 0 {
		return fmt.Errorf("%w: password must not be empty", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword(password, a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.records.Set(ctx, records.CredentialRecord, hash); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	a.log.Info(ctx, "credential set")
	return nil
}

// VerifyCredential reports whether the password matches the stored
// credential. It fails closed: a missing credential, a storage error, or a
// mismatch all yield false, never an error.
func (a *AuthService) VerifyCredential(ctx context.Context, password []byte) bool {
	hash, err := a.records.Get(ctx, records.CredentialRecord)
	if err != nil {
		a.log.Warn(ctx, "credential read failed during verify", "error", err)
		return false
	}
	if len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

// ChangeCredential replaces the stored credential after verifying the
// current one. Returns common.ErrCredentialMismatch when the current
// password does not match.
func (a *AuthService) ChangeCredential(ctx context.Context, current, next []byte) error {
	if !a.VerifyCredential(ctx, current) {
		return common.ErrCredentialMismatch
	}
	return a.SetCredential(ctx, next)
}
