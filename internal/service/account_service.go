package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Account state errors mapped to API replies by the handler.
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyDisabled = errors.New("account is already disabled")
	ErrAlreadyActive   = errors.New("account is already active")
)

// AccountStore is the persistence surface AccountService needs.
// *repository.AccountRepository satisfies it; tests supply doubles.
type AccountStore interface {
	GetStudentAccountByUserID(ctx context.Context, userID int) (*model.StudentAccount, error)
	TransitionStatusWithAudit(ctx context.Context, accountID int, from, to model.AccountStatus, entry *model.AuditLogEntry) (bool, error)
	ResetPasswordWithAudit(ctx context.Context, accountID int, passwordHash string, entry *model.AuditLogEntry) error
}

// AccountService handles account lifecycle actions: status transitions and
// password resets, each audited under the acting admin's identity.
type AccountService struct {
	accountStore AccountStore
	bcryptCost   int
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountStore AccountStore, bcryptCost int) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{accountStore: accountStore, bcryptCost: bcryptCost}
}

// Disable transitions a student's account from active to disabled.
// Returns ErrStudentNotFound when no user matches, ErrAlreadyDisabled when
// the account is not active (so a repeated call appends no audit entry).
func (s *AccountService) Disable(ctx context.Context, userID int, actor model.Actor) error {
	return s.transition(ctx, userID, actor,
		model.AccountStatusActive, model.AccountStatusDisabled,
		"Disabled account of student", ErrAlreadyDisabled)
}

// Enable is the exact mirror of Disable: disabled back to active.
func (s *AccountService) Enable(ctx context.Context, userID int, actor model.Actor) error {
	return s.transition(ctx, userID, actor,
		model.AccountStatusDisabled, model.AccountStatusActive,
		"Enabled account of student", ErrAlreadyActive)
}

func (s *AccountService) transition(
	ctx context.Context,
	userID int,
	actor model.Actor,
	from, to model.AccountStatus,
	verb string,
	alreadyErr error,
) error {
	sa, err := s.accountStore.GetStudentAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	entry := &model.AuditLogEntry{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Message:   fmt.Sprintf("%s: %s (Student ID: %s)", verb, sa.FullName(), sa.StudentID),
	}

	// The update matches on the expected current status, so a concurrent
	// request that won the race leaves this one with zero rows affected.
	ok, err := s.accountStore.TransitionStatusWithAudit(ctx, sa.AccountID, from, to, entry)
	if err != nil {
		return err
	}
	if !ok {
		return alreadyErr
	}
	return nil
}

// ResetPassword hashes the new password and overwrites the account's hash,
// appending the audit entry in the same transaction. Presence and length
// validation happen at the handler; this assumes a well-formed password.
func (s *AccountService) ResetPassword(ctx context.Context, userID int, newPassword string, actor model.Actor) error {
	sa, err := s.accountStore.GetStudentAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	entry := &model.AuditLogEntry{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Message:   fmt.Sprintf("Reset password for student: %s (user_id: %d)", sa.FullName(), userID),
	}

	return s.accountStore.ResetPasswordWithAudit(ctx, sa.AccountID, string(hash), entry)
}
