package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/campus-backend/internal/model"
)

// AccountRepository handles account data access.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetStudentAccountByUserID looks up the account and owning user's identity
// for a status transition or password reset. Returns ErrNotFound if no such
// user exists.
func (r *AccountRepository) GetStudentAccountByUserID(ctx context.Context, userID int) (*model.StudentAccount, error) {
	sa := &model.StudentAccount{UserID: userID}
	err := r.pool.QueryRow(ctx,
		`SELECT u.stud_id, u.f_name, u.m_name, u.l_name, a.status, a.account_id
		 FROM accounts a
		 JOIN users u ON a.account_id = u.account_id
		 WHERE u.user_id = $1`,
		userID,
	).Scan(&sa.StudentID, &sa.FirstName, &sa.MiddleName, &sa.LastName, &sa.Status, &sa.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sa, nil
}

// GetAdminByUsername retrieves an admin account by its username.
// Returns ErrNotFound if the username does not exist or is not an admin.
func (r *AccountRepository) GetAdminByUsername(ctx context.Context, username string) (*model.Account, error) {
	a := &model.Account{}
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, username, role, status, password, created_at, updated_at
		 FROM accounts WHERE username = $1 AND role = 'admin'`,
		username,
	).Scan(&a.ID, &a.Username, &a.Role, &a.Status, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetAdminByID retrieves an admin account by id.
func (r *AccountRepository) GetAdminByID(ctx context.Context, accountID int) (*model.Account, error) {
	a := &model.Account{}
	err := r.pool.QueryRow(ctx,
		`SELECT account_id, username, role, status, password, created_at, updated_at
		 FROM accounts WHERE account_id = $1 AND role = 'admin'`,
		accountID,
	).Scan(&a.ID, &a.Username, &a.Role, &a.Status, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// TransitionStatusWithAudit flips an account's status from one value to
// another as a single conditional UPDATE, and appends the audit entry in the
// same transaction. Returns false when the account was not in the expected
// status, which callers report as the "already ..." case.
func (r *AccountRepository) TransitionStatusWithAudit(
	ctx context.Context,
	accountID int,
	from, to model.AccountStatus,
	entry *model.AuditLogEntry,
) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET status = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE account_id = $2 AND status = $3`,
		to, accountID, from)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := insertAuditLog(ctx, tx, entry); err != nil {
		return false, fmt.Errorf("audit log: %w", err)
	}

	return true, tx.Commit(ctx)
}

// ResetPasswordWithAudit overwrites an account's password hash and appends
// the audit entry in the same transaction.
func (r *AccountRepository) ResetPasswordWithAudit(
	ctx context.Context,
	accountID int,
	passwordHash string,
	entry *model.AuditLogEntry,
) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET password = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE account_id = $2`,
		passwordHash, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := insertAuditLog(ctx, tx, entry); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}

	return tx.Commit(ctx)
}

// CreateAdmin inserts an admin account, returning its id.
// A duplicate username surfaces as the driver error (IsUniqueViolation).
func (r *AccountRepository) CreateAdmin(ctx context.Context, username, passwordHash string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO accounts (username, role, status, password)
		 VALUES ($1, 'admin', 'active', $2)
		 RETURNING account_id`,
		username, passwordHash,
	).Scan(&id)
	return id, err
}

// CreateStudent inserts a student account plus its user row in one
// transaction, returning the new user id.
func (r *AccountRepository) CreateStudent(ctx context.Context, u *model.User, username, passwordHash string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var accountID int
	err = tx.QueryRow(ctx,
		`INSERT INTO accounts (username, role, status, password)
		 VALUES ($1, 'student', 'active', $2)
		 RETURNING account_id`,
		username, passwordHash,
	).Scan(&accountID)
	if err != nil {
		return err
	}

	u.AccountID = accountID
	err = tx.QueryRow(ctx,
		`INSERT INTO users (stud_id, f_name, m_name, l_name, account_id, course_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING user_id, created_at, updated_at`,
		u.StudentID, u.FirstName, u.MiddleName, u.LastName, accountID, u.CourseID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
