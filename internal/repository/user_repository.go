package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolworks/campus-backend/internal/model"
)

// UserRepository handles user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// ListByCourse retrieves all students of a course, each joined with its
// account's username, role and status. A course with no students (or an
// unknown course id) yields an empty slice, not an error.
func (r *UserRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.user_id, u.stud_id, u.f_name, u.m_name, u.l_name,
		        u.account_id, u.course_id, u.created_at, u.updated_at,
		        a.username, a.role, a.status
		 FROM users u
		 JOIN accounts a ON u.account_id = a.account_id
		 WHERE u.course_id = $1
		 ORDER BY u.l_name, u.f_name`,
		courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(
			&s.ID, &s.StudentID, &s.FirstName, &s.MiddleName, &s.LastName,
			&s.AccountID, &s.CourseID, &s.CreatedAt, &s.UpdatedAt,
			&s.Username, &s.Role, &s.Status,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
