package model

import (
	"strings"
	"time"
)

// User represents a person registered in the system. Every user is backed by
// exactly one account; students additionally belong to a course.
type User struct {
	ID         int       `json:"user_id"`
	StudentID  string    `json:"stud_id"`
	FirstName  string    `json:"f_name"`
	MiddleName string    `json:"m_name"`
	LastName   string    `json:"l_name"`
	AccountID  int       `json:"account_id"`
	CourseID   int       `json:"course_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FullName joins the non-empty name parts with single spaces, so a missing
// middle name does not produce a double space.
func (u *User) FullName() string {
	return JoinNameParts(u.FirstName, u.MiddleName, u.LastName)
}

// Student is the roster projection of a user joined with its account.
type Student struct {
	User
	Username string        `json:"username"`
	Role     AccountRole   `json:"role"`
	Status   AccountStatus `json:"status"`
}

// StudentAccount is the lookup projection used by account status transitions
// and password resets: the owning user's identity plus account state.
type StudentAccount struct {
	UserID     int
	StudentID  string
	FirstName  string
	MiddleName string
	LastName   string
	Status     AccountStatus
	AccountID  int
}

// FullName joins the non-empty name parts with single spaces.
func (s *StudentAccount) FullName() string {
	return JoinNameParts(s.FirstName, s.MiddleName, s.LastName)
}

// JoinNameParts concatenates the given name parts, skipping empty ones.
func JoinNameParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}
	return strings.Join(nonEmpty, " ")
}
