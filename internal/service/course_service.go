package service

import (
	"context"
	"fmt"

	"github.com/schoolworks/campus-backend/internal/model"
)

// CourseStore is the persistence surface CourseService needs.
// *repository.CourseRepository satisfies it; tests supply doubles.
type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	CreateWithAudit(ctx context.Context, c *model.Course, entry *model.AuditLogEntry) error
}

// RosterStore lists the students enrolled in a course.
type RosterStore interface {
	ListByCourse(ctx context.Context, courseID int) ([]model.Student, error)
}

// CourseService handles course business logic.
type CourseService struct {
	courseStore CourseStore
	rosterStore RosterStore
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseStore CourseStore, rosterStore RosterStore) *CourseService {
	return &CourseService{courseStore: courseStore, rosterStore: rosterStore}
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Create inserts a new course attributed to the acting admin. The audit
// entry commits atomically with the insert. A duplicate name or acronym
// surfaces as the store's unique violation error.
func (s *CourseService) Create(ctx context.Context, course *model.Course, actor model.Actor) error {
	entry := &model.AuditLogEntry{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Message:   fmt.Sprintf("Added new course: %s (%s)", course.Name, course.Acronym),
	}
	return s.courseStore.CreateWithAudit(ctx, course, entry)
}

// ListStudents retrieves the roster of a course. An unknown course id yields
// an empty slice, not an error.
func (s *CourseService) ListStudents(ctx context.Context, courseID int) ([]model.Student, error) {
	students, err := s.rosterStore.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}
