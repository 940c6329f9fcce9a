package service_test

import (
	"context"
	"testing"

	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/stretchr/testify/require"
)

type fakeCourseStore struct {
	courses    []model.Course
	auditTrail []model.AuditLogEntry
	nextID     int
	failWith   error
}

func (f *fakeCourseStore) List(_ context.Context) ([]model.Course, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.courses, nil
}

func (f *fakeCourseStore) CreateWithAudit(_ context.Context, c *model.Course, entry *model.AuditLogEntry) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	c.ID = f.nextID
	f.courses = append(f.courses, *c)
	f.auditTrail = append(f.auditTrail, *entry)
	return nil
}

type fakeRosterStore struct {
	students map[int][]model.Student
}

func (f *fakeRosterStore) ListByCourse(_ context.Context, courseID int) ([]model.Student, error) {
	return f.students[courseID], nil
}

func TestCourseListEmptyIsNotNil(t *testing.T) {
	svc := service.NewCourseService(&fakeCourseStore{}, &fakeRosterStore{})

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, courses)
	require.Empty(t, courses)
}

func TestCourseCreateWritesAuditEntry(t *testing.T) {
	store := &fakeCourseStore{}
	svc := service.NewCourseService(store, &fakeRosterStore{})

	course := &model.Course{Name: "Software Engineering", Acronym: "SE"}
	err := svc.Create(context.Background(), course, model.Actor{ID: 3, Name: "dean"})
	require.NoError(t, err)
	require.Equal(t, 1, course.ID)

	require.Len(t, store.auditTrail, 1)
	require.Equal(t, 3, store.auditTrail[0].ActorID)
	require.Equal(t, "dean", store.auditTrail[0].ActorName)
	require.Equal(t, "Added new course: Software Engineering (SE)", store.auditTrail[0].Message)
}

func TestListStudentsUnknownCourseIsEmptyArray(t *testing.T) {
	svc := service.NewCourseService(&fakeCourseStore{}, &fakeRosterStore{students: map[int][]model.Student{}})

	students, err := svc.ListStudents(context.Background(), 12345)
	require.NoError(t, err)
	require.NotNil(t, students)
	require.Empty(t, students)
}
