package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/schoolworks/campus-backend/internal/handler"
	"github.com/schoolworks/campus-backend/internal/middleware"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/schoolworks/campus-backend/internal/validator"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	m.Run()
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// asAdmin attaches admin claims the way the JWT middleware would.
func asAdmin(c *gin.Context) {
	c.Set(middleware.ContextKeyClaims, &service.Claims{AccountID: 1, Username: "root"})
	c.Next()
}

type fakeCourseProvider struct {
	courses   []model.Course
	students  map[int][]model.Student
	createErr error
	listErr   error
	queried   bool
}

func (f *fakeCourseProvider) List(_ context.Context) ([]model.Course, error) {
	f.queried = true
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.courses == nil {
		return []model.Course{}, nil
	}
	return f.courses, nil
}

func (f *fakeCourseProvider) Create(_ context.Context, course *model.Course, _ model.Actor) error {
	f.queried = true
	if f.createErr != nil {
		return f.createErr
	}
	course.ID = 11
	return nil
}

func (f *fakeCourseProvider) ListStudents(_ context.Context, courseID int) ([]model.Student, error) {
	f.queried = true
	if f.listErr != nil {
		return nil, f.listErr
	}
	students := f.students[courseID]
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

type fakeLogoStore struct{}

func (fakeLogoStore) SaveLogo(multipart.File, *multipart.FileHeader) (string, error) {
	return "/uploads/logo.png", nil
}

func newCourseRouter(provider *fakeCourseProvider) *gin.Engine {
	h := handler.NewCourseHandler(provider, fakeLogoStore{}, zerolog.Nop())
	r := gin.New()
	admin := r.Group("/", asAdmin)
	admin.GET("/courses", h.ListCourses)
	admin.POST("/courses", h.CreateCourse)
	admin.GET("/students", h.ListStudents)
	return r
}

func TestListCourses(t *testing.T) {
	logo := "/uploads/cs.png"
	provider := &fakeCourseProvider{courses: []model.Course{
		{ID: 1, Name: "Computer Science", Acronym: "CS", Logo: &logo},
	}}
	r := newCourseRouter(provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	var courses []model.Course
	require.NoError(t, json.Unmarshal(env.Data["courses"], &courses))
	require.Len(t, courses, 1)
	require.Equal(t, "CS", courses[0].Acronym)
}

func TestCreateCourse(t *testing.T) {
	provider := &fakeCourseProvider{}
	r := newCourseRouter(provider)

	body, _ := json.Marshal(gin.H{"course_name": "Software Engineering", "acronym": "SE"})
	req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	require.JSONEq(t, `11`, string(env.Data["course_id"]))
	require.JSONEq(t, `"Course added"`, string(env.Data["message"]))
}

func TestCreateCourseDuplicate(t *testing.T) {
	provider := &fakeCourseProvider{createErr: &pgconn.PgError{Code: "23505"}}
	r := newCourseRouter(provider)

	body, _ := json.Marshal(gin.H{"course_name": "Software Engineering", "acronym": "SE"})
	req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, "Course name or acronym already exists", env.Error.Message)
}

func TestCreateCourseStoreFailure(t *testing.T) {
	provider := &fakeCourseProvider{createErr: errors.New("connection reset")}
	r := newCourseRouter(provider)

	body, _ := json.Marshal(gin.H{"course_name": "Software Engineering", "acronym": "SE"})
	req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	// The raw store error must never reach the caller.
	require.Equal(t, "Internal server error", env.Error.Message)
}

func TestCreateCourseWithoutAdmin(t *testing.T) {
	h := handler.NewCourseHandler(&fakeCourseProvider{}, fakeLogoStore{}, zerolog.Nop())
	r := gin.New()
	r.POST("/courses", h.CreateCourse) // No claims middleware.

	body, _ := json.Marshal(gin.H{"course_name": "Software Engineering", "acronym": "SE"})
	req := httptest.NewRequest(http.MethodPost, "/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListStudentsRequiresCourseID(t *testing.T) {
	provider := &fakeCourseProvider{}
	r := newCourseRouter(provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, "Course ID is required", env.Error.Message)
	require.False(t, provider.queried, "must reject before any store access")
}

func TestListStudentsUnknownCourse(t *testing.T) {
	provider := &fakeCourseProvider{students: map[int][]model.Student{}}
	r := newCourseRouter(provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students?course_id=999", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.JSONEq(t, `[]`, string(env.Data["students"]))
}

func TestListStudentsWithRoster(t *testing.T) {
	provider := &fakeCourseProvider{students: map[int][]model.Student{
		3: {
			{
				User:     model.User{ID: 9, StudentID: "S0009", FirstName: "Ada", LastName: "Lovelace", CourseID: 3},
				Username: "ada",
				Role:     model.AccountRoleStudent,
				Status:   model.AccountStatusActive,
			},
		},
	}}
	r := newCourseRouter(provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students?course_id=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	var students []model.Student
	require.NoError(t, json.Unmarshal(env.Data["students"], &students))
	require.Len(t, students, 1)
	require.Equal(t, "ada", students[0].Username)
	require.Equal(t, model.AccountStatusActive, students[0].Status)
}
