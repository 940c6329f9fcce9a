package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/schoolworks/campus-backend/internal/middleware"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/repository"
	"github.com/schoolworks/campus-backend/internal/response"
	"github.com/schoolworks/campus-backend/internal/service"
	"github.com/schoolworks/campus-backend/internal/validator"
)

// CourseProvider is the course surface this handler needs.
// *service.CourseService satisfies it; tests supply doubles.
type CourseProvider interface {
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, course *model.Course, actor model.Actor) error
	ListStudents(ctx context.Context, courseID int) ([]model.Student, error)
}

// LogoStore persists uploaded course logos.
type LogoStore interface {
	SaveLogo(file multipart.File, header *multipart.FileHeader) (string, error)
}

// CourseHandler handles admin-facing course management.
type CourseHandler struct {
	courses CourseProvider
	logos   LogoStore
	log     zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses CourseProvider, logos LogoStore, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, logos: logos, log: log}
}

// ListCourses godoc
// GET /api/v1/admin/courses
// Lists all courses.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("course listing failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// CreateCourse godoc
// POST /api/v1/admin/courses
// Creates a new course. Accepts JSON or multipart form-data; the multipart
// form may carry an optional logo file.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor.ID == 0 {
		response.Fail(c, http.StatusUnauthorized, response.ErrAdminNotLoggedIn)
		return
	}

	var req model.CreateCourseRequest
	var logo *string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if fields := validator.BindForm(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
		path, ok := h.saveLogoIfPresent(c)
		if !ok {
			return // Reply already written.
		}
		logo = path
	} else {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}

	course := &model.Course{
		Name:    req.Name,
		Acronym: req.Acronym,
		Logo:    logo,
	}

	if err := h.courses.Create(c.Request.Context(), course, actor); err != nil {
		if repository.IsUniqueViolation(err) {
			response.Fail(c, http.StatusBadRequest, response.ErrCourseExists)
			return
		}
		h.log.Error().Err(err).Str("course", req.Name).Msg("course creation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":   "Course added",
		"course_id": course.ID,
	})
}

// ListStudents godoc
// GET /api/v1/admin/students?course_id=N
// Lists all students enrolled in a course, each with its account's
// username, role and status. An unknown course yields an empty array.
func (h *CourseHandler) ListStudents(c *gin.Context) {
	courseIDStr := c.Query("course_id")
	if courseIDStr == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrCourseIDRequired)
		return
	}

	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	students, err := h.courses.ListStudents(c.Request.Context(), courseID)
	if err != nil {
		h.log.Error().Err(err).Int("course_id", courseID).Msg("student listing failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// saveLogoIfPresent stores the optional multipart logo. Returns the stored
// path (nil when no file was sent) and whether handling may continue; on a
// rejected upload the error reply has already been written.
func (h *CourseHandler) saveLogoIfPresent(c *gin.Context) (*string, bool) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return nil, false
	}
	defer file.Close()

	path, err := h.logos.SaveLogo(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		default:
			h.log.Error().Err(err).Msg("logo upload failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return nil, false
	}
	return &path, true
}
