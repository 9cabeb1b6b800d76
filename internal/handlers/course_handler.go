package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
)

type CourseHandler struct {
	BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   NewBaseHandler(logger),
		courseService: courseService,
	}
}

// ListCourses returns the visible courses
// @Summary List courses
// @Description Returns all visible courses for the picker UI
// @Tags courses
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	h.LogRequest(c, "Listing courses")

	courses, err := h.courseService.ListCourses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Courses retrieved successfully",
		Data:    courses,
	})
}

// ListCourseFiles returns a course's sections with selectable files
// @Summary List course files
// @Description Returns the course sections with their document files, grouped for the file picker
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/files [get]
func (h *CourseHandler) ListCourseFiles(c *gin.Context) {
	courseID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Listing course files", "course_id", courseID)

	sections, err := h.courseService.ListCourseFiles(c.Request.Context(), courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Course files retrieved successfully",
		Data:    sections,
	})
}
