package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
)

type QuizHandler struct {
	BaseHandler
	quizService services.QuizService
}

func NewQuizHandler(quizService services.QuizService, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
	}
}

// Generate proposes MCQ items for review
// @Summary Generate quiz questions
// @Description Generates MCQ candidates from selected course files; nothing is persisted
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body services.ProposeQuizRequest true "Generation parameters"
// @Success 200 {object} SuccessResponse{data=services.ProposeQuizResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /quizzes/generate [post]
func (h *QuizHandler) Generate(c *gin.Context) {
	h.LogRequest(c, "Generating quiz questions")

	var req services.ProposeQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.quizService.Propose(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Quiz questions generated successfully",
		Data:    resp,
	})
}

// Commit persists reviewed MCQ items into a quiz
// @Summary Commit quiz
// @Description Stores reviewed questions into a quiz container, reporting any skipped items
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body services.CommitQuizRequest true "Commit payload"
// @Success 201 {object} SuccessResponse{data=services.CommitQuizResponse}
// @Failure 400 {object} ErrorResponse
// @Router /quizzes/commit [post]
func (h *QuizHandler) Commit(c *gin.Context) {
	h.LogRequest(c, "Committing quiz")

	var req services.CommitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.quizService.Commit(c.Request.Context(), &req, c.GetHeader("X-User-ID"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Quiz committed successfully",
		Data:    resp,
	})
}

// Export renders a quiz as a spreadsheet
// @Summary Export quiz
// @Tags quizzes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Quiz ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{id}/export [get]
func (h *QuizHandler) Export(c *gin.Context) {
	quizID, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting quiz", "quiz_id", quizID)

	data, name, err := h.quizService.ExportXLSX(c.Request.Context(), quizID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
