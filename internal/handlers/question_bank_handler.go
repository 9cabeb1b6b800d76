package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
)

type QuestionBankHandler struct {
	BaseHandler
	bankService services.QuestionBankService
}

func NewQuestionBankHandler(bankService services.QuestionBankService, logger utils.Logger) *QuestionBankHandler {
	return &QuestionBankHandler{
		BaseHandler: NewBaseHandler(logger),
		bankService: bankService,
	}
}

// Generate creates a new question bank artifact
// @Summary Generate question bank
// @Description Generates a free-text question bank PDF from selected course files
// @Tags question-banks
// @Accept json
// @Produce json
// @Param request body services.GenerateQuestionBankRequest true "Generation parameters"
// @Success 201 {object} SuccessResponse{data=services.GenerateQuestionBankResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /question-banks/generate [post]
func (h *QuestionBankHandler) Generate(c *gin.Context) {
	h.LogRequest(c, "Generating question bank")

	var req services.GenerateQuestionBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.bankService.Generate(c.Request.Context(), &req, h.actorID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Question bank generated successfully",
		Data:    resp,
	})
}

// Download streams a generated question bank PDF
// @Summary Download question bank
// @Tags question-banks
// @Produce application/pdf
// @Param id path string true "Artifact ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /question-banks/{id}/download [get]
func (h *QuestionBankHandler) Download(c *gin.Context) {
	artifactID := ParseStringIDParam(c, "id")
	if artifactID == "" {
		return
	}

	h.LogRequest(c, "Downloading question bank", "artifact_id", artifactID)

	artifact, err := h.bankService.Download(c.Request.Context(), artifactID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, artifact.FileName))
	c.Data(http.StatusOK, "application/pdf", artifact.Content)
}

// Publish copies a question bank PDF into its course
// @Summary Publish question bank
// @Description Places the bank PDF into a per-type course section, creating the section on first use
// @Tags question-banks
// @Produce json
// @Param id path string true "Artifact ID"
// @Success 200 {object} SuccessResponse{data=services.PublishQuestionBankResponse}
// @Failure 404 {object} ErrorResponse
// @Router /question-banks/{id}/publish [post]
func (h *QuestionBankHandler) Publish(c *gin.Context) {
	artifactID := ParseStringIDParam(c, "id")
	if artifactID == "" {
		return
	}

	h.LogRequest(c, "Publishing question bank", "artifact_id", artifactID)

	resp, err := h.bankService.Publish(c.Request.Context(), artifactID, h.actorID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Question bank published to course",
		Data:    resp,
	})
}

// actorID identifies the calling user for audit fields. The value arrives
// from the authenticating proxy.
func (h *QuestionBankHandler) actorID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
