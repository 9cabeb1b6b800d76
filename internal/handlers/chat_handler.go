package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
)

type ChatHandler struct {
	BaseHandler
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService, logger utils.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		chatService: chatService,
	}
}

// Chat forwards a free-form prompt to the generation backend
// @Summary Teaching assistant chat
// @Description Sends a prompt to the assistant in the requested mode and returns the raw reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body services.ChatRequest true "Prompt and optional mode"
// @Success 200 {object} SuccessResponse{data=services.ChatResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	h.LogRequest(c, "Handling chat prompt")

	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Chat reply generated successfully",
		Data:    resp,
	})
}
