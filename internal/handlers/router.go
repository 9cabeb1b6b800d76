package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursegen-service/internal/services"
	"github.com/campuskit/coursegen-service/internal/utils"
)

type HandlerManager struct {
	courseHandler       *CourseHandler
	questionBankHandler *QuestionBankHandler
	quizHandler         *QuizHandler
	chatHandler         *ChatHandler
}

func NewHandlerManager(
	courseService services.CourseService,
	bankService services.QuestionBankService,
	quizService services.QuizService,
	chatService services.ChatService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		courseHandler:       NewCourseHandler(courseService, logger),
		questionBankHandler: NewQuestionBankHandler(bankService, logger),
		quizHandler:         NewQuizHandler(quizService, logger),
		chatHandler:         NewChatHandler(chatService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		courses := v1.Group("/courses")
		{
			courses.GET("", hm.courseHandler.ListCourses)
			courses.GET("/:id/files", hm.courseHandler.ListCourseFiles)
		}

		questionBanks := v1.Group("/question-banks")
		{
			questionBanks.POST("/generate", hm.questionBankHandler.Generate)
			questionBanks.GET("/:id/download", hm.questionBankHandler.Download)
			questionBanks.POST("/:id/publish", hm.questionBankHandler.Publish)
		}

		quizzes := v1.Group("/quizzes")
		{
			quizzes.POST("/generate", hm.quizHandler.Generate)
			quizzes.POST("/commit", hm.quizHandler.Commit)
			quizzes.GET("/:id/export", hm.quizHandler.Export)
		}

		v1.POST("/chat", hm.chatHandler.Chat)
	}
}
