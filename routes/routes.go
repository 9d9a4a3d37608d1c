package routes

import (
	"log"
	"net/http"
	"strconv"

	"quizapp/handlers"
	"quizapp/middleware"
	"quizapp/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin checks are handled by the CORS layer
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	attemptHandler *handlers.QuizAttemptHandler,
	hub *services.Hub,
) {
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.RequireAuth())
		{
			users := protected.Group("/users")
			{
				users.GET("/me", userHandler.GetCurrentUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			quizzes := protected.Group("/quizzes")
			{
				quizzes.GET("", quizHandler.GetPaginatedQuizzes)
				quizzes.POST("", quizHandler.CreateQuiz)
				quizzes.GET("/:id", quizHandler.GetQuizByID)
				quizzes.GET("/:id/full", quizHandler.GetQuizWithFullQuestions)
				quizzes.GET("/:id/leaderboard", quizHandler.GetLeaderboard)
				quizzes.PUT("/:id", quizHandler.UpdateQuiz)
				quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
			}

			questions := protected.Group("/questions")
			{
				questions.GET("", questionHandler.GetPaginatedQuestions)
				questions.POST("", questionHandler.CreateQuestion)
				questions.GET("/:id", questionHandler.GetQuestionByID)
				questions.PUT("/:id", questionHandler.UpdateQuestion)
				questions.DELETE("/:id", questionHandler.DeleteQuestion)
			}

			attempts := protected.Group("/attempts")
			{
				attempts.POST("", attemptHandler.CreateQuizAttempt)
				attempts.GET("/:id", attemptHandler.GetQuizAttemptByID)
			}
		}
	}

	// WebSocket endpoint for the live score feed of a quiz
	router.GET("/ws/quizzes/:id", func(c *gin.Context) {
		quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for quiz %d: %v", quizID, err)
			return
		}

		hub.RegisterClient(conn, uint(quizID))
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
