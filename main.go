package main

import (
	"log"

	"quizapp/config"
	"quizapp/handlers"
	"quizapp/middleware"
	"quizapp/models"
	"quizapp/repository"
	"quizapp/routes"
	"quizapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.Question{},
		&models.QuestionOption{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizAttempt{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	redisClient := config.InitRedis(cfg)

	// Repositories
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewQuizAttemptRepository(db)

	// Live score feed
	hub := services.NewHub()
	go hub.Run()

	// Services
	authService := services.NewAuthService(cfg.Auth0)
	userService := services.NewUserService(cfg.Auth0)
	quizService := services.NewQuizService(quizRepo, questionRepo)
	questionService := services.NewQuestionService(questionRepo)
	leaderboardService := services.NewLeaderboardService(redisClient)
	attemptService := services.NewQuizAttemptService(attemptRepo, quizRepo, questionRepo, leaderboardService, hub)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	quizHandler := handlers.NewQuizHandler(quizService, leaderboardService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	attemptHandler := handlers.NewQuizAttemptHandler(attemptService)

	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(router, authHandler, userHandler, quizHandler, questionHandler, attemptHandler, hub)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
