package handlers

import (
	"net/http"
	"strconv"

	"quizapp/services"

	"github.com/gin-gonic/gin"
)

type QuizAttemptHandler struct {
	attemptService *services.QuizAttemptService
}

func NewQuizAttemptHandler(attemptService *services.QuizAttemptService) *QuizAttemptHandler {
	return &QuizAttemptHandler{attemptService: attemptService}
}

func (h *QuizAttemptHandler) CreateQuizAttempt(c *gin.Context) {
	var req services.CreateQuizAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.attemptService.CreateQuizAttempt(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

func (h *QuizAttemptHandler) GetQuizAttemptByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attempt ID"})
		return
	}

	attempt, err := h.attemptService.GetQuizAttemptByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
}
