package handlers

import (
	"errors"
	"log"
	"net/http"

	"quizapp/apperrors"
	"quizapp/services"

	"github.com/gin-gonic/gin"
)

// respondError is the single place where the error taxonomy becomes
// HTTP: 404 for missing entities, 400 for validation, invalid-argument
// and out-of-range failures, the provider's own status for Auth0
// failures, and 500 for storage or unclassified errors.
func respondError(c *gin.Context, err error) {
	var auth0Err *services.Auth0Error

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), apperrors.IsInvalidArgument(err), apperrors.IsOutOfRange(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &auth0Err):
		c.JSON(auth0Err.StatusCode, gin.H{"error": auth0Err.Description})
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}
