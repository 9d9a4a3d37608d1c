package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizapp/apperrors"
	"quizapp/services"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.NewNotFound("Quiz", 1), http.StatusNotFound},
		{"validation", apperrors.NewValidation("bad input"), http.StatusBadRequest},
		{"invalid argument", apperrors.NewInvalidArgument("page must be positive"), http.StatusBadRequest},
		{"out of range", &apperrors.OutOfRangeError{Page: 4, TotalPages: 3}, http.StatusBadRequest},
		{"storage", apperrors.NewStorage("create quiz", errors.New("down")), http.StatusInternalServerError},
		{"plain error", errors.New("mystery"), http.StatusInternalServerError},
		{"auth0 passthrough", &services.Auth0Error{StatusCode: http.StatusForbidden, Description: "nope"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			respondError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
