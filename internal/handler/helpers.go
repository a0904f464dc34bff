package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"plantcare.app/leafclinic/internal/middleware"
	"plantcare.app/leafclinic/pkg/apperror"
)

var timeNow = time.Now

// currentUserID retrieves the authenticated user id set by the auth guard.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// renderError translates a service failure into a rendered error page.
// Nothing propagates to the client as a raw internal error.
func renderError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		c.Error(err)
		message = "Something went wrong. Please try again."
	}

	c.HTML(code, "error.tmpl", gin.H{"Message": message})
}
