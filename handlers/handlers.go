// handlers.go - Shared handler state and error-to-status mapping

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"go-cafe-backend/apperr"
	"go-cafe-backend/auth"
	"go-cafe-backend/store"
)

type Handlers struct {
	Sessions *auth.Sessions
	Users    *store.Users
	Cafes    *store.Cafes
	Comments *store.Comments
	Log      zerolog.Logger
}

func New(sessions *auth.Sessions, users *store.Users, cafes *store.Cafes, comments *store.Comments, log zerolog.Logger) *Handlers {
	return &Handlers{
		Sessions: sessions,
		Users:    users,
		Cafes:    cafes,
		Comments: comments,
		Log:      log,
	}
}

// writeError maps the apperr sentinels onto HTTP statuses. Anything outside
// the taxonomy is a 500, logged but never fatal to the process.
func (h *Handlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrDuplicateEmail), errors.Is(err, apperr.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
