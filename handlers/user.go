// user.go - Handles user registration, login and logout

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-cafe-backend/apperr"
	"go-cafe-backend/auth"
	"go-cafe-backend/middleware"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the account and establishes a session in one step, the
// same flow a successful signup form follows.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.Users.Create(input.Email, hash, input.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	token, err := h.Sessions.Login(user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.Log.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login verifies credentials and issues a fresh session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.ByEmail(input.Email)
	if err != nil {
		h.writeError(c, apperr.ErrInvalidCredentials)
		return
	}
	if !auth.CheckPassword(input.Password, user.Password) {
		h.writeError(c, apperr.ErrInvalidCredentials)
		return
	}

	token, err := h.Sessions.Login(user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.Log.Info().Uint("user_id", user.ID).Msg("user logged in")
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout revokes the presented session token.
func (h *Handlers) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	h.Sessions.Logout(strings.TrimPrefix(header, "Bearer "))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// ListUsers is the admin-only directory listing.
func (h *Handlers) ListUsers(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	users, err := h.Users.All()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
