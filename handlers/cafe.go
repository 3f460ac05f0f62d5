// cafe.go - Handles cafe listings and their comments

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-cafe-backend/apperr"
	"go-cafe-backend/middleware"
	"go-cafe-backend/store"
)

type CafeInput struct {
	Name              string `json:"cafe" binding:"required"`
	URL               string `json:"cafe_url" binding:"required,url"`
	Address           string `json:"cafe_address" binding:"required"`
	City              string `json:"cafe_city" binding:"required"`
	State             string `json:"cafe_state" binding:"required"`
	Zip               string `json:"cafe_zip" binding:"required"`
	OpenTime          string `json:"open_time" binding:"required"`
	ClosingTime       string `json:"closing_time" binding:"required"`
	CoffeeRating      string `json:"coffee_rating" binding:"required,rating=coffee"`
	WifiRating        string `json:"wifi_rating" binding:"required,rating=wifi"`
	PowerOutletRating string `json:"power_outlet_rating" binding:"required,rating=power"`
}

type CommentInput struct {
	Text string `json:"text" binding:"required"`
}

// ListCafes returns every listing in creation order. Public.
func (h *Handlers) ListCafes(c *gin.Context) {
	cafes, err := h.Cafes.List()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

// GetCafe returns one listing together with its comments. Public.
func (h *Handlers) GetCafe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cafe not found"})
		return
	}

	cafe, err := h.Cafes.ByID(uint(id))
	if err != nil {
		h.writeError(c, err)
		return
	}

	comments, err := h.Comments.ListByCafe(cafe.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafe, "comments": comments})
}

// AddCafe creates a listing owned by the authenticated principal.
func (h *Handlers) AddCafe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.writeError(c, apperr.ErrUnauthenticated)
		return
	}

	var input CafeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cafe, err := h.Cafes.Create(user.ID, store.CafeInput{
		Name:              input.Name,
		URL:               input.URL,
		Address:           input.Address,
		City:              input.City,
		State:             input.State,
		Zip:               input.Zip,
		OpenTime:          input.OpenTime,
		ClosingTime:       input.ClosingTime,
		CoffeeRating:      input.CoffeeRating,
		WifiRating:        input.WifiRating,
		PowerOutletRating: input.PowerOutletRating,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.Log.Info().Uint("cafe_id", cafe.ID).Uint("author_id", user.ID).Str("name", cafe.Name).Msg("cafe added")
	c.JSON(http.StatusCreated, gin.H{"cafe": cafe})
}

// AddComment attaches a comment by the authenticated principal to a cafe.
func (h *Handlers) AddComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.writeError(c, apperr.ErrUnauthenticated)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cafe not found"})
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.Comments.Add(user.ID, uint(id), input.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
