// comments.go - Comments repository, scoped to a cafe

package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-cafe-backend/apperr"
	"go-cafe-backend/models"
)

type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

// Add attaches a comment by authorID to the cafe. The cafe must exist;
// authentication of the author is the caller's job.
func (c *Comments) Add(authorID, cafeID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", apperr.ErrValidation)
	}

	var cafe models.Cafe
	if err := c.db.First(&cafe, cafeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		AuthorID: authorID,
		CafeID:   cafeID,
		Text:     text,
	}
	if err := c.db.Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByCafe returns the comments on one cafe in creation order.
func (c *Comments) ListByCafe(cafeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.db.Where("cafe_id = ?", cafeID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
