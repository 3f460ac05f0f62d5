// comment.go - Defines the Comment model, tied to a user and a cafe

package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CafeID    uint      `gorm:"not null" json:"cafe_id"`
	Cafe      Cafe      `gorm:"foreignKey:CafeID" json:"-"`
	Text      string    `gorm:"not null" json:"text"` // rich text, stored as-is
	CreatedAt time.Time `json:"created_at"`
}
