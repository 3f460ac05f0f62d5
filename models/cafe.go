// cafe.go - Defines the Cafe listing model

package models

import "time"

// Rating scales for a listing. Each rating column holds one symbol string
// drawn from its scale.
var (
	CoffeeRatings = []string{"☕", "☕☕", "☕☕☕", "☕☕☕☕", "☕☕☕☕☕"}
	WifiRatings   = []string{"✘", "💪", "💪💪", "💪💪💪", "💪💪💪💪", "💪💪💪💪💪"}
	PowerRatings  = []string{"🔌", "🔌🔌", "🔌🔌🔌", "🔌🔌🔌🔌", "🔌🔌🔌🔌🔌"}
)

type Cafe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	AuthorID          uint      `gorm:"not null" json:"author_id"`
	Author            User      `gorm:"foreignKey:AuthorID" json:"-"`
	Name              string    `gorm:"uniqueIndex;not null" json:"cafe"`
	URL               string    `gorm:"not null" json:"cafe_url"`
	Address           string    `gorm:"not null" json:"cafe_address"`
	City              string    `gorm:"not null" json:"cafe_city"`
	State             string    `gorm:"not null" json:"cafe_state"`
	Zip               string    `gorm:"not null" json:"cafe_zip"`
	OpenTime          string    `gorm:"not null" json:"open_time"`
	ClosingTime       string    `gorm:"not null" json:"closing_time"`
	CoffeeRating      string    `gorm:"not null" json:"coffee_rating"`
	WifiRating        string    `gorm:"not null" json:"wifi_rating"`
	PowerOutletRating string    `gorm:"not null" json:"power_outlet_rating"`
	CreatedAt         time.Time `json:"created_at"`
}
