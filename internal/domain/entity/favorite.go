package entity

import "time"

// Favorite is a city a user wants to keep an eye on. CityKey is the
// lower-cased city and carries the uniqueness constraint.
type Favorite struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	City      string    `json:"city" gorm:"not null"`
	CityKey   string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdDate"`
}
