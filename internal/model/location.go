package model

import (
	"time"
)

// Location is a geocoded postcode. Rows are only written for successful
// lookups; a failed lookup leaves no trace here.
type Location struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Postcode  string    `json:"postcode" gorm:"size:10;not null;uniqueIndex"`
	Lat       float64   `json:"lat" gorm:"not null"`
	Lon       float64   `json:"lon" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
