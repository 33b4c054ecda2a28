package models

import "time"

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string `gorm:"size:255;not null;unique" json:"email"`
	FirstName      string `gorm:"size:255;not null" json:"firstName"`
	LastName       string `gorm:"size:255;not null" json:"lastName"`
	HashedPassword string `gorm:"not null" json:"-"`
	Role           string `gorm:"size:20;not null;default:'student'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
