package models

import "time"

// UserData is one progress snapshot; a user accumulates many of these.
type UserData struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"not null;index" json:"userId"`
	TimeSpent int  `gorm:"not null" json:"timeSpent"`
	HighScore int  `gorm:"not null" json:"highScore"`

	CreatedAt time.Time `json:"createdAt"`
}
