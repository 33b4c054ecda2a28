package models

import "time"

type Material struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	FileURL string `gorm:"type:text;not null" json:"file_url"`

	CreatedAt time.Time `json:"createdAt"`
}
