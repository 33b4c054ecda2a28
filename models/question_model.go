package models

import "time"

type Question struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"createdAt"`

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}
