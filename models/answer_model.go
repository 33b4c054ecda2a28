package models

import "time"

type Answer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`

	CreatedAt time.Time `json:"createdAt"`
}
