package store

import "github.com/kipkoech44/study_quiz/models"

// UserData returns every progress snapshot recorded for the user, oldest
// first.
func (s *Store) UserData(userID uint) ([]models.UserData, error) {
	var records []models.UserData
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// AddUserData appends a progress snapshot. Existing rows are never updated;
// progress history only grows.
func (s *Store) AddUserData(userID uint, timeSpent, highScore int) (*models.UserData, error) {
	record := models.UserData{
		UserID:    userID,
		TimeSpent: timeSpent,
		HighScore: highScore,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
