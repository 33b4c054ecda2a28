package store

import (
	"fmt"

	"github.com/kipkoech44/study_quiz/models"
	"github.com/kipkoech44/study_quiz/utils"
)

func (s *Store) Materials() ([]models.Material, error) {
	var materials []models.Material
	if err := s.db.Order("id").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (s *Store) AddMaterial(name, subject, fileURL string) (*models.Material, error) {
	fields := map[string]string{"name": name, "subject": subject, "file url": fileURL}
	for field, value := range fields {
		if check := utils.NotNullOrEmptyString(value); !check.Valid {
			return nil, fmt.Errorf("%s invalid due to: %s", field, check.Reason)
		}
	}

	material := models.Material{Name: name, Subject: subject, FileURL: fileURL}
	if err := s.db.Create(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}
