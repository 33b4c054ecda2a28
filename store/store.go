package store

import (
	"errors"
	"fmt"

	"github.com/kipkoech44/study_quiz/models"
	"github.com/kipkoech44/study_quiz/utils"
	"gorm.io/gorm"
)

// Store is the data-access layer. It owns no connection itself; the gorm
// handle is injected at construction so tests can hand it an in-memory
// database.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindUsersByEmail returns every user matching the email. Uniqueness is a
// column constraint, not re-checked here, so the result is a list.
func (s *Store) FindUsersByEmail(email string) ([]models.User, error) {
	if check := utils.NotNullOrEmptyString(email); !check.Valid {
		return nil, fmt.Errorf("email invalid due to: %s", check.Reason)
	}

	var users []models.User
	if err := s.db.Where("email = ?", email).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByCredentials is the authentication check: fetch by email, then
// compare the bcrypt hash. Returns (nil, nil) when the email is unknown or
// the password does not match; a non-nil error means validation failed or
// the lookup itself broke.
func (s *Store) FindUserByCredentials(email, password string) (*models.User, error) {
	if check := utils.NotNullOrEmptyString(email); !check.Valid {
		return nil, fmt.Errorf("email invalid due to: %s", check.Reason)
	}
	if check := utils.NotNullOrEmptyString(password); !check.Valid {
		return nil, fmt.Errorf("password invalid due to: %s", check.Reason)
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(user.HashedPassword, password) {
		return nil, nil
	}
	return &user, nil
}

// CreateUser inserts a new user row. Duplicate emails are not pre-checked;
// the unique constraint surfaces as a storage error.
func (s *Store) CreateUser(email, firstName, lastName, hashedPassword string) (*models.User, error) {
	fields := map[string]string{
		"email":           email,
		"first name":      firstName,
		"last name":       lastName,
		"hashed password": hashedPassword,
	}
	for name, value := range fields {
		if check := utils.NotNullOrEmptyString(value); !check.Valid {
			return nil, fmt.Errorf("%s invalid due to: %s", name, check.Reason)
		}
	}

	user := models.User{
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		HashedPassword: hashedPassword,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
