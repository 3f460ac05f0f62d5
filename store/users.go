// Package store owns persistence for users, cafes and comments. It is the
// only layer that talks to gorm; uniqueness and referential integrity are
// enforced here, authorization is not.
package store

import (
	"errors"

	"gorm.io/gorm"

	"go-cafe-backend/apperr"
	"go-cafe-backend/models"
)

// Users is the directory of registered principals.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts a new user. The very first account registered gets the
// admin role; everyone after is a member. The unique index on email makes
// concurrent duplicate registrations lose cleanly instead of both landing.
func (u *Users) Create(email, passwordHash, name string) (*models.User, error) {
	user := &models.User{
		Email:    email,
		Password: passwordHash,
		Name:     name,
		Role:     models.RoleMember,
	}

	err := u.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.RoleAdmin
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

func (u *Users) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := u.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *Users) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// All lists every registered user in creation order.
func (u *Users) All() ([]models.User, error) {
	var users []models.User
	if err := u.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
