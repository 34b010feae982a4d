package services

import (
	"github.com/wardenapp/corrections-api/internal/auth"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// UserInput carries the fields accepted on registration.
type UserInput struct {
	Name     string
	Gender   string
	Email    string
	Password string
	Role     string
}

// UserUpdate is the typed partial-update set for a user. A non-nil Password
// is re-hashed before storage.
type UserUpdate struct {
	Name     *string
	Gender   *string
	Email    *string
	Password *string
	Role     *string
}

// RegisterUser persists a new user after the email uniqueness pre-check,
// storing a bcrypt hash of the password.
func RegisterUser(db *gorm.DB, in UserInput, bcryptCost int) (*models.User, error) {
	if err := EnsureUniqueField(db, &models.User{}, "email", in.Email, "", "Email"); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, bcryptCost)
	if err != nil {
		return nil, types.InternalError(err)
	}

	user := models.User{
		Name:     in.Name,
		Gender:   in.Gender,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return &user, nil
}

// AuthenticateUser resolves an email/password pair to a user. Unknown email
// and wrong password are indistinguishable to the caller.
func AuthenticateUser(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.UnauthenticatedError("Invalid credentials")
		}
		return nil, types.InternalError(err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, types.UnauthenticatedError("Invalid credentials")
	}
	return &user, nil
}

// ListUsers returns all users.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, types.InternalError(err)
	}
	return users, nil
}

// GetUser returns one user.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, types.NotFoundError("User")
		}
		return nil, types.InternalError(err)
	}
	return &user, nil
}

// UpdateUser applies a partial update, re-running the email uniqueness
// pre-check when the email changes.
func UpdateUser(db *gorm.DB, id string, up UserUpdate, bcryptCost int) (*models.User, error) {
	var user models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.NotFoundError("User")
			}
			return err
		}

		if up.Email != nil && *up.Email != user.Email {
			if err := EnsureUniqueField(tx, &models.User{}, "email", *up.Email, id, "Email"); err != nil {
				return err
			}
			user.Email = *up.Email
		}
		if up.Password != nil {
			hash, err := auth.HashPassword(*up.Password, bcryptCost)
			if err != nil {
				return err
			}
			user.Password = hash
		}
		if up.Name != nil {
			user.Name = *up.Name
		}
		if up.Gender != nil {
			user.Gender = *up.Gender
		}
		if up.Role != nil {
			user.Role = *up.Role
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, types.InternalError(err)
	}

	return &user, nil
}

// DeleteUser removes the user record.
func DeleteUser(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return types.InternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("User")
	}
	return nil
}
