package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MKuranov/ai_chat/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// CreateUser checks username first, then email, so the caller always learns
// which field collided. The unique column constraints are the backstop when a
// concurrent insert wins between the checks and the write; in that case the
// failed create is re-mapped to the same field-specific error.
func (r *GormRepo) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	taken, err := r.usernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = r.emailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if taken, checkErr := r.usernameExists(ctx, username); checkErr == nil && taken {
			return nil, ErrUsernameTaken
		}
		if taken, checkErr := r.emailExists(ctx, email); checkErr == nil && taken {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername is an exact-match lookup.
func (r *GormRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) usernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) emailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
