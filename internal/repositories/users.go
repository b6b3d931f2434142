package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikhilsahni7/medquery/internal/models"
	"gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("username already exists")

// UserRepository stores credentials. Users are immutable after registration
// and are never deleted.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The password must already be hashed by the
// caller. Duplicate usernames yield ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var existing models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case errors.Is(err, gorm.ErrRecordNotFound):
		// new user
	default:
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
