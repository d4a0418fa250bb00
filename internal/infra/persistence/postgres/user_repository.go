package postgres

import (
	"context"
	"strings"

	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/repository"
	"voyage/internal/errors"
	"voyage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository backed by PostgreSQL.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by their unique identifier.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var record model.UserModel
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userModelToEntity(&record), nil
}

// FindByEmail retrieves a user by their email address. The lookup is
// case-insensitive because emails are normalized to lowercase on write.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record model.UserModel
	if err := r.db.WithContext(ctx).First(&record, "email = ?", normalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userModelToEntity(&record), nil
}

// FindByGoogleID retrieves a user by their Google account identifier.
// Delegated sign-in reconciles on this identifier, never on email.
func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var record model.UserModel
	if err := r.db.WithContext(ctx).First(&record, "google_id = ?", googleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	return userModelToEntity(&record), nil
}

// Create inserts a new user. A unique constraint violation on the email
// column is reported as a duplicate account.
func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	record := userEntityToModel(user)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrDuplicateAccount
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return userModelToEntity(record), nil
}

// UpdatePasswordHash replaces the stored credential digest for a user.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, newHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", newHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userEntityToModel(user *entity.User) *model.UserModel {
	record := &model.UserModel{
		ID:              user.ID,
		Email:           normalizeEmail(user.Email),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		AvatarURL:       user.AvatarURL,
		IsEmailVerified: user.IsEmailVerified,
		Provider:        user.Provider.String(),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	if user.GoogleID != "" {
		googleID := user.GoogleID
		record.GoogleID = &googleID
	}

	if user.PasswordHash != "" {
		passwordHash := user.PasswordHash
		record.PasswordHash = &passwordHash
	}

	return record
}

func userModelToEntity(record *model.UserModel) *entity.User {
	user := &entity.User{
		ID:              record.ID,
		Email:           record.Email,
		FirstName:       record.FirstName,
		LastName:        record.LastName,
		AvatarURL:       record.AvatarURL,
		IsEmailVerified: record.IsEmailVerified,
		Provider:        entity.AuthProvider(record.Provider),
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}

	if record.GoogleID != nil {
		user.GoogleID = *record.GoogleID
	}

	if record.PasswordHash != nil {
		user.PasswordHash = *record.PasswordHash
	}

	return user
}
