// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"perkhub/internal/domain/entity"
	domainerrors "perkhub/internal/domain/errors"
	"perkhub/internal/domain/repository"
	"perkhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading the profile
// and its membership labels.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile.Memberships").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile.Memberships").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user together with its profile. GORM inserts the
// associated profile row in the same statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.ID = userM.Profile.ID
		user.Profile.UserID = userM.ID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// Delete removes a user row.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps the persistence model to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
	if userM.Profile != nil {
		user.Profile = toProfileDomain(userM.Profile)
	}

	return user
}

// fromUserDomain maps a domain entity to the persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
	if user.Profile != nil {
		userM.Profile = &model.ProfileModel{
			ID:     user.Profile.ID,
			UserID: user.ID,
		}
		for _, label := range user.Profile.Memberships {
			userM.Profile.Memberships = append(userM.Profile.Memberships, model.ProfileMembershipModel{
				ProfileID: user.Profile.ID,
				Label:     label,
			})
		}
	}

	return userM
}
