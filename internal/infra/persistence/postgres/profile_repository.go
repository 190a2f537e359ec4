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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the profile owned by the given user with its
// membership labels loaded.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Memberships").
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// AddMembership appends a membership label row. A concurrent duplicate insert
// is absorbed: the label ends up present either way.
func (repo *profileRepository) AddMembership(ctx context.Context, profileID uuid.UUID, label string) error {
	membershipM := &model.ProfileMembershipModel{
		ProfileID: profileID,
		Label:     label,
	}

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add membership")
	}

	return nil
}

// RemoveMembership deletes a membership label row.
func (repo *profileRepository) RemoveMembership(ctx context.Context, profileID uuid.UUID, label string) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND label = ?", profileID, label).
		Delete(&model.ProfileMembershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove membership")
	}

	return nil
}

// DeleteByUserID removes the profile and all its membership rows.
func (repo *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find profile for deletion")
	}

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileM.ID).
		Delete(&model.ProfileMembershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile memberships")
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", profileM.ID).
		Delete(&model.ProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// toProfileDomain maps the persistence model to a pure domain entity.
func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	profile := &entity.Profile{
		ID:        profileM.ID,
		UserID:    profileM.UserID,
		UpdatedAt: profileM.UpdatedAt,
	}
	for _, m := range profileM.Memberships {
		profile.Memberships = append(profile.Memberships, m.Label)
	}

	return profile
}
