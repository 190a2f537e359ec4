package postgres

import (
	"context"
	"strings"
	"time"

	"perkhub/internal/domain/entity"
	domainerrors "perkhub/internal/domain/errors"
	"perkhub/internal/domain/repository"
	"perkhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const membershipSeparator = ","

// readModelRepository implements the repository.ReadModelRepository interface.
// Everything here is an upsert keyed by subject id so that replayed events
// settle into the same row state.
type readModelRepository struct {
	db *gorm.DB
}

// NewReadModelRepository is the constructor for readModelRepository.
func NewReadModelRepository(db *gorm.DB) repository.ReadModelRepository {
	return &readModelRepository{
		db: db,
	}
}

// UpsertPerk inserts or replaces the perk projection row.
func (repo *readModelRepository) UpsertPerk(ctx context.Context, rm *entity.PerkReadModel) error {
	row := &model.PerkReadModelRow{
		PerkID:      rm.PerkID,
		Description: rm.Description,
		Membership:  rm.Membership,
		Product:     rm.Product,
		Upvotes:     rm.Upvotes,
		Downvotes:   rm.Downvotes,
		NetScore:    rm.Upvotes - rm.Downvotes,
		StartDate:   rm.StartDate,
		EndDate:     rm.EndDate,
		PostedBy:    rm.PostedBy,
		UpdatedAt:   rm.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "perk_id"}},
			UpdateAll: true,
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert perk read model")
	}

	return nil
}

// FindPerk retrieves the perk projection row.
func (repo *readModelRepository) FindPerk(ctx context.Context, perkID uuid.UUID) (*entity.PerkReadModel, error) {
	var row model.PerkReadModelRow

	if err := repo.db.WithContext(ctx).
		Where("perk_id = ?", perkID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find perk read model")
	}

	return &entity.PerkReadModel{
		PerkID:      row.PerkID,
		Description: row.Description,
		Membership:  row.Membership,
		Product:     row.Product,
		Upvotes:     row.Upvotes,
		Downvotes:   row.Downvotes,
		NetScore:    row.NetScore,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		PostedBy:    row.PostedBy,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// SetPerkUpvotes sets the absolute upvote count, creating the row if the
// creation event has not been projected yet.
func (repo *readModelRepository) SetPerkUpvotes(ctx context.Context, perkID uuid.UUID, count int) error {
	row := &model.PerkReadModelRow{
		PerkID:    perkID,
		Upvotes:   count,
		NetScore:  count,
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "perk_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"upvotes":    count,
				"net_score":  gorm.Expr("? - perk_read_models.downvotes", count),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set perk upvotes")
	}

	return nil
}

// SetPerkDownvotes sets the absolute downvote count, creating the row if the
// creation event has not been projected yet.
func (repo *readModelRepository) SetPerkDownvotes(ctx context.Context, perkID uuid.UUID, count int) error {
	row := &model.PerkReadModelRow{
		PerkID:    perkID,
		Downvotes: count,
		NetScore:  -count,
		UpdatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "perk_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"downvotes":  count,
				"net_score":  gorm.Expr("perk_read_models.upvotes - ?", count),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set perk downvotes")
	}

	return nil
}

// UpsertUserProfile inserts or replaces the user profile projection row.
func (repo *readModelRepository) UpsertUserProfile(ctx context.Context, rm *entity.UserProfileReadModel) error {
	row := &model.UserProfileReadModelRow{
		UserID:      rm.UserID,
		Email:       rm.Email,
		ProfileID:   rm.ProfileID,
		Memberships: strings.Join(rm.Memberships, membershipSeparator),
		UpdatedAt:   rm.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user profile read model")
	}

	return nil
}

// FindUserProfile retrieves the user profile projection row.
func (repo *readModelRepository) FindUserProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfileReadModel, error) {
	var row model.UserProfileReadModelRow

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile read model")
	}

	rm := &entity.UserProfileReadModel{
		UserID:    row.UserID,
		Email:     row.Email,
		ProfileID: row.ProfileID,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Memberships != "" {
		rm.Memberships = strings.Split(row.Memberships, membershipSeparator)
	}

	return rm, nil
}
