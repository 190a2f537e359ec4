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

// voteRepository implements the repository.VoteRepository interface.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// FindByUserAndPerk retrieves the single ledger entry for the pair.
func (repo *voteRepository) FindByUserAndPerk(ctx context.Context, userID, perkID uuid.UUID) (*entity.Vote, error) {
	var voteM model.VoteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND perk_id = ?", userID, perkID).
		First(&voteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find vote by user and perk")
	}

	return toVoteDomain(&voteM), nil
}

// FindByUser retrieves all ledger entries cast by the given user.
func (repo *voteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vote, error) {
	var voteModels []*model.VoteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&voteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find votes by user")
	}

	votes := make([]*entity.Vote, 0, len(voteModels))
	for _, voteM := range voteModels {
		votes = append(votes, toVoteDomain(voteM))
	}

	return votes, nil
}

// Create persists a new ledger entry. The (user_id, perk_id) unique index
// turns a concurrent insert into ErrDuplicateVote.
func (repo *voteRepository) Create(ctx context.Context, vote *entity.Vote) error {
	voteM := fromVoteDomain(vote)

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVote
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or perk reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vote")
	}

	// Update the entity with generated values
	vote.ID = voteM.ID
	vote.CreatedAt = voteM.CreatedAt
	vote.UpdatedAt = voteM.UpdatedAt

	return nil
}

// UpdateType changes the direction of an existing ledger entry.
func (repo *voteRepository) UpdateType(ctx context.Context, id uuid.UUID, voteType entity.VoteType) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoteModel{}).
		Where("id = ?", id).
		Update("vote_type", string(voteType))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vote type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoteNotFound
	}

	return nil
}

// Delete removes a ledger entry.
func (repo *voteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoteNotFound
	}

	return nil
}

// DeleteByUser removes all ledger entries cast by the given user.
func (repo *voteRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.VoteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete votes by user")
	}

	return nil
}

// toVoteDomain maps the persistence model to a pure domain entity.
func toVoteDomain(voteM *model.VoteModel) *entity.Vote {
	return &entity.Vote{
		ID:        voteM.ID,
		UserID:    voteM.UserID,
		PerkID:    voteM.PerkID,
		Type:      entity.VoteType(voteM.VoteType),
		CreatedAt: voteM.CreatedAt,
		UpdatedAt: voteM.UpdatedAt,
	}
}

// fromVoteDomain maps a domain entity to the persistence model.
func fromVoteDomain(vote *entity.Vote) *model.VoteModel {
	return &model.VoteModel{
		ID:       vote.ID,
		UserID:   vote.UserID,
		PerkID:   vote.PerkID,
		VoteType: string(vote.Type),
	}
}
