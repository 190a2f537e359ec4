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
	"gorm.io/gorm/clause"
)

// perkRepository implements the repository.PerkRepository interface.
type perkRepository struct {
	db *gorm.DB
}

// NewPerkRepository is the constructor for perkRepository.
func NewPerkRepository(db *gorm.DB) repository.PerkRepository {
	return &perkRepository{
		db: db,
	}
}

// Create persists a new perk entity.
func (repo *perkRepository) Create(ctx context.Context, perk *entity.Perk) error {
	perkM := fromPerkDomain(perk)

	if err := repo.db.WithContext(ctx).Create(perkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPerkCreationFailed.WrapMessage("invalid posting user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create perk")
	}

	// Update the entity with generated values
	perk.ID = perkM.ID
	perk.CreatedAt = perkM.CreatedAt
	perk.UpdatedAt = perkM.UpdatedAt

	return nil
}

// FindByID retrieves a perk by its unique ID.
func (repo *perkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Perk, error) {
	var perkM model.PerkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&perkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPerkNotFound
		}

		return nil, errors.Wrap(err, "failed to find perk by ID")
	}

	return toPerkDomain(&perkM), nil
}

// FindByIDForUpdate retrieves a perk holding its row lock for the duration of
// the surrounding transaction. NOWAIT makes a contended lock fail immediately
// so the caller can surface a retryable error instead of queueing writers.
func (repo *perkRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Perk, error) {
	var perkM model.PerkModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		Where("id = ?", id).
		First(&perkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPerkNotFound
		}
		if isLockNotAvailable(err) {
			return nil, repository.ErrPerkLocked
		}

		return nil, errors.Wrap(err, "failed to lock perk by ID")
	}

	return toPerkDomain(&perkM), nil
}

// UpdateCounters persists the perk's vote counters.
func (repo *perkRepository) UpdateCounters(ctx context.Context, perk *entity.Perk) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PerkModel{}).
		Where("id = ?", perk.ID).
		Updates(map[string]any{
			"upvotes":   perk.Upvotes,
			"downvotes": perk.Downvotes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update perk counters")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPerkNotFound
	}

	return nil
}

// FindAll retrieves all perks, newest first.
func (repo *perkRepository) FindAll(ctx context.Context) ([]*entity.Perk, error) {
	var perkModels []*model.PerkModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perks")
	}

	return toPerkDomainList(perkModels), nil
}

// FindByMembership retrieves all perks requiring the given membership type.
func (repo *perkRepository) FindByMembership(ctx context.Context, membership entity.MembershipType) ([]*entity.Perk, error) {
	var perkModels []*model.PerkModel

	if err := repo.db.WithContext(ctx).
		Where("membership = ?", string(membership)).
		Order("created_at DESC").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perks by membership")
	}

	return toPerkDomainList(perkModels), nil
}

// FindByProduct retrieves all perks for the given product category.
func (repo *perkRepository) FindByProduct(ctx context.Context, product entity.ProductType) ([]*entity.Perk, error) {
	var perkModels []*model.PerkModel

	if err := repo.db.WithContext(ctx).
		Where("product = ?", string(product)).
		Order("created_at DESC").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perks by product")
	}

	return toPerkDomainList(perkModels), nil
}

// FindAllByVotes retrieves all perks ordered by upvote count descending.
func (repo *perkRepository) FindAllByVotes(ctx context.Context) ([]*entity.Perk, error) {
	var perkModels []*model.PerkModel

	if err := repo.db.WithContext(ctx).
		Order("upvotes DESC, created_at DESC").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perks by votes")
	}

	return toPerkDomainList(perkModels), nil
}

// FindByMemberships retrieves all perks whose membership type is in the set.
func (repo *perkRepository) FindByMemberships(ctx context.Context, memberships []entity.MembershipType) ([]*entity.Perk, error) {
	values := make([]string, 0, len(memberships))
	for _, m := range memberships {
		values = append(values, string(m))
	}

	var perkModels []*model.PerkModel

	if err := repo.db.WithContext(ctx).
		Where("membership IN ?", values).
		Order("created_at DESC").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perks by memberships")
	}

	return toPerkDomainList(perkModels), nil
}

// FindByPostedBy retrieves all perks posted by the given user.
func (repo *perkRepository) FindByPostedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Perk, error) {
	var perkModels []*model.PerkModel

	if err := repo.db.WithContext(ctx).
		Where("posted_by = ?", userID).
		Order("created_at DESC").
		Find(&perkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find perks by poster")
	}

	return toPerkDomainList(perkModels), nil
}

// toPerkDomain maps the persistence model to a pure domain entity.
func toPerkDomain(perkM *model.PerkModel) *entity.Perk {
	return &entity.Perk{
		ID:          perkM.ID,
		Description: perkM.Description,
		Membership:  entity.MembershipType(perkM.Membership),
		Product:     entity.ProductType(perkM.Product),
		Upvotes:     perkM.Upvotes,
		Downvotes:   perkM.Downvotes,
		StartDate:   perkM.StartDate,
		EndDate:     perkM.EndDate,
		PostedBy:    perkM.PostedBy,
		CreatedAt:   perkM.CreatedAt,
		UpdatedAt:   perkM.UpdatedAt,
	}
}

func toPerkDomainList(perkModels []*model.PerkModel) []*entity.Perk {
	perks := make([]*entity.Perk, 0, len(perkModels))
	for _, perkM := range perkModels {
		perks = append(perks, toPerkDomain(perkM))
	}

	return perks
}

// fromPerkDomain maps a domain entity to the persistence model.
func fromPerkDomain(perk *entity.Perk) *model.PerkModel {
	return &model.PerkModel{
		ID:          perk.ID,
		Description: perk.Description,
		Membership:  string(perk.Membership),
		Product:     string(perk.Product),
		Upvotes:     perk.Upvotes,
		Downvotes:   perk.Downvotes,
		StartDate:   perk.StartDate,
		EndDate:     perk.EndDate,
		PostedBy:    perk.PostedBy,
	}
}
