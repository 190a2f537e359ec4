package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "perkhub/internal/delivery/context"
	"perkhub/internal/domain/entity"
	domainerrors "perkhub/internal/domain/errors"
	"perkhub/internal/domain/event"
	"perkhub/internal/domain/repository"
	"perkhub/internal/domain/service"
	"perkhub/internal/errors"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// perkService implements the PerkUsecase interface. CastVote is the vote
// command processor: it owns the one-vote-per-user rule and the counter
// transitions, and it is the only writer of perk counters.
type perkService struct {
	txManager   repository.TransactionManager
	perkRepo    repository.PerkRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	emitter     service.EventEmitter
	logger      *slog.Logger
}

// PerkServiceParams holds dependencies for PerkService, injected by Fx.
type PerkServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PerkRepo    repository.PerkRepository
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Emitter     service.EventEmitter
	Logger      *slog.Logger
}

// NewPerkService is the constructor for perkService.
func NewPerkService(params PerkServiceParams) usecase.PerkUsecase {
	return &perkService{
		txManager:   params.TxManager,
		perkRepo:    params.PerkRepo,
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		emitter:     params.Emitter,
		logger:      params.Logger,
	}
}

func (srv *perkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePerk validates and persists a new perk posted by the given user.
func (srv *perkService) CreatePerk(ctx context.Context, input *usecase.CreatePerkInput) (*entity.Perk, error) {
	srv.log(ctx).Info("Creating perk", slog.Any("userID", input.UserID))

	perk, err := srv.buildPerk(input)
	if err != nil {
		srv.log(ctx).Warn("Perk validation failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find posting user")
	}

	if err := srv.perkRepo.Create(ctx, perk); err != nil {
		srv.log(ctx).Error("Failed to create perk", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create perk")
	}

	srv.emitter.EmitPerkCreated(ctx, &event.PerkCreated{
		PerkID:      perk.ID.String(),
		Description: perk.Description,
		Membership:  string(perk.Membership),
		Product:     string(perk.Product),
		StartDate:   perk.StartDate,
		EndDate:     perk.EndDate,
		PostedBy:    perk.PostedBy.String(),
		OccurredAt:  time.Now().UTC(),
	})

	srv.log(ctx).Debug("Perk created", slog.Any("perkID", perk.ID))

	return perk, nil
}

// buildPerk validates the input and assembles an unsaved perk entity.
func (srv *perkService) buildPerk(input *usecase.CreatePerkInput) (*entity.Perk, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("description must not be blank")
	}

	membership, err := entity.ParseMembershipType(input.Membership)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	product, err := entity.ParseProductType(input.Product)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date must not be before start date")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if input.StartDate.Before(today) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("start date must be today or later")
	}

	return &entity.Perk{
		Description: strings.TrimSpace(input.Description),
		Membership:  membership,
		Product:     product,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		PostedBy:    input.UserID,
	}, nil
}

// CastVote applies one vote action to a perk inside a single transaction.
// The perk row lock taken by FindByIDForUpdate serializes conflicting writers
// on the same perk; votes on different perks proceed in parallel. Events are
// emitted only after the transaction has committed.
func (srv *perkService) CastVote(ctx context.Context, userID, perkID uuid.UUID, direction entity.VoteType) (*usecase.VoteResult, error) {
	if !direction.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vote direction must be UPVOTE or DOWNVOTE")
	}

	srv.log(ctx).Info("Casting vote", slog.Any("userID", userID), slog.Any("perkID", perkID), slog.String("direction", string(direction)))

	var (
		result         *usecase.VoteResult
		upvotesMoved   bool
		downvotesMoved bool
	)

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find voter")
		}

		perkRepo := f.NewPerkRepository()
		perk, err := perkRepo.FindByIDForUpdate(ctx, perkID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrPerkNotFound):
				return domainerrors.ErrPerkNotFound
			case errors.Is(err, repository.ErrPerkLocked):
				return domainerrors.ErrVoteContention
			}

			return errors.Wrap(err, "failed to lock perk")
		}

		before := *perk
		if err := srv.applyVoteTransition(ctx, f.NewVoteRepository(), perk, userID, direction); err != nil {
			return err
		}

		if err := perkRepo.UpdateCounters(ctx, perk); err != nil {
			return errors.Wrap(err, "failed to update perk counters")
		}

		upvotesMoved = perk.Upvotes != before.Upvotes
		downvotesMoved = perk.Downvotes != before.Downvotes
		result = &usecase.VoteResult{
			PerkID:    perk.ID,
			Upvotes:   perk.Upvotes,
			Downvotes: perk.Downvotes,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Vote transaction failed", slog.Any("userID", userID), slog.Any("perkID", perkID), slog.Any("error", err))

		return nil, err
	}

	// One event per counter that actually moved; a direction switch moves both.
	// Each carries the absolute count so redelivery cannot double-count.
	now := time.Now().UTC()
	if upvotesMoved {
		srv.emitter.EmitPerkUpvoted(ctx, &event.PerkUpvoted{
			PerkID:         result.PerkID.String(),
			NewUpvoteCount: result.Upvotes,
			OccurredAt:     now,
		})
	}
	if downvotesMoved {
		srv.emitter.EmitPerkDownvoted(ctx, &event.PerkDownvoted{
			PerkID:           result.PerkID.String(),
			NewDownvoteCount: result.Downvotes,
			OccurredAt:       now,
		})
	}

	srv.log(ctx).Debug("Vote applied", slog.Any("perkID", result.PerkID), slog.Int("upvotes", result.Upvotes), slog.Int("downvotes", result.Downvotes))

	return result, nil
}

// applyVoteTransition runs the ledger state machine for one vote action:
// no entry creates one, the same direction toggles it off, the opposite
// direction switches it. Counter mutations go through the aggregate.
func (srv *perkService) applyVoteTransition(ctx context.Context, voteRepo repository.VoteRepository, perk *entity.Perk, userID uuid.UUID, direction entity.VoteType) error {
	existing, err := voteRepo.FindByUserAndPerk(ctx, userID, perk.ID)
	if err != nil && !errors.Is(err, repository.ErrVoteNotFound) {
		return errors.Wrap(err, "failed to look up vote ledger")
	}

	switch {
	case existing == nil:
		vote := &entity.Vote{
			UserID: userID,
			PerkID: perk.ID,
			Type:   direction,
		}
		if err := voteRepo.Create(ctx, vote); err != nil {
			// A concurrent writer beat us to the insert despite the row lock.
			if errors.Is(err, repository.ErrDuplicateVote) {
				return domainerrors.ErrVoteConflict
			}

			return errors.Wrap(err, "failed to create vote")
		}
		perk.ApplyVote(direction)

	case existing.Type == direction:
		if err := voteRepo.Delete(ctx, existing.ID); err != nil {
			return errors.Wrap(err, "failed to delete vote")
		}
		perk.RetractVote(direction)

	default:
		if err := voteRepo.UpdateType(ctx, existing.ID, direction); err != nil {
			return errors.Wrap(err, "failed to switch vote direction")
		}
		perk.RetractVote(existing.Type)
		perk.ApplyVote(direction)
	}

	return nil
}

// GetPerk retrieves a single perk.
func (srv *perkService) GetPerk(ctx context.Context, perkID uuid.UUID) (*entity.Perk, error) {
	perk, err := srv.perkRepo.FindByID(ctx, perkID)
	if err != nil {
		if errors.Is(err, repository.ErrPerkNotFound) {
			return nil, domainerrors.ErrPerkNotFound
		}

		return nil, errors.Wrap(err, "failed to find perk")
	}

	return perk, nil
}

// ListPerks retrieves all perks, newest first.
func (srv *perkService) ListPerks(ctx context.Context) ([]*entity.Perk, error) {
	perks, err := srv.perkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perks")
	}

	return perks, nil
}

// ListPerksByMembership retrieves perks requiring the given membership.
func (srv *perkService) ListPerksByMembership(ctx context.Context, membership entity.MembershipType) ([]*entity.Perk, error) {
	if !membership.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown membership type")
	}

	perks, err := srv.perkRepo.FindByMembership(ctx, membership)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perks by membership")
	}

	return perks, nil
}

// ListPerksByProduct retrieves perks for the given product category.
func (srv *perkService) ListPerksByProduct(ctx context.Context, product entity.ProductType) ([]*entity.Perk, error) {
	if !product.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product type")
	}

	perks, err := srv.perkRepo.FindByProduct(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perks by product")
	}

	return perks, nil
}

// ListPerksByVotes retrieves all perks ordered by upvote count descending.
func (srv *perkService) ListPerksByVotes(ctx context.Context) ([]*entity.Perk, error) {
	perks, err := srv.perkRepo.FindAllByVotes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perks by votes")
	}

	return perks, nil
}

// ListPerksMatchingProfile retrieves perks whose membership type matches any
// label in the user's profile. Labels that don't map onto a known membership
// type are skipped rather than rejected.
func (srv *perkService) ListPerksMatchingProfile(ctx context.Context, userID uuid.UUID) ([]*entity.Perk, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	var memberships []entity.MembershipType
	for _, label := range profile.Memberships {
		membership, err := entity.ParseMembershipType(label)
		if err != nil {
			continue
		}
		memberships = append(memberships, membership)
	}
	if len(memberships) == 0 {
		return []*entity.Perk{}, nil
	}

	perks, err := srv.perkRepo.FindByMemberships(ctx, memberships)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perks matching profile")
	}

	return perks, nil
}

// ListPerksByUser retrieves perks posted by the given user.
func (srv *perkService) ListPerksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Perk, error) {
	perks, err := srv.perkRepo.FindByPostedBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list perks by user")
	}

	return perks, nil
}
