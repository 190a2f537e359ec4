package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "perkhub/internal/delivery/context"
	"perkhub/internal/domain/entity"
	"perkhub/internal/domain/event"
	"perkhub/internal/domain/repository"
	"perkhub/internal/errors"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// projectionService maintains the read-model tables from domain events.
// Every apply method is idempotent: counter events carry absolute counts and
// membership changes have set semantics, so a redelivered event is a no-op.
type projectionService struct {
	readModelRepo repository.ReadModelRepository
	logger        *slog.Logger
}

// ProjectionServiceParams holds dependencies for ProjectionService, injected by Fx.
type ProjectionServiceParams struct {
	fx.In

	ReadModelRepo repository.ReadModelRepository
	Logger        *slog.Logger
}

// NewProjectionService is the constructor for projectionService.
func NewProjectionService(params ProjectionServiceParams) usecase.ProjectionUsecase {
	return &projectionService{
		readModelRepo: params.ReadModelRepo,
		logger:        params.Logger,
	}
}

func (srv *projectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplyPerkCreated creates the perk projection row. On redelivery the
// descriptive fields are refreshed but the counters, which later events own,
// are left alone.
func (srv *projectionService) ApplyPerkCreated(ctx context.Context, evt *event.PerkCreated) error {
	perkID, err := uuid.Parse(evt.PerkID)
	if err != nil {
		return errors.Wrap(err, "invalid perk id in event")
	}
	postedBy, err := uuid.Parse(evt.PostedBy)
	if err != nil {
		return errors.Wrap(err, "invalid posted_by id in event")
	}

	rm := &entity.PerkReadModel{
		PerkID:      perkID,
		Description: evt.Description,
		Membership:  evt.Membership,
		Product:     evt.Product,
		StartDate:   evt.StartDate,
		EndDate:     evt.EndDate,
		PostedBy:    postedBy,
		UpdatedAt:   time.Now().UTC(),
	}

	existing, err := srv.readModelRepo.FindPerk(ctx, perkID)
	if err != nil && !errors.Is(err, repository.ErrReadModelNotFound) {
		return errors.Wrap(err, "failed to find perk read model")
	}
	if existing != nil {
		rm.Upvotes = existing.Upvotes
		rm.Downvotes = existing.Downvotes
		rm.NetScore = existing.NetScore
	}

	if err := srv.readModelRepo.UpsertPerk(ctx, rm); err != nil {
		return errors.Wrap(err, "failed to upsert perk read model")
	}

	srv.log(ctx).Debug("Projected perk created", slog.Any("perkID", perkID))

	return nil
}

// ApplyPerkUpvoted stores the absolute upvote count carried by the event.
func (srv *projectionService) ApplyPerkUpvoted(ctx context.Context, evt *event.PerkUpvoted) error {
	perkID, err := uuid.Parse(evt.PerkID)
	if err != nil {
		return errors.Wrap(err, "invalid perk id in event")
	}

	if err := srv.readModelRepo.SetPerkUpvotes(ctx, perkID, evt.NewUpvoteCount); err != nil {
		return errors.Wrap(err, "failed to set perk upvotes")
	}

	srv.log(ctx).Debug("Projected perk upvote", slog.Any("perkID", perkID), slog.Int("count", evt.NewUpvoteCount))

	return nil
}

// ApplyPerkDownvoted stores the absolute downvote count carried by the event.
func (srv *projectionService) ApplyPerkDownvoted(ctx context.Context, evt *event.PerkDownvoted) error {
	perkID, err := uuid.Parse(evt.PerkID)
	if err != nil {
		return errors.Wrap(err, "invalid perk id in event")
	}

	if err := srv.readModelRepo.SetPerkDownvotes(ctx, perkID, evt.NewDownvoteCount); err != nil {
		return errors.Wrap(err, "failed to set perk downvotes")
	}

	srv.log(ctx).Debug("Projected perk downvote", slog.Any("perkID", perkID), slog.Int("count", evt.NewDownvoteCount))

	return nil
}

// ApplyUserRegistered creates the user profile projection row. On redelivery
// the membership labels, owned by later events, are left alone.
func (srv *projectionService) ApplyUserRegistered(ctx context.Context, evt *event.UserRegistered) error {
	userID, err := uuid.Parse(evt.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id in event")
	}

	rm := &entity.UserProfileReadModel{
		UserID:    userID,
		Email:     evt.Email,
		UpdatedAt: time.Now().UTC(),
	}

	existing, err := srv.readModelRepo.FindUserProfile(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrReadModelNotFound) {
		return errors.Wrap(err, "failed to find user profile read model")
	}
	if existing != nil {
		rm.ProfileID = existing.ProfileID
		rm.Memberships = existing.Memberships
	}

	if err := srv.readModelRepo.UpsertUserProfile(ctx, rm); err != nil {
		return errors.Wrap(err, "failed to upsert user profile read model")
	}

	srv.log(ctx).Debug("Projected user registered", slog.Any("userID", userID))

	return nil
}

// ApplyMembershipAdded adds the label to the projected set if absent.
func (srv *projectionService) ApplyMembershipAdded(ctx context.Context, evt *event.MembershipAdded) error {
	rm, err := srv.userProfileRow(ctx, evt.UserID, evt.ProfileID)
	if err != nil {
		return err
	}

	for _, m := range rm.Memberships {
		if m == evt.Membership {
			return nil
		}
	}
	rm.Memberships = append(rm.Memberships, evt.Membership)
	rm.UpdatedAt = time.Now().UTC()

	if err := srv.readModelRepo.UpsertUserProfile(ctx, rm); err != nil {
		return errors.Wrap(err, "failed to upsert user profile read model")
	}

	srv.log(ctx).Debug("Projected membership added", slog.String("userID", evt.UserID), slog.String("label", evt.Membership))

	return nil
}

// ApplyMembershipRemoved removes the label from the projected set if present.
func (srv *projectionService) ApplyMembershipRemoved(ctx context.Context, evt *event.MembershipRemoved) error {
	rm, err := srv.userProfileRow(ctx, evt.UserID, evt.ProfileID)
	if err != nil {
		return err
	}

	kept := rm.Memberships[:0]
	removed := false
	for _, m := range rm.Memberships {
		if m == evt.Membership {
			removed = true

			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return nil
	}
	rm.Memberships = kept
	rm.UpdatedAt = time.Now().UTC()

	if err := srv.readModelRepo.UpsertUserProfile(ctx, rm); err != nil {
		return errors.Wrap(err, "failed to upsert user profile read model")
	}

	srv.log(ctx).Debug("Projected membership removed", slog.String("userID", evt.UserID), slog.String("label", evt.Membership))

	return nil
}

// userProfileRow loads the projection row for a membership event, starting
// from an empty row when the registration event has not arrived yet.
func (srv *projectionService) userProfileRow(ctx context.Context, rawUserID, rawProfileID string) (*entity.UserProfileReadModel, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id in event")
	}
	profileID, err := uuid.Parse(rawProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid profile id in event")
	}

	rm, err := srv.readModelRepo.FindUserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReadModelNotFound) {
			return &entity.UserProfileReadModel{UserID: userID, ProfileID: profileID}, nil
		}

		return nil, errors.Wrap(err, "failed to find user profile read model")
	}
	if rm.ProfileID == uuid.Nil {
		rm.ProfileID = profileID
	}

	return rm, nil
}
