package impl

import (
	"context"
	"log/slog"
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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	emitter     service.EventEmitter
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Emitter     service.EventEmitter
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		emitter:     params.Emitter,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the membership label set for a user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toProfileOutput(profile), nil
}

// AddMembership adds a label to the user's profile. Adding a label that is
// already present returns the unchanged profile and emits nothing.
func (srv *profileService) AddMembership(ctx context.Context, userID uuid.UUID, label string) (*usecase.ProfileOutput, error) {
	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.AddMembership(label) {
		srv.log(ctx).Debug("Membership already present, skipping", slog.Any("userID", userID), slog.String("label", label))

		return toProfileOutput(profile), nil
	}

	if err := srv.profileRepo.AddMembership(ctx, profile.ID, label); err != nil {
		return nil, errors.Wrap(err, "failed to add membership")
	}

	srv.emitter.EmitMembershipAdded(ctx, &event.MembershipAdded{
		UserID:     userID.String(),
		ProfileID:  profile.ID.String(),
		Membership: label,
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Info("Membership added", slog.Any("userID", userID), slog.String("label", label))

	return toProfileOutput(profile), nil
}

// RemoveMembership removes a label from the user's profile. Removing an absent
// label returns the unchanged profile and emits nothing.
func (srv *profileService) RemoveMembership(ctx context.Context, userID uuid.UUID, label string) (*usecase.ProfileOutput, error) {
	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The deletion must target the stored form of the label: matching is
	// case/spacing-insensitive, the repository delete is exact.
	stored, removed := profile.RemoveMembership(label)
	if !removed {
		srv.log(ctx).Debug("Membership not present, skipping", slog.Any("userID", userID), slog.String("label", label))

		return toProfileOutput(profile), nil
	}

	if err := srv.profileRepo.RemoveMembership(ctx, profile.ID, stored); err != nil {
		return nil, errors.Wrap(err, "failed to remove membership")
	}

	srv.emitter.EmitMembershipRemoved(ctx, &event.MembershipRemoved{
		UserID:     userID.String(),
		ProfileID:  profile.ID.String(),
		Membership: stored,
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Info("Membership removed", slog.Any("userID", userID), slog.String("label", stored))

	return toProfileOutput(profile), nil
}

func (srv *profileService) findProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func toProfileOutput(profile *entity.Profile) *usecase.ProfileOutput {
	return &usecase.ProfileOutput{
		ProfileID:   profile.ID,
		UserID:      profile.UserID,
		Memberships: profile.Memberships,
	}
}
