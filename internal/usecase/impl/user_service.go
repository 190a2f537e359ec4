// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	emitter   service.EventEmitter
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Emitter   service.EventEmitter
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		emitter:   params.Emitter,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new account with an empty membership profile attached.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing email")
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration rejected for duplicate email", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := entity.NewUser(input.Email, hash)
	if err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, user); err != nil {
			// The unique constraint is the backstop for a registration race.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	}); err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.emitter.EmitUserRegistered(ctx, &event.UserRegistered{
		UserID:     user.ID.String(),
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return toUserOutput(user), nil
}

// Login verifies credentials. It never reveals whether the email or the
// password was the wrong half.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return toUserOutput(user), nil
}

// DeleteUser removes an account and everything that hangs off it. The cascade
// is sequenced explicitly inside one transaction: votes are retracted from the
// perk counters first so the ledger and counters cannot drift apart.
func (srv *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Starting user deletion", slog.Any("userID", userID))

	// Counter changes made by the retractions, collected inside the
	// transaction and emitted only after it commits.
	type counterChange struct {
		perkID    uuid.UUID
		direction entity.VoteType
		count     int
	}
	var changes []counterChange

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		userRepo := f.NewUserRepository()
		voteRepo := f.NewVoteRepository()
		perkRepo := f.NewPerkRepository()
		profileRepo := f.NewProfileRepository()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		votes, err := voteRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list user votes")
		}
		for _, vote := range votes {
			perk, err := perkRepo.FindByIDForUpdate(ctx, vote.PerkID)
			if err != nil {
				if errors.Is(err, repository.ErrPerkLocked) {
					return domainerrors.ErrVoteContention
				}

				return errors.Wrap(err, "failed to lock perk for vote retraction")
			}
			perk.RetractVote(vote.Type)
			if err := perkRepo.UpdateCounters(ctx, perk); err != nil {
				return errors.Wrap(err, "failed to update perk counters")
			}

			count := perk.Upvotes
			if vote.Type == entity.VoteDown {
				count = perk.Downvotes
			}
			changes = append(changes, counterChange{perkID: perk.ID, direction: vote.Type, count: count})
		}

		if err := voteRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user votes")
		}
		if err := profileRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user profile")
		}
		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute deletion transaction", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	// Each retraction moved exactly one counter; the read model learns about
	// it the same way it learns about a cast vote, with the absolute count.
	now := time.Now().UTC()
	for _, change := range changes {
		switch change.direction {
		case entity.VoteUp:
			srv.emitter.EmitPerkUpvoted(ctx, &event.PerkUpvoted{
				PerkID:         change.perkID.String(),
				NewUpvoteCount: change.count,
				OccurredAt:     now,
			})
		case entity.VoteDown:
			srv.emitter.EmitPerkDownvoted(ctx, &event.PerkDownvoted{
				PerkID:           change.perkID.String(),
				NewDownvoteCount: change.count,
				OccurredAt:       now,
			})
		}
	}

	srv.log(ctx).Debug("User deletion completed", slog.Any("userID", userID))

	return nil
}

// toUserOutput strips credentials and flattens the profile for callers.
func toUserOutput(user *entity.User) *usecase.UserOutput {
	out := &usecase.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		out.ProfileID = user.Profile.ID
		out.Memberships = user.Profile.Memberships
	}

	return out
}
