package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"perkhub/internal/domain/entity"
	domainerrors "perkhub/internal/domain/errors"
	"perkhub/internal/domain/event"
	"perkhub/internal/domain/repository"
	mockRepo "perkhub/internal/mocks/repository"
	mockSvc "perkhub/internal/mocks/service"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	emitter   *mockSvc.MockEventEmitter
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	emitter := mockSvc.NewMockEventEmitter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Emitter:   emitter,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		emitter:   emitter,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					user.Profile.ID = uuid.New()
				}).
				Return(nil)

			return fn(factory)
		})

	fx.emitter.EXPECT().EmitUserRegistered(ctx, mock.AnythingOfType("*event.UserRegistered")).Return()

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.Email)
	assert.NotEqual(t, uuid.Nil, output.ID)
	assert.Empty(t, output.Memberships)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	_, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_DuplicateEmailRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:    "race@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(factory)
		})

	_, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "login@example.com",
		PasswordHash: "hashed_password",
		Profile: &entity.Profile{
			ID:          uuid.New(),
			UserID:      userID,
			Memberships: []string{"Visa"},
		},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, []string{"Visa"}, output.Memberships)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "login@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_DeleteUser_RetractsVotesAndEmitsCounters(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	upvotedPerkID := uuid.New()
	downvotedPerkID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txVoteRepo := mockRepo.NewMockVoteRepository(t)
			txPerkRepo := mockRepo.NewMockPerkRepository(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewVoteRepository().Return(txVoteRepo)
			factory.EXPECT().NewPerkRepository().Return(txPerkRepo)
			factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			txVoteRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Vote{
				{ID: uuid.New(), UserID: userID, PerkID: upvotedPerkID, Type: entity.VoteUp},
				{ID: uuid.New(), UserID: userID, PerkID: downvotedPerkID, Type: entity.VoteDown},
			}, nil)
			txPerkRepo.EXPECT().FindByIDForUpdate(ctx, upvotedPerkID).
				Return(&entity.Perk{ID: upvotedPerkID, Upvotes: 3}, nil)
			txPerkRepo.EXPECT().FindByIDForUpdate(ctx, downvotedPerkID).
				Return(&entity.Perk{ID: downvotedPerkID, Downvotes: 1}, nil)
			txPerkRepo.EXPECT().
				UpdateCounters(ctx, mock.AnythingOfType("*entity.Perk")).
				Run(func(ctx context.Context, perk *entity.Perk) {
					switch perk.ID {
					case upvotedPerkID:
						assert.Equal(t, 2, perk.Upvotes)
					case downvotedPerkID:
						assert.Equal(t, 0, perk.Downvotes)
					}
				}).
				Return(nil).
				Times(2)
			txVoteRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
			txProfileRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
			txUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			return fn(factory)
		})

	// Each retraction changed a counter, so the read model must hear about
	// both with the post-retraction absolute counts.
	fx.emitter.EXPECT().
		EmitPerkUpvoted(ctx, mock.AnythingOfType("*event.PerkUpvoted")).
		Run(func(ctx context.Context, evt *event.PerkUpvoted) {
			assert.Equal(t, upvotedPerkID.String(), evt.PerkID)
			assert.Equal(t, 2, evt.NewUpvoteCount)
		}).
		Return()
	fx.emitter.EXPECT().
		EmitPerkDownvoted(ctx, mock.AnythingOfType("*event.PerkDownvoted")).
		Run(func(ctx context.Context, evt *event.PerkDownvoted) {
			assert.Equal(t, downvotedPerkID.String(), evt.PerkID)
			assert.Equal(t, 0, evt.NewDownvoteCount)
		}).
		Return()

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txVoteRepo := mockRepo.NewMockVoteRepository(t)
			txPerkRepo := mockRepo.NewMockPerkRepository(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewVoteRepository().Return(txVoteRepo)
			factory.EXPECT().NewPerkRepository().Return(txPerkRepo)
			factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	_, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
