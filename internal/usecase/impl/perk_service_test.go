package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perkhub/internal/domain/entity"
	domainerrors "perkhub/internal/domain/errors"
	"perkhub/internal/domain/repository"
	mockRepo "perkhub/internal/mocks/repository"
	mockSvc "perkhub/internal/mocks/service"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// perkServiceFixtures holds all test dependencies for perk service tests.
type perkServiceFixtures struct {
	service     usecase.PerkUsecase
	txManager   *mockRepo.MockTransactionManager
	perkRepo    *mockRepo.MockPerkRepository
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
	emitter     *mockSvc.MockEventEmitter
}

func createTestPerkService(t *testing.T) perkServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	perkRepo := mockRepo.NewMockPerkRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	emitter := mockSvc.NewMockEventEmitter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPerkService(PerkServiceParams{
		TxManager:   txManager,
		PerkRepo:    perkRepo,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Emitter:     emitter,
		Logger:      logger,
	})

	return perkServiceFixtures{
		service:     service,
		txManager:   txManager,
		perkRepo:    perkRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		emitter:     emitter,
	}
}

// expectVoteTransaction wires the transaction manager to run the vote closure
// against a factory backed by the given repositories.
func expectVoteTransaction(t *testing.T, fx perkServiceFixtures, userRepo *mockRepo.MockUserRepository, perkRepo *mockRepo.MockPerkRepository, voteRepo *mockRepo.MockVoteRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewPerkRepository().Return(perkRepo)
			factory.EXPECT().NewVoteRepository().Return(voteRepo)

			return fn(factory)
		})
}

func TestPerkService_CastVote_FirstUpvote(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPerkRepo := mockRepo.NewMockPerkRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txPerkRepo.EXPECT().FindByIDForUpdate(ctx, perkID).
		Return(&entity.Perk{ID: perkID, Upvotes: 0, Downvotes: 0}, nil)
	txVoteRepo.EXPECT().FindByUserAndPerk(ctx, userID, perkID).
		Return(nil, repository.ErrVoteNotFound)
	txVoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vote")).Return(nil)
	txPerkRepo.EXPECT().UpdateCounters(ctx, mock.AnythingOfType("*entity.Perk")).Return(nil)

	expectVoteTransaction(t, fx, txUserRepo, txPerkRepo, txVoteRepo)

	fx.emitter.EXPECT().EmitPerkUpvoted(ctx, mock.AnythingOfType("*event.PerkUpvoted")).Return()

	result, err := fx.service.CastVote(ctx, userID, perkID, entity.VoteUp)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Upvotes)
	assert.Equal(t, 0, result.Downvotes)
}

func TestPerkService_CastVote_SameDirectionTogglesOff(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()
	voteID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPerkRepo := mockRepo.NewMockPerkRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txPerkRepo.EXPECT().FindByIDForUpdate(ctx, perkID).
		Return(&entity.Perk{ID: perkID, Upvotes: 1, Downvotes: 0}, nil)
	txVoteRepo.EXPECT().FindByUserAndPerk(ctx, userID, perkID).
		Return(&entity.Vote{ID: voteID, UserID: userID, PerkID: perkID, Type: entity.VoteUp}, nil)
	txVoteRepo.EXPECT().Delete(ctx, voteID).Return(nil)
	txPerkRepo.EXPECT().UpdateCounters(ctx, mock.AnythingOfType("*entity.Perk")).Return(nil)

	expectVoteTransaction(t, fx, txUserRepo, txPerkRepo, txVoteRepo)

	fx.emitter.EXPECT().EmitPerkUpvoted(ctx, mock.AnythingOfType("*event.PerkUpvoted")).Return()

	result, err := fx.service.CastVote(ctx, userID, perkID, entity.VoteUp)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Upvotes)
	assert.Equal(t, 0, result.Downvotes)
}

func TestPerkService_CastVote_OppositeDirectionSwitches(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()
	voteID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPerkRepo := mockRepo.NewMockPerkRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txPerkRepo.EXPECT().FindByIDForUpdate(ctx, perkID).
		Return(&entity.Perk{ID: perkID, Upvotes: 1, Downvotes: 0}, nil)
	txVoteRepo.EXPECT().FindByUserAndPerk(ctx, userID, perkID).
		Return(&entity.Vote{ID: voteID, UserID: userID, PerkID: perkID, Type: entity.VoteUp}, nil)
	txVoteRepo.EXPECT().UpdateType(ctx, voteID, entity.VoteDown).Return(nil)
	txPerkRepo.EXPECT().UpdateCounters(ctx, mock.AnythingOfType("*entity.Perk")).Return(nil)

	expectVoteTransaction(t, fx, txUserRepo, txPerkRepo, txVoteRepo)

	// A switch moves both counters, so both events go out.
	fx.emitter.EXPECT().EmitPerkUpvoted(ctx, mock.AnythingOfType("*event.PerkUpvoted")).Return()
	fx.emitter.EXPECT().EmitPerkDownvoted(ctx, mock.AnythingOfType("*event.PerkDownvoted")).Return()

	result, err := fx.service.CastVote(ctx, userID, perkID, entity.VoteDown)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Upvotes)
	assert.Equal(t, 1, result.Downvotes)
}

func TestPerkService_CastVote_InvalidDirection(t *testing.T) {
	fx := createTestPerkService(t)

	_, err := fx.service.CastVote(context.Background(), uuid.New(), uuid.New(), entity.VoteType("SIDEWAYS"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPerkService_CastVote_PerkLocked(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPerkRepo := mockRepo.NewMockPerkRepository(t)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txPerkRepo.EXPECT().FindByIDForUpdate(ctx, perkID).Return(nil, repository.ErrPerkLocked)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewPerkRepository().Return(txPerkRepo)

			return fn(factory)
		})

	_, err := fx.service.CastVote(ctx, userID, perkID, entity.VoteUp)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVoteContention)
}

func TestPerkService_CastVote_DuplicateVoteRace(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPerkRepo := mockRepo.NewMockPerkRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txPerkRepo.EXPECT().FindByIDForUpdate(ctx, perkID).
		Return(&entity.Perk{ID: perkID}, nil)
	txVoteRepo.EXPECT().FindByUserAndPerk(ctx, userID, perkID).
		Return(nil, repository.ErrVoteNotFound)
	txVoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vote")).
		Return(repository.ErrDuplicateVote)

	expectVoteTransaction(t, fx, txUserRepo, txPerkRepo, txVoteRepo)

	_, err := fx.service.CastVote(ctx, userID, perkID, entity.VoteUp)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVoteConflict)
}

func TestPerkService_CastVote_PerkNotFound(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPerkRepo := mockRepo.NewMockPerkRepository(t)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txPerkRepo.EXPECT().FindByIDForUpdate(ctx, perkID).Return(nil, repository.ErrPerkNotFound)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewPerkRepository().Return(txPerkRepo)

			return fn(factory)
		})

	_, err := fx.service.CastVote(ctx, userID, perkID, entity.VoteDown)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPerkNotFound)
}

func TestPerkService_CreatePerk_Success(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Now().Add(24 * time.Hour)

	input := &usecase.CreatePerkInput{
		UserID:      userID,
		Description: "20% off movie tickets",
		Membership:  "VISA",
		Product:     "MOVIES",
		StartDate:   start,
		EndDate:     start.Add(7 * 24 * time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.perkRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Perk")).
		Run(func(ctx context.Context, perk *entity.Perk) {
			perk.ID = uuid.New()
		}).
		Return(nil)
	fx.emitter.EXPECT().EmitPerkCreated(ctx, mock.AnythingOfType("*event.PerkCreated")).Return()

	perk, err := fx.service.CreatePerk(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.MembershipVisa, perk.Membership)
	assert.Equal(t, entity.ProductMovies, perk.Product)
	assert.Equal(t, userID, perk.PostedBy)
	assert.Zero(t, perk.Upvotes)
	assert.Zero(t, perk.Downvotes)
}

func TestPerkService_CreatePerk_ValidationFailures(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	start := time.Now().Add(24 * time.Hour)
	valid := usecase.CreatePerkInput{
		UserID:      uuid.New(),
		Description: "Free breakfast",
		Membership:  "CAA",
		Product:     "HOTELS",
		StartDate:   start,
		EndDate:     start.Add(48 * time.Hour),
	}

	tests := []struct {
		name   string
		mutate func(input *usecase.CreatePerkInput)
	}{
		{
			name:   "blank description",
			mutate: func(input *usecase.CreatePerkInput) { input.Description = "   " },
		},
		{
			name:   "unknown membership",
			mutate: func(input *usecase.CreatePerkInput) { input.Membership = "DINERS" },
		},
		{
			name:   "unknown product",
			mutate: func(input *usecase.CreatePerkInput) { input.Product = "YACHTS" },
		},
		{
			name:   "end before start",
			mutate: func(input *usecase.CreatePerkInput) { input.EndDate = input.StartDate.Add(-time.Hour) },
		},
		{
			name: "start in the past",
			mutate: func(input *usecase.CreatePerkInput) {
				input.StartDate = time.Now().Add(-48 * time.Hour)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := fx.service.CreatePerk(ctx, &input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPerkService_CreatePerk_PosterNotFound(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	start := time.Now().Add(24 * time.Hour)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreatePerk(ctx, &usecase.CreatePerkInput{
		UserID:      userID,
		Description: "Rental car upgrade",
		Membership:  "AMEX",
		Product:     "CARS",
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPerkService_GetPerk_NotFound(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	perkID := uuid.New()

	fx.perkRepo.EXPECT().FindByID(ctx, perkID).Return(nil, repository.ErrPerkNotFound)

	_, err := fx.service.GetPerk(ctx, perkID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPerkNotFound)
}

func TestPerkService_ListPerksMatchingProfile(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()
	perkID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Memberships: []string{"Visa", "Air Miles", "Library Card"},
	}, nil)

	fx.perkRepo.EXPECT().
		FindByMemberships(ctx, []entity.MembershipType{entity.MembershipVisa, entity.MembershipAirMiles}).
		Return([]*entity.Perk{{ID: perkID, Membership: entity.MembershipVisa}}, nil)

	perks, err := fx.service.ListPerksMatchingProfile(ctx, userID)

	require.NoError(t, err)
	require.Len(t, perks, 1)
	assert.Equal(t, perkID, perks[0].ID)
}

func TestPerkService_ListPerksMatchingProfile_NoKnownMemberships(t *testing.T) {
	fx := createTestPerkService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Memberships: []string{"Library Card"},
	}, nil)

	perks, err := fx.service.ListPerksMatchingProfile(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, perks)
}

func TestPerkService_ListPerksByMembership_InvalidType(t *testing.T) {
	fx := createTestPerkService(t)

	_, err := fx.service.ListPerksByMembership(context.Background(), entity.MembershipType("DINERS"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
