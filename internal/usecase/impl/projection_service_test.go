package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perkhub/internal/domain/entity"
	"perkhub/internal/domain/event"
	"perkhub/internal/domain/repository"
	mockRepo "perkhub/internal/mocks/repository"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// projectionServiceFixtures holds all test dependencies for projection service tests.
type projectionServiceFixtures struct {
	service       usecase.ProjectionUsecase
	readModelRepo *mockRepo.MockReadModelRepository
}

func createTestProjectionService(t *testing.T) projectionServiceFixtures {
	readModelRepo := mockRepo.NewMockReadModelRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProjectionService(ProjectionServiceParams{
		ReadModelRepo: readModelRepo,
		Logger:        logger,
	})

	return projectionServiceFixtures{
		service:       service,
		readModelRepo: readModelRepo,
	}
}

func TestProjectionService_ApplyPerkCreated_NewRow(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	perkID := uuid.New()
	postedBy := uuid.New()
	evt := &event.PerkCreated{
		PerkID:      perkID.String(),
		Description: "20% off at the cinema",
		Membership:  "visa",
		Product:     "movies",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		PostedBy:    postedBy.String(),
		OccurredAt:  time.Now().UTC(),
	}

	fx.readModelRepo.EXPECT().FindPerk(ctx, perkID).Return(nil, repository.ErrReadModelNotFound)
	fx.readModelRepo.EXPECT().
		UpsertPerk(ctx, mock.AnythingOfType("*entity.PerkReadModel")).
		Run(func(ctx context.Context, rm *entity.PerkReadModel) {
			assert.Equal(t, perkID, rm.PerkID)
			assert.Equal(t, "20% off at the cinema", rm.Description)
			assert.Equal(t, postedBy, rm.PostedBy)
			assert.Zero(t, rm.Upvotes)
			assert.Zero(t, rm.Downvotes)
		}).
		Return(nil)

	err := fx.service.ApplyPerkCreated(ctx, evt)

	require.NoError(t, err)
}

func TestProjectionService_ApplyPerkCreated_RedeliveryKeepsCounters(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	perkID := uuid.New()
	evt := &event.PerkCreated{
		PerkID:      perkID.String(),
		Description: "20% off at the cinema",
		Membership:  "visa",
		Product:     "movies",
		PostedBy:    uuid.New().String(),
	}

	fx.readModelRepo.EXPECT().FindPerk(ctx, perkID).Return(&entity.PerkReadModel{
		PerkID:    perkID,
		Upvotes:   7,
		Downvotes: 2,
		NetScore:  5,
	}, nil)
	fx.readModelRepo.EXPECT().
		UpsertPerk(ctx, mock.AnythingOfType("*entity.PerkReadModel")).
		Run(func(ctx context.Context, rm *entity.PerkReadModel) {
			assert.Equal(t, 7, rm.Upvotes)
			assert.Equal(t, 2, rm.Downvotes)
			assert.Equal(t, 5, rm.NetScore)
		}).
		Return(nil)

	err := fx.service.ApplyPerkCreated(ctx, evt)

	require.NoError(t, err)
}

func TestProjectionService_ApplyPerkCreated_InvalidPerkID(t *testing.T) {
	fx := createTestProjectionService(t)

	err := fx.service.ApplyPerkCreated(context.Background(), &event.PerkCreated{
		PerkID:   "not-a-uuid",
		PostedBy: uuid.New().String(),
	})

	require.Error(t, err)
}

func TestProjectionService_ApplyPerkUpvoted(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	perkID := uuid.New()

	fx.readModelRepo.EXPECT().SetPerkUpvotes(ctx, perkID, 4).Return(nil)

	err := fx.service.ApplyPerkUpvoted(ctx, &event.PerkUpvoted{
		PerkID:         perkID.String(),
		NewUpvoteCount: 4,
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyPerkDownvoted(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	perkID := uuid.New()

	fx.readModelRepo.EXPECT().SetPerkDownvotes(ctx, perkID, 1).Return(nil)

	err := fx.service.ApplyPerkDownvoted(ctx, &event.PerkDownvoted{
		PerkID:           perkID.String(),
		NewDownvoteCount: 1,
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyUserRegistered_RedeliveryKeepsMemberships(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.readModelRepo.EXPECT().FindUserProfile(ctx, userID).Return(&entity.UserProfileReadModel{
		UserID:      userID,
		ProfileID:   profileID,
		Memberships: []string{"Visa"},
	}, nil)
	fx.readModelRepo.EXPECT().
		UpsertUserProfile(ctx, mock.AnythingOfType("*entity.UserProfileReadModel")).
		Run(func(ctx context.Context, rm *entity.UserProfileReadModel) {
			assert.Equal(t, profileID, rm.ProfileID)
			assert.Equal(t, []string{"Visa"}, rm.Memberships)
			assert.Equal(t, "test@example.com", rm.Email)
		}).
		Return(nil)

	err := fx.service.ApplyUserRegistered(ctx, &event.UserRegistered{
		UserID: userID.String(),
		Email:  "test@example.com",
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyMembershipAdded(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.readModelRepo.EXPECT().FindUserProfile(ctx, userID).Return(&entity.UserProfileReadModel{
		UserID:      userID,
		ProfileID:   profileID,
		Memberships: []string{"Visa"},
	}, nil)
	fx.readModelRepo.EXPECT().
		UpsertUserProfile(ctx, mock.AnythingOfType("*entity.UserProfileReadModel")).
		Run(func(ctx context.Context, rm *entity.UserProfileReadModel) {
			assert.ElementsMatch(t, []string{"Visa", "Air Miles"}, rm.Memberships)
		}).
		Return(nil)

	err := fx.service.ApplyMembershipAdded(ctx, &event.MembershipAdded{
		UserID:     userID.String(),
		ProfileID:  profileID.String(),
		Membership: "Air Miles",
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyMembershipAdded_Redelivery(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	// The label is already projected, so the redelivered event writes nothing.
	fx.readModelRepo.EXPECT().FindUserProfile(ctx, userID).Return(&entity.UserProfileReadModel{
		UserID:      userID,
		ProfileID:   profileID,
		Memberships: []string{"Air Miles"},
	}, nil)

	err := fx.service.ApplyMembershipAdded(ctx, &event.MembershipAdded{
		UserID:     userID.String(),
		ProfileID:  profileID.String(),
		Membership: "Air Miles",
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyMembershipAdded_BeforeRegistration(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	// Ordering only holds per key; a membership event keyed to the same user
	// cannot overtake registration, but a missing row is still tolerated by
	// starting from an empty one.
	fx.readModelRepo.EXPECT().FindUserProfile(ctx, userID).
		Return(nil, repository.ErrReadModelNotFound)
	fx.readModelRepo.EXPECT().
		UpsertUserProfile(ctx, mock.AnythingOfType("*entity.UserProfileReadModel")).
		Run(func(ctx context.Context, rm *entity.UserProfileReadModel) {
			assert.Equal(t, userID, rm.UserID)
			assert.Equal(t, profileID, rm.ProfileID)
			assert.Equal(t, []string{"Visa"}, rm.Memberships)
		}).
		Return(nil)

	err := fx.service.ApplyMembershipAdded(ctx, &event.MembershipAdded{
		UserID:     userID.String(),
		ProfileID:  profileID.String(),
		Membership: "Visa",
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyMembershipRemoved(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.readModelRepo.EXPECT().FindUserProfile(ctx, userID).Return(&entity.UserProfileReadModel{
		UserID:      userID,
		ProfileID:   profileID,
		Memberships: []string{"Visa", "Air Miles"},
	}, nil)
	fx.readModelRepo.EXPECT().
		UpsertUserProfile(ctx, mock.AnythingOfType("*entity.UserProfileReadModel")).
		Run(func(ctx context.Context, rm *entity.UserProfileReadModel) {
			assert.Equal(t, []string{"Visa"}, rm.Memberships)
		}).
		Return(nil)

	err := fx.service.ApplyMembershipRemoved(ctx, &event.MembershipRemoved{
		UserID:     userID.String(),
		ProfileID:  profileID.String(),
		Membership: "Air Miles",
	})

	require.NoError(t, err)
}

func TestProjectionService_ApplyMembershipRemoved_Redelivery(t *testing.T) {
	fx := createTestProjectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.readModelRepo.EXPECT().FindUserProfile(ctx, userID).Return(&entity.UserProfileReadModel{
		UserID:      userID,
		ProfileID:   profileID,
		Memberships: []string{"Visa"},
	}, nil)

	err := fx.service.ApplyMembershipRemoved(ctx, &event.MembershipRemoved{
		UserID:     userID.String(),
		ProfileID:  profileID.String(),
		Membership: "Air Miles",
	})

	require.NoError(t, err)
}
