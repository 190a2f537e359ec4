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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	emitter     *mockSvc.MockEventEmitter
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	emitter := mockSvc.NewMockEventEmitter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Emitter:     emitter,
		Logger:      logger,
	})

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		emitter:     emitter,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          profileID,
		UserID:      userID,
		Memberships: []string{"Visa", "Air Miles"},
	}, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profileID, output.ProfileID)
	assert.Equal(t, []string{"Visa", "Air Miles"}, output.Memberships)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_AddMembership_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          profileID,
		UserID:      userID,
		Memberships: []string{"Visa"},
	}, nil)
	fx.profileRepo.EXPECT().AddMembership(ctx, profileID, "Air Miles").Return(nil)

	fx.emitter.EXPECT().
		EmitMembershipAdded(ctx, mock.AnythingOfType("*event.MembershipAdded")).
		Run(func(ctx context.Context, evt *event.MembershipAdded) {
			assert.Equal(t, userID.String(), evt.UserID)
			assert.Equal(t, "Air Miles", evt.Membership)
		}).
		Return()

	output, err := fx.service.AddMembership(ctx, userID, "Air Miles")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Visa", "Air Miles"}, output.Memberships)
}

func TestProfileService_AddMembership_AlreadyPresent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	// "air miles" matches the stored "Air Miles" after normalization, so the
	// repository is never written to and no event goes out.
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Memberships: []string{"Air Miles"},
	}, nil)

	output, err := fx.service.AddMembership(ctx, userID, "air miles")

	require.NoError(t, err)
	assert.Equal(t, []string{"Air Miles"}, output.Memberships)
}

func TestProfileService_RemoveMembership_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          profileID,
		UserID:      userID,
		Memberships: []string{"Visa", "Library Card"},
	}, nil)
	fx.profileRepo.EXPECT().RemoveMembership(ctx, profileID, "Library Card").Return(nil)

	fx.emitter.EXPECT().
		EmitMembershipRemoved(ctx, mock.AnythingOfType("*event.MembershipRemoved")).
		Run(func(ctx context.Context, evt *event.MembershipRemoved) {
			assert.Equal(t, "Library Card", evt.Membership)
		}).
		Return()

	output, err := fx.service.RemoveMembership(ctx, userID, "Library Card")

	require.NoError(t, err)
	assert.Equal(t, []string{"Visa"}, output.Memberships)
}

func TestProfileService_RemoveMembership_NormalizedLabelDeletesStoredForm(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	// The caller's spelling differs from the stored one; the delete and the
	// event must both carry the stored form or the row would survive.
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          profileID,
		UserID:      userID,
		Memberships: []string{"Air Miles"},
	}, nil)
	fx.profileRepo.EXPECT().RemoveMembership(ctx, profileID, "Air Miles").Return(nil)

	fx.emitter.EXPECT().
		EmitMembershipRemoved(ctx, mock.AnythingOfType("*event.MembershipRemoved")).
		Run(func(ctx context.Context, evt *event.MembershipRemoved) {
			assert.Equal(t, "Air Miles", evt.Membership)
		}).
		Return()

	output, err := fx.service.RemoveMembership(ctx, userID, "air miles")

	require.NoError(t, err)
	assert.Empty(t, output.Memberships)
}

func TestProfileService_RemoveMembership_NotPresent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Memberships: []string{"Visa"},
	}, nil)

	output, err := fx.service.RemoveMembership(ctx, userID, "Costco")

	require.NoError(t, err)
	assert.Equal(t, []string{"Visa"}, output.Memberships)
}
