package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perkhub/config"
	"perkhub/internal/domain/event"
	mockUsecase "perkhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockProjectionUsecase) {
	projectionSvc := mockUsecase.NewMockProjectionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewPushHandler(PushHandlerParams{
		Config:        &config.Config{},
		Logger:        logger,
		ProjectionSvc: projectionSvc,
	})

	return handler, projectionSvc
}

// pushRequest builds an echo context carrying a Pub/Sub push envelope for the
// given event payload.
func pushRequest(t *testing.T, eventType string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.Attributes = map[string]string{
		"event_type": eventType,
		"request_id": "test-request-id",
	}
	pushMsg.Message.MessageID = "msg-1"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_AcksAppliedEvent(t *testing.T) {
	handler, projectionSvc := createTestPushHandler(t)

	projectionSvc.EXPECT().
		ApplyPerkUpvoted(mock.Anything, mock.AnythingOfType("*event.PerkUpvoted")).
		Run(func(ctx context.Context, evt *event.PerkUpvoted) {
			assert.Equal(t, "perk-1", evt.PerkID)
			assert.Equal(t, 4, evt.NewUpvoteCount)
		}).
		Return(nil)

	c, rec := pushRequest(t, event.TypePerkUpvoted, &event.PerkUpvoted{
		PerkID:         "perk-1",
		NewUpvoteCount: 4,
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetriesProjectionFailure(t *testing.T) {
	handler, projectionSvc := createTestPushHandler(t)

	projectionSvc.EXPECT().
		ApplyMembershipAdded(mock.Anything, mock.AnythingOfType("*event.MembershipAdded")).
		Return(errors.New("read store unavailable"))

	c, rec := pushRequest(t, event.TypeMembershipAdded, &event.MembershipAdded{
		UserID:     "user-1",
		ProfileID:  "profile-1",
		Membership: "Visa",
	})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_AcksUnknownEventType(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	// An unknown type can never succeed; retrying it would loop forever.
	c, rec := pushRequest(t, "perk.archived", map[string]string{"perk_id": "perk-1"})

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_AcksMalformedPayload(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{not json"))
	pushMsg.Message.Attributes = map[string]string{"event_type": event.TypePerkCreated}
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RejectsInvalidBase64(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "!!not base64!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
