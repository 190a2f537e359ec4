// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"perkhub/config"
	deliverycontext "perkhub/internal/delivery/context"
	"perkhub/internal/domain/constants"
	"perkhub/internal/domain/event"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying domain events and
// applies them to the read model.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	projectionSvc  usecase.ProjectionUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	ProjectionSvc usecase.ProjectionUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		projectionSvc:  params.ProjectionSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Status codes follow the push contract: 200 acknowledges, 503 asks the
// channel to redeliver. Undecodable messages are acknowledged after logging
// so a poison message cannot block the subscription.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	eventType := pushMsg.Message.Attributes["event_type"]

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event_type", eventType),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.applyEvent(ctx, eventType, data); err != nil {
		reqLogger.Error("[Worker] Failed to apply event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event applied successfully",
		slog.String("event_type", eventType),
	)

	return c.NoContent(http.StatusOK)
}

// applyEvent decodes the payload for the given event type and applies it to
// the read model. Unmarshal failures are not retryable; projection failures
// are, since they come from the write path to the read store.
func (h *PushHandler) applyEvent(ctx context.Context, eventType string, data []byte) error {
	switch eventType {
	case event.TypePerkCreated:
		var evt event.PerkCreated
		if err := json.Unmarshal(data, &evt); err != nil {
			return errors.Wrap(err, "failed to parse perk created event")
		}

		return wrapRetryable(h.projectionSvc.ApplyPerkCreated(ctx, &evt))
	case event.TypePerkUpvoted:
		var evt event.PerkUpvoted
		if err := json.Unmarshal(data, &evt); err != nil {
			return errors.Wrap(err, "failed to parse perk upvoted event")
		}

		return wrapRetryable(h.projectionSvc.ApplyPerkUpvoted(ctx, &evt))
	case event.TypePerkDownvoted:
		var evt event.PerkDownvoted
		if err := json.Unmarshal(data, &evt); err != nil {
			return errors.Wrap(err, "failed to parse perk downvoted event")
		}

		return wrapRetryable(h.projectionSvc.ApplyPerkDownvoted(ctx, &evt))
	case event.TypeUserRegistered:
		var evt event.UserRegistered
		if err := json.Unmarshal(data, &evt); err != nil {
			return errors.Wrap(err, "failed to parse user registered event")
		}

		return wrapRetryable(h.projectionSvc.ApplyUserRegistered(ctx, &evt))
	case event.TypeMembershipAdded:
		var evt event.MembershipAdded
		if err := json.Unmarshal(data, &evt); err != nil {
			return errors.Wrap(err, "failed to parse membership added event")
		}

		return wrapRetryable(h.projectionSvc.ApplyMembershipAdded(ctx, &evt))
	case event.TypeMembershipRemoved:
		var evt event.MembershipRemoved
		if err := json.Unmarshal(data, &evt); err != nil {
			return errors.Wrap(err, "failed to parse membership removed event")
		}

		return wrapRetryable(h.projectionSvc.ApplyMembershipRemoved(ctx, &evt))
	default:
		return errors.Errorf("unknown event type: %s", eventType)
	}
}

// wrapRetryable marks a non-nil projection error as retryable
func wrapRetryable(err error) error {
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// extractRequestID extracts request_id from message attributes, context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 3. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
