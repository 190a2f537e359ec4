package handler

import (
	"log/slog"
	"net/http"

	"perkhub/internal/delivery/http/response"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// membershipRequest is the payload for adding a membership label.
type membershipRequest struct {
	Membership string `json:"membership" validate:"required"`
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile handles the profile lookup request.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddMembership handles adding a membership label to the profile.
func (h *ProfileHandler) AddMembership(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var req membershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddMembership(c.Request().Context(), userID, req.Membership)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Membership added")
}

// RemoveMembership handles removing a membership label from the profile.
func (h *ProfileHandler) RemoveMembership(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	label := c.Param("label")
	if label == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Membership label is required")
	}

	output, err := h.uc.RemoveMembership(c.Request().Context(), userID, label)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Membership removed")
}
