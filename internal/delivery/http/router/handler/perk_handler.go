package handler

import (
	"log/slog"
	"net/http"
	"time"

	"perkhub/internal/delivery/http/response"
	"perkhub/internal/domain/entity"
	"perkhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createPerkRequest is the payload for posting a new perk.
type createPerkRequest struct {
	UserID      string `json:"userId" validate:"required,uuid"`
	Description string `json:"description" validate:"required"`
	Membership  string `json:"membership" validate:"required"`
	Product     string `json:"product" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
}

// castVoteRequest is the payload for voting on a perk.
type castVoteRequest struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	Direction string `json:"direction" validate:"required"`
}

// PerkHandler holds dependencies for perk-related handlers.
type PerkHandler struct {
	uc     usecase.PerkUsecase
	logger *slog.Logger
}

// NewPerkHandler is the constructor for PerkHandler, injected by Fx.
func NewPerkHandler(uc usecase.PerkUsecase, logger *slog.Logger) *PerkHandler {
	return &PerkHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePerk handles posting a new perk.
func (h *PerkHandler) CreatePerk(c echo.Context) error {
	var req createPerkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid perk input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Start date must be in YYYY-MM-DD format")
	}

	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "End date must be in YYYY-MM-DD format")
	}

	perk, err := h.uc.CreatePerk(c.Request().Context(), &usecase.CreatePerkInput{
		UserID:      userID,
		Description: req.Description,
		Membership:  req.Membership,
		Product:     req.Product,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, perk, "Perk created successfully")
}

// CastVote handles a vote action against a perk.
func (h *PerkHandler) CastVote(c echo.Context) error {
	perkID, err := uuid.Parse(c.Param("perkID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid perk ID")
	}

	var req castVoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	direction, err := entity.ParseVoteType(req.Direction)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Direction must be UPVOTE or DOWNVOTE")
	}

	result, err := h.uc.CastVote(c.Request().Context(), userID, perkID, direction)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Vote recorded")
}

// GetPerk handles the single perk lookup.
func (h *PerkHandler) GetPerk(c echo.Context) error {
	perkID, err := uuid.Parse(c.Param("perkID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid perk ID")
	}

	perk, err := h.uc.GetPerk(c.Request().Context(), perkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perk, "")
}

// ListPerks handles the full perk listing. The sort query parameter switches
// between newest-first (default) and upvote ordering.
func (h *PerkHandler) ListPerks(c echo.Context) error {
	var (
		perks []*entity.Perk
		err   error
	)

	if c.QueryParam("sort") == "votes" {
		perks, err = h.uc.ListPerksByVotes(c.Request().Context())
	} else {
		perks, err = h.uc.ListPerks(c.Request().Context())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perks, "")
}

// ListPerksByMembership handles the membership-filtered perk listing.
func (h *PerkHandler) ListPerksByMembership(c echo.Context) error {
	membership, err := entity.ParseMembershipType(c.Param("membership"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown membership type")
	}

	perks, err := h.uc.ListPerksByMembership(c.Request().Context(), membership)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perks, "")
}

// ListPerksByProduct handles the product-filtered perk listing.
func (h *PerkHandler) ListPerksByProduct(c echo.Context) error {
	product, err := entity.ParseProductType(c.Param("product"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown product type")
	}

	perks, err := h.uc.ListPerksByProduct(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perks, "")
}

// ListPerksMatchingProfile handles the listing of perks matching the
// requesting user's membership labels.
func (h *PerkHandler) ListPerksMatchingProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	perks, err := h.uc.ListPerksMatchingProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perks, "")
}

// ListPerksByUser handles the listing of perks posted by a user.
func (h *PerkHandler) ListPerksByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	perks, err := h.uc.ListPerksByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perks, "")
}
