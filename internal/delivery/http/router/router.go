// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"perkhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	PerkHandler    *handler.PerkHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	perkHandler    *handler.PerkHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		perkHandler:    params.PerkHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User and profile routes
	userGroup := e.Group("/users")
	{
		userGroup.DELETE("/:userID", r.userHandler.DeleteUser)
		userGroup.GET("/:userID/profile", r.profileHandler.GetProfile)
		userGroup.POST("/:userID/memberships", r.profileHandler.AddMembership)
		userGroup.DELETE("/:userID/memberships/:label", r.profileHandler.RemoveMembership)
		userGroup.GET("/:userID/perks", r.perkHandler.ListPerksByUser)
		userGroup.GET("/:userID/matching-perks", r.perkHandler.ListPerksMatchingProfile)
	}

	// Perk routes
	perkGroup := e.Group("/perks")
	{
		perkGroup.POST("", r.perkHandler.CreatePerk)
		perkGroup.GET("", r.perkHandler.ListPerks)
		perkGroup.GET("/:perkID", r.perkHandler.GetPerk)
		perkGroup.POST("/:perkID/votes", r.perkHandler.CastVote)
		perkGroup.GET("/membership/:membership", r.perkHandler.ListPerksByMembership)
		perkGroup.GET("/product/:product", r.perkHandler.ListPerksByProduct)
	}
}
