// Package router contains the route table of the HTTP delivery.
package router

import (
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	TrackHandler    *handler.TrackHandler
	LocationHandler *handler.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	trackHandler    *handler.TrackHandler
	locationHandler *handler.LocationHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		trackHandler:    params.TrackHandler,
		locationHandler: params.LocationHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	locationsGroup := e.Group("/locations", r.authMiddleware.Authenticate)
	{
		locationsGroup.GET("", r.locationHandler.ListLocations)
		locationsGroup.POST("", r.locationHandler.CreateLocation)
	}

	tracksGroup := e.Group("/tracks", r.authMiddleware.Authenticate)
	{
		tracksGroup.GET("", r.trackHandler.ListTracks)
		tracksGroup.POST("", r.trackHandler.CreateTrack)

		// Static segment registered before the :label routes.
		tracksGroup.GET("/live", r.trackHandler.LiveTrack)

		tracksGroup.GET("/:label", r.trackHandler.RetrieveTrack)
		tracksGroup.PUT("/:label", r.trackHandler.RenameTrack)
		tracksGroup.PATCH("/:label", r.trackHandler.PatchTrack)
		tracksGroup.GET("/:label/params", r.trackHandler.TrackParams)
		tracksGroup.GET("/:label/process", r.trackHandler.ProcessTrack)
		tracksGroup.POST("/:label/delete_edit", r.trackHandler.DeleteEdited)
		tracksGroup.POST("/:label/join", r.trackHandler.JoinTracks)
		tracksGroup.GET("/:label/geojson", r.trackHandler.TrackGeoJSON)
	}
}
