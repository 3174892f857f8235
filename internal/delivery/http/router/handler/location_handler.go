package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Date      *time.Time `json:"date,omitempty"`
	Track     string     `json:"track" validate:"required,max=256"`
	Position  int        `json:"position"`
	Edit      bool       `json:"edit"`
}

// LocationResponse is the wire representation of a location.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"`
	Track     string  `json:"track"`
	Position  int     `json:"position"`
	Edit      bool    `json:"edit"`
}

func toLocationResponse(location *entity.Location) LocationResponse {
	return LocationResponse{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Date:      formatDate(location.Date),
		Track:     location.TrackLabel,
		Position:  location.Position,
		Edit:      location.Edit,
	}
}

// ListLocations returns every location on the caller's tracks, oldest first.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]LocationResponse, 0, len(locations))
	for _, location := range locations {
		body = append(body, toLocationResponse(location))
	}

	return c.JSON(http.StatusOK, body)
}

// CreateLocation stores a location, creating its track when the label is new.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), userID, &usecase.CreateLocationInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Date:      req.Date,
		Track:     req.Track,
		Position:  req.Position,
		Edit:      req.Edit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, toLocationResponse(location))
}
