package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/infra/geo"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackHandlerParams holds dependencies for TrackHandler, injected by Fx.
type TrackHandlerParams struct {
	fx.In

	TrackUC usecase.TrackUsecase
	Logger  *slog.Logger
}

// TrackHandler holds dependencies for track-related handlers
type TrackHandler struct {
	trackUC usecase.TrackUsecase
	logger  *slog.Logger
}

// NewTrackHandler is the constructor for TrackHandler
func NewTrackHandler(params TrackHandlerParams) *TrackHandler {
	return &TrackHandler{
		trackUC: params.TrackUC,
		logger:  params.Logger,
	}
}

// CreateTrackRequest is the body of POST /tracks.
type CreateTrackRequest struct {
	Label string `json:"label" validate:"required,max=256"`
	Ended bool   `json:"ended"`
}

// PatchTrackRequest is the body of PATCH /tracks/:label.
type PatchTrackRequest struct {
	Label *string `json:"label,omitempty" validate:"omitempty,min=1,max=256"`
	Ended *bool   `json:"ended,omitempty"`
}

// RenameTrackRequest is the body of PUT /tracks/:label.
type RenameTrackRequest struct {
	NewLabel string `json:"new_label"`
}

// JoinTracksRequest is the body of POST /tracks/:label/join.
type JoinTracksRequest struct {
	SecondLabel string `json:"second_label"`
}

// TrackResponse is the lightweight track representation.
type TrackResponse struct {
	Label string `json:"label"`
	Ended bool   `json:"ended"`
}

// PointResponse is one point of a track trace.
type PointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"`
}

// TrackParamsResponse summarizes a track.
type TrackParamsResponse struct {
	PointsNumber int64   `json:"points_number"`
	StartDate    *string `json:"start_date"`
	StopDate     *string `json:"stop_date"`
	Processed    bool    `json:"processed"`
	Ended        bool    `json:"ended"`
}

func toTrackResponse(track *entity.Track) TrackResponse {
	return TrackResponse{Label: track.Label, Ended: track.Ended}
}

// ListTracks returns the caller's track labels.
func (h *TrackHandler) ListTracks(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	labels, err := h.trackUC.ListLabels(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, labels)
}

// CreateTrack creates an empty track owned by the caller.
func (h *TrackHandler) CreateTrack(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateTrackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	track, err := h.trackUC.CreateTrack(c.Request().Context(), userID, &usecase.CreateTrackInput{
		Label: req.Label,
		Ended: req.Ended,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, toTrackResponse(track))
}

// RetrieveTrack returns the edit-aware trace, optionally only after last_date.
func (h *TrackHandler) RetrieveTrack(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var lastDate *time.Time
	if raw := c.QueryParam("last_date"); raw != "" {
		if lastDate, err = parseLastDate(raw); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	points, err := h.trackUC.RetrievePoints(c.Request().Context(), userID, trackLabel(c), lastDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body := make([]PointResponse, 0, len(points))
	for _, point := range points {
		body = append(body, PointResponse{
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
			Date:      formatDate(point.Date),
		})
	}

	return c.JSON(http.StatusOK, body)
}

// RenameTrack sets a new label; the response has no body.
func (h *TrackHandler) RenameTrack(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RenameTrackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.trackUC.RenameTrack(c.Request().Context(), userID, trackLabel(c), req.NewLabel); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// PatchTrack applies a partial update of label and ended.
func (h *TrackHandler) PatchTrack(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PatchTrackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	track, err := h.trackUC.PatchTrack(c.Request().Context(), userID, trackLabel(c), &usecase.PatchTrackInput{
		Label: req.Label,
		Ended: req.Ended,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, toTrackResponse(track))
}

// TrackParams returns the point count, date range and flags of a track.
func (h *TrackHandler) TrackParams(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	params, err := h.trackUC.GetParams(c.Request().Context(), userID, trackLabel(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, TrackParamsResponse{
		PointsNumber: params.PointsNumber,
		StartDate:    formatOptionalDate(params.StartDate),
		StopDate:     formatOptionalDate(params.StopDate),
		Processed:    params.Processed,
		Ended:        params.Ended,
	})
}

// LiveTrack returns the current live track, or the JSON string "" when there is none.
func (h *TrackHandler) LiveTrack(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	track, err := h.trackUC.GetLiveTrack(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if track == nil {
		return c.JSON(http.StatusOK, "")
	}

	return c.JSON(http.StatusOK, toTrackResponse(track))
}

// ProcessTrack marks the track processed.
func (h *TrackHandler) ProcessTrack(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.trackUC.ProcessTrack(c.Request().Context(), userID, trackLabel(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteEdited removes the edited points of the track.
func (h *TrackHandler) DeleteEdited(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.trackUC.DeleteEdited(c.Request().Context(), userID, trackLabel(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// JoinTracks merges second_label into the track of the path.
func (h *TrackHandler) JoinTracks(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req JoinTracksRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.trackUC.JoinTracks(c.Request().Context(), userID, trackLabel(c), req.SecondLabel); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TrackGeoJSON renders the trace as a GeoJSON FeatureCollection.
func (h *TrackHandler) TrackGeoJSON(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	trace, err := h.trackUC.RetrieveTrace(c.Request().Context(), userID, trackLabel(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := geo.TrackFeatureCollection(trace.Track, trace.Points).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}
