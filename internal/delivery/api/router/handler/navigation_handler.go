package handler

import (
	"log/slog"
	"net/http"
	"time"

	"saferoute/internal/delivery/api/response"
	"saferoute/internal/delivery/api/validator"
	deliverycontext "saferoute/internal/delivery/context"
	"saferoute/internal/domain/entity"
	"saferoute/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// NavigationHandler exposes navigation sessions over HTTP.
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

// CoordinateRequest is a WGS84 point in a request body
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

func (r *CoordinateRequest) point() entity.RoutePoint {
	return entity.RoutePoint{Lat: *r.Lat, Lng: *r.Lng}
}

// CreateSessionRequest represents the request body for opening a navigation session
type CreateSessionRequest struct {
	From        *CoordinateRequest `json:"from" validate:"required"`
	To          *CoordinateRequest `json:"to" validate:"required"`
	Locale      string             `json:"locale" validate:"omitempty,bcp47_language_tag"`
	DeviceToken string             `json:"device_token" validate:"omitempty,max=4096"`
}

// SelectRouteRequest represents the request body for choosing an alternative
type SelectRouteRequest struct {
	Index *int `json:"index" validate:"required"`
}

// PositionRequest represents one position sample. Coordinates are only
// checked for presence; out-of-range values are ignored by the tracker.
type PositionRequest struct {
	Lat       *float64   `json:"lat" validate:"required"`
	Lng       *float64   `json:"lng" validate:"required"`
	Accuracy  *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	Timestamp *time.Time `json:"timestamp"`
}

// CreateSession plans routes and opens an idle session
func (h *NavigationHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	session, err := h.navigationUC.CreateSession(c.Request().Context(), &usecase.CreateSessionInput{
		OwnerID:     deliverycontext.GetUserID(c),
		From:        req.From.point(),
		To:          req.To.point(),
		Locale:      req.Locale,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// GetProgress returns the session progress and pending announcements
func (h *NavigationHandler) GetProgress(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	progress, err := h.navigationUC.GetProgress(c.Request().Context(), deliverycontext.GetUserID(c), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// SelectRoute starts navigating one of the session's alternatives
func (h *NavigationHandler) SelectRoute(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req SelectRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid route selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	progress, err := h.navigationUC.SelectRoute(c.Request().Context(), deliverycontext.GetUserID(c), sessionID, *req.Index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// UpdatePosition feeds one position sample to the session
func (h *NavigationHandler) UpdatePosition(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid position sample")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	progress, err := h.navigationUC.UpdatePosition(c.Request().Context(), deliverycontext.GetUserID(c), sessionID, usecase.PositionSample{
		Lat:       *req.Lat,
		Lng:       *req.Lng,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// ToggleMute flips the session's mute flag
func (h *NavigationHandler) ToggleMute(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	progress, err := h.navigationUC.ToggleMute(c.Request().Context(), deliverycontext.GetUserID(c), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// ClearRoute stops navigating and keeps the planned routes
func (h *NavigationHandler) ClearRoute(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	progress, err := h.navigationUC.ClearRoute(c.Request().Context(), deliverycontext.GetUserID(c), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// EndSession stops navigating and forgets the session
func (h *NavigationHandler) EndSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.navigationUC.EndSession(c.Request().Context(), deliverycontext.GetUserID(c), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
