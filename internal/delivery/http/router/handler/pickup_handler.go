package handler

import (
	"log/slog"
	"net/http"

	"ecoconnect/internal/delivery/http/response"
	"ecoconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PickupHandler holds dependencies for pickup request handlers.
type PickupHandler struct {
	uc     usecase.PickupUsecase
	logger *slog.Logger
}

// NewPickupHandler is the constructor for PickupHandler, injected by Fx.
func NewPickupHandler(uc usecase.PickupUsecase, logger *slog.Logger) *PickupHandler {
	return &PickupHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the request to open a new pickup request. The requester is
// always the authenticated user.
func (h *PickupHandler) Create(c echo.Context) error {
	var input usecase.CreatePickupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}

	userID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	input.RequesterID = userID

	pickup, err := h.uc.CreatePickup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pickup, "Pickup request created")
}

// List handles pickup discovery. Latitude and longitude switch the listing
// into a radius search sorted by distance.
func (h *PickupHandler) List(c echo.Context) error {
	input := &usecase.ListPickupsInput{
		Status:        c.QueryParam("status"),
		RequesterID:   queryUUID(c, "requester_id"),
		WastepickerID: queryUUID(c, "wastepicker_id"),
		Latitude:      queryFloat(c, "latitude"),
		Longitude:     queryFloat(c, "longitude"),
		RadiusKm:      queryFloat(c, "radius"),
		Limit:         queryInt(c, "limit"),
	}

	pickups, err := h.uc.ListPickups(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pickups, "")
}

// Get handles the request for a single pickup request.
func (h *PickupHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup request id")
	}

	pickup, err := h.uc.GetPickup(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pickup, "")
}

// Accept handles a waste-picker claiming a pending pickup request.
func (h *PickupHandler) Accept(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup request id")
	}

	userID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pickup, err := h.uc.AcceptPickup(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pickup, "Pickup request accepted")
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus advances a pickup request along its lifecycle.
func (h *PickupHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup request id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pickup, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pickup, "Pickup status updated")
}

// Cancel terminates a non-terminal pickup request.
func (h *PickupHandler) Cancel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup request id")
	}

	if err := h.uc.CancelPickup(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "cancelled"}, "Pickup request cancelled")
}

// Stats aggregates a waste-picker's performance history.
func (h *PickupHandler) Stats(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid wastepicker id")
	}

	stats, err := h.uc.PickerStats(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
