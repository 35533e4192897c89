package handler

import (
	"log/slog"
	"net/http"

	"ecoconnect/internal/delivery/http/response"
	"ecoconnect/internal/domain/entity"
	"ecoconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// CenterHandler holds dependencies for recycling center handlers.
type CenterHandler struct {
	uc     usecase.CenterUsecase
	logger *slog.Logger
}

// NewCenterHandler is the constructor for CenterHandler, injected by Fx.
func NewCenterHandler(uc usecase.CenterUsecase, logger *slog.Logger) *CenterHandler {
	return &CenterHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles recycling center discovery.
func (h *CenterHandler) List(c echo.Context) error {
	input := &usecase.ListCentersInput{
		Latitude:  queryFloat(c, "latitude"),
		Longitude: queryFloat(c, "longitude"),
		RadiusKm:  queryFloat(c, "radius"),
		Material:  c.QueryParam("material"),
		Limit:     queryInt(c, "limit"),
	}

	centers, err := h.uc.ListCenters(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, centers, "")
}

// Get handles the request for a single recycling center.
func (h *CenterHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid center id")
	}

	center, err := h.uc.GetCenter(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, center, "")
}

// Create registers a new recycling center.
func (h *CenterHandler) Create(c echo.Context) error {
	var input usecase.CreateCenterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid center input")
	}

	center, err := h.uc.CreateCenter(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, center, "Recycling center created")
}

// Update applies a partial update to an existing center.
func (h *CenterHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid center id")
	}

	var input usecase.UpdateCenterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid center input")
	}

	center, err := h.uc.UpdateCenter(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, center, "Recycling center updated")
}

// Delete soft-deletes a center by clearing its active flag.
func (h *CenterHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid center id")
	}

	if err := h.uc.DeleteCenter(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Recycling center deactivated")
}

// Recommend returns the nearest active center accepting a material category.
func (h *CenterHandler) Recommend(c echo.Context) error {
	category := entity.Category(c.QueryParam("category"))
	if !category.IsValid() {
		return response.BadRequest(c, "INVALID_CATEGORY", "Unknown material category")
	}

	lat := queryFloat(c, "latitude")
	lng := queryFloat(c, "longitude")
	if lat == nil || lng == nil {
		return response.BadRequest(c, "MISSING_LOCATION", "latitude and longitude are required")
	}

	recommendation, err := h.uc.RecommendCenter(c.Request().Context(), category, orb.Point{*lng, *lat})
	if err != nil {
		return errors.WithStack(err)
	}
	if recommendation == nil {
		return response.Success(c, http.StatusOK, nil, "No matching center found")
	}

	return response.Success(c, http.StatusOK, recommendation, "")
}
