package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ecoconnect/internal/delivery/http/response"
	"ecoconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WasteHandler holds dependencies for waste classification handlers.
type WasteHandler struct {
	uc     usecase.WasteUsecase
	logger *slog.Logger
}

// NewWasteHandler is the constructor for WasteHandler, injected by Fx.
func NewWasteHandler(uc usecase.WasteUsecase, logger *slog.Logger) *WasteHandler {
	return &WasteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Identify classifies an uploaded waste image. Anonymous requests are
// allowed; authenticated ones get the result recorded to their history.
func (h *WasteHandler) Identify(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "MISSING_IMAGE", "An image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "UNREADABLE_IMAGE", "The uploaded image could not be read")
	}
	defer file.Close()

	input := &usecase.IdentifyInput{
		Filename:  fileHeader.Filename,
		Content:   file,
		Latitude:  formFloat(c, "latitude"),
		Longitude: formFloat(c, "longitude"),
	}
	if userID, ok := contextUserID(c); ok {
		input.UserID = &userID
	}

	output, err := h.uc.Identify(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Waste identified")
}

// History returns one page of a user's classification records.
func (h *WasteHandler) History(c echo.Context) error {
	userID, err := pathUUID(c, "userID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	page := 1
	if p := queryInt(c, "page"); p != nil {
		page = *p
	}
	perPage := 0
	if pp := queryInt(c, "per_page"); pp != nil {
		perPage = *pp
	}

	history, err := h.uc.History(c.Request().Context(), userID, page, perPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "")
}

// Stats aggregates a user's classification history.
func (h *WasteHandler) Stats(c echo.Context) error {
	userID, err := pathUUID(c, "userID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	stats, err := h.uc.UserWasteStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Categories exposes the material category table.
func (h *WasteHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Categories(), "")
}

func formFloat(c echo.Context, name string) *float64 {
	raw := c.FormValue(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}
