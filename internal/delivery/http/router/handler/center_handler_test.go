package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	mockUsecase "ecoconnect/internal/mocks/usecase"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCenterHandler_ListParsesQuery(t *testing.T) {
	uc := mockUsecase.NewMockCenterUsecase(t)
	h := NewCenterHandler(uc, discardLogger())

	uc.EXPECT().
		ListCenters(mock.Anything, mock.MatchedBy(func(input *usecase.ListCentersInput) bool {
			return input.Material == "glass" &&
				input.Latitude != nil && *input.Latitude == 41.8781 &&
				input.RadiusKm != nil && *input.RadiusKm == 25
		})).
		Return([]*usecase.CenterWithDistance{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/centers?material=glass&latitude=41.8781&longitude=-87.6298&radius=25", nil)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCenterHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockCenterUsecase(t)
	h := NewCenterHandler(uc, discardLogger())

	uc.EXPECT().
		CreateCenter(mock.Anything, mock.MatchedBy(func(input *usecase.CreateCenterInput) bool {
			return input.Name == "Green Depot" && len(input.AcceptedMaterials) == 2
		})).
		Return(&entity.RecyclingCenter{ID: uuid.New(), Name: "Green Depot", IsActive: true}, nil)

	body := `{"name":"Green Depot","address":"55 Elm St","latitude":41.88,"longitude":-87.63,"accepted_materials":["plastic","glass"]}`
	req := httptest.NewRequest(http.MethodPost, "/centers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCenterHandler_CreateEmptyBody(t *testing.T) {
	uc := mockUsecase.NewMockCenterUsecase(t)
	h := NewCenterHandler(uc, discardLogger())

	uc.EXPECT().
		CreateCenter(mock.Anything, mock.MatchedBy(func(input *usecase.CreateCenterInput) bool {
			return input.Name == ""
		})).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("name is required"))

	req := httptest.NewRequest(http.MethodPost, "/centers", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	err := h.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCenterHandler_Recommend(t *testing.T) {
	uc := mockUsecase.NewMockCenterUsecase(t)
	h := NewCenterHandler(uc, discardLogger())

	uc.EXPECT().
		RecommendCenter(mock.Anything, entity.CategoryPlastic, orb.Point{-87.6298, 41.8781}).
		Return(&usecase.CenterRecommendation{
			Center:     &entity.RecyclingCenter{ID: uuid.New(), Name: "Green Depot"},
			DistanceKm: 0.66,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/centers/recommend?category=plastic&latitude=41.8781&longitude=-87.6298", nil)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Green Depot")
}

func TestCenterHandler_RecommendRejectsUnknownCategory(t *testing.T) {
	uc := mockUsecase.NewMockCenterUsecase(t)
	h := NewCenterHandler(uc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/centers/recommend?category=plutonium&latitude=1&longitude=2", nil)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	require.NoError(t, h.Recommend(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "RecommendCenter", mock.Anything, mock.Anything, mock.Anything)
}

func TestCenterHandler_Delete(t *testing.T) {
	uc := mockUsecase.NewMockCenterUsecase(t)
	h := NewCenterHandler(uc, discardLogger())

	centerID := uuid.New()
	uc.EXPECT().DeleteCenter(mock.Anything, centerID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/centers/"+centerID.String(), nil)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(centerID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
