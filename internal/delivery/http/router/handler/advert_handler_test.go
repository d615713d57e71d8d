package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "conectone/internal/delivery/http/middleware"
	"conectone/internal/delivery/http/validator"
	"conectone/internal/domain/entity"
	domainerrors "conectone/internal/domain/errors"
	mockUsecase "conectone/internal/mocks/usecase"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestAdvertHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockAdvertUsecase(t)
	h := NewAdvertHandler(uc)

	ownerID := uuid.New()
	created := &entity.Advert{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   "Back to school sale",
		Status:  entity.ReviewStatusPending,
	}
	uc.On("CreateAdvert", mock.Anything, mock.MatchedBy(func(input *usecase.AdvertInput) bool {
		return input.OwnerID == ownerID && input.Title == "Back to school sale"
	})).Return(created, nil)

	body := `{
		"ownerId": "` + ownerID.String() + `",
		"title": "Back to school sale",
		"placement": "banner",
		"price": 150,
		"currency": "ZAR",
		"startsAt": "` + time.Now().UTC().Format(time.RFC3339) + `",
		"endsAt": "` + time.Now().UTC().Add(72*time.Hour).Format(time.RFC3339) + `"
	}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/adverts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"succeeded":true`)
	assert.Contains(t, rec.Body.String(), "Advert submitted for review")
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestAdvertHandler_Get_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockAdvertUsecase(t)
	h := NewAdvertHandler(uc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "GetAdvert")
}

func TestAdvertHandler_Review_MapsDomainError(t *testing.T) {
	uc := mockUsecase.NewMockAdvertUsecase(t)
	h := NewAdvertHandler(uc)

	advertID := uuid.New()
	uc.On("ReviewAdvert", mock.Anything, advertID, entity.ReviewStatusApproved).
		Return(nil, domainerrors.ErrInvalidReviewTransition)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := newTestEcho()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/adverts/:id/review", h.Review)

	body := `{"status": "approved"}`
	req := httptest.NewRequest(http.MethodPost, "/api/adverts/"+advertID.String()+"/review", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"succeeded":false`)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrInvalidReviewTransition.Message())
}
