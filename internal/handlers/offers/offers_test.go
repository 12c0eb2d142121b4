package offers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/dto"
	"github.com/GlebRadaev/creditmatch/pkg/auth"
	"github.com/GlebRadaev/creditmatch/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	lender  = domain.Actor{UserID: 1, Role: domain.RoleLender, OrgID: 3}
	partner = domain.Actor{UserID: 2, Role: domain.RolePartner, OrgID: 5}
)

func NewMock(t *testing.T) (*OfferHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, body string, actor *domain.Actor, id string) *http.Request {
	req := httptest.NewRequest(method, "/api/offers", bytes.NewReader([]byte(body)))
	ctx := req.Context()
	if actor != nil {
		ctx = auth.WithActor(ctx, *actor)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestCreateOfferHandler(t *testing.T) {
	handler, service := NewMock(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(1, 0, 0)
	body := `{"name":"Mortgage","category":2,"min_score":10,"max_score":20,"active_from":"2024-01-01T00:00:00Z","active_until":"2025-01-01T00:00:00Z"}`

	tests := []struct {
		name          string
		body          string
		actor         *domain.Actor
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Offer created",
			body:  body,
			actor: &lender,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), lender, &domain.Offer{
					Name: "Mortgage", Category: domain.CategoryMortgage, MinScore: 10, MaxScore: 20,
					ActiveFrom: from, ActiveUntil: until,
				}).DoAndReturn(func(_ context.Context, _ domain.Actor, o *domain.Offer) (*domain.Offer, error) {
					o.ID = 7
					o.LenderID = 3
					return o, nil
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Unauthorized",
			body:          body,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid body",
			body:          `{"name":`,
			actor:         &lender,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:  "Partner forbidden",
			body:  body,
			actor: &partner,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), partner, gomock.Any()).Return(nil, domain.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: domain.ErrForbidden.Error(),
		},
		{
			name:  "Inverted range",
			body:  body,
			actor: &lender,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), lender, gomock.Any()).Return(nil, domain.ErrInvalidScoreRange)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: domain.ErrInvalidScoreRange.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.CreateOffer(rr, request(http.MethodPost, tt.body, tt.actor, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.OfferResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 7, resp.ID)
			assert.Equal(t, "mortgage", resp.CategoryDisplay)
		})
	}
}

func TestGetOffersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListActive(gomock.Any(), partner).Return([]domain.Offer{{ID: 1}, {ID: 2}}, nil)
	rr := httptest.NewRecorder()
	handler.GetOffers(rr, request(http.MethodGet, "", &partner, ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.OfferResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)

	service.EXPECT().ListActive(gomock.Any(), partner).Return(nil, nil)
	rr = httptest.NewRecorder()
	handler.GetOffers(rr, request(http.MethodGet, "", &partner, ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	service.EXPECT().ListActive(gomock.Any(), partner).Return(nil, errors.New("database error"))
	rr = httptest.NewRecorder()
	handler.GetOffers(rr, request(http.MethodGet, "", &partner, ""))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetOfferHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), lender, 4).Return(&domain.Offer{ID: 4, LenderID: 3}, nil)
	rr := httptest.NewRecorder()
	handler.GetOffer(rr, request(http.MethodGet, "", &lender, "4"))
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().Get(gomock.Any(), lender, 5).Return(nil, domain.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.GetOffer(rr, request(http.MethodGet, "", &lender, "5"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.GetOffer(rr, request(http.MethodGet, "", &lender, "x"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
