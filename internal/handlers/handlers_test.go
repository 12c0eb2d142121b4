package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/creditmatch/docs"
	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/handlers/applications"
	"github.com/GlebRadaev/creditmatch/internal/handlers/auth"
	"github.com/GlebRadaev/creditmatch/internal/handlers/customers"
	"github.com/GlebRadaev/creditmatch/internal/handlers/offers"
	"github.com/GlebRadaev/creditmatch/internal/service"
	pkgauth "github.com/GlebRadaev/creditmatch/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        auth.NewMockService(ctrl),
		OfferService:       offers.NewMockService(ctrl),
		CustomerService:    customers.NewMockService(ctrl),
		ApplicationService: applications.NewMockService(ctrl),
		JWTService:         pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services, http.NotFoundHandler())
	assert.NotNil(t, h, "Handlers should not be nil")
}

func respondOK(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOfferHandler := NewMockOfferHandler(ctrl)
	mockCustomerHandler := NewMockCustomerHandler(ctrl)
	mockApplicationHandler := NewMockApplicationHandler(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockOfferHandler.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockOfferHandler.EXPECT().GetOffers(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockOfferHandler.EXPECT().GetOffer(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockCustomerHandler.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockCustomerHandler.EXPECT().GetCustomers(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockCustomerHandler.EXPECT().GetCustomer(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockApplicationHandler.EXPECT().CreateApplications(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockApplicationHandler.EXPECT().GetApplications(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockApplicationHandler.EXPECT().GetApplication(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	mockApplicationHandler.EXPECT().UpdateApplicationStatus(gomock.Any(), gomock.Any()).Do(respondOK).AnyTimes()
	jwtService.EXPECT().ValidateToken("valid").
		Return(&pkgauth.Claims{UserID: 1, Role: domain.RoleLender, OrgID: 3}, nil).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		OfferHandler:       mockOfferHandler,
		CustomerHandler:    mockCustomerHandler,
		ApplicationHandler: mockApplicationHandler,
		jwtService:         jwtService,
		metricsHandler:     http.HandlerFunc(respondOK),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"POST", "/api/offers", "", http.StatusUnauthorized},
		{"GET", "/api/offers", "", http.StatusUnauthorized},
		{"GET", "/api/customers/1", "", http.StatusUnauthorized},
		{"POST", "/api/applications", "", http.StatusUnauthorized},
		{"PATCH", "/api/applications/1", "", http.StatusUnauthorized},
		{"POST", "/api/offers", "valid", http.StatusOK},
		{"GET", "/api/offers", "valid", http.StatusOK},
		{"GET", "/api/offers/1", "valid", http.StatusOK},
		{"POST", "/api/customers", "valid", http.StatusOK},
		{"GET", "/api/customers", "valid", http.StatusOK},
		{"GET", "/api/customers/1", "valid", http.StatusOK},
		{"POST", "/api/applications", "valid", http.StatusOK},
		{"GET", "/api/applications", "valid", http.StatusOK},
		{"GET", "/api/applications/1", "valid", http.StatusOK},
		{"PATCH", "/api/applications/1", "valid", http.StatusOK},
		{"DELETE", "/api/applications/1", "valid", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
