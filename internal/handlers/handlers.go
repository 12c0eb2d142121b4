package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/creditmatch/docs"
	applicationhandlers "github.com/GlebRadaev/creditmatch/internal/handlers/applications"
	authhandlers "github.com/GlebRadaev/creditmatch/internal/handlers/auth"
	customerhandlers "github.com/GlebRadaev/creditmatch/internal/handlers/customers"
	offerhandlers "github.com/GlebRadaev/creditmatch/internal/handlers/offers"
	"github.com/GlebRadaev/creditmatch/internal/service"
	"github.com/GlebRadaev/creditmatch/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OfferHandler interface {
	CreateOffer(w http.ResponseWriter, r *http.Request)
	GetOffers(w http.ResponseWriter, r *http.Request)
	GetOffer(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomers(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	CreateApplications(w http.ResponseWriter, r *http.Request)
	GetApplications(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	OfferHandler       OfferHandler
	CustomerHandler    CustomerHandler
	ApplicationHandler ApplicationHandler

	jwtService     auth.JWTServiceInterface
	metricsHandler http.Handler
}

func New(s *service.Services, metricsHandler http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		OfferHandler:       offerhandlers.New(s.OfferService),
		CustomerHandler:    customerhandlers.New(s.CustomerService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		jwtService:         s.JWTService,
		metricsHandler:     metricsHandler,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if h.metricsHandler != nil {
		r.Handle("/metrics", h.metricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/offers", func(r chi.Router) {
				r.Post("/", h.OfferHandler.CreateOffer)
				r.Get("/", h.OfferHandler.GetOffers)
				r.Get("/{id}", h.OfferHandler.GetOffer)
			})
			r.Route("/customers", func(r chi.Router) {
				r.Post("/", h.CustomerHandler.CreateCustomer)
				r.Get("/", h.CustomerHandler.GetCustomers)
				r.Get("/{id}", h.CustomerHandler.GetCustomer)
			})
			r.Route("/applications", func(r chi.Router) {
				r.Post("/", h.ApplicationHandler.CreateApplications)
				r.Get("/", h.ApplicationHandler.GetApplications)
				r.Get("/{id}", h.ApplicationHandler.GetApplication)
				r.Patch("/{id}", h.ApplicationHandler.UpdateApplicationStatus)
			})
		})
	})

	return r
}
