package service

import (
	"github.com/GlebRadaev/creditmatch/internal/config"
	"github.com/GlebRadaev/creditmatch/internal/dispatch"
	"github.com/GlebRadaev/creditmatch/internal/handlers/applications"
	"github.com/GlebRadaev/creditmatch/internal/handlers/auth"
	"github.com/GlebRadaev/creditmatch/internal/handlers/customers"
	"github.com/GlebRadaev/creditmatch/internal/handlers/offers"
	"github.com/GlebRadaev/creditmatch/internal/matching"

	pkgauth "github.com/GlebRadaev/creditmatch/pkg/auth"

	"github.com/GlebRadaev/creditmatch/internal/repo"
	"github.com/GlebRadaev/creditmatch/internal/service/applicationservice"
	"github.com/GlebRadaev/creditmatch/internal/service/authservice"
	"github.com/GlebRadaev/creditmatch/internal/service/customerservice"
	"github.com/GlebRadaev/creditmatch/internal/service/offerservice"
)

type Services struct {
	AuthService        auth.Service
	OfferService       offers.Service
	CustomerService    customers.Service
	ApplicationService applications.Service

	Dispatcher *dispatch.Service
	JWTService pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, locker dispatch.Locker, dispatchMetrics dispatch.Metrics) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	engine := matching.New(repo.OfferRepo, repo.ApplicationRepo)
	dispatcher := dispatch.New(cfg, repo.CustomerRepo, repo.LenderRepo, repo.ApplicationRepo, engine, locker, dispatchMetrics)

	return &Services{
		AuthService:        authservice.New(repo.UserRepo, pkgauth.NewHashService(), jwtService),
		OfferService:       offerservice.New(repo.OfferRepo),
		CustomerService:    customerservice.New(repo.CustomerRepo),
		ApplicationService: applicationservice.New(repo.ApplicationRepo, dispatcher, cfg.StrictStatusTransitions),
		Dispatcher:         dispatcher,
		JWTService:         jwtService,
	}
}
