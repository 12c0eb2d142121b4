package repo

import (
	"github.com/GlebRadaev/creditmatch/internal/dispatch"
	"github.com/GlebRadaev/creditmatch/internal/matching"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	applicationrepo "github.com/GlebRadaev/creditmatch/internal/repo/application-repo"
	customerrepo "github.com/GlebRadaev/creditmatch/internal/repo/customer-repo"
	lenderrepo "github.com/GlebRadaev/creditmatch/internal/repo/lender-repo"
	offerrepo "github.com/GlebRadaev/creditmatch/internal/repo/offer-repo"
	userrepo "github.com/GlebRadaev/creditmatch/internal/repo/user-repo"
	"github.com/GlebRadaev/creditmatch/internal/service/applicationservice"
	"github.com/GlebRadaev/creditmatch/internal/service/authservice"
	"github.com/GlebRadaev/creditmatch/internal/service/customerservice"
	"github.com/GlebRadaev/creditmatch/internal/service/offerservice"
)

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=repo

type OfferRepo interface {
	offerservice.Repo
	matching.OfferCatalog
}

type CustomerRepo interface {
	customerservice.Repo
	dispatch.CustomerRepo
}

type ApplicationRepo interface {
	applicationservice.Repo
	dispatch.ApplicationRepo
	matching.ApplicationStore
}

type Repositories struct {
	UserRepo        authservice.Repo
	LenderRepo      dispatch.LenderRepo
	OfferRepo       OfferRepo
	CustomerRepo    CustomerRepo
	ApplicationRepo ApplicationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn, txManager),
		LenderRepo:      lenderrepo.New(conn),
		OfferRepo:       offerrepo.New(conn),
		CustomerRepo:    customerrepo.New(conn),
		ApplicationRepo: applicationrepo.New(conn, txManager),
	}
}
