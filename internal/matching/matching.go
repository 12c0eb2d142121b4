// Package matching computes which active offers a customer is eligible for and has not applied to yet.
package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
)

//go:generate mockgen -source=matching.go -destination=mock_matching.go -package=matching

type OfferCatalog interface {
	FindActive(ctx context.Context, asOf time.Time, lenderID *int) ([]domain.Offer, error)
}

type ApplicationStore interface {
	FindByCustomer(ctx context.Context, customerID int, lenderID *int) ([]domain.Application, error)
}

// Result holds the customer's applications inside the lender scope and the unpersisted new ones.
// Superseded is set by the caller when New was dropped because a concurrent match stored it first.
type Result struct {
	Existing   []domain.Application
	New        []domain.Application
	Superseded bool
}

type Engine struct {
	offers       OfferCatalog
	applications ApplicationStore
}

func New(offers OfferCatalog, applications ApplicationStore) *Engine {
	return &Engine{
		offers:       offers,
		applications: applications,
	}
}

// Match never writes. A nil lenderID spans all lenders.
func (e *Engine) Match(ctx context.Context, customer *domain.Customer, lenderID *int, asOf time.Time) (*Result, error) {
	if customer.CreditScore == nil {
		return nil, fmt.Errorf("customer %d: %w", customer.ID, domain.ErrMissingCreditScore)
	}
	score := *customer.CreditScore

	existing, err := e.applications.FindByCustomer(ctx, customer.ID, lenderID)
	if err != nil {
		return nil, fmt.Errorf("load applications of customer %d: %w", customer.ID, err)
	}
	candidates, err := e.offers.FindActive(ctx, asOf, lenderID)
	if err != nil {
		return nil, fmt.Errorf("load active offers: %w", err)
	}

	applied := make(map[int]struct{}, len(existing))
	for _, app := range existing {
		applied[app.OfferID] = struct{}{}
	}

	var fresh []domain.Application
	for _, offer := range candidates {
		if lenderID != nil && offer.LenderID != *lenderID {
			continue
		}
		if !offer.ActiveAt(asOf) || !offer.Accepts(score) {
			continue
		}
		if _, ok := applied[offer.ID]; ok {
			continue
		}
		applied[offer.ID] = struct{}{}
		fresh = append(fresh, domain.Application{
			CustomerID: customer.ID,
			OfferID:    offer.ID,
			Status:     domain.StatusNew,
		})
	}

	return &Result{Existing: existing, New: fresh}, nil
}
