package customerservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customerservice.go -destination=mock_customerservice.go -package=customerservice

type Repo interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	FindByPartner(ctx context.Context, partnerID int) ([]domain.Customer, error)
	HasApplicationWithLender(ctx context.Context, customerID, lenderID int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func validate(c *domain.Customer) error {
	required := map[string]string{
		"surname":         c.Surname,
		"given_name":      c.GivenName,
		"phone":           c.Phone,
		"passport_number": c.PassportNumber,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
		}
	}
	if len(c.PassportNumber) > 10 {
		return fmt.Errorf("%w: passport_number is too long", domain.ErrInvalidInput)
	}
	if c.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth_date is required", domain.ErrInvalidInput)
	}
	if c.CreditScore != nil && *c.CreditScore < 0 {
		return fmt.Errorf("%w: credit_score must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// Create stores a profile owned by the calling partner.
func (s *Service) Create(ctx context.Context, actor domain.Actor, customer *domain.Customer) (*domain.Customer, error) {
	if !actor.IsPartner() {
		return nil, domain.ErrForbidden
	}
	if err := validate(customer); err != nil {
		return nil, err
	}
	customer.PartnerID = actor.OrgID
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	zap.L().Info("customer created", zap.Int("customer_id", customer.ID), zap.Int("partner_id", customer.PartnerID))
	return customer, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Customer, error) {
	if !actor.IsPartner() {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByPartner(ctx, actor.OrgID)
}

// Get is allowed to the owning partner and to lenders the customer has applied to.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id int) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	switch {
	case actor.IsPartner():
		if customer.PartnerID == actor.OrgID {
			return customer, nil
		}
	case actor.IsLender():
		ok, err := s.repo.HasApplicationWithLender(ctx, id, actor.OrgID)
		if err != nil {
			return nil, err
		}
		if ok {
			return customer, nil
		}
	}
	return nil, domain.ErrNotFound
}
