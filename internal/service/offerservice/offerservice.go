package offerservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=offerservice.go -destination=mock_offerservice.go -package=offerservice

type Repo interface {
	Create(ctx context.Context, offer *domain.Offer) error
	FindByID(ctx context.Context, id int) (*domain.Offer, error)
	FindActive(ctx context.Context, asOf time.Time, lenderID *int) ([]domain.Offer, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func validate(offer *domain.Offer) error {
	switch {
	case strings.TrimSpace(offer.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case !offer.Category.Valid():
		return fmt.Errorf("%w: unknown category %d", domain.ErrInvalidInput, offer.Category)
	case offer.MinScore < 0 || offer.MaxScore < 0:
		return fmt.Errorf("%w: scores must not be negative", domain.ErrInvalidInput)
	case offer.MinScore > offer.MaxScore:
		return domain.ErrInvalidScoreRange
	case offer.ActiveFrom.IsZero() || offer.ActiveUntil.IsZero():
		return fmt.Errorf("%w: activity window is required", domain.ErrInvalidInput)
	case offer.ActiveFrom.After(offer.ActiveUntil):
		return fmt.Errorf("%w: active_from is after active_until", domain.ErrInvalidInput)
	}
	return nil
}

// Create publishes an offer on behalf of the calling lender.
func (s *Service) Create(ctx context.Context, actor domain.Actor, offer *domain.Offer) (*domain.Offer, error) {
	if !actor.IsLender() {
		return nil, domain.ErrForbidden
	}
	if err := validate(offer); err != nil {
		return nil, err
	}
	offer.LenderID = actor.OrgID
	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	zap.L().Info("offer created", zap.Int("offer_id", offer.ID), zap.Int("lender_id", offer.LenderID))
	return offer, nil
}

// ListActive returns active offers of all lenders to partners and a lender's own active offers to lenders.
func (s *Service) ListActive(ctx context.Context, actor domain.Actor) ([]domain.Offer, error) {
	switch {
	case actor.IsPartner():
		return s.repo.FindActive(ctx, s.now(), nil)
	case actor.IsLender():
		lenderID := actor.OrgID
		return s.repo.FindActive(ctx, s.now(), &lenderID)
	}
	return nil, domain.ErrForbidden
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id int) (*domain.Offer, error) {
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil || (actor.IsLender() && offer.LenderID != actor.OrgID) || (!actor.IsLender() && !actor.IsPartner()) {
		return nil, domain.ErrNotFound
	}
	return offer, nil
}
