package applicationservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/matching"
	"go.uber.org/zap"
)

//go:generate mockgen -source=applicationservice.go -destination=mock_applicationservice.go -package=applicationservice

type Repo interface {
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	FindScoped(ctx context.Context, id int, filter domain.ApplicationFilter) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id, lenderID int, from, to domain.ApplicationStatus) (*domain.Application, error)
}

type Dispatcher interface {
	Scoped(ctx context.Context, partnerID, customerID, lenderID int) (*matching.Result, error)
	AllLenders(ctx context.Context, partnerID, customerID int) error
}

type Service struct {
	repo       Repo
	dispatcher Dispatcher
	// strict enforces domain.CanTransition on status updates.
	strict bool
}

func New(repo Repo, dispatcher Dispatcher, strict bool) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		strict:     strict,
	}
}

func scope(actor domain.Actor) (domain.ApplicationFilter, error) {
	switch {
	case actor.IsPartner():
		return domain.ApplicationFilter{PartnerID: actor.OrgID}, nil
	case actor.IsLender():
		return domain.ApplicationFilter{LenderID: actor.OrgID}, nil
	}
	return domain.ApplicationFilter{}, domain.ErrForbidden
}

// Create runs matching for the partner's customer. A nil lenderID queues matching
// across all lenders and returns a nil result.
func (s *Service) Create(ctx context.Context, actor domain.Actor, customerID int, lenderID *int) (*matching.Result, error) {
	if !actor.IsPartner() {
		return nil, domain.ErrForbidden
	}
	if lenderID == nil {
		if err := s.dispatcher.AllLenders(ctx, actor.OrgID, customerID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return s.dispatcher.Scoped(ctx, actor.OrgID, customerID, *lenderID)
}

func (s *Service) List(ctx context.Context, actor domain.Actor, status domain.ApplicationStatus) ([]domain.Application, error) {
	filter, err := scope(actor)
	if err != nil {
		return nil, err
	}
	if status != 0 && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	filter.Status = status
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id int) (*domain.Application, error) {
	filter, err := scope(actor)
	if err != nil {
		return nil, err
	}
	app, err := s.repo.FindScoped(ctx, id, filter)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	return app, nil
}

// UpdateStatus lets the lender owning the offer move the application to another status.
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, id int, status domain.ApplicationStatus) (*domain.Application, error) {
	if !actor.IsLender() {
		return nil, domain.ErrForbidden
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if !s.strict {
		app, err := s.repo.UpdateStatus(ctx, id, actor.OrgID, 0, status)
		if err != nil {
			return nil, err
		}
		if app == nil {
			return nil, domain.ErrNotFound
		}
		return logStatusChange(app, actor), nil
	}

	current, err := s.repo.FindScoped(ctx, id, domain.ApplicationFilter{LenderID: actor.OrgID})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.CanTransition(current.Status, status) {
		return nil, domain.ErrStatusTransition
	}
	// The update only applies while the status is still the one checked above.
	app, err := s.repo.UpdateStatus(ctx, id, actor.OrgID, current.Status, status)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("application %d changed concurrently: %w", id, domain.ErrStatusTransition)
	}
	return logStatusChange(app, actor), nil
}

func logStatusChange(app *domain.Application, actor domain.Actor) *domain.Application {
	zap.L().Info("application status changed",
		zap.Int("application_id", app.ID), zap.Int("lender_id", actor.OrgID), zap.String("status", app.Status.String()))
	return app
}
