// Package dispatch runs the matching engine on demand and on schedule and persists what it finds.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/config"
	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/matching"
	"github.com/GlebRadaev/creditmatch/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dispatch.go -destination=mock_dispatch.go -package=dispatch

const sweepLockKey = "creditmatch:sweep"

type CustomerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	FindAutoMatching(ctx context.Context) ([]domain.Customer, error)
}

type LenderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Lender, error)
}

type ApplicationRepo interface {
	BulkInsert(ctx context.Context, apps []domain.Application) (int, error)
}

type Matcher interface {
	Match(ctx context.Context, customer *domain.Customer, lenderID *int, asOf time.Time) (*matching.Result, error)
}

type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

type Metrics interface {
	ObserveSweep(result string, d time.Duration)
	AddCustomersMatched(mode string, n int)
	AddApplicationsCreated(mode string, n int)
	IncConflict(mode string)
}

type Service struct {
	customers    CustomerRepo
	lenders      LenderRepo
	applications ApplicationRepo
	engine       Matcher
	locker       Locker
	metrics      Metrics
	workerPool   WorkerPoolI

	sweepInterval    time.Duration
	sweepConcurrency int
	lockTTL          time.Duration
	now              func() time.Time

	// baseCtx outlives the request that enqueued deferred work.
	mu      sync.RWMutex
	baseCtx context.Context
}

func New(
	cfg *config.Config,
	customers CustomerRepo,
	lenders LenderRepo,
	applications ApplicationRepo,
	engine Matcher,
	locker Locker,
	dispatchMetrics Metrics,
) *Service {
	return &Service{
		customers:        customers,
		lenders:          lenders,
		applications:     applications,
		engine:           engine,
		locker:           locker,
		metrics:          dispatchMetrics,
		workerPool:       NewWorkerPool(cfg.DispatchWorkers),
		sweepInterval:    cfg.SweepInterval,
		sweepConcurrency: cfg.SweepConcurrency,
		lockTTL:          cfg.SweepLockTTL,
		now:              time.Now,
		baseCtx:          context.Background(),
	}
}

// Start runs the sweep ticker until ctx is done, then closes the worker pool.
// It blocks; deferred tasks queued afterwards run under ctx.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	zap.L().Info("Dispatch service started", zap.Duration("sweepInterval", s.sweepInterval))
	s.run(ctx)
}

func (s *Service) base() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseCtx
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatch")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				zap.L().Error("Sweep failed", zap.Error(err))
			}
		}
	}
}

// customerForManual loads the partner's customer and checks it allows on-demand matching.
func (s *Service) customerForManual(ctx context.Context, partnerID, customerID int) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.PartnerID != partnerID {
		return nil, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
	}
	if !customer.Mode.Manual {
		return nil, domain.ErrManualMatchingDisabled
	}
	return customer, nil
}

// Scoped matches the customer against one lender's offers and stores the result inline.
// Result.New holds only what was actually stored.
func (s *Service) Scoped(ctx context.Context, partnerID, customerID, lenderID int) (*matching.Result, error) {
	customer, err := s.customerForManual(ctx, partnerID, customerID)
	if err != nil {
		return nil, err
	}
	lender, err := s.lenders.FindByID(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	if lender == nil {
		return nil, fmt.Errorf("lender %d: %w", lenderID, domain.ErrNotFound)
	}

	result, err := s.engine.Match(ctx, customer, &lender.ID, s.now())
	if err != nil {
		return nil, err
	}
	s.metrics.AddCustomersMatched(metrics.ModeScoped, 1)

	result.New, result.Superseded, err = s.persist(ctx, metrics.ModeScoped, result.New)
	if err != nil {
		return nil, err
	}
	zap.L().Info("Scoped dispatch done",
		zap.Int("customerID", customerID), zap.Int("lenderID", lenderID), zap.Int("created", len(result.New)))
	return result, nil
}

// AllLenders validates the request and queues matching across every lender.
// Faults of the queued work are only logged.
func (s *Service) AllLenders(ctx context.Context, partnerID, customerID int) error {
	if _, err := s.customerForManual(ctx, partnerID, customerID); err != nil {
		return err
	}

	base := s.base()
	err := s.workerPool.AddTask(ctx, func() error {
		return s.matchAllLenders(base, customerID)
	})
	if err != nil {
		return fmt.Errorf("enqueue matching for customer %d: %w", customerID, err)
	}
	return nil
}

func (s *Service) matchAllLenders(ctx context.Context, customerID int) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("reload customer %d: %w", customerID, err)
	}
	if customer == nil {
		zap.L().Debug("Customer removed before deferred matching", zap.Int("customerID", customerID))
		return nil
	}

	result, err := s.engine.Match(ctx, customer, nil, s.now())
	if err != nil {
		return fmt.Errorf("match customer %d: %w", customerID, err)
	}
	s.metrics.AddCustomersMatched(metrics.ModeAll, 1)

	created, _, err := s.persist(ctx, metrics.ModeAll, result.New)
	if err != nil {
		return fmt.Errorf("customer %d: %w", customerID, err)
	}
	zap.L().Info("All-lenders dispatch done", zap.Int("customerID", customerID), zap.Int("created", len(created)))
	return nil
}

// Sweep matches every auto-mode customer against all lenders and stores the union in one batch.
// Any fault discards the whole run.
func (s *Service) Sweep(ctx context.Context) error {
	started := time.Now()

	release, ok, err := s.locker.TryLock(ctx, sweepLockKey, s.lockTTL)
	if err != nil {
		s.metrics.ObserveSweep(metrics.ResultFailed, time.Since(started))
		return fmt.Errorf("acquire sweep lock: %w", err)
	}
	if !ok {
		zap.L().Info("Sweep already running elsewhere, tick skipped")
		s.metrics.ObserveSweep(metrics.ResultSkipped, 0)
		return nil
	}
	defer release()

	created, matched, err := s.sweep(ctx)
	if err != nil {
		s.metrics.ObserveSweep(metrics.ResultFailed, time.Since(started))
		return err
	}
	s.metrics.AddCustomersMatched(metrics.ModeSweep, matched)
	s.metrics.ObserveSweep(metrics.ResultOK, time.Since(started))
	zap.L().Info("Sweep done",
		zap.Int("customers", matched), zap.Int("created", created), zap.Duration("took", time.Since(started)))
	return nil
}

func (s *Service) sweep(ctx context.Context) (created, matched int, err error) {
	customers, err := s.customers.FindAutoMatching(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load auto matching customers: %w", err)
	}

	asOf := s.now()
	results := make([][]domain.Application, len(customers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.sweepConcurrency)
	for i := range customers {
		if !customers[i].Mode.Auto {
			continue
		}
		matched++
		i := i
		g.Go(func() error {
			res, err := s.engine.Match(gctx, &customers[i], nil, asOf)
			if err != nil {
				return fmt.Errorf("match customer %d: %w", customers[i].ID, err)
			}
			results[i] = res.New
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	var batch []domain.Application
	for _, apps := range results {
		batch = append(batch, apps...)
	}

	stored, _, err := s.persist(ctx, metrics.ModeSweep, batch)
	if err != nil {
		return 0, 0, err
	}
	return len(stored), matched, nil
}

// persist writes the batch in one call. A conflict with a concurrently stored
// application is expected: nothing is stored and skipped is true.
func (s *Service) persist(ctx context.Context, mode string, apps []domain.Application) (stored []domain.Application, skipped bool, err error) {
	if len(apps) == 0 {
		return nil, false, nil
	}
	if err := checkBatch(apps); err != nil {
		zap.L().Error("Matching produced a duplicate application", zap.String("mode", mode), zap.Error(err))
		return nil, false, err
	}

	n, err := s.applications.BulkInsert(ctx, apps)
	if errors.Is(err, domain.ErrDuplicateApplication) {
		zap.L().Warn("Applications already stored by a concurrent match, batch skipped",
			zap.String("mode", mode), zap.Int("size", len(apps)), zap.Error(err))
		s.metrics.IncConflict(mode)
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store applications: %w", err)
	}
	s.metrics.AddApplicationsCreated(mode, n)
	return apps, false, nil
}

func checkBatch(apps []domain.Application) error {
	seen := make(map[[2]int]struct{}, len(apps))
	for _, app := range apps {
		key := [2]int{app.CustomerID, app.OfferID}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("customer %d, offer %d: %w", app.CustomerID, app.OfferID, domain.ErrDuplicateInBatch)
		}
		seen[key] = struct{}{}
	}
	return nil
}
