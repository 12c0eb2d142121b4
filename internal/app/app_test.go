package app

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/config"
	"github.com/GlebRadaev/creditmatch/internal/dispatch"
	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/service"
	"github.com/GlebRadaev/creditmatch/pkg/lock"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestGetLocker_Local() {
	locker, err := getLocker(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.IsType(lock.Local{}, locker)
}

func (s *ApplicationSuite) TestGetLocker_Redis() {
	mr := miniredis.RunT(s.T())

	locker, err := getLocker(context.Background(), &config.Config{RedisAddress: mr.Addr()})

	s.Require().NoError(err)
	s.IsType(&lock.RedisLocker{}, locker)
}

func (s *ApplicationSuite) TestGetLocker_Unreachable() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	_, err := getLocker(context.Background(), &config.Config{RedisAddress: addr})

	s.Error(err)
}

func (s *ApplicationSuite) TestGetPgxpool_InvalidDSN() {
	_, err := getPgxpool(context.Background(), &config.Config{Database: "://bad"})

	s.Error(err)
}

func (s *ApplicationSuite) TestNewRegistry() {
	registry := newRegistry()
	rec := httptest.NewRecorder()

	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	s.Equal(200, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func (s *ApplicationSuite) TestWait_StopsDispatcher() {
	ctrl := gomock.NewController(s.T())
	cfg := &config.Config{SweepInterval: time.Hour, SweepConcurrency: 1, DispatchWorkers: 1}
	customers := dispatch.NewMockCustomerRepo(ctrl)
	customers.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.Customer{ID: 1, PartnerID: 1, Mode: domain.DefaultMatchingMode()}, nil)
	dispatcher := dispatch.New(cfg,
		customers,
		dispatch.NewMockLenderRepo(ctrl),
		dispatch.NewMockApplicationRepo(ctrl),
		dispatch.NewMockMatcher(ctrl),
		dispatch.NewMockLocker(ctrl),
		dispatch.NewMockMetrics(ctrl),
	)
	s.app.srv = &service.Services{Dispatcher: dispatcher}

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startDispatcher(ctx)
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
	s.ErrorIs(dispatcher.AllLenders(context.Background(), 1, 1), dispatch.ErrPoolClosed)
}
