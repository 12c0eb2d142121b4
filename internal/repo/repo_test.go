package repo

import (
	"testing"

	"github.com/GlebRadaev/creditmatch/internal/pg"
	applicationrepo "github.com/GlebRadaev/creditmatch/internal/repo/application-repo"
	customerrepo "github.com/GlebRadaev/creditmatch/internal/repo/customer-repo"
	lenderrepo "github.com/GlebRadaev/creditmatch/internal/repo/lender-repo"
	offerrepo "github.com/GlebRadaev/creditmatch/internal/repo/offer-repo"
	userrepo "github.com/GlebRadaev/creditmatch/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &lenderrepo.Repository{}, repo.LenderRepo)
	assert.IsType(t, &offerrepo.Repository{}, repo.OfferRepo)
	assert.IsType(t, &customerrepo.Repository{}, repo.CustomerRepo)
	assert.IsType(t, &applicationrepo.Repository{}, repo.ApplicationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
