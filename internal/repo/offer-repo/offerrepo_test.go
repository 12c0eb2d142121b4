package offerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "category", "min_score", "max_score", "active_from", "active_until", "lender_id", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	offer := &domain.Offer{
		Name: "Car loan", Category: domain.CategoryCarLoan, MinScore: 10, MaxScore: 20,
		ActiveFrom: now, ActiveUntil: now.Add(time.Hour), LenderID: 2,
	}
	query := regexp.QuoteMeta(`INSERT INTO offers (name, category, min_score, max_score, active_from, active_until, lender_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`)

	mock.ExpectQuery(query).
		WithArgs("Car loan", domain.CategoryCarLoan, 10, 20, now, now.Add(time.Hour), 2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	require.NoError(t, repo.Create(context.Background(), offer))
	assert.Equal(t, 11, offer.ID)

	mock.ExpectQuery(query).WillReturnError(errors.New("check violation"))
	assert.Error(t, repo.Create(context.Background(), &domain.Offer{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, name, category, min_score, max_score, active_from, active_until, lender_id, created_at, updated_at FROM offers WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs(1).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, "Mortgage", domain.CategoryMortgage, 5, 50, now, now, 3, now, now))
	offer, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.Offer{
		ID: 1, Name: "Mortgage", Category: domain.CategoryMortgage, MinScore: 5, MaxScore: 50,
		ActiveFrom: now, ActiveUntil: now, LenderID: 3, CreatedAt: now, UpdatedAt: now,
	}, offer)

	mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
	offer, err = repo.FindByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, offer)

	mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
	_, err = repo.FindByID(context.Background(), 3)
	assert.Error(t, err)
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	lenderID := 3

	tests := []struct {
		name      string
		lenderID  *int
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "All lenders",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, "A", domain.CategoryMortgage, 5, 50, now, now, 3, now, now).
					AddRow(2, "B", domain.CategoryCarLoan, 5, 50, now, now, 4, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM offers WHERE active_from <= $1 AND active_until >= $1 ORDER BY id`)).
					WithArgs(now).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:     "One lender",
			lenderID: &lenderID,
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, "A", domain.CategoryMortgage, 5, 50, now, now, 3, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM offers WHERE active_from <= $1 AND active_until >= $1 AND lender_id = $2 ORDER BY id`)).
					WithArgs(now, 3).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM offers`)).WithArgs(now).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan error",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, "A", domain.CategoryMortgage, "bad", 50, now, now, 3, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM offers`)).WithArgs(now).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			offers, err := repo.FindActive(context.Background(), now, tt.lenderID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, offers, tt.count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
