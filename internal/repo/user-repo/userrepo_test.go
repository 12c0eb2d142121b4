package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

const findQuery = `SELECT u.id, u.login, u.password_hash, u.role, COALESCE(l.id, p.id, 0), u.created_at FROM users u`

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User exists",
			login: "bank",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "org_id", "created_at"}).
					AddRow(1, "bank", "hash", domain.RoleLender, 5, now)
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).WithArgs("bank").WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "bank", PasswordHash: "hash", Role: domain.RoleLender, OrgID: 5, CreatedAt: now},
		},
		{
			name:  "User does not exist",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "Database error",
			login: "bank",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).WithArgs("bank").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		orgID     int
	}{
		{
			name: "Partner created",
			user: &domain.User{Login: "shop", PasswordHash: "hash", Role: domain.RolePartner},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`)).
						WithArgs("shop", "hash", domain.RolePartner).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO partners (user_id, name) VALUES ($1, $2) RETURNING id`)).
						WithArgs(3, "Shop").
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))
					return fn(ctx)
				})
			},
			orgID: 9,
		},
		{
			name: "Lender insert fails",
			user: &domain.User{Login: "bank", PasswordHash: "hash", Role: domain.RoleLender},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
						WithArgs("bank", "hash", domain.RoleLender).
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))
					mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO lenders (user_id, name) VALUES ($1, $2) RETURNING id`)).
						WithArgs(4, "Shop").
						WillReturnError(errors.New("insert failed"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name:      "Unknown role",
			user:      &domain.User{Login: "root", PasswordHash: "hash", Role: "admin"},
			mockSetup: func() {},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), tt.user, "Shop")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.orgID, user.OrgID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
