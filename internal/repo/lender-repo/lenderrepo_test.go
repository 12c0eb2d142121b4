package lenderrepo

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

func TestRepository_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, user_id, name, created_at, updated_at FROM lenders WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Lender
	}{
		{
			name: "Lender exists",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}).AddRow(2, 5, "Bank", now, now))
			},
			result: &domain.Lender{ID: 2, UserID: 5, Name: "Bank", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Lender missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
