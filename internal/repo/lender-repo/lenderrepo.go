package lenderrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Lender, error) {
	query := `
        SELECT id, user_id, name, created_at, updated_at
        FROM lenders
        WHERE id = $1
    `
	var lender domain.Lender
	err := r.db.QueryRow(ctx, query, id).Scan(&lender.ID, &lender.UserID, &lender.Name, &lender.CreatedAt, &lender.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find lender", zap.Int("lender_id", id), zap.Error(err))
		return nil, err
	}
	return &lender, nil
}
