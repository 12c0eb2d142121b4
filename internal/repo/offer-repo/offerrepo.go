package offerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const offerColumns = `id, name, category, min_score, max_score, active_from, active_until, lender_id, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanOffer(row pgx.Row, offer *domain.Offer) error {
	return row.Scan(
		&offer.ID, &offer.Name, &offer.Category, &offer.MinScore, &offer.MaxScore,
		&offer.ActiveFrom, &offer.ActiveUntil, &offer.LenderID, &offer.CreatedAt, &offer.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, offer *domain.Offer) error {
	query := `
        INSERT INTO offers (name, category, min_score, max_score, active_from, active_until, lender_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		offer.Name, offer.Category, offer.MinScore, offer.MaxScore, offer.ActiveFrom, offer.ActiveUntil, offer.LenderID,
	).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save offer", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	var offer domain.Offer
	err := scanOffer(r.db.QueryRow(ctx, query, id), &offer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find offer", zap.Int("offer_id", id), zap.Error(err))
		return nil, err
	}
	return &offer, nil
}

// FindActive returns offers whose activity window contains asOf, optionally only those of one lender.
func (r *Repository) FindActive(ctx context.Context, asOf time.Time, lenderID *int) ([]domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE active_from <= $1 AND active_until >= $1`
	args := []any{asOf}
	if lenderID != nil {
		query += ` AND lender_id = $2`
		args = append(args, *lenderID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get active offers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var offer domain.Offer
		if err := scanOffer(rows, &offer); err != nil {
			zap.L().Error("can't scan offer row", zap.Error(err))
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
