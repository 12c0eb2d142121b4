package customerrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const customerColumns = `id, surname, given_name, patronymic, birth_date, phone, passport_number, credit_score, partner_id, manual_matching, auto_matching, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCustomer(row pgx.Row, c *domain.Customer) error {
	return row.Scan(
		&c.ID, &c.Surname, &c.GivenName, &c.Patronymic, &c.BirthDate, &c.Phone, &c.PassportNumber,
		&c.CreditScore, &c.PartnerID, &c.Mode.Manual, &c.Mode.Auto, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, c *domain.Customer) error {
	query := `
        INSERT INTO customers (surname, given_name, patronymic, birth_date, phone, passport_number, credit_score, partner_id, manual_matching, auto_matching)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		c.Surname, c.GivenName, c.Patronymic, c.BirthDate, c.Phone, c.PassportNumber,
		c.CreditScore, c.PartnerID, c.Mode.Manual, c.Mode.Auto,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save customer", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var c domain.Customer
	err := scanCustomer(r.db.QueryRow(ctx, query, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find customer", zap.Int("customer_id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByPartner(ctx context.Context, partnerID int) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE partner_id = $1 ORDER BY id`
	return r.list(ctx, query, partnerID)
}

// FindAutoMatching returns every profile that takes part in the periodic sweep.
func (r *Repository) FindAutoMatching(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE auto_matching ORDER BY id`
	return r.list(ctx, query)
}

// HasApplicationWithLender reports whether the customer applied to at least one offer of the lender.
func (r *Repository) HasApplicationWithLender(ctx context.Context, customerID, lenderID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM applications a
            JOIN offers o ON o.id = a.offer_id
            WHERE a.customer_id = $1 AND o.lender_id = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, customerID, lenderID).Scan(&exists); err != nil {
		zap.L().Error("can't check customer applications", zap.Int("customer_id", customerID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
