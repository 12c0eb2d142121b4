package applicationrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const applicationColumns = `a.id, a.customer_id, a.offer_id, a.status, a.created_at, a.updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanApplication(row pgx.Row, a *domain.Application) error {
	return row.Scan(&a.ID, &a.CustomerID, &a.OfferID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

// FindByCustomer returns the customer's applications, optionally only those on one lender's offers.
func (r *Repository) FindByCustomer(ctx context.Context, customerID int, lenderID *int) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a`
	args := []any{customerID}
	if lenderID != nil {
		query += ` JOIN offers o ON o.id = a.offer_id WHERE a.customer_id = $1 AND o.lender_id = $2`
		args = append(args, *lenderID)
	} else {
		query += ` WHERE a.customer_id = $1`
	}
	query += ` ORDER BY a.id`
	return r.list(ctx, query, args...)
}

// batchRows keeps one INSERT under the 65535 bind parameter limit of the extended protocol.
var batchRows = 65535 / 3

// BulkInsert stores all applications in one transaction and fills their ids and timestamps.
// Large batches are split into several statements.
// A (customer, offer) pair that already exists fails the whole batch with ErrDuplicateApplication.
func (r *Repository) BulkInsert(ctx context.Context, apps []domain.Application) (int, error) {
	if len(apps) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for start := 0; start < len(apps); start += batchRows {
			end := min(start+batchRows, len(apps))
			n, err := r.insertChunk(ctx, apps[start:end])
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			zap.L().Warn("application batch hit unique constraint", zap.String("constraint", pgErr.ConstraintName), zap.Int("size", len(apps)))
			return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateApplication, pgErr.Detail)
		}
		zap.L().Error("can't insert applications", zap.Int("size", len(apps)), zap.Error(err))
		return 0, err
	}
	return inserted, nil
}

func (r *Repository) insertChunk(ctx context.Context, apps []domain.Application) (int, error) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO applications (customer_id, offer_id, status) VALUES `)
	args := make([]any, 0, len(apps)*3)
	for i, app := range apps {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 3
		sb.WriteString("($" + strconv.Itoa(n+1) + ", $" + strconv.Itoa(n+2) + ", $" + strconv.Itoa(n+3) + ")")
		args = append(args, app.CustomerID, app.OfferID, app.Status)
	}
	sb.WriteString(` RETURNING id, created_at, updated_at`)

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	inserted := 0
	for rows.Next() {
		if inserted >= len(apps) {
			return inserted, fmt.Errorf("insert returned more rows than applications")
		}
		app := &apps[inserted]
		if err := rows.Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, rows.Err()
}

// List returns applications visible through the filter ordered by id.
func (r *Repository) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	where, args := scopeConditions(filter, nil)
	query := `SELECT ` + applicationColumns + ` FROM applications a
        JOIN customers c ON c.id = a.customer_id
        JOIN offers o ON o.id = a.offer_id` + where + ` ORDER BY a.id`
	return r.list(ctx, query, args...)
}

// FindScoped returns the application only if the filter's actor may see it.
func (r *Repository) FindScoped(ctx context.Context, id int, filter domain.ApplicationFilter) (*domain.Application, error) {
	filter.Status = 0
	where, args := scopeConditions(filter, []any{id})
	query := `SELECT ` + applicationColumns + ` FROM applications a
        JOIN customers c ON c.id = a.customer_id
        JOIN offers o ON o.id = a.offer_id` + where

	var app domain.Application
	err := scanApplication(r.db.QueryRow(ctx, query, args...), &app)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application", zap.Int("application_id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// UpdateStatus sets the status of an application on one of the lender's offers.
// A non-zero from makes the update conditional on the current status.
// It returns nil when no such application exists or its status is no longer from.
func (r *Repository) UpdateStatus(ctx context.Context, id, lenderID int, from, to domain.ApplicationStatus) (*domain.Application, error) {
	query := `
        UPDATE applications a
        SET status = $1, updated_at = NOW()
        FROM offers o
        WHERE a.id = $2 AND o.id = a.offer_id AND o.lender_id = $3`
	args := []any{to, id, lenderID}
	if from != 0 {
		query += ` AND a.status = $4`
		args = append(args, from)
	}
	query += ` RETURNING ` + applicationColumns

	var app domain.Application
	err := scanApplication(r.db.QueryRow(ctx, query, args...), &app)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update application status", zap.Int("application_id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// scopeConditions builds the WHERE clause. When args is not empty its first value is matched against a.id.
func scopeConditions(filter domain.ApplicationFilter, args []any) (string, []any) {
	var conds []string
	if len(args) > 0 {
		conds = append(conds, "a.id = $1")
	}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, cond+" = $"+strconv.Itoa(len(args)))
	}
	if filter.PartnerID > 0 {
		add("c.partner_id", filter.PartnerID)
	}
	if filter.LenderID > 0 {
		add("o.lender_id", filter.LenderID)
	}
	if filter.Status != 0 {
		add("a.status", filter.Status)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
