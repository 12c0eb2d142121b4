package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/creditmatch/internal/domain"
	"github.com/GlebRadaev/creditmatch/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT u.id, u.login, u.password_hash, u.role, COALESCE(l.id, p.id, 0), u.created_at
        FROM users u
        LEFT JOIN lenders l ON l.user_id = u.id
        LEFT JOIN partners p ON p.user_id = u.id
        WHERE u.login = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.OrgID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Create inserts the user together with the organisation its role requires.
func (repo *Repository) Create(ctx context.Context, user *domain.User, orgName string) (*domain.User, error) {
	var orgQuery string
	switch user.Role {
	case domain.RoleLender:
		orgQuery = `INSERT INTO lenders (user_id, name) VALUES ($1, $2) RETURNING id`
	case domain.RolePartner:
		orgQuery = `INSERT INTO partners (user_id, name) VALUES ($1, $2) RETURNING id`
	default:
		return nil, fmt.Errorf("%w: role %q", domain.ErrInvalidInput, user.Role)
	}

	userQuery := `
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := repo.db.QueryRow(ctx, userQuery, user.Login, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt); err != nil {
			zap.L().Error("can't save user", zap.Error(err))
			return err
		}
		if err := repo.db.QueryRow(ctx, orgQuery, user.ID, orgName).Scan(&user.OrgID); err != nil {
			zap.L().Error("can't save organisation", zap.String("role", string(user.Role)), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
