package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gatepass/internal/common"
	"github.com/dmitrijs2005/gatepass/internal/dbx"
	"github.com/dmitrijs2005/gatepass/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db    dbx.DBTX
	newID func() string
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, newID: uuid.NewString}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO users (id, username, email, password_hash, role, is_staff, is_superuser, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	id := r.newID()

	err := r.db.QueryRowContext(ctx, query,
		id, account.UserName, account.Email, account.PasswordHash, string(account.Role),
		account.IsStaff, account.IsSuperuser, account.IsApproved).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pgErr.ConstraintName)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.ID = id
	return account, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, userName string) (*models.Account, error) {
	query :=
		`SELECT id, username, email, password_hash, role, is_staff, is_superuser, is_approved, created_at
		 FROM users
		 WHERE username = $1
		 `

	a := &models.Account{}
	var role string
	err := r.db.QueryRowContext(ctx, query, userName).Scan(
		&a.ID, &a.UserName, &a.Email, &a.PasswordHash, &role,
		&a.IsStaff, &a.IsSuperuser, &a.IsApproved, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.Role = models.Role(role)
	return a, nil
}

func (r *PostgresRepository) ExistsByRole(ctx context.Context, role models.Role) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, string(role)).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
