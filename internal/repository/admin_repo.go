package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// AdminRepository define el contrato de persistencia para la cuenta admin.
type AdminRepository interface {
	Create(ctx context.Context, admin domain.AdminUser) error
	GetByEmail(ctx context.Context, email string) (domain.AdminUser, error)
}

// PgAdminRepository implementa AdminRepository usando pgxpool.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

func (r *PgAdminRepository) Create(ctx context.Context, admin domain.AdminUser) error {
	const query = `
		INSERT INTO admin_users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
	)
	return err
}

func (r *PgAdminRepository) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = $1
	`
	var a domain.AdminUser
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		return domain.AdminUser{}, err
	}
	return a, nil
}
