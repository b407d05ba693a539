package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// ProjectRepository define el contrato de persistencia para proyectos del portfolio.
type ProjectRepository interface {
	Create(ctx context.Context, project domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id string) (bool, error)
}

// PgProjectRepository implementa ProjectRepository usando pgxpool.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

func (r *PgProjectRepository) Create(ctx context.Context, project domain.Project) error {
	const query = `
		INSERT INTO projects (id, title, short_desc, long_desc, tech_stack, link_to_demo, model_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.ShortDesc,
		project.LongDesc,
		project.TechStack,
		project.LinkToDemo,
		project.ModelType,
		project.CreatedAt,
		project.UpdatedAt,
	)
	return err
}

func (r *PgProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, title, short_desc, long_desc, tech_stack, link_to_demo, model_type, created_at, updated_at
		FROM projects
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		err = rows.Scan(
			&p.ID,
			&p.Title,
			&p.ShortDesc,
			&p.LongDesc,
			&p.TechStack,
			&p.LinkToDemo,
			&p.ModelType,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	const query = `
		SELECT id, title, short_desc, long_desc, tech_stack, link_to_demo, model_type, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	var p domain.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.ShortDesc,
		&p.LongDesc,
		&p.TechStack,
		&p.LinkToDemo,
		&p.ModelType,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (r *PgProjectRepository) Update(ctx context.Context, project domain.Project) error {
	const query = `
		UPDATE projects
		SET title = $2, short_desc = $3, long_desc = $4, tech_stack = $5,
		    link_to_demo = $6, model_type = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.ShortDesc,
		project.LongDesc,
		project.TechStack,
		project.LinkToDemo,
		project.ModelType,
		project.UpdatedAt,
	)
	return err
}

func (r *PgProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM projects WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
