package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ProjectService coordina reglas de negocio para proyectos del portfolio.
type ProjectService struct {
	repo repository.ProjectRepository
}

var (
	ErrProjectNotConfigured = errors.New("project service not configured")
	ErrProjectInvalidInput  = errors.New("project invalid input")
	ErrProjectNotFound      = errors.New("project not found")
)

// short_desc se muestra en la escena 3D; el esquema original lo acotaba a 100.
const maxShortDescLen = 100

const defaultModelType = "sphere"

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ProjectInput agrupa los campos editables de un proyecto.
type ProjectInput struct {
	Title      string
	ShortDesc  string
	LongDesc   string
	TechStack  []string
	LinkToDemo string
	ModelType  string
}

func (in *ProjectInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.ShortDesc = strings.TrimSpace(in.ShortDesc)
	in.LongDesc = strings.TrimSpace(in.LongDesc)
	in.LinkToDemo = strings.TrimSpace(in.LinkToDemo)
	in.ModelType = strings.TrimSpace(in.ModelType)

	stack := in.TechStack[:0]
	for _, tech := range in.TechStack {
		if t := strings.TrimSpace(tech); t != "" {
			stack = append(stack, t)
		}
	}
	in.TechStack = stack
}

func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (domain.Project, error) {
	if s == nil || s.repo == nil {
		return domain.Project{}, ErrProjectNotConfigured
	}

	input.normalize()
	if input.Title == "" || input.ShortDesc == "" || input.LongDesc == "" || len(input.TechStack) == 0 {
		return domain.Project{}, ErrProjectInvalidInput
	}
	if len(input.ShortDesc) > maxShortDescLen {
		return domain.Project{}, ErrProjectInvalidInput
	}
	if input.ModelType == "" {
		input.ModelType = defaultModelType
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:         uuid.NewString(),
		Title:      input.Title,
		ShortDesc:  input.ShortDesc,
		LongDesc:   input.LongDesc,
		TechStack:  input.TechStack,
		LinkToDemo: input.LinkToDemo,
		ModelType:  input.ModelType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s == nil || s.repo == nil {
		return nil, ErrProjectNotConfigured
	}
	return s.repo.List(ctx)
}

// Update aplica semántica de merge: los campos vacíos del input conservan
// el valor almacenado.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (domain.Project, error) {
	if s == nil || s.repo == nil {
		return domain.Project{}, ErrProjectNotConfigured
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Project{}, ErrProjectNotFound
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	input.normalize()
	if input.Title != "" {
		project.Title = input.Title
	}
	if input.ShortDesc != "" {
		if len(input.ShortDesc) > maxShortDescLen {
			return domain.Project{}, ErrProjectInvalidInput
		}
		project.ShortDesc = input.ShortDesc
	}
	if input.LongDesc != "" {
		project.LongDesc = input.LongDesc
	}
	if len(input.TechStack) > 0 {
		project.TechStack = input.TechStack
	}
	if input.LinkToDemo != "" {
		project.LinkToDemo = input.LinkToDemo
	}
	if input.ModelType != "" {
		project.ModelType = input.ModelType
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if s == nil || s.repo == nil {
		return ErrProjectNotConfigured
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProjectNotFound
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrProjectNotFound
	}
	return nil
}
