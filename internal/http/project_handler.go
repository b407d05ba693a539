package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

// ProjectHandler mantiene dependencias para endpoints de proyectos.
type ProjectHandler struct {
	logger   *zap.Logger
	projects *service.ProjectService
}

// NewProjectHandler crea una instancia de ProjectHandler con dependencias
// necesarias.
func NewProjectHandler(logger *zap.Logger, projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		logger:   logger,
		projects: projects,
	}
}

type projectRequest struct {
	Title      string   `json:"title"`
	ShortDesc  string   `json:"short_desc"`
	LongDesc   string   `json:"long_desc"`
	TechStack  []string `json:"tech_stack"`
	LinkToDemo string   `json:"link_to_demo"`
	ModelType  string   `json:"model_type"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:      r.Title,
		ShortDesc:  r.ShortDesc,
		LongDesc:   r.LongDesc,
		TechStack:  r.TechStack,
		LinkToDemo: r.LinkToDemo,
		ModelType:  r.ModelType,
	}
}

// ListProjects maneja GET /api/portfolio/projects (público).
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch projects"})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject maneja POST /api/portfolio/projects (admin).
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create project request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProjectInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all required fields"})
			return
		}
		h.logger.Error("create project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject maneja PUT /api/portfolio/projects/:id (admin).
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update project request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, service.ErrProjectInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project fields"})
		default:
			h.logger.Error("update project failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update project"})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject maneja DELETE /api/portfolio/projects/:id (admin).
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	err := h.projects.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		h.logger.Error("delete project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project removed"})
}
