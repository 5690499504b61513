package project

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectService handles the project lifecycle around the pricing core
type ProjectService struct {
	projectRepo        project.ProjectRepository
	draftRepo          project.DraftChangeRepository
	projectProductRepo project.ProjectProductRepository
	groupRepo          project.ProjectProductGroupRepository
	logger             *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.ProjectRepository,
	draftRepo project.DraftChangeRepository,
	projectProductRepo project.ProjectProductRepository,
	groupRepo project.ProjectProductGroupRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:        projectRepo,
		draftRepo:          draftRepo,
		projectProductRepo: projectProductRepo,
		groupRepo:          groupRepo,
		logger:             logger,
	}
}

// Create opens a new customer project
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	p, err := project.NewProject(req.Name, req.CustomerName)
	if err != nil {
		return nil, err
	}
	if req.Address != "" || req.Notes != "" {
		if err := p.Update(req.Name, req.CustomerName, req.Address, req.Notes); err != nil {
			return nil, err
		}
	}
	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("project created",
		zap.String("project_id", p.ID.String()),
		zap.String("customer", p.CustomerName))

	resp := toProjectResponse(p)
	return &resp, nil
}

// Update changes a project's descriptive fields
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.Name, req.CustomerName, req.Address, req.Notes); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// GetByID returns one project
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// List returns projects, paginated
func (s *ProjectService) List(ctx context.Context, filter shared.Filter) (*ProjectListResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.projectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	return &ProjectListResponse{
		Projects: out,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Delete removes a project together with its drafts, committed product
// states and group options.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.draftRepo.Clear(ctx, id, nil); err != nil {
		return err
	}
	if err := s.projectProductRepo.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.groupRepo.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}
