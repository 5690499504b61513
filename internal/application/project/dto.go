package project

import (
	"time"

	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/google/uuid"
)

// CreateProjectRequest represents a request to open a new customer project
type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	CustomerName string `json:"customer_name" binding:"required,min=1,max=200"`
	Address      string `json:"address" binding:"max=500"`
	Notes        string `json:"notes"`
}

// UpdateProjectRequest represents a request to update a project's descriptive fields
type UpdateProjectRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	CustomerName string `json:"customer_name" binding:"required,min=1,max=200"`
	Address      string `json:"address" binding:"max=500"`
	Notes        string `json:"notes"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectListResponse is a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func toProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		CustomerName: p.CustomerName,
		Address:      p.Address,
		Status:       p.Status,
		Notes:        p.Notes,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
