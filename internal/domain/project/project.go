package project

import (
	"context"
	"strings"
	"time"

	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// Project represents one customer project the pricing work is scoped to.
// The sales-pipeline workflow itself lives outside this core; the project
// here is the anchor for draft and saved pricing state.
type Project struct {
	shared.BaseAggregateRoot
	Name         string `gorm:"type:varchar(200);not null"`
	CustomerName string `gorm:"type:varchar(200);not null"`
	Address      string `gorm:"type:varchar(500)"`
	Status       string `gorm:"type:varchar(50);not null;default:'NEW'"`
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new customer project
func NewProject(name, customerName string) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		CustomerName:      customerName,
		Status:            "NEW",
	}, nil
}

// Update updates the project's descriptive fields
func (p *Project) Update(name, customerName, address, notes string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	p.Name = name
	p.CustomerName = customerName
	p.Address = address
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)
	Save(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
