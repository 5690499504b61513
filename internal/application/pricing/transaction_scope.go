package pricing

import (
	"context"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
)

// TransactionScope provides transactional access to the repositories a
// project save touches. When a function is executed within a scope, all
// repository operations share one database transaction and are committed
// or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories involved in
// committing a project. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// ProjectRepo returns the project repository scoped to the current transaction
	ProjectRepo() project.ProjectRepository
	// ProductRepo returns the catalog product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// DraftRepo returns the draft change repository scoped to the current transaction
	DraftRepo() project.DraftChangeRepository
	// ProjectProductRepo returns the committed product state repository scoped to the current transaction
	ProjectProductRepo() project.ProjectProductRepository
	// ProjectGroupRepo returns the committed group option repository scoped to the current transaction
	ProjectGroupRepo() project.ProjectProductGroupRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	projectRepo        project.ProjectRepository
	productRepo        catalog.ProductRepository
	draftRepo          project.DraftChangeRepository
	projectProductRepo project.ProjectProductRepository
	projectGroupRepo   project.ProjectProductGroupRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	projectRepo project.ProjectRepository,
	productRepo catalog.ProductRepository,
	draftRepo project.DraftChangeRepository,
	projectProductRepo project.ProjectProductRepository,
	projectGroupRepo project.ProjectProductGroupRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		projectRepo:        projectRepo,
		productRepo:        productRepo,
		draftRepo:          draftRepo,
		projectProductRepo: projectProductRepo,
		projectGroupRepo:   projectGroupRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProjectRepo returns the project repository.
func (s *NoOpTransactionScope) ProjectRepo() project.ProjectRepository {
	return s.projectRepo
}

// ProductRepo returns the catalog product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// DraftRepo returns the draft change repository.
func (s *NoOpTransactionScope) DraftRepo() project.DraftChangeRepository {
	return s.draftRepo
}

// ProjectProductRepo returns the committed product state repository.
func (s *NoOpTransactionScope) ProjectProductRepo() project.ProjectProductRepository {
	return s.projectProductRepo
}

// ProjectGroupRepo returns the committed group option repository.
func (s *NoOpTransactionScope) ProjectGroupRepo() project.ProjectProductGroupRepository {
	return s.projectGroupRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
