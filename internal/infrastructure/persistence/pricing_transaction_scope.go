package persistence

import (
	"context"

	apppricing "github.com/dachpro/backoffice/internal/application/pricing"
	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apppricing.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProjectRepo returns the project repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProjectRepo() project.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// DraftRepo returns the draft change repository scoped to the current transaction.
func (r *gormTransactionalRepositories) DraftRepo() project.DraftChangeRepository {
	return NewGormDraftChangeRepository(r.tx)
}

// ProjectProductRepo returns the committed pricing row repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProjectProductRepo() project.ProjectProductRepository {
	return NewGormProjectProductRepository(r.tx)
}

// ProjectGroupRepo returns the committed group option repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProjectGroupRepo() project.ProjectProductGroupRepository {
	return NewGormProjectProductGroupRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apppricing.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apppricing.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
