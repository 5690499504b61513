package persistence

import (
	"context"
	"errors"
	"testing"

	apppricing "github.com/dachpro/backoffice/internal/application/pricing"
	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupScopeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&project.Project{},
		&project.DraftChange{},
		&project.ProjectProduct{},
		&project.ProjectProductGroup{},
	)
	require.NoError(t, err)

	return db
}

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupScopeTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	projectID := uuid.New()

	err := scope.Execute(ctx, func(repos apppricing.TransactionalRepositories) error {
		pp := project.NewProjectProduct(projectID, uuid.New())
		if err := repos.ProjectProductRepo().Save(ctx, pp); err != nil {
			return err
		}
		return repos.DraftRepo().Clear(ctx, projectID, nil)
	})
	require.NoError(t, err)

	rows, err := NewGormProjectProductRepository(db).ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupScopeTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	projectID := uuid.New()
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos apppricing.TransactionalRepositories) error {
		pp := project.NewProjectProduct(projectID, uuid.New())
		if err := repos.ProjectProductRepo().Save(ctx, pp); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	rows, err := NewGormProjectProductRepository(db).ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
