package persistence

import (
	"context"
	"testing"

	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProjectGroupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&project.ProjectProductGroup{})
	require.NoError(t, err)

	return db
}

func robenGroupKey(groupName string) catalog.GroupKey {
	return catalog.GroupKey{
		Category:     catalog.CategoryTile,
		Manufacturer: "Röben",
		GroupName:    groupName,
	}
}

func TestGormProjectProductGroupRepository_SaveAndFind(t *testing.T) {
	db := setupProjectGroupTestDB(t)
	repo := NewGormProjectProductGroupRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	key := robenGroupKey("Rubin 11V")

	t.Run("saves and finds by key", func(t *testing.T) {
		group, err := project.NewProjectProductGroup(projectID, key, project.GroupOptionMain)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, group))

		found, err := repo.FindByKey(ctx, projectID, key)
		require.NoError(t, err)
		assert.Equal(t, project.GroupOptionMain, found.Option)
	})

	t.Run("saving same key again replaces the option", func(t *testing.T) {
		group, err := project.NewProjectProductGroup(projectID, key, project.GroupOptionOptional)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, group))

		rows, err := repo.ListByProject(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, project.GroupOptionOptional, rows[0].Option)
	})

	t.Run("returns not found for unknown key", func(t *testing.T) {
		_, err := repo.FindByKey(ctx, projectID, robenGroupKey("Monza Plus"))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProjectProductGroupRepository_ListByManufacturer(t *testing.T) {
	db := setupProjectGroupTestDB(t)
	repo := NewGormProjectProductGroupRepository(db)
	ctx := context.Background()

	projectID := uuid.New()

	rubin, err := project.NewProjectProductGroup(projectID, robenGroupKey("Rubin 11V"), project.GroupOptionMain)
	require.NoError(t, err)
	monza, err := project.NewProjectProductGroup(projectID, robenGroupKey("Monza Plus"), project.GroupOptionOptional)
	require.NoError(t, err)
	galeco, err := project.NewProjectProductGroup(projectID, catalog.GroupKey{
		Category:     catalog.CategoryGutter,
		Manufacturer: "Galeco",
		GroupName:    "PVC 124",
	}, project.GroupOptionMain)
	require.NoError(t, err)

	require.NoError(t, repo.SaveBatch(ctx, []*project.ProjectProductGroup{rubin, monza, galeco}))

	rows, err := repo.ListByManufacturer(ctx, projectID, catalog.CategoryTile, "Röben")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Monza Plus", rows[0].GroupName)
	assert.Equal(t, "Rubin 11V", rows[1].GroupName)
}

func TestGormProjectProductGroupRepository_DeleteByProject(t *testing.T) {
	db := setupProjectGroupTestDB(t)
	repo := NewGormProjectProductGroupRepository(db)
	ctx := context.Background()

	projectID := uuid.New()

	group, err := project.NewProjectProductGroup(projectID, robenGroupKey("Rubin 11V"), project.GroupOptionMain)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, group))

	require.NoError(t, repo.DeleteByProject(ctx, projectID))

	rows, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
