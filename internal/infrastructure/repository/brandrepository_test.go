package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchline/internal/domain/brand"
)

func createTestBrand(t *testing.T, name string, organizationID uint) *brand.Brand {
	b, err := brand.NewBrand(name, organizationID)
	require.NoError(t, err)
	return b
}

func TestBrandRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db, testLogger())
	ctx := context.Background()

	b := createTestBrand(t, "Sunrise Coffee", 1)
	b.UpdateGuidelines(brand.Guidelines{
		LogoURL:      "https://cdn.example.com/logo.png",
		PrimaryColor: "#ff6600",
	})

	require.NoError(t, repo.Create(ctx, b))
	assert.NotZero(t, b.ID())

	found, err := repo.GetBySID(ctx, b.SID())
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Coffee", found.Name())
	assert.Equal(t, uint(1), found.OrganizationID())
	assert.Equal(t, "#ff6600", found.Guidelines().PrimaryColor)
	assert.Equal(t, brand.DefaultLimits(), found.Limits())
}

func TestBrandRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db, testLogger())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, brand.ErrBrandNotFound)
}

func TestBrandRepository_ListByOrganization(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db, testLogger())
	ctx := context.Background()

	zulu := createTestBrand(t, "Zulu", 1)
	require.NoError(t, repo.Create(ctx, zulu))

	alpha := createTestBrand(t, "Alpha", 1)
	require.NoError(t, repo.Create(ctx, alpha))

	retired := createTestBrand(t, "Retired", 1)
	retired.Deactivate()
	require.NoError(t, repo.Create(ctx, retired))

	other := createTestBrand(t, "Other Org", 2)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("orders by name ascending", func(t *testing.T) {
		brands, err := repo.ListByOrganization(ctx, 1, false)
		require.NoError(t, err)
		require.Len(t, brands, 3)
		assert.Equal(t, "Alpha", brands[0].Name())
		assert.Equal(t, "Retired", brands[1].Name())
		assert.Equal(t, "Zulu", brands[2].Name())
	})

	t.Run("active only excludes deactivated", func(t *testing.T) {
		brands, err := repo.ListByOrganization(ctx, 1, true)
		require.NoError(t, err)
		require.Len(t, brands, 2)
		assert.Equal(t, "Alpha", brands[0].Name())
		assert.Equal(t, "Zulu", brands[1].Name())
	})
}

func TestBrandRepository_CountActiveByOrganization(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestBrand(t, "One", 7)))
	require.NoError(t, repo.Create(ctx, createTestBrand(t, "Two", 7)))

	inactive := createTestBrand(t, "Gone", 7)
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	count, err := repo.CountActiveByOrganization(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountActiveByOrganization(ctx, 8)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBrandRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBrandRepository(db, testLogger())
	ctx := context.Background()

	b := createTestBrand(t, "Ephemeral", 1)
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.Delete(ctx, b.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID()), brand.ErrBrandNotFound)
}
