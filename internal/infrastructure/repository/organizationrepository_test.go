package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchline/internal/domain/organization"
)

func createTestOrganization(t *testing.T, name string) *organization.Organization {
	org, err := organization.NewOrganization(name, organization.Contact{Email: "owner@example.com"})
	require.NoError(t, err)
	return org
}

func TestOrganizationRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, testLogger())
	ctx := context.Background()

	t.Run("create organization successfully", func(t *testing.T) {
		org := createTestOrganization(t, "Acme Group")

		err := repo.Create(ctx, org)
		assert.NoError(t, err)
		assert.NotZero(t, org.ID())
	})

	t.Run("create deactivated organization keeps it inactive", func(t *testing.T) {
		org := createTestOrganization(t, "Dormant Group")
		org.Deactivate()

		require.NoError(t, repo.Create(ctx, org))

		found, err := repo.GetByID(ctx, org.ID())
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	})

	t.Run("duplicate SID should fail", func(t *testing.T) {
		org1 := createTestOrganization(t, "First")
		require.NoError(t, repo.Create(ctx, org1))

		org2, err := organization.ReconstructOrganization(
			org1.ID()+1000,
			org1.SID(),
			"Second",
			organization.DefaultSettings(),
			organization.Contact{Email: "second@example.com"},
			organization.Subscription{Plan: organization.PlanFree, Status: "active"},
			organization.PlanFree.DefaultLimits(),
			true,
			time.Now().UTC(), time.Now().UTC(),
		)
		require.NoError(t, err)

		err = repo.Create(ctx, org2)
		assert.Error(t, err)
	})
}

func TestOrganizationRepository_GetBySID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, testLogger())
	ctx := context.Background()

	org := createTestOrganization(t, "Acme Group")
	require.NoError(t, repo.Create(ctx, org))

	t.Run("found", func(t *testing.T) {
		found, err := repo.GetBySID(ctx, org.SID())
		require.NoError(t, err)
		assert.Equal(t, org.ID(), found.ID())
		assert.Equal(t, "Acme Group", found.Name())
		assert.Equal(t, organization.PlanFree, found.Subscription().Plan)
		assert.Equal(t, organization.PlanFree.DefaultLimits(), found.Limits())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetBySID(ctx, "org_missing0")
		assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
	})
}

func TestOrganizationRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, testLogger())
	ctx := context.Background()

	org := createTestOrganization(t, "Before")
	require.NoError(t, repo.Create(ctx, org))

	require.NoError(t, org.UpdateName("After"))
	require.NoError(t, org.ChangePlan(organization.PlanEnterprise))
	org.Deactivate()

	require.NoError(t, repo.Update(ctx, org))

	found, err := repo.GetByID(ctx, org.ID())
	require.NoError(t, err)
	assert.Equal(t, "After", found.Name())
	assert.Equal(t, organization.PlanEnterprise, found.Subscription().Plan)
	assert.Equal(t, organization.Unlimited, found.Limits().Brands)
	assert.False(t, found.IsActive())
}

func TestOrganizationRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, testLogger())
	ctx := context.Background()

	t.Run("delete existing organization", func(t *testing.T) {
		org := createTestOrganization(t, "To Delete")
		require.NoError(t, repo.Create(ctx, org))

		err := repo.Delete(ctx, org.ID())
		assert.NoError(t, err)

		_, err = repo.GetByID(ctx, org.ID())
		assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
	})

	t.Run("delete missing organization", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)
	})
}

func TestOrganizationRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, testLogger())
	ctx := context.Background()

	active := createTestOrganization(t, "Active One")
	require.NoError(t, repo.Create(ctx, active))

	inactive := createTestOrganization(t, "Inactive One")
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	t.Run("list all", func(t *testing.T) {
		orgs, total, err := repo.List(ctx, organization.ListFilter{Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, orgs, 2)
	})

	t.Run("filter active only", func(t *testing.T) {
		isActive := true
		orgs, total, err := repo.List(ctx, organization.ListFilter{IsActive: &isActive, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, orgs, 1)
		assert.Equal(t, active.SID(), orgs[0].SID())
	})

	t.Run("pagination returns total beyond page", func(t *testing.T) {
		orgs, total, err := repo.List(ctx, organization.ListFilter{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, orgs, 1)
	})
}
