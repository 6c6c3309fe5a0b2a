package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/hierarchy/dto"
	"branchline/internal/domain/brand"
	"branchline/internal/interfaces/http/handlers/testutil"
)

func TestHierarchyHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedOrganization(t, "Acme Group")

	br, err := brand.NewBrand("Sunrise Coffee", org.ID())
	require.NoError(t, err)
	require.NoError(t, env.brandRepo.Create(t.Context(), br))

	b := env.seedBusiness(t, org.ID(), "Downtown Diner")
	env.seedFranchise(t, b.ID(), "Springfield West", nil)
	env.seedFranchise(t, b.ID(), "Springfield East", nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/"+org.SID()+"/hierarchy", nil)
	testutil.SetURLParam(c, "id", org.SID())

	env.hierarchyHandler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var tree dto.HierarchyResponse
	require.NoError(t, json.Unmarshal(resp.Data, &tree))

	assert.Equal(t, org.SID(), tree.Organization.ID)
	require.Len(t, tree.Brands, 1)
	assert.Equal(t, "Sunrise Coffee", tree.Brands[0].Name)
	require.Len(t, tree.Businesses, 1)
	assert.Len(t, tree.Businesses[0].Franchises, 2)
	require.Len(t, tree.Franchises, 2)
	assert.Equal(t, b.SID(), tree.Franchises[0].BusinessID)
}

func TestHierarchyHandler_Get_ExcludesInactiveChildren(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedOrganization(t, "Acme Group")
	b := env.seedBusiness(t, org.ID(), "Downtown Diner")

	active := env.seedFranchise(t, b.ID(), "Open Location", nil)
	retired := env.seedFranchise(t, b.ID(), "Closed Location", nil)
	retired.Deactivate()
	require.NoError(t, env.franchiseRepo.Update(t.Context(), retired))

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/"+org.SID()+"/hierarchy", nil)
	testutil.SetURLParam(c, "id", org.SID())

	env.hierarchyHandler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var tree dto.HierarchyResponse
	require.NoError(t, json.Unmarshal(resp.Data, &tree))

	require.Len(t, tree.Businesses, 1)
	require.Len(t, tree.Businesses[0].Franchises, 1)
	assert.Equal(t, active.SID(), tree.Businesses[0].Franchises[0].ID)
	require.Len(t, tree.Franchises, 1)
	assert.Equal(t, active.SID(), tree.Franchises[0].ID)
}

func TestHierarchyHandler_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/org_missing0/hierarchy", nil)
	testutil.SetURLParam(c, "id", "org_missing0")

	env.hierarchyHandler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
