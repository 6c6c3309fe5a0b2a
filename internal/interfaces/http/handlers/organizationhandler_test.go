package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/organization/dto"
	"branchline/internal/domain/brand"
	"branchline/internal/interfaces/http/handlers/testutil"
)

func TestOrganizationHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/organizations", dto.CreateOrganizationRequest{
		Name:    "Acme Group",
		Contact: dto.ContactDTO{Email: "owner@example.com"},
	})

	env.organizationHandler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var org dto.OrganizationResponse
	require.NoError(t, json.Unmarshal(resp.Data, &org))
	assert.Equal(t, "Acme Group", org.Name)
	assert.Equal(t, "free", org.Subscription.Plan)
	assert.Contains(t, org.ID, "org_")
}

func TestOrganizationHandler_Create_MissingEmail(t *testing.T) {
	env := newTestEnv(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/organizations", map[string]interface{}{
		"name":    "No Contact",
		"contact": map[string]interface{}{},
	})

	env.organizationHandler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestOrganizationHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedOrganization(t, "Acme Group")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/"+org.SID(), nil)
	testutil.SetURLParam(c, "id", org.SID())

	env.organizationHandler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got dto.OrganizationResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, org.SID(), got.ID)
}

func TestOrganizationHandler_Get_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/bogus", nil)
	testutil.SetURLParam(c, "id", "bogus")

	env.organizationHandler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrganizationHandler_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/org_missing0", nil)
	testutil.SetURLParam(c, "id", "org_missing0")

	env.organizationHandler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationHandler_List(t *testing.T) {
	env := newTestEnv(t)
	env.seedOrganization(t, "Acme Group")
	env.seedOrganization(t, "Bravo Holdings")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations", nil)

	env.organizationHandler.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Count)
	assert.Equal(t, int64(2), *resp.Count)
}

func TestOrganizationHandler_Update_SoftDelete(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedOrganization(t, "Acme Group")

	inactive := false
	c, w := testutil.NewTestContext(http.MethodPut, "/api/organizations/"+org.SID(), dto.UpdateOrganizationRequest{
		IsActive: &inactive,
	})
	testutil.SetURLParam(c, "id", org.SID())

	env.organizationHandler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got dto.OrganizationResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.False(t, got.IsActive)
}

func TestOrganizationHandler_Delete_BlockedByActiveBrand(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedOrganization(t, "Acme Group")

	b, err := brand.NewBrand("Sunrise Coffee", org.ID())
	require.NoError(t, err)
	require.NoError(t, env.brandRepo.Create(t.Context(), b))

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/organizations/"+org.SID(), nil)
	testutil.SetURLParam(c, "id", org.SID())

	env.organizationHandler.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrganizationHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	org := env.seedOrganization(t, "Acme Group")

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/organizations/"+org.SID(), nil)
	testutil.SetURLParam(c, "id", org.SID())

	env.organizationHandler.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)

	c2, w2 := testutil.NewTestContext(http.MethodGet, "/api/organizations/"+org.SID(), nil)
	testutil.SetURLParam(c2, "id", org.SID())
	env.organizationHandler.Get(c2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}
