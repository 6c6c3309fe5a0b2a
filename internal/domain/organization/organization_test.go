package organization

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrganization_Success(t *testing.T) {
	org, err := NewOrganization("Acme Group", Contact{Email: "ops@acme.test"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(org.SID(), "org_"))
	assert.Equal(t, "Acme Group", org.Name())
	assert.Equal(t, PlanFree, org.Subscription().Plan)
	assert.Equal(t, PlanFree.DefaultLimits(), org.Limits())
	assert.True(t, org.IsActive())
	assert.Equal(t, org.CreatedAt(), org.UpdatedAt())
}

func TestNewOrganization_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		orgName string
		contact Contact
		wantErr string
	}{
		{
			name:    "missing name",
			contact: Contact{Email: "ops@acme.test"},
			wantErr: "name is required",
		},
		{
			name:    "missing contact email",
			orgName: "Acme Group",
			wantErr: "contact email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, err := NewOrganization(tt.orgName, tt.contact)
			assert.Nil(t, org)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOrganization_UpdateRefreshesUpdatedAt(t *testing.T) {
	org, err := NewOrganization("Acme Group", Contact{Email: "ops@acme.test"})
	require.NoError(t, err)

	created := org.CreatedAt()
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, org.UpdateName("Acme Holdings"))

	assert.Equal(t, created, org.CreatedAt())
	assert.True(t, org.UpdatedAt().After(created) || org.UpdatedAt().Equal(created))
	assert.True(t, !org.UpdatedAt().Before(created))
}

func TestOrganization_CheckLimit(t *testing.T) {
	org, err := NewOrganization("Acme Group", Contact{Email: "ops@acme.test"})
	require.NoError(t, err)

	org.UpdateLimits(Limits{Brands: 3, Businesses: Unlimited, Users: 5, StorageMB: 1024})

	tests := []struct {
		name        string
		limitType   LimitType
		activeCount int64
		want        bool
	}{
		{"below cap", LimitBrands, 2, true},
		{"at cap", LimitBrands, 3, false},
		{"above cap", LimitBrands, 4, false},
		{"unlimited ignores count", LimitBusinesses, 1_000_000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := org.CheckLimit(tt.limitType, tt.activeCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrganization_CheckLimit_UnsupportedType(t *testing.T) {
	org, err := NewOrganization("Acme Group", Contact{Email: "ops@acme.test"})
	require.NoError(t, err)

	_, err = org.CheckLimit(LimitType("users"), 0)
	assert.Error(t, err)
}

func TestOrganization_ChangePlanResetsLimits(t *testing.T) {
	org, err := NewOrganization("Acme Group", Contact{Email: "ops@acme.test"})
	require.NoError(t, err)

	require.NoError(t, org.ChangePlan(PlanEnterprise))

	assert.Equal(t, PlanEnterprise, org.Subscription().Plan)
	assert.Equal(t, Unlimited, org.Limits().Brands)
	assert.Equal(t, Unlimited, org.Limits().Businesses)

	assert.Error(t, org.ChangePlan(Plan("platinum")))
}

func TestOrganization_Deactivate(t *testing.T) {
	org, err := NewOrganization("Acme Group", Contact{Email: "ops@acme.test"})
	require.NoError(t, err)

	org.Deactivate()
	assert.False(t, org.IsActive())

	org.Activate()
	assert.True(t, org.IsActive())
}

func TestReconstructOrganization_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructOrganization(0, "org_x", "Acme", Settings{}, Contact{}, Subscription{Plan: PlanFree}, Limits{}, true, now, now)
	assert.Error(t, err)

	_, err = ReconstructOrganization(1, "", "Acme", Settings{}, Contact{}, Subscription{Plan: PlanFree}, Limits{}, true, now, now)
	assert.Error(t, err)

	_, err = ReconstructOrganization(1, "org_x", "Acme", Settings{}, Contact{}, Subscription{Plan: "bogus"}, Limits{}, true, now, now)
	assert.Error(t, err)

	org, err := ReconstructOrganization(1, "org_x", "Acme", DefaultSettings(), Contact{Email: "a@b.c"}, Subscription{Plan: PlanFree, Status: "active"}, PlanFree.DefaultLimits(), true, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(1), org.ID())
}
