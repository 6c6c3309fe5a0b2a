package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/organization/dto"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
)

func existingOrganization(t *testing.T) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization("Acme Group", organization.Contact{Email: "owner@example.com"})
	require.NoError(t, err)
	require.NoError(t, org.SetID(1))
	return org
}

func TestUpdateOrganization_PartialNameOnly(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewUpdateOrganizationUseCase(repo, stubLogger{})

	org := existingOrganization(t)
	originalEmail := org.Contact().Email

	repo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("Update", mock.Anything, org).Return(nil)

	newName := "Acme Holdings"
	resp, err := uc.Execute(context.Background(), org.SID(), dto.UpdateOrganizationRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", resp.Name)
	assert.Equal(t, originalEmail, resp.Contact.Email)
	assert.True(t, resp.UpdatedAt.After(resp.CreatedAt) || resp.UpdatedAt.Equal(resp.CreatedAt))
	repo.AssertExpectations(t)
}

func TestUpdateOrganization_PlanChangeResetsLimits(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewUpdateOrganizationUseCase(repo, stubLogger{})

	org := existingOrganization(t)
	repo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("Update", mock.Anything, org).Return(nil)

	plan := "enterprise"
	resp, err := uc.Execute(context.Background(), org.SID(), dto.UpdateOrganizationRequest{Plan: &plan})

	require.NoError(t, err)
	assert.Equal(t, "enterprise", resp.Subscription.Plan)
	assert.Equal(t, organization.Unlimited, resp.Limits.Brands)
	assert.Equal(t, organization.Unlimited, resp.Limits.Businesses)
}

func TestUpdateOrganization_SoftDelete(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewUpdateOrganizationUseCase(repo, stubLogger{})

	org := existingOrganization(t)
	repo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("Update", mock.Anything, org).Return(nil)

	inactive := false
	resp, err := uc.Execute(context.Background(), org.SID(), dto.UpdateOrganizationRequest{IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestUpdateOrganization_NotFound(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewUpdateOrganizationUseCase(repo, stubLogger{})

	repo.On("GetBySID", mock.Anything, "org_missing0").Return(nil, organization.ErrOrganizationNotFound)

	name := "New Name"
	_, err := uc.Execute(context.Background(), "org_missing0", dto.UpdateOrganizationRequest{Name: &name})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
