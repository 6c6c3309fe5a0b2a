package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/brand/dto"
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

func TestCreateBrand_Success(t *testing.T) {
	repo := new(mockBrandRepository)
	orgRepo := new(mockOrganizationRepository)
	uc := NewCreateBrandUseCase(repo, orgRepo, stubLogger{})

	org := existingOrganization(t)
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), dto.CreateBrandRequest{
		Name:           "Sunrise Coffee",
		OrganizationID: org.SID(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Sunrise Coffee", resp.Name)
	assert.Equal(t, org.SID(), resp.OrganizationID)
	assert.Contains(t, resp.ID, "brd_")
	repo.AssertExpectations(t)
}

func TestCreateBrand_QuotaExhausted(t *testing.T) {
	repo := new(mockBrandRepository)
	orgRepo := new(mockOrganizationRepository)
	uc := NewCreateBrandUseCase(repo, orgRepo, stubLogger{})

	// Free plan allows one brand.
	org := existingOrganization(t)
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(1), nil)

	_, err := uc.Execute(context.Background(), dto.CreateBrandRequest{
		Name:           "Second Brand",
		OrganizationID: org.SID(),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateBrand_UnlimitedPlan(t *testing.T) {
	repo := new(mockBrandRepository)
	orgRepo := new(mockOrganizationRepository)
	uc := NewCreateBrandUseCase(repo, orgRepo, stubLogger{})

	org := existingOrganization(t)
	require.NoError(t, org.ChangePlan(organization.PlanEnterprise))
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(5000), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), dto.CreateBrandRequest{
		Name:           "Yet Another Brand",
		OrganizationID: org.SID(),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateBrand_OrganizationNotFound(t *testing.T) {
	repo := new(mockBrandRepository)
	orgRepo := new(mockOrganizationRepository)
	uc := NewCreateBrandUseCase(repo, orgRepo, stubLogger{})

	orgRepo.On("GetBySID", mock.Anything, "org_missing0").Return(nil, organization.ErrOrganizationNotFound)

	_, err := uc.Execute(context.Background(), dto.CreateBrandRequest{
		Name:           "Orphan Brand",
		OrganizationID: "org_missing0",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
