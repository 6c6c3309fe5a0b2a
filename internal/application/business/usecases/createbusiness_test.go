package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/business/dto"
	"branchline/internal/domain/brand"
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

func existingBrand(t *testing.T, organizationID uint) *brand.Brand {
	t.Helper()
	b, err := brand.NewBrand("Sunrise Coffee", organizationID)
	require.NoError(t, err)
	require.NoError(t, b.SetID(10))
	return b
}

func validCreateRequest(orgSID string) dto.CreateBusinessRequest {
	return dto.CreateBusinessRequest{
		Name:           "Downtown Diner",
		OrganizationID: orgSID,
		OwnerID:        "usr_owner001",
		Industry:       "restaurant",
		Contact:        dto.ContactDTO{Email: "owner@example.com"},
	}
}

func TestCreateBusiness_Success(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewCreateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), validCreateRequest(org.SID()))

	require.NoError(t, err)
	assert.Equal(t, "Downtown Diner", resp.Name)
	assert.Equal(t, "restaurant", resp.Industry)
	assert.Nil(t, resp.BrandID)
	assert.Equal(t, 3, resp.Subscription.Limits.Franchises)
	assert.Contains(t, resp.ID, "biz_")
	repo.AssertExpectations(t)
}

func TestCreateBusiness_WithBrand(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewCreateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	b := existingBrand(t, org.ID())
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(0), nil)
	brandRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBrand", mock.Anything, b.ID()).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validCreateRequest(org.SID())
	brandSID := b.SID()
	req.BrandID = &brandSID

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.BrandID)
	assert.Equal(t, b.SID(), *resp.BrandID)
}

func TestCreateBusiness_BrandFromOtherOrganization(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewCreateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	foreign := existingBrand(t, org.ID()+1)
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(0), nil)
	brandRepo.On("GetBySID", mock.Anything, foreign.SID()).Return(foreign, nil)

	req := validCreateRequest(org.SID())
	brandSID := foreign.SID()
	req.BrandID = &brandSID

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateBusiness_OrganizationQuotaExhausted(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewCreateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	// Free plan allows two businesses.
	org := existingOrganization(t)
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(2), nil)

	_, err := uc.Execute(context.Background(), validCreateRequest(org.SID()))

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateBusiness_BrandQuotaExhausted(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewCreateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	b := existingBrand(t, org.ID())
	b.UpdateLimits(brand.Limits{Businesses: 1, Users: brand.Unlimited, Forms: brand.Unlimited})
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(0), nil)
	brandRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBrand", mock.Anything, b.ID()).Return(int64(1), nil)

	req := validCreateRequest(org.SID())
	brandSID := b.SID()
	req.BrandID = &brandSID

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateBusiness_InvalidIndustry(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewCreateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	orgRepo.On("GetBySID", mock.Anything, org.SID()).Return(org, nil)
	repo.On("CountActiveByOrganization", mock.Anything, org.ID()).Return(int64(0), nil)

	req := validCreateRequest(org.SID())
	req.Industry = "spacefaring"

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
