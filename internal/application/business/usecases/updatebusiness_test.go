package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/business/dto"
	"branchline/internal/domain/business"
	apperrors "branchline/internal/shared/errors"
)

func existingBusiness(t *testing.T) *business.Business {
	t.Helper()
	b, err := business.NewBusiness("Downtown Diner", 1, "usr_owner001", business.IndustryRestaurant, business.Contact{
		Email: "owner@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, b.SetID(100))
	return b
}

func TestUpdateBusiness_DetachBrand(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewUpdateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	b := existingBusiness(t)
	require.NoError(t, b.AssignBrand(10))

	repo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("Update", mock.Anything, b).Return(nil)
	orgRepo.On("GetByID", mock.Anything, b.OrganizationID()).Return(org, nil)

	empty := ""
	resp, err := uc.Execute(context.Background(), b.SID(), dto.UpdateBusinessRequest{BrandID: &empty})

	require.NoError(t, err)
	assert.Nil(t, resp.BrandID)
}

func TestUpdateBusiness_PartialIndustry(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewUpdateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	org := existingOrganization(t)
	b := existingBusiness(t)
	repo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("Update", mock.Anything, b).Return(nil)
	orgRepo.On("GetByID", mock.Anything, b.OrganizationID()).Return(org, nil)

	industry := "hotel"
	resp, err := uc.Execute(context.Background(), b.SID(), dto.UpdateBusinessRequest{Industry: &industry})

	require.NoError(t, err)
	assert.Equal(t, "hotel", resp.Industry)
	assert.Equal(t, "Downtown Diner", resp.Name)
}

func TestUpdateBusiness_NotFound(t *testing.T) {
	repo := new(mockBusinessRepository)
	orgRepo := new(mockOrganizationRepository)
	brandRepo := new(mockBrandRepository)
	uc := NewUpdateBusinessUseCase(repo, orgRepo, brandRepo, stubLogger{})

	repo.On("GetBySID", mock.Anything, "biz_missing0").Return(nil, business.ErrBusinessNotFound)

	name := "Renamed"
	_, err := uc.Execute(context.Background(), "biz_missing0", dto.UpdateBusinessRequest{Name: &name})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
