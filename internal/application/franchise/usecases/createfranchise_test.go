package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/franchise/dto"
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

func validAddress() dto.AddressDTO {
	lat, lng := 39.78, -89.65
	return dto.AddressDTO{
		Street:    "742 Evergreen Terrace",
		City:      "Springfield",
		State:     "IL",
		Country:   "US",
		ZipCode:   "62704",
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func TestCreateFranchise_Success(t *testing.T) {
	repo := new(mockFranchiseRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewCreateFranchiseUseCase(repo, businessRepo, stubLogger{})

	b := existingBusiness(t)
	businessRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), dto.CreateFranchiseRequest{
		Name:       "Springfield West",
		BusinessID: b.SID(),
		Address:    validAddress(),
		Settings: &dto.SettingsDTO{
			Capacity: 40,
			OperatingHours: map[string]dto.DayHoursDTO{
				"monday": {Open: "09:00", Close: "17:00"},
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Springfield West", resp.Name)
	assert.Equal(t, b.SID(), resp.BusinessID)
	assert.Equal(t, "Springfield", resp.Address.City)
	assert.Equal(t, 40, resp.Settings.Capacity)
	assert.Contains(t, resp.ID, "frn_")
	repo.AssertExpectations(t)
}

func TestCreateFranchise_QuotaExhausted(t *testing.T) {
	repo := new(mockFranchiseRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewCreateFranchiseUseCase(repo, businessRepo, stubLogger{})

	// The default business subscription allows three franchises.
	b := existingBusiness(t)
	businessRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(3), nil)

	_, err := uc.Execute(context.Background(), dto.CreateFranchiseRequest{
		Name:       "One Too Many",
		BusinessID: b.SID(),
		Address:    validAddress(),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateFranchise_UnlimitedFranchises(t *testing.T) {
	repo := new(mockFranchiseRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewCreateFranchiseUseCase(repo, businessRepo, stubLogger{})

	b := existingBusiness(t)
	sub := b.Subscription()
	sub.Limits.Franchises = business.Unlimited
	b.UpdateSubscription(sub)
	businessRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(250), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), dto.CreateFranchiseRequest{
		Name:       "Location 251",
		BusinessID: b.SID(),
		Address:    validAddress(),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateFranchise_IncompleteAddress(t *testing.T) {
	repo := new(mockFranchiseRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewCreateFranchiseUseCase(repo, businessRepo, stubLogger{})

	b := existingBusiness(t)
	businessRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(0), nil)

	address := validAddress()
	address.City = ""

	_, err := uc.Execute(context.Background(), dto.CreateFranchiseRequest{
		Name:       "No City",
		BusinessID: b.SID(),
		Address:    address,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateFranchise_MissingCoordinates(t *testing.T) {
	repo := new(mockFranchiseRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewCreateFranchiseUseCase(repo, businessRepo, stubLogger{})

	b := existingBusiness(t)
	businessRepo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	repo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(0), nil)

	// There is no default position; omitting the coordinates must not
	// silently place the location at 0,0.
	address := validAddress()
	address.Latitude = nil
	address.Longitude = nil

	_, err := uc.Execute(context.Background(), dto.CreateFranchiseRequest{
		Name:       "Nowhere",
		BusinessID: b.SID(),
		Address:    address,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateFranchise_BusinessNotFound(t *testing.T) {
	repo := new(mockFranchiseRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewCreateFranchiseUseCase(repo, businessRepo, stubLogger{})

	businessRepo.On("GetBySID", mock.Anything, "biz_missing0").Return(nil, business.ErrBusinessNotFound)

	_, err := uc.Execute(context.Background(), dto.CreateFranchiseRequest{
		Name:       "Orphan Location",
		BusinessID: "biz_missing0",
		Address:    validAddress(),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
