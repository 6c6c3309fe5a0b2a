package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/application/organization/dto"
	apperrors "branchline/internal/shared/errors"
)

func TestCreateOrganization_Success(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewCreateOrganizationUseCase(repo, stubLogger{})

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), dto.CreateOrganizationRequest{
		Name:    "Acme Group",
		Contact: dto.ContactDTO{Email: "owner@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Group", resp.Name)
	assert.Equal(t, "free", resp.Subscription.Plan)
	assert.Equal(t, 1, resp.Limits.Brands)
	assert.Equal(t, 2, resp.Limits.Businesses)
	assert.True(t, resp.IsActive)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	assert.Contains(t, resp.ID, "org_")
	repo.AssertExpectations(t)
}

func TestCreateOrganization_MissingName(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewCreateOrganizationUseCase(repo, stubLogger{})

	_, err := uc.Execute(context.Background(), dto.CreateOrganizationRequest{
		Contact: dto.ContactDTO{Email: "owner@example.com"},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateOrganization_MissingEmail(t *testing.T) {
	repo := new(mockOrganizationRepository)
	uc := NewCreateOrganizationUseCase(repo, stubLogger{})

	_, err := uc.Execute(context.Background(), dto.CreateOrganizationRequest{Name: "Acme"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
