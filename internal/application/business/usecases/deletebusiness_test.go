package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/domain/business"
	apperrors "branchline/internal/shared/errors"
)

func TestDeleteBusiness_Success(t *testing.T) {
	repo := new(mockBusinessRepository)
	franchiseRepo := new(mockFranchiseRepository)
	uc := NewDeleteBusinessUseCase(repo, franchiseRepo, stubLogger{})

	b := existingBusiness(t)
	repo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	franchiseRepo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, b.ID()).Return(nil)

	err := uc.Execute(context.Background(), b.SID())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteBusiness_BlockedByActiveFranchises(t *testing.T) {
	repo := new(mockBusinessRepository)
	franchiseRepo := new(mockFranchiseRepository)
	uc := NewDeleteBusinessUseCase(repo, franchiseRepo, stubLogger{})

	b := existingBusiness(t)
	repo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	franchiseRepo.On("CountActiveByBusiness", mock.Anything, b.ID()).Return(int64(2), nil)

	err := uc.Execute(context.Background(), b.SID())

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteBusiness_NotFound(t *testing.T) {
	repo := new(mockBusinessRepository)
	franchiseRepo := new(mockFranchiseRepository)
	uc := NewDeleteBusinessUseCase(repo, franchiseRepo, stubLogger{})

	repo.On("GetBySID", mock.Anything, "biz_missing0").Return(nil, business.ErrBusinessNotFound)

	err := uc.Execute(context.Background(), "biz_missing0")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
