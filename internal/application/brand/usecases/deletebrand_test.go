package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/domain/brand"
	apperrors "branchline/internal/shared/errors"
)

func existingBrand(t *testing.T) *brand.Brand {
	t.Helper()
	b, err := brand.NewBrand("Sunrise Coffee", 1)
	require.NoError(t, err)
	require.NoError(t, b.SetID(10))
	return b
}

func TestDeleteBrand_Success(t *testing.T) {
	repo := new(mockBrandRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewDeleteBrandUseCase(repo, businessRepo, stubLogger{})

	b := existingBrand(t)
	repo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	businessRepo.On("CountActiveByBrand", mock.Anything, b.ID()).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, b.ID()).Return(nil)

	err := uc.Execute(context.Background(), b.SID())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteBrand_BlockedByActiveBusinesses(t *testing.T) {
	repo := new(mockBrandRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewDeleteBrandUseCase(repo, businessRepo, stubLogger{})

	b := existingBrand(t)
	repo.On("GetBySID", mock.Anything, b.SID()).Return(b, nil)
	businessRepo.On("CountActiveByBrand", mock.Anything, b.ID()).Return(int64(3), nil)

	err := uc.Execute(context.Background(), b.SID())

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteBrand_NotFound(t *testing.T) {
	repo := new(mockBrandRepository)
	businessRepo := new(mockBusinessRepository)
	uc := NewDeleteBrandUseCase(repo, businessRepo, stubLogger{})

	repo.On("GetBySID", mock.Anything, "brd_missing0").Return(nil, brand.ErrBrandNotFound)

	err := uc.Execute(context.Background(), "brd_missing0")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
