package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"branchline/internal/domain/franchise"
	apperrors "branchline/internal/shared/errors"
)

func existingFranchise(t *testing.T, hours franchise.OperatingHours) *franchise.Franchise {
	t.Helper()
	f, err := franchise.NewFranchise("Springfield West", 100, franchise.Address{
		Street:    "742 Evergreen Terrace",
		City:      "Springfield",
		State:     "IL",
		Country:   "US",
		ZipCode:   "62704",
		Latitude:  39.78,
		Longitude: -89.65,
	})
	require.NoError(t, err)
	require.NoError(t, f.SetID(1000))
	f.UpdateSettings(franchise.Settings{Capacity: 40, OperatingHours: hours})
	return f
}

// 2026-01-05 is a Monday.
var (
	mondayNoon     = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	mondayMidnight = time.Date(2026, 1, 5, 0, 30, 0, 0, time.UTC)
	sundayNoon     = time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
)

func TestCheckFranchiseOpen_WithinHours(t *testing.T) {
	repo := new(mockFranchiseRepository)
	uc := NewCheckFranchiseOpenUseCase(repo, stubLogger{})

	f := existingFranchise(t, franchise.OperatingHours{
		"monday": {Open: "09:00", Close: "17:00"},
	})
	repo.On("GetBySID", mock.Anything, f.SID()).Return(f, nil)

	resp, err := uc.Execute(context.Background(), f.SID(), mondayNoon)

	require.NoError(t, err)
	assert.True(t, resp.Open)
	assert.True(t, resp.Active)
	assert.Equal(t, f.SID(), resp.ID)
}

func TestCheckFranchiseOpen_OutsideHours(t *testing.T) {
	repo := new(mockFranchiseRepository)
	uc := NewCheckFranchiseOpenUseCase(repo, stubLogger{})

	f := existingFranchise(t, franchise.OperatingHours{
		"monday": {Open: "09:00", Close: "17:00"},
	})
	repo.On("GetBySID", mock.Anything, f.SID()).Return(f, nil)

	resp, err := uc.Execute(context.Background(), f.SID(), mondayMidnight)

	require.NoError(t, err)
	assert.False(t, resp.Open)
}

func TestCheckFranchiseOpen_DayWithoutEntry(t *testing.T) {
	repo := new(mockFranchiseRepository)
	uc := NewCheckFranchiseOpenUseCase(repo, stubLogger{})

	f := existingFranchise(t, franchise.OperatingHours{
		"monday": {Open: "09:00", Close: "17:00"},
	})
	repo.On("GetBySID", mock.Anything, f.SID()).Return(f, nil)

	resp, err := uc.Execute(context.Background(), f.SID(), sundayNoon)

	require.NoError(t, err)
	assert.False(t, resp.Open)
}

func TestCheckFranchiseOpen_ClosedFlagWins(t *testing.T) {
	repo := new(mockFranchiseRepository)
	uc := NewCheckFranchiseOpenUseCase(repo, stubLogger{})

	f := existingFranchise(t, franchise.OperatingHours{
		"monday": {Open: "09:00", Close: "17:00", Closed: true},
	})
	repo.On("GetBySID", mock.Anything, f.SID()).Return(f, nil)

	resp, err := uc.Execute(context.Background(), f.SID(), mondayNoon)

	require.NoError(t, err)
	assert.False(t, resp.Open)
}

func TestCheckFranchiseOpen_InactiveReportsClosed(t *testing.T) {
	repo := new(mockFranchiseRepository)
	uc := NewCheckFranchiseOpenUseCase(repo, stubLogger{})

	f := existingFranchise(t, franchise.OperatingHours{
		"monday": {Open: "09:00", Close: "17:00"},
	})
	f.Deactivate()
	repo.On("GetBySID", mock.Anything, f.SID()).Return(f, nil)

	resp, err := uc.Execute(context.Background(), f.SID(), mondayNoon)

	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.False(t, resp.Active)
}

func TestCheckFranchiseOpen_NotFound(t *testing.T) {
	repo := new(mockFranchiseRepository)
	uc := NewCheckFranchiseOpenUseCase(repo, stubLogger{})

	repo.On("GetBySID", mock.Anything, "frn_missing0").Return(nil, franchise.ErrFranchiseNotFound)

	_, err := uc.Execute(context.Background(), "frn_missing0", mondayNoon)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
