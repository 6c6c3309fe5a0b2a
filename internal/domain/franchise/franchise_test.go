package franchise

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		Street:    "1 Main St",
		City:      "Springfield",
		State:     "IL",
		Country:   "US",
		ZipCode:   "62701",
		Latitude:  39.7817,
		Longitude: -89.6501,
	}
}

func TestNewFranchise_Success(t *testing.T) {
	f, err := NewFranchise("Downtown", 7, validAddress())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(f.SID(), "frn_"))
	assert.Equal(t, uint(7), f.BusinessID())
	assert.True(t, f.IsActive())
	assert.Equal(t, f.CreatedAt(), f.UpdatedAt())
}

func TestNewFranchise_IncompleteAddress(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Address)
	}{
		{"missing street", func(a *Address) { a.Street = "" }},
		{"missing city", func(a *Address) { a.City = "" }},
		{"missing state", func(a *Address) { a.State = "" }},
		{"missing country", func(a *Address) { a.Country = "" }},
		{"missing zip", func(a *Address) { a.ZipCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)
			_, err := NewFranchise("Downtown", 7, addr)
			assert.Error(t, err)
		})
	}
}

// mondayAt returns a time on a known Monday at the given clock time.
func mondayAt(hour, minute int) time.Time {
	// 2024-01-01 was a Monday.
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestFranchise_IsOpenAt(t *testing.T) {
	f, err := NewFranchise("Downtown", 7, validAddress())
	require.NoError(t, err)

	f.UpdateSettings(Settings{
		Capacity: 40,
		OperatingHours: OperatingHours{
			"monday": {Open: "09:00", Close: "17:00"},
		},
	})

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"midday", mondayAt(12, 0), true},
		{"opening minute inclusive", mondayAt(9, 0), true},
		{"closing minute inclusive", mondayAt(17, 0), true},
		{"before opening", mondayAt(8, 59), false},
		{"evening", mondayAt(20, 0), false},
		{"day without entry", mondayAt(12, 0).AddDate(0, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsOpenAt(tt.at))
		})
	}
}

func TestFranchise_IsOpenAt_ClosedDay(t *testing.T) {
	f, err := NewFranchise("Downtown", 7, validAddress())
	require.NoError(t, err)

	f.UpdateSettings(Settings{
		OperatingHours: OperatingHours{
			"monday": {Open: "09:00", Close: "17:00", Closed: true},
		},
	})

	assert.False(t, f.IsOpenAt(mondayAt(12, 0)))
	assert.False(t, f.IsOpenAt(mondayAt(9, 0)))
}

func TestFranchise_IsOpenAt_NoHoursConfigured(t *testing.T) {
	f, err := NewFranchise("Downtown", 7, validAddress())
	require.NoError(t, err)

	assert.False(t, f.IsOpenAt(mondayAt(12, 0)))
}

func TestFranchise_UpdateAddressRequiresCompleteReplacement(t *testing.T) {
	f, err := NewFranchise("Downtown", 7, validAddress())
	require.NoError(t, err)

	incomplete := validAddress()
	incomplete.City = ""
	assert.Error(t, f.UpdateAddress(incomplete))

	moved := validAddress()
	moved.Street = "2 Oak Ave"
	require.NoError(t, f.UpdateAddress(moved))
	assert.Equal(t, "2 Oak Ave", f.Address().Street)
}
