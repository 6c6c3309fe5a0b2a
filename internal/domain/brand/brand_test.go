package brand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrand_Success(t *testing.T) {
	b, err := NewBrand("Blue Bottle", 4)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.SID(), "brd_"))
	assert.Equal(t, uint(4), b.OrganizationID())
	assert.Equal(t, DefaultLimits(), b.Limits())
	assert.True(t, b.IsActive())
	assert.Equal(t, b.CreatedAt(), b.UpdatedAt())
}

func TestNewBrand_ValidationErrors(t *testing.T) {
	_, err := NewBrand("", 4)
	assert.Error(t, err)

	_, err = NewBrand("Blue Bottle", 0)
	assert.Error(t, err)
}

func TestBrand_CheckLimit(t *testing.T) {
	b, err := NewBrand("Blue Bottle", 4)
	require.NoError(t, err)

	b.UpdateLimits(Limits{Businesses: 2, Users: Unlimited, Forms: Unlimited})

	ok, err := b.CheckLimit(LimitBusinesses, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.CheckLimit(LimitBusinesses, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = b.CheckLimit(LimitType("users"), 0)
	assert.Error(t, err)
}

func TestBrand_UpdateGuidelines(t *testing.T) {
	b, err := NewBrand("Blue Bottle", 4)
	require.NoError(t, err)

	b.UpdateGuidelines(Guidelines{LogoURL: "https://cdn.test/logo.png", PrimaryColor: "#0033cc"})

	assert.Equal(t, "#0033cc", b.Guidelines().PrimaryColor)
	assert.True(t, !b.UpdatedAt().Before(b.CreatedAt()))
}
