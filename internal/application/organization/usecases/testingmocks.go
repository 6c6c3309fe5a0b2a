package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	"branchline/internal/domain/organization"
	"branchline/internal/shared/logger"
)

type mockOrganizationRepository struct {
	mock.Mock
}

func (m *mockOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *mockOrganizationRepository) GetBySID(ctx context.Context, sid string) (*organization.Organization, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *mockOrganizationRepository) List(ctx context.Context, filter organization.ListFilter) ([]*organization.Organization, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*organization.Organization), args.Get(1).(int64), args.Error(2)
}

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBrandRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBrandRepository) GetByID(ctx context.Context, id uint) (*brand.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*brand.Brand), args.Error(1)
}

func (m *mockBrandRepository) GetBySID(ctx context.Context, sid string) (*brand.Brand, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*brand.Brand), args.Error(1)
}

func (m *mockBrandRepository) ListByOrganization(ctx context.Context, organizationID uint, activeOnly bool) ([]*brand.Brand, error) {
	args := m.Called(ctx, organizationID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*brand.Brand), args.Error(1)
}

func (m *mockBrandRepository) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBusinessRepository struct {
	mock.Mock
}

func (m *mockBusinessRepository) Create(ctx context.Context, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBusinessRepository) Update(ctx context.Context, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBusinessRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBusinessRepository) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessRepository) GetBySID(ctx context.Context, sid string) (*business.Business, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *mockBusinessRepository) ListByOrganization(ctx context.Context, organizationID uint, filter business.ListFilter) ([]*business.Business, int64, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*business.Business), args.Get(1).(int64), args.Error(2)
}

func (m *mockBusinessRepository) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBusinessRepository) CountActiveByBrand(ctx context.Context, brandID uint) (int64, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(int64), args.Error(1)
}

// stubLogger swallows all log output in tests.
type stubLogger struct{}

func (stubLogger) Debug(msg string, args ...any) {}
func (stubLogger) Info(msg string, args ...any) {}
func (stubLogger) Warn(msg string, args ...any) {}
func (stubLogger) Error(msg string, args ...any) {}
func (s stubLogger) With(args ...any) logger.Interface { return s }
func (s stubLogger) Named(name string) logger.Interface { return s }
func (stubLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (stubLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (stubLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (stubLogger) Errorw(msg string, keysAndValues ...interface{}) {}
