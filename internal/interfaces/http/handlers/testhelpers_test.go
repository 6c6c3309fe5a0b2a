package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	brandUC "branchline/internal/application/brand/usecases"
	businessUC "branchline/internal/application/business/usecases"
	franchiseUC "branchline/internal/application/franchise/usecases"
	hierarchyUC "branchline/internal/application/hierarchy/usecases"
	organizationUC "branchline/internal/application/organization/usecases"
	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	"branchline/internal/domain/franchise"
	"branchline/internal/domain/organization"
	"branchline/internal/infrastructure/persistence/models"
	"branchline/internal/infrastructure/repository"
	"branchline/internal/shared/logger"
)

// testEnv wires real handlers over an in-memory database.
type testEnv struct {
	db *gorm.DB

	orgRepo       organization.Repository
	brandRepo     brand.Repository
	businessRepo  business.Repository
	franchiseRepo franchise.Repository

	organizationHandler *OrganizationHandler
	brandHandler        *BrandHandler
	businessHandler     *BusinessHandler
	franchiseHandler    *FranchiseHandler
	hierarchyHandler    *HierarchyHandler
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.OrganizationModel{},
		&models.BrandModel{},
		&models.BusinessModel{},
		&models.FranchiseModel{},
	)
	require.NoError(t, err)

	log := testLogger()

	orgRepo := repository.NewOrganizationRepository(db, log)
	brandRepo := repository.NewBrandRepository(db, log)
	businessRepo := repository.NewBusinessRepository(db, log)
	franchiseRepo := repository.NewFranchiseRepository(db, log)

	return &testEnv{
		db:            db,
		orgRepo:       orgRepo,
		brandRepo:     brandRepo,
		businessRepo:  businessRepo,
		franchiseRepo: franchiseRepo,
		organizationHandler: NewOrganizationHandler(
			organizationUC.NewCreateOrganizationUseCase(orgRepo, log),
			organizationUC.NewGetOrganizationUseCase(orgRepo, log),
			organizationUC.NewListOrganizationsUseCase(orgRepo, log),
			organizationUC.NewUpdateOrganizationUseCase(orgRepo, log),
			organizationUC.NewDeleteOrganizationUseCase(orgRepo, brandRepo, businessRepo, log),
		),
		brandHandler: NewBrandHandler(
			brandUC.NewCreateBrandUseCase(brandRepo, orgRepo, log),
			brandUC.NewGetBrandUseCase(brandRepo, orgRepo, log),
			brandUC.NewListBrandsUseCase(brandRepo, orgRepo, log),
			brandUC.NewUpdateBrandUseCase(brandRepo, orgRepo, log),
			brandUC.NewDeleteBrandUseCase(brandRepo, businessRepo, log),
		),
		businessHandler: NewBusinessHandler(
			businessUC.NewCreateBusinessUseCase(businessRepo, orgRepo, brandRepo, log),
			businessUC.NewGetBusinessUseCase(businessRepo, orgRepo, brandRepo, log),
			businessUC.NewListBusinessesUseCase(businessRepo, orgRepo, brandRepo, log),
			businessUC.NewUpdateBusinessUseCase(businessRepo, orgRepo, brandRepo, log),
			businessUC.NewDeleteBusinessUseCase(businessRepo, franchiseRepo, log),
		),
		franchiseHandler: NewFranchiseHandler(
			franchiseUC.NewCreateFranchiseUseCase(franchiseRepo, businessRepo, log),
			franchiseUC.NewGetFranchiseUseCase(franchiseRepo, businessRepo, log),
			franchiseUC.NewListFranchisesUseCase(franchiseRepo, businessRepo, log),
			franchiseUC.NewUpdateFranchiseUseCase(franchiseRepo, businessRepo, log),
			franchiseUC.NewDeleteFranchiseUseCase(franchiseRepo, log),
			franchiseUC.NewCheckFranchiseOpenUseCase(franchiseRepo, log),
		),
		hierarchyHandler: NewHierarchyHandler(
			hierarchyUC.NewGetHierarchyUseCase(orgRepo, brandRepo, businessRepo, franchiseRepo, 1000, log),
		),
	}
}

// seedOrganization persists a fresh organization and returns it.
func (e *testEnv) seedOrganization(t *testing.T, name string) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(name, organization.Contact{Email: "owner@example.com"})
	require.NoError(t, err)
	require.NoError(t, e.orgRepo.Create(t.Context(), org))
	return org
}

// seedBusiness persists a business under the given organization.
func (e *testEnv) seedBusiness(t *testing.T, organizationID uint, name string) *business.Business {
	t.Helper()
	b, err := business.NewBusiness(name, organizationID, "usr_owner001", business.IndustryRestaurant, business.Contact{
		Email: "owner@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, e.businessRepo.Create(t.Context(), b))
	return b
}

// seedFranchise persists a franchise under the given business.
func (e *testEnv) seedFranchise(t *testing.T, businessID uint, name string, hours franchise.OperatingHours) *franchise.Franchise {
	t.Helper()
	f, err := franchise.NewFranchise(name, businessID, franchise.Address{
		Street:    "742 Evergreen Terrace",
		City:      "Springfield",
		State:     "IL",
		Country:   "US",
		ZipCode:   "62704",
		Latitude:  39.78,
		Longitude: -89.65,
	})
	require.NoError(t, err)
	if hours != nil {
		f.UpdateSettings(franchise.Settings{Capacity: 40, OperatingHours: hours})
	}
	require.NoError(t, e.franchiseRepo.Create(t.Context(), f))
	return f
}
