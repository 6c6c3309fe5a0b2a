package migration

import (
	"branchline/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.BrandModel{},
		&models.BusinessModel{},
		&models.FranchiseModel{},
	}
}
