package bootstrap

import (
	"fmt"

	"masterdataapi/config"
	"masterdataapi/models"
	"masterdataapi/pkg/logger"
	"masterdataapi/schema"
)

// LoadData verifies at startup that every whitelisted master table is
// reachable and makes sure the audit table exists. A whitelist entry pointing
// at a missing table fails startup instead of surfacing as per-request 500s.
func LoadData(registry *schema.Registry) error {
	logger.Infof("Verifying %d whitelisted master tables...", len(registry.Names()))

	for _, name := range registry.Names() {
		var count int64
		if err := config.DB.Table(name).Count(&count).Error; err != nil {
			logger.Errorf("Whitelisted table %s is not reachable: %v", name, err)
			return fmt.Errorf("whitelisted table %s is not reachable: %v", name, err)
		}
		logger.Debugf("Table %s: %d rows", name, count)
	}

	if !config.DB.Migrator().HasTable(&models.AuditLog{}) {
		if err := config.DB.AutoMigrate(&models.AuditLog{}); err != nil {
			logger.Errorf("Failed to migrate audit table: %v", err)
			return fmt.Errorf("failed to migrate audit table: %v", err)
		}
	}

	logger.Infof("Master table verification completed successfully")
	return nil
}
