package repository

import (
	"masterdataapi/config"
	"masterdataapi/models"

	"gorm.io/gorm"
)

// AuditRepository provides append-only access to the audit trail.
type AuditRepository interface {
	Insert(tx *gorm.DB, entry *models.AuditLog) error
	CountByTable(tx *gorm.DB, table string) (int64, error)
	GetByTable(tx *gorm.DB, table string) ([]models.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository instance.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	if db == nil {
		db = config.DB
	}
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(tx *gorm.DB, entry *models.AuditLog) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(entry).Error
}

func (r *auditRepository) CountByTable(tx *gorm.DB, table string) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.AuditLog{}).Where("target_table = ?", table).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *auditRepository) GetByTable(tx *gorm.DB, table string) ([]models.AuditLog, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var entries []models.AuditLog
	if err := db.Model(&models.AuditLog{}).Where("target_table = ?", table).Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
