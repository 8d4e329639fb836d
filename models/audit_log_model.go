package models

import "time"

// AuditLog records one mutating wrapper operation. Entries are append-only:
// they are never updated or deleted.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	Operation  string    `gorm:"column:operation" json:"operation"`     // CREATE, UPDATE, SOFT DELETE, RESTORE, DELETE
	TargetName string    `gorm:"column:target_table" json:"table_name"` // whitelisted master table the operation touched
	Actor      string    `gorm:"column:actor" json:"actor"`             // userlogin claim of the caller
	Summary    string    `gorm:"column:summary" json:"summary"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the static table name for GORM.
// Required to override GORM's default pluralization behavior.
func (AuditLog) TableName() string {
	return "tbl_audit_log"
}
