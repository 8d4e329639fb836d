package services

import (
	"masterdataapi/models"
	"masterdataapi/pkg/logger"
	"masterdataapi/repository"
	"masterdataapi/utils"
)

// AuditSink records every mutating wrapper operation.
type AuditSink interface {
	Record(operation, table, actor, summary string)
}

type auditSink struct {
	repo repository.AuditRepository
}

// NewAuditSink creates an audit sink writing to the audit table and the
// rotating audit log file.
func NewAuditSink(repo repository.AuditRepository) AuditSink {
	return &auditSink{repo: repo}
}

// Record appends one audit entry. An audit write failure is logged but does
// not fail the operation it describes.
func (s *auditSink) Record(operation, table, actor, summary string) {
	entry := &models.AuditLog{
		Operation:  operation,
		TargetName: table,
		Actor:      actor,
		Summary:    utils.SanitizeForLogging(summary, 500),
	}
	if err := s.repo.Insert(nil, entry); err != nil {
		logger.Errorf("Failed to write audit entry %s %s by %s: %v", operation, table, actor, err)
	}
	if audit := utils.GetAuditLogger(); audit != nil {
		audit.Printf("%s %s by %s: %s", operation, table, actor, entry.Summary)
	}
}
