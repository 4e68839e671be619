package repository

import (
	"time"

	"github.com/linskybing/storeops-go/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditRepo interface {
	CreateAuditLog(entry *audit.AuditLog) error
	ListAuditLogs(q audit.Query) ([]audit.AuditLog, int64, error)
	DeleteAuditLogsBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) ListAuditLogs(q audit.Query) ([]audit.AuditLog, int64, error) {
	q.Normalize()
	query := r.db.Model(&audit.AuditLog{})
	if q.UserID != nil {
		query = query.Where("user_id = ?", *q.UserID)
	}
	if q.ResourceType != "" {
		query = query.Where("resource_type = ?", q.ResourceType)
	}
	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}
	if q.StartTime != nil {
		query = query.Where("created_at >= ?", *q.StartTime)
	}
	if q.EndTime != nil {
		query = query.Where("created_at <= ?", *q.EndTime)
	}
	return findPage[audit.AuditLog](query, q.Offset(), q.Limit, "created_at DESC, id DESC")
}

// DeleteAuditLogsBefore purges entries older than cutoff and reports how
// many were removed.
func (r *DBAuditRepo) DeleteAuditLogsBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
