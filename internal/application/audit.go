package application

import (
	"github.com/juju/clock"
	"github.com/linskybing/storeops-go/internal/domain/audit"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/pkg/response"
)

type AuditService struct {
	Repos *repository.Repos
	clock clock.Clock
}

func NewAuditService(repos *repository.Repos, deps Deps) *AuditService {
	return &AuditService{Repos: repos, clock: deps.clock()}
}

func (s *AuditService) QueryAuditLogs(q audit.Query) (response.Page[audit.AuditLog], error) {
	q.Normalize()
	logs, total, err := s.Repos.Audit.ListAuditLogs(q)
	if err != nil {
		return response.Page[audit.AuditLog]{}, err
	}
	return response.NewPage(logs, total, q.Page, q.Limit), nil
}

// CleanupOldLogs removes entries older than the retention window.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := s.clock.Now().AddDate(0, 0, -days)
	n, err := s.Repos.Audit.DeleteAuditLogsBefore(cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Infof("removed %d audit log entries older than %d days", n, days)
	}
	return n, nil
}
