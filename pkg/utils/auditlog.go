package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/domain/audit"
	"github.com/linskybing/storeops-go/internal/repository"
)

var logger = loggo.GetLogger("storeops.audit")

// LogAuditWithConsole records an audit entry in the background using the
// caller identity and client details of c.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	// Read request data before the context is recycled.
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			logger.Errorf("writing audit log %s %s/%s: %v", action, resourceType, resourceID, err)
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      marshalAudit(before),
		NewData:      marshalAudit(after),
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}
	return repo.CreateAuditLog(entry)
}

func marshalAudit(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warningf("marshalling audit payload: %v", err)
		return nil
	}
	return data
}
