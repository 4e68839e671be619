package application

import (
	"testing"

	"github.com/linskybing/storeops-go/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_QueryAndCleanup(t *testing.T) {
	repos := newSQLiteRepos(t)
	svc := NewAuditService(repos, Deps{Clock: newTestClock()})

	old := &audit.AuditLog{UserID: 1, Action: "delete", ResourceType: "user", ResourceID: "9", CreatedAt: testNow.AddDate(0, 0, -120)}
	recent := &audit.AuditLog{UserID: 1, Action: "update_role", ResourceType: "user", ResourceID: "2", CreatedAt: testNow.AddDate(0, 0, -1)}
	other := &audit.AuditLog{UserID: 2, Action: "move", ResourceType: "form", ResourceID: "10", CreatedAt: testNow}
	for _, e := range []*audit.AuditLog{old, recent, other} {
		require.NoError(t, repos.Audit.CreateAuditLog(e))
	}

	page, err := svc.QueryAuditLogs(audit.Query{ResourceType: "user"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "update_role", page.Items[0].Action)

	n, err := svc.CleanupOldLogs(90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	page, err = svc.QueryAuditLogs(audit.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 50, page.Limit)

	n, err = svc.CleanupOldLogs(0)
	require.NoError(t, err)
	assert.Zero(t, n)
}
