//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/storeops-go/internal/config/db"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/audit"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openPostgres(t *testing.T) *Repos {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	dsn, cleanup, err := testutils.SetupPostgresForIntegration(ctx)
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(cleanup)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return NewRepositories(conn)
}

func TestPostgres_FormFlow(t *testing.T) {
	repos := openPostgres(t)

	owner := user.User{Username: "pg-owner", Password: "x", Role: user.RoleStaff}
	require.NoError(t, repos.User.SaveUser(&owner))

	f := form.Form{
		UserID:           owner.ID,
		FormType:         "inventory",
		FormData:         []byte(`{"item":"milk"}`),
		Status:           form.StatusPending,
		RecipientType:    form.RecipientGeneral,
		GeneralRecipient: user.RoleSupervisor,
		CreatedAt:        time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, repos.ExecTx(func(tx *Repos) error {
		if err := tx.Form.CreateForm(&f); err != nil {
			return err
		}
		return tx.Form.AppendHistory(&form.History{FormID: f.ID, Status: form.StatusPending, ActorID: owner.ID, FromUserID: &owner.ID, ToRecipient: user.RoleSupervisor})
	}))

	inPool, err := repos.Form.ListFormsInScope(form.Scope{RecipientID: 999, Pools: []string{user.RoleSupervisor}})
	require.NoError(t, err)
	require.Len(t, inPool, 1)
	assert.JSONEq(t, `{"item":"milk"}`, string(inPool[0].FormData))

	stale, err := repos.Form.ListStalePending(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	a := alert.Alert{Message: "hi", Kind: alert.KindFormReceived, UserID: owner.ID, Categories: []string{alert.ChannelInApp}, RelatedFormID: &f.ID}
	require.NoError(t, repos.Alert.CreateAlert(&a))
	got, err := repos.Alert.ListAlertsByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{alert.ChannelInApp}, []string(got[0].Categories))
}

func TestPostgres_CatalogAndAudit(t *testing.T) {
	repos := openPostgres(t)

	c := catalog.Category{Name: "Dairy", Type: "inventory", Subcategories: []string{"Milk", "Cheese"}}
	require.NoError(t, repos.Category.CreateCategory(&c))
	dup := catalog.Category{Name: "Dairy", Type: "inventory", Subcategories: []string{"Milk"}}
	assert.Error(t, repos.Category.CreateCategory(&dup), "unique (name, type)")

	old := audit.AuditLog{Action: "move", ResourceType: "form", ResourceID: "1", CreatedAt: time.Now().AddDate(0, 0, -100)}
	fresh := audit.AuditLog{Action: "move", ResourceType: "form", ResourceID: "2"}
	require.NoError(t, repos.Audit.CreateAuditLog(&old))
	require.NoError(t, repos.Audit.CreateAuditLog(&fresh))

	n, err := repos.Audit.DeleteAuditLogsBefore(time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
