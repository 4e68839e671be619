package repository

import (
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func seedForms(t *testing.T, repos *Repos) []form.Form {
	t.Helper()
	forms := []form.Form{
		{UserID: 1, FormType: "inventory", Status: form.StatusPending, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2), CreatedAt: base},
		{UserID: 1, FormType: "equipment", Status: form.StatusPending, RecipientType: form.RecipientGeneral, GeneralRecipient: user.RoleSupervisor, CreatedAt: base.Add(time.Hour)},
		{UserID: 3, FormType: "equipment", Status: "Approved", RecipientType: form.RecipientGeneral, GeneralRecipient: form.GeneralPool, CreatedAt: base.Add(2 * time.Hour)},
		{UserID: 3, FormType: "inventory", Status: form.StatusPending, RecipientType: form.RecipientGeneral, GeneralRecipient: user.RoleManagement, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range forms {
		require.NoError(t, repos.Form.CreateForm(&forms[i]))
	}
	return forms
}

func TestFormRepo_Scope(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	forms := seedForms(t, repos)

	all, err := repos.Form.ListFormsInScope(form.Scope{All: true})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, forms[3].ID, all[0].ID, "newest first")

	specificOnly, err := repos.Form.ListFormsInScope(form.Scope{RecipientID: 2})
	require.NoError(t, err)
	require.Len(t, specificOnly, 1)
	assert.Equal(t, forms[0].ID, specificOnly[0].ID)

	supervisor, err := repos.Form.ListFormsInScope(form.Scope{
		RecipientID: 2,
		Pools:       []string{user.RoleSupervisor, form.GeneralPool},
	})
	require.NoError(t, err)
	assert.Len(t, supervisor, 3)

	byStatus, err := repos.Form.CountFormsByStatus(form.Scope{RecipientID: 2, Pools: []string{user.RoleSupervisor, form.GeneralPool}})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{form.StatusPending: 2, "Approved": 1}, byStatus)

	byType, err := repos.Form.CountFormsByType(form.Scope{All: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"inventory": 2, "equipment": 2}, byType)
}

func TestFormRepo_OwnerListing(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	seedForms(t, repos)

	mine, err := repos.Form.ListFormsByOwner(1, "")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	equipment, err := repos.Form.ListFormsByOwner(1, "equipment")
	require.NoError(t, err)
	assert.Len(t, equipment, 1)
}

func TestFormRepo_HistoryAndParticipants(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	forms := seedForms(t, repos)
	id := forms[1].ID

	require.NoError(t, repos.Form.AppendHistory(&form.History{FormID: id, Status: form.StatusPending, ActorID: 1, FromUserID: uintPtr(1), ToRecipient: user.RoleSupervisor, CreatedAt: base}))
	require.NoError(t, repos.Form.AppendHistory(&form.History{FormID: id, Status: "Moved", ActorID: 2, FromUserID: uintPtr(2), ToUserID: uintPtr(5), CreatedAt: base.Add(time.Minute)}))

	entries, err := repos.Form.ListHistory(id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, form.StatusPending, entries[0].Status)

	for _, uid := range []uint{1, 2, 5} {
		ok, err := repos.Form.IsParticipant(id, uid)
		require.NoError(t, err)
		assert.True(t, ok, "user %d", uid)
	}
	ok, err := repos.Form.IsParticipant(id, 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFormRepo_ListStalePending(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	forms := seedForms(t, repos)

	followed := forms[0]
	stamp := base.Add(time.Minute)
	followed.FollowedUpAt = &stamp
	require.NoError(t, repos.Form.SaveForm(&followed))

	stale, err := repos.Form.ListStalePending(base.Add(150 * time.Minute))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, forms[1].ID, stale[0].ID)
}

func TestFormRepo_GetMissing(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	_, err := repos.Form.GetFormByID(42)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestRepos_ExecTxRollsBack(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	err := repos.ExecTx(func(tx *Repos) error {
		f := form.Form{UserID: 1, FormType: "inventory", RecipientType: form.RecipientGeneral, GeneralRecipient: form.GeneralPool}
		if err := tx.Form.CreateForm(&f); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	all, err := repos.Form.ListFormsInScope(form.Scope{All: true})
	require.NoError(t, err)
	assert.Empty(t, all)
}
