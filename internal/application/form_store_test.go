package application

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interleavingNotifier runs hook once, inside the first Dispatch, to act
// like a recipient reacting while delivery is still in flight.
type interleavingNotifier struct {
	fakeNotifier
	hook func(req alert.Request)
}

func (n *interleavingNotifier) Dispatch(ctx context.Context, req alert.Request) (uint, error) {
	id, err := n.fakeNotifier.Dispatch(ctx, req)
	if h := n.hook; h != nil {
		n.hook = nil
		h(req)
	}
	return id, err
}

func TestSubmit_KeepsStatusSetDuringDispatch(t *testing.T) {
	repos := newSQLiteRepos(t)
	owner := createUser(t, repos, "alice", user.RoleStaff, "", "")
	rcpt := createUser(t, repos, "bob", user.RoleSupervisor, "", "")

	n := &interleavingNotifier{fakeNotifier: fakeNotifier{id: 77}}
	svc := NewFormService(repos, n, Deps{Clock: newTestClock()})
	n.hook = func(req alert.Request) {
		require.NotNil(t, req.RelatedFormID)
		err := svc.UpdateStatus(context.Background(), rcpt.ID, *req.RelatedFormID, form.UpdateStatusInput{Status: "Approved"})
		require.NoError(t, err)
	}

	f, err := svc.Submit(context.Background(), owner.ID, form.SubmitFormInput{
		FormType:  "inventory",
		Recipient: strconv.FormatUint(uint64(rcpt.ID), 10),
	})
	require.NoError(t, err)

	stored, err := repos.Form.GetFormByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Approved", stored.Status)
	require.NotNil(t, stored.AlertID)
	assert.Equal(t, uint(77), *stored.AlertID)

	history, err := repos.Form.ListHistory(f.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Approved", history[len(history)-1].Status)
}

func TestFollowUpStale_KeepsMoveDuringDispatch(t *testing.T) {
	repos := newSQLiteRepos(t)
	owner := createUser(t, repos, "alice", user.RoleStaff, "", "")
	admin := createUser(t, repos, "root", user.RoleSuperAdmin, "", "")
	createUser(t, repos, "bob", user.RoleSupervisor, "", "")

	f := form.Form{
		UserID:           owner.ID,
		FormType:         "equipment",
		Status:           form.StatusPending,
		RecipientType:    form.RecipientGeneral,
		GeneralRecipient: user.RoleSupervisor,
		CreatedAt:        testNow.Add(-48 * time.Hour),
	}
	require.NoError(t, repos.Form.CreateForm(&f))

	n := &interleavingNotifier{fakeNotifier: fakeNotifier{id: 5}}
	svc := NewFormService(repos, n, Deps{Clock: newTestClock()})
	n.hook = func(req alert.Request) {
		_, err := svc.Move(context.Background(), admin.ID, form.MoveFormInput{
			FormID:       f.ID,
			NewRecipient: user.RoleManagement,
			Status:       "Escalated",
		})
		require.NoError(t, err)
	}

	done, err := svc.FollowUpStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, done)

	stored, err := repos.Form.GetFormByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Escalated", stored.Status)
	assert.Equal(t, user.RoleManagement, stored.GeneralRecipient)
	require.NotNil(t, stored.FollowedUpAt)
	assert.True(t, testNow.Equal(*stored.FollowedUpAt))
}

func TestFormRepo_SingleColumnWrites(t *testing.T) {
	repos := newSQLiteRepos(t)
	owner := createUser(t, repos, "alice", user.RoleStaff, "", "")
	f := form.Form{
		UserID:           owner.ID,
		FormType:         "inventory",
		Status:           "Approved",
		RecipientType:    form.RecipientGeneral,
		GeneralRecipient: form.GeneralPool,
	}
	require.NoError(t, repos.Form.CreateForm(&f))

	require.NoError(t, repos.Form.SetAlertID(f.ID, 9))
	require.NoError(t, repos.Form.MarkFollowedUp(f.ID, testNow))

	stored, err := repos.Form.GetFormByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Approved", stored.Status)
	require.NotNil(t, stored.AlertID)
	assert.Equal(t, uint(9), *stored.AlertID)
	require.NotNil(t, stored.FollowedUpAt)
}
