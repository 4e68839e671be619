package application

import (
	"context"
	"sort"
	"testing"

	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/notify"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alertFixture struct {
	svc     *AlertService
	repos   *repository.Repos
	emitter *fakeEmitter
	mailer  *fakeMailer
	sms     *fakeSMS
	alice   user.User
	bob     user.User
	carol   user.User
}

func setupAlertService(t *testing.T) alertFixture {
	repos := newSQLiteRepos(t)
	f := alertFixture{
		repos:   repos,
		emitter: &fakeEmitter{},
		mailer:  &fakeMailer{},
		sms:     &fakeSMS{},
	}
	f.alice = createUser(t, repos, "alice", user.RoleStaff, "alice@example.com", "")
	f.bob = createUser(t, repos, "bob", user.RoleSupervisor, "bob@example.com", "+15550001111")
	f.carol = createUser(t, repos, "carol", user.RoleSupervisor, "", "")
	f.svc = NewAlertService(repos, Deps{
		Emitter:    f.emitter,
		Mailer:     f.mailer,
		SMS:        f.sms,
		Clock:      newTestClock(),
		SenderName: "Lindo Mart",
	})
	return f
}

func TestDispatch_RoleExcludesActor(t *testing.T) {
	f := setupAlertService(t)

	id, err := f.svc.Dispatch(context.Background(), alert.Request{
		Kind:    alert.KindFormReceived,
		Message: "New form received: inventory from bob",
		ActorID: f.bob.ID,
		Target:  user.RoleSupervisor,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	assert.Equal(t, []string{notify.UserRoom(f.carol.ID)}, f.emitter.rooms())
	got, err := f.svc.ListForUser(f.carol.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, user.RoleSupervisor, got[0].Role)
	assert.Equal(t, []string{alert.ChannelInApp}, []string(got[0].Categories))
	assert.False(t, got[0].Read)
	assert.Equal(t, testNow, got[0].CreatedAt.UTC())

	none, err := f.svc.ListForUser(f.bob.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDispatch_AllChannels(t *testing.T) {
	f := setupAlertService(t)
	formID := uint(42)

	_, err := f.svc.Dispatch(context.Background(), alert.Request{
		Kind:          alert.KindStatusUpdated,
		Message:       "Form #42 status updated to Approved by alice",
		RelatedFormID: &formID,
		ActorID:       f.alice.ID,
		Target:        "2",
		Status:        "Approved",
	})
	require.NoError(t, err)

	got, err := f.svc.ListForUser(f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{alert.ChannelInApp, alert.ChannelEmail, alert.ChannelSMS}, []string(got[0].Categories))
	assert.Equal(t, formID, *got[0].RelatedFormID)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "bob@example.com", f.mailer.sent[0].to)
	assert.Equal(t, "Form Status Updated", f.mailer.sent[0].subject)
	assert.Equal(t, "[Lindo Mart] Form #42 status updated to Approved by alice", f.sms.sent["+15550001111"])
}

func TestDispatch_EmailFailureDropsCategory(t *testing.T) {
	f := setupAlertService(t)
	f.mailer.err = errors.New("connection refused")

	_, err := f.svc.Dispatch(context.Background(), alert.Request{
		Kind:    alert.KindGeneric,
		Message: "hello",
		UserIDs: []uint{f.bob.ID},
	})
	require.NoError(t, err)

	got, err := f.svc.ListForUser(f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{alert.ChannelInApp, alert.ChannelSMS}, []string(got[0].Categories))
}

func TestDispatch_GeneralPool(t *testing.T) {
	f := setupAlertService(t)

	_, err := f.svc.Dispatch(context.Background(), alert.Request{
		Kind:    alert.KindFormReceived,
		Message: "New form",
		ActorID: f.alice.ID,
		Target:  form.GeneralPool,
	})
	require.NoError(t, err)

	rooms := f.emitter.rooms()
	sort.Strings(rooms)
	assert.Equal(t, []string{notify.UserRoom(f.bob.ID), notify.UserRoom(f.carol.ID)}, rooms)
}

func TestDispatch_InvalidTarget(t *testing.T) {
	f := setupAlertService(t)
	_, err := f.svc.Dispatch(context.Background(), alert.Request{Kind: alert.KindGeneric, Message: "x", Target: "night-shift"})
	assert.True(t, errors.Is(err, errors.BadRequest))
}

func TestDispatch_NoRecipients(t *testing.T) {
	f := setupAlertService(t)
	id, err := f.svc.Dispatch(context.Background(), alert.Request{Kind: alert.KindGeneric, Message: "x", Target: user.RoleManagement})
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestMarkRead(t *testing.T) {
	f := setupAlertService(t)
	id, err := f.svc.Dispatch(context.Background(), alert.Request{Kind: alert.KindGeneric, Message: "x", Target: "3"})
	require.NoError(t, err)

	err = f.svc.MarkRead(f.bob.ID, id)
	assert.True(t, errors.Is(err, errors.NotFound))

	require.NoError(t, f.svc.MarkRead(f.carol.ID, id))
	got, err := f.svc.ListForUser(f.carol.ID)
	require.NoError(t, err)
	assert.True(t, got[0].Read)
}
