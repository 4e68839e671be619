package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formMocks struct {
	user     *mock.MockUserRepo
	form     *mock.MockFormRepo
	alert    *mock.MockAlertRepo
	notifier *fakeNotifier
}

func setupFormServiceMocks(t *testing.T) (*FormService, formMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := formMocks{
		user:     mock.NewMockUserRepo(ctrl),
		form:     mock.NewMockFormRepo(ctrl),
		alert:    mock.NewMockAlertRepo(ctrl),
		notifier: &fakeNotifier{id: 77},
	}
	repos := &repository.Repos{User: m.user, Form: m.form, Alert: m.alert}
	svc := NewFormService(repos, m.notifier, Deps{Clock: newTestClock()})
	return svc, m
}

func uintPtr(v uint) *uint { return &v }

var (
	alice = user.User{ID: 1, Username: "alice", Role: user.RoleStaff}
	bob   = user.User{ID: 2, Username: "bob", Role: user.RoleSupervisor}
	carol = user.User{ID: 3, Username: "carol", Role: user.RoleStaff}
	root  = user.User{ID: 4, Username: "root", Role: user.RoleSuperAdmin}
)

// --------------------- Submit ---------------------
func TestSubmit_SpecificRecipient(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().CreateForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		f.ID = 10
		return nil
	})
	m.form.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(h *form.History) error {
		assert.Equal(t, uint(10), h.FormID)
		assert.Equal(t, form.StatusPending, h.Status)
		assert.Equal(t, uint(1), *h.FromUserID)
		assert.Equal(t, uint(2), *h.ToUserID)
		return nil
	})
	m.form.EXPECT().SetAlertID(uint(10), uint(77)).Return(nil)

	f, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{
		FormType:  "inventory",
		FormData:  []byte(`{"item":"milk"}`),
		Recipient: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, form.RecipientSpecific, f.RecipientType)
	assert.Equal(t, uint(2), *f.RecipientID)
	assert.Equal(t, form.StatusPending, f.Status)
	assert.Equal(t, testNow, f.ForDate)

	reqs := m.notifier.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, alert.KindFormReceived, reqs[0].Kind)
	assert.Equal(t, "2", reqs[0].Target)
	assert.Equal(t, uint(10), *reqs[0].RelatedFormID)
}

func TestSubmit_RolePool(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.notifier.id = 0

	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.form.EXPECT().CreateForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(h *form.History) error {
		assert.Nil(t, h.ToUserID)
		assert.Equal(t, user.RoleSupervisor, h.ToRecipient)
		return nil
	})

	f, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{
		FormType:  "equipment",
		Recipient: user.RoleSupervisor,
	})
	require.NoError(t, err)
	assert.Equal(t, form.RecipientGeneral, f.RecipientType)
	assert.Nil(t, f.RecipientID)
	assert.Equal(t, user.RoleSupervisor, f.GeneralRecipient)
	assert.Equal(t, "{}", string(f.FormData))
	assert.Equal(t, user.RoleSupervisor, m.notifier.requests()[0].Target)
}

func TestSubmit_DefaultsToGeneralPool(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.notifier.id = 0

	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.form.EXPECT().CreateForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).Return(nil)

	f, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{FormType: "health-safety"})
	require.NoError(t, err)
	assert.Equal(t, form.GeneralPool, f.GeneralRecipient)
}

func TestSubmit_InvalidFormType(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)

	_, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{FormType: "groceries"})
	assert.True(t, errors.Is(err, errors.BadRequest))
	assert.Empty(t, m.notifier.requests())
}

func TestSubmit_SpecificRecipientMustExist(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.user.EXPECT().GetUserByID(uint(99)).Return(user.User{}, errors.NewNotFound(nil, "user not found"))

	_, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{
		FormType:      "inventory",
		Recipient:     "99",
		RecipientType: form.RecipientSpecific,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.BadRequest))
	assert.Equal(t, "invalid recipient", err.Error())
}

func TestSubmit_UnknownPool(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)

	_, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{
		FormType:  "inventory",
		Recipient: "Janitors",
	})
	assert.True(t, errors.Is(err, errors.BadRequest))
}

func TestSubmit_AlertFailureDoesNotFail(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.notifier.err = errors.New("smtp down")

	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.form.EXPECT().CreateForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).Return(nil)

	f, err := svc.Submit(context.Background(), 1, form.SubmitFormInput{FormType: "inventory", Recipient: "general"})
	require.NoError(t, err)
	assert.Nil(t, f.AlertID)
}

// --------------------- UpdateStatus ---------------------
func TestUpdateStatus_NotRecipient(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(3)).Return(carol, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2),
	}, nil)

	err := svc.UpdateStatus(context.Background(), 3, 10, form.UpdateStatusInput{Status: "Approved"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.Equal(t, "form not found or you are not authorized", err.Error())
}

func TestUpdateStatus_MissingForm(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{}, errors.NewNotFound(nil, "form not found"))

	err := svc.UpdateStatus(context.Background(), 2, 10, form.UpdateStatusInput{Status: "Approved"})
	assert.Equal(t, errNotRecipient, err)
}

func TestUpdateStatus_RolePoolRecipient(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	svc.signatures = &fakeSignatures{url: "http://minio/signatures/sig.png"}

	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, Status: form.StatusPending,
		RecipientType: form.RecipientGeneral, GeneralRecipient: user.RoleSupervisor,
	}, nil)
	m.form.EXPECT().SaveForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Equal(t, "Approved", f.Status)
		assert.Equal(t, "http://minio/signatures/sig.png", f.SignatureURL)
		return nil
	})
	m.form.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(h *form.History) error {
		assert.Equal(t, "Approved", h.Status)
		assert.Equal(t, uint(2), h.ActorID)
		assert.Nil(t, h.FromUserID)
		assert.Nil(t, h.ToUserID)
		return nil
	})

	err := svc.UpdateStatus(context.Background(), 2, 10, form.UpdateStatusInput{
		Status:         "Approved",
		SignatureImage: "data:image/png;base64,AAAA",
	})
	require.NoError(t, err)

	reqs := m.notifier.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, alert.KindStatusUpdated, reqs[0].Kind)
	assert.Equal(t, "1", reqs[0].Target)
}

func TestUpdateStatus_SignatureFailureContinues(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	svc.signatures = &fakeSignatures{err: errors.New("bucket missing")}

	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2),
	}, nil)
	m.form.EXPECT().SaveForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Empty(t, f.SignatureURL)
		return nil
	})
	m.form.EXPECT().AppendHistory(gomock.Any()).Return(nil)

	err := svc.UpdateStatus(context.Background(), 2, 10, form.UpdateStatusInput{Status: "Done", SignatureImage: "data:image/png;base64,AAAA"})
	assert.NoError(t, err)
}

func TestUpdateStatus_OwnerIsNotified(t *testing.T) {
	svc, m := setupFormServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(1),
	}, nil)
	m.form.EXPECT().SaveForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).Return(nil)

	err := svc.UpdateStatus(context.Background(), 1, 10, form.UpdateStatusInput{Status: "Closed"})
	require.NoError(t, err)

	reqs := m.notifier.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, alert.KindStatusUpdated, reqs[0].Kind)
	assert.Equal(t, "1", reqs[0].Target)
}

// --------------------- Move ---------------------
func TestMove_Forbidden(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(3)).Return(carol, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2),
	}, nil)

	_, err := svc.Move(context.Background(), 3, form.MoveFormInput{FormID: 10, NewRecipient: "Management"})
	assert.True(t, errors.Is(err, errors.Forbidden))
}

func TestMove_OwnerToRole(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, Status: form.StatusPending,
		RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2),
	}, nil)
	m.form.EXPECT().SaveForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).DoAndReturn(func(h *form.History) error {
		assert.Equal(t, "In Review", h.Status)
		assert.Equal(t, uint(1), *h.FromUserID)
		assert.Equal(t, user.RoleManagement, h.ToRecipient)
		return nil
	})
	m.user.EXPECT().CreateMovedForm(gomock.Any()).DoAndReturn(func(mf *user.MovedForm) error {
		assert.Equal(t, uint(1), mf.UserID)
		assert.Equal(t, uint(10), mf.FormID)
		assert.Equal(t, user.RoleManagement, mf.Recipient)
		assert.Equal(t, testNow, mf.MovedAt)
		return nil
	})

	res, err := svc.Move(context.Background(), 1, form.MoveFormInput{
		FormID:       10,
		NewRecipient: user.RoleManagement,
		Status:       "In Review",
	})
	require.NoError(t, err)
	assert.Equal(t, MsgFormMoved, res.Message)
	assert.Equal(t, form.RecipientGeneral, res.Form.RecipientType)
	assert.Nil(t, res.Form.RecipientID)

	reqs := m.notifier.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, alert.KindFormMoved, reqs[0].Kind)
	assert.Equal(t, "Form moved to you with status: In Review", reqs[0].Message)
}

func TestMove_SuperAdminToUser(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(4)).Return(root, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{ID: 10, UserID: 1, Status: "Open", RecipientType: form.RecipientGeneral, GeneralRecipient: "general"}, nil)
	m.user.EXPECT().GetUserByID(uint(3)).Return(carol, nil)
	m.form.EXPECT().SaveForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).Return(nil)
	m.user.EXPECT().CreateMovedForm(gomock.Any()).Return(nil)

	res, err := svc.Move(context.Background(), 4, form.MoveFormInput{FormID: 10, NewRecipient: "3"})
	require.NoError(t, err)
	assert.Equal(t, "Open", res.Form.Status)
	assert.Equal(t, uint(3), *res.Form.RecipientID)
	assert.Equal(t, "3", m.notifier.requests()[0].Target)
}

// --------------------- GetForm ---------------------
func TestGetForm_HiddenFromOutsiders(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(3)).Return(carol, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2),
	}, nil)
	m.form.EXPECT().IsParticipant(uint(10), uint(3)).Return(false, nil)

	_, err := svc.GetForm(3, 10)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestGetForm_HistoryLabels(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(1)).Return(alice, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{
		ID: 10, UserID: 1, FormType: "inventory", Status: "Approved",
		RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2),
		FormData: []byte(`{"qty":3}`),
	}, nil)
	m.form.EXPECT().ListHistory(uint(10)).Return([]form.History{
		{FormID: 10, Status: form.StatusPending, ActorID: 1, FromUserID: uintPtr(1), ToUserID: uintPtr(2), CreatedAt: testNow},
		{FormID: 10, Status: "Approved", ActorID: 2, CreatedAt: testNow.Add(time.Hour)},
	}, nil)
	m.user.EXPECT().ListUsersByIDs(gomock.Any()).Return([]user.User{alice, bob}, nil)

	d, err := svc.GetForm(1, 10)
	require.NoError(t, err)
	assert.Equal(t, "bob", d.Recipient)
	assert.Equal(t, "alice", d.Submitter.Username)
	assert.JSONEq(t, `{"qty":3}`, string(d.FormData))
	require.Len(t, d.History, 2)
	assert.Equal(t, "alice", d.History[0].From.Username)
	assert.Equal(t, "bob", d.History[0].To.Username)
	assert.Equal(t, "bob", d.History[1].Actor.Username)
	assert.Nil(t, d.History[1].To)
}

// --------------------- Listing ---------------------
func TestListRelatedForms_ScopesByRole(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().ListFormsInScope(form.Scope{RecipientID: 2, Pools: []string{user.RoleSupervisor, form.GeneralPool}}).
		Return([]form.Form{{ID: 10, UserID: 1, RecipientType: form.RecipientGeneral, GeneralRecipient: user.RoleSupervisor}}, nil)
	m.user.EXPECT().ListUsersByIDs([]uint{1}).Return([]user.User{alice}, nil)

	forms, err := svc.ListRelatedForms(2)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, user.RoleSupervisor, forms[0].Recipient)
	assert.Equal(t, "alice", forms[0].Submitter.Username)
}

func TestListRelatedForms_SuperAdminSeesAll(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(4)).Return(root, nil)
	m.form.EXPECT().ListFormsInScope(form.Scope{All: true}).Return(nil, nil)
	m.user.EXPECT().ListUsersByIDs([]uint{}).Return(nil, nil)

	forms, err := svc.ListRelatedForms(4)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestStats(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	scope := form.Scope{RecipientID: 2, Pools: []string{user.RoleSupervisor, form.GeneralPool}}
	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().CountFormsByStatus(scope).Return(map[string]int64{"Pending": 3, "Approved": 2}, nil)
	m.form.EXPECT().CountFormsByType(scope).Return(map[string]int64{"inventory": 5}, nil)

	stats, err := svc.Stats(2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(3), stats.ByStatus["Pending"])
}

func TestListMovedForms_MissingFormHasNilSummary(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.user.EXPECT().ListMovedForms(uint(1)).Return([]user.MovedForm{
		{FormID: 10, Recipient: "2", Status: "Open", MovedAt: testNow},
		{FormID: 11, Recipient: "general", Status: "Open", MovedAt: testNow},
	}, nil)
	m.form.EXPECT().ListFormsByIDs([]uint{10, 11}).Return([]form.Form{{ID: 10, UserID: 1}}, nil)
	m.user.EXPECT().ListUsersByIDs([]uint{1}).Return([]user.User{alice}, nil)

	views, err := svc.ListMovedForms(1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.NotNil(t, views[0].Form)
	assert.Nil(t, views[1].Form)
}

// --------------------- Alerts ---------------------
func TestApplyAlertStatus_OtherUsersAlert(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.alert.EXPECT().GetAlertByID(uint(5)).Return(alert.Alert{ID: 5, UserID: 2, RelatedFormID: uintPtr(10)}, nil)

	err := svc.ApplyAlertStatus(context.Background(), 3, 5, "Resolved")
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestApplyAlertStatus_UpdatesRelatedForm(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.alert.EXPECT().GetAlertByID(uint(5)).Return(alert.Alert{ID: 5, UserID: 2, RelatedFormID: uintPtr(10)}, nil)
	m.user.EXPECT().GetUserByID(uint(2)).Return(bob, nil)
	m.form.EXPECT().GetFormByID(uint(10)).Return(form.Form{ID: 10, UserID: 1}, nil)
	m.form.EXPECT().SaveForm(gomock.Any()).Return(nil)
	m.form.EXPECT().AppendHistory(gomock.Any()).Return(nil)

	err := svc.ApplyAlertStatus(context.Background(), 2, 5, "Resolved")
	require.NoError(t, err)
	assert.Equal(t, "1", m.notifier.requests()[0].Target)
}

func TestFollowUpStale(t *testing.T) {
	svc, m := setupFormServiceMocks(t)
	m.form.EXPECT().ListStalePending(testNow.Add(-24 * time.Hour)).Return([]form.Form{
		{ID: 10, UserID: 1, FormType: "inventory", Status: form.StatusPending, RecipientType: form.RecipientSpecific, RecipientID: uintPtr(2), CreatedAt: testNow.Add(-48 * time.Hour)},
		{ID: 11, UserID: 1, FormType: "equipment", Status: form.StatusPending, RecipientType: form.RecipientGeneral, GeneralRecipient: user.RoleManagement},
	}, nil)
	m.form.EXPECT().MarkFollowedUp(uint(10), testNow).Return(nil)
	m.form.EXPECT().MarkFollowedUp(uint(11), testNow).Return(nil)

	n, err := svc.FollowUpStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	reqs := m.notifier.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "2", reqs[0].Target)
	assert.Equal(t, user.RoleManagement, reqs[1].Target)
	assert.Equal(t, alert.KindFollowUp, reqs[1].Kind)
}
