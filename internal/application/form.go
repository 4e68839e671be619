package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/metrics"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/internal/storage"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

const (
	MsgStatusUpdated = "Form status updated successfully"
	MsgFormMoved     = "Form moved successfully"
)

var errNotRecipient = errors.NewNotFound(nil, "form not found or you are not authorized")

type FormService struct {
	Repos      *repository.Repos
	notifier   Notifier
	signatures storage.SignatureStore
	clock      clock.Clock
}

func NewFormService(repos *repository.Repos, notifier Notifier, deps Deps) *FormService {
	return &FormService{
		Repos:      repos,
		notifier:   notifier,
		signatures: deps.Signatures,
		clock:      deps.clock(),
	}
}

// recipient is the outcome of resolving a raw recipient value.
type recipient struct {
	Type string
	ID   *uint
	Pool string
}

func (r recipient) target() string {
	if r.ID != nil {
		return strconv.FormatUint(uint64(*r.ID), 10)
	}
	return r.Pool
}

// resolveRecipient decides whether raw names a user or a pool. A positive
// integer naming an existing user is a specific recipient; anything else
// is a pool, which must be a role or the general pool.
func (s *FormService) resolveRecipient(raw, recipientType, generalRecipient string) (recipient, error) {
	raw = strings.TrimSpace(raw)
	if recipientType != form.RecipientGeneral {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			u, err := s.Repos.User.GetUserByID(uint(id))
			if err == nil {
				return recipient{Type: form.RecipientSpecific, ID: &u.ID}, nil
			}
			if !errors.Is(err, errors.NotFound) {
				return recipient{}, errors.Trace(err)
			}
		}
		if recipientType == form.RecipientSpecific {
			return recipient{}, errors.NewBadRequest(nil, "invalid recipient")
		}
	}

	pool := strings.TrimSpace(generalRecipient)
	if pool == "" {
		pool = raw
	}
	if pool == "" {
		pool = form.GeneralPool
	}
	if pool != form.GeneralPool && !user.IsValidRole(pool) {
		return recipient{}, errors.NewBadRequest(nil, fmt.Sprintf("invalid recipient pool %q", pool))
	}
	return recipient{Type: form.RecipientGeneral, Pool: pool}, nil
}

func (s *FormService) Submit(ctx context.Context, userID uint, in form.SubmitFormInput) (*form.Form, error) {
	actor, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if !catalog.IsItemListType(in.FormType) {
		return nil, errors.NewBadRequest(nil, fmt.Sprintf("invalid form type %q", in.FormType))
	}
	rcpt, err := s.resolveRecipient(in.Recipient, in.RecipientType, in.GeneralRecipient)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	forDate := now
	if in.ForDate != nil {
		forDate = *in.ForDate
	}
	data := datatypes.JSON(in.FormData)
	if len(data) == 0 {
		data = datatypes.JSON("{}")
	}

	f := &form.Form{
		UserID:           actor.ID,
		FormType:         in.FormType,
		FormData:         data,
		Notes:            in.Notes,
		Status:           form.StatusPending,
		ForDate:          forDate,
		RecipientType:    rcpt.Type,
		RecipientID:      rcpt.ID,
		GeneralRecipient: rcpt.Pool,
		CreatedAt:        now,
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.CreateForm(f); err != nil {
			return errors.Annotate(err, "creating form")
		}
		return tx.Form.AppendHistory(&form.History{
			FormID:      f.ID,
			Status:      form.StatusPending,
			ActorID:     actor.ID,
			FromUserID:  &actor.ID,
			ToUserID:    rcpt.ID,
			ToRecipient: rcpt.Pool,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	metrics.FormsSubmitted.WithLabelValues(f.FormType).Inc()

	alertID, err := s.notify(ctx, alert.Request{
		Kind:          alert.KindFormReceived,
		Message:       fmt.Sprintf("New form received: %s from %s", f.FormType, actor.Username),
		RelatedFormID: &f.ID,
		ActorID:       actor.ID,
		Target:        rcpt.target(),
		Status:        f.Status,
	})
	if err == nil && alertID != 0 {
		if err := s.Repos.Form.SetAlertID(f.ID, alertID); err != nil {
			logger.Warningf("storing alert id on form %d: %v", f.ID, err)
		} else {
			f.AlertID = &alertID
		}
	}
	return f, nil
}

// notify dispatches req and logs failures; alerts never fail the caller.
func (s *FormService) notify(ctx context.Context, req alert.Request) (uint, error) {
	if s.notifier == nil {
		return 0, nil
	}
	id, err := s.notifier.Dispatch(ctx, req)
	if err != nil {
		logger.Warningf("dispatching %s alert for form %v: %v", req.Kind, req.RelatedFormID, err)
	}
	return id, err
}

func (s *FormService) uploadSignature(ctx context.Context, userID uint, image string) string {
	if image == "" {
		return ""
	}
	if s.signatures == nil {
		logger.Warningf("signature from user %d dropped: no signature store configured", userID)
		return ""
	}
	url, err := s.signatures.Upload(ctx, userID, image)
	if err != nil {
		logger.Warningf("signature upload for user %d failed: %v", userID, err)
		return ""
	}
	return url
}

func (s *FormService) ListUserForms(userID uint, formType string) ([]form.Summary, error) {
	forms, err := s.Repos.Form.ListFormsByOwner(userID, formType)
	if err != nil {
		return nil, err
	}
	return s.summaries(forms)
}

func (s *FormService) ListAllForms() ([]form.Summary, error) {
	forms, err := s.Repos.Form.ListFormsInScope(form.Scope{All: true})
	if err != nil {
		return nil, err
	}
	return s.summaries(forms)
}

func scopeFor(u user.User) form.Scope {
	if u.Role == user.RoleSuperAdmin {
		return form.Scope{All: true}
	}
	return form.Scope{RecipientID: u.ID, Pools: []string{u.Role, form.GeneralPool}}
}

// ListRelatedForms returns the forms routed to the user, or every form for
// a Super-Admin.
func (s *FormService) ListRelatedForms(userID uint) ([]form.Summary, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	forms, err := s.Repos.Form.ListFormsInScope(scopeFor(u))
	if err != nil {
		return nil, err
	}
	return s.summaries(forms)
}

func (s *FormService) Stats(userID uint) (*form.Stats, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	scope := scopeFor(u)
	byStatus, err := s.Repos.Form.CountFormsByStatus(scope)
	if err != nil {
		return nil, err
	}
	byType, err := s.Repos.Form.CountFormsByType(scope)
	if err != nil {
		return nil, err
	}
	stats := &form.Stats{ByStatus: byStatus, ByFormType: byType}
	for _, n := range byStatus {
		stats.Total += n
	}
	return stats, nil
}

func (s *FormService) GetForm(userID, formID uint) (*form.Detail, error) {
	viewer, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return nil, err
	}
	visible := f.UserID == viewer.ID || viewer.Role == user.RoleSuperAdmin || f.RoutedTo(viewer.ID, viewer.Role)
	if !visible {
		ok, err := s.Repos.Form.IsParticipant(f.ID, viewer.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NewNotFound(nil, "form not found")
		}
	}

	history, err := s.Repos.Form.ListHistory(f.ID)
	if err != nil {
		return nil, err
	}
	ids := []uint{f.UserID}
	if f.RecipientID != nil {
		ids = append(ids, *f.RecipientID)
	}
	for _, h := range history {
		ids = append(ids, h.ActorID)
		if h.FromUserID != nil {
			ids = append(ids, *h.FromUserID)
		}
		if h.ToUserID != nil {
			ids = append(ids, *h.ToUserID)
		}
	}
	users, err := s.userIndex(ids)
	if err != nil {
		return nil, err
	}

	detail := &form.Detail{
		Summary:      summarize(f, users),
		FormData:     []byte(f.FormData),
		SignatureURL: f.SignatureURL,
		AlertID:      f.AlertID,
		History:      make([]form.HistoryView, 0, len(history)),
	}
	for _, h := range history {
		detail.History = append(detail.History, form.HistoryView{
			Status:    h.Status,
			Timestamp: h.CreatedAt,
			Actor:     users.lookup(&h.ActorID),
			From:      users.lookup(h.FromUserID),
			To:        users.lookup(h.ToUserID),
			ToPool:    h.ToRecipient,
		})
	}
	return detail, nil
}

// UpdateStatus sets a new status on a form routed to the user.
func (s *FormService) UpdateStatus(ctx context.Context, userID, formID uint, in form.UpdateStatusInput) error {
	actor, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return err
	}
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errNotRecipient
		}
		return err
	}
	if !f.RoutedTo(actor.ID, actor.Role) {
		return errNotRecipient
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		return errors.NewBadRequest(nil, "status is required")
	}
	if url := s.uploadSignature(ctx, actor.ID, in.SignatureImage); url != "" {
		f.SignatureURL = url
	}
	return s.applyStatus(ctx, actor, &f, status)
}

// ApplyAlertStatus updates the form an alert points at on behalf of the
// alert's owner.
func (s *FormService) ApplyAlertStatus(ctx context.Context, userID, alertID uint, status string) error {
	a, err := s.Repos.Alert.GetAlertByID(alertID)
	if err != nil {
		return err
	}
	if a.UserID != userID {
		return errors.NewNotFound(nil, "alert not found")
	}
	if a.RelatedFormID == nil {
		return errors.NewBadRequest(nil, "alert has no related form")
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return errors.NewBadRequest(nil, "status is required")
	}
	actor, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return err
	}
	f, err := s.Repos.Form.GetFormByID(*a.RelatedFormID)
	if err != nil {
		return err
	}
	return s.applyStatus(ctx, actor, &f, status)
}

func (s *FormService) applyStatus(ctx context.Context, actor user.User, f *form.Form, status string) error {
	now := s.clock.Now()
	f.Status = status
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.SaveForm(f); err != nil {
			return errors.Annotatef(err, "saving form %d", f.ID)
		}
		return tx.Form.AppendHistory(&form.History{
			FormID:    f.ID,
			Status:    status,
			ActorID:   actor.ID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}
	metrics.FormTransitions.WithLabelValues("status").Inc()

	_, _ = s.notify(ctx, alert.Request{
		Kind:          alert.KindStatusUpdated,
		Message:       fmt.Sprintf("Form #%d status updated to %s by %s", f.ID, status, actor.Username),
		RelatedFormID: &f.ID,
		ActorID:       actor.ID,
		Target:        strconv.FormatUint(uint64(f.UserID), 10),
		Status:        status,
	})
	return nil
}

// Move reassigns a form to a new recipient.
func (s *FormService) Move(ctx context.Context, userID uint, in form.MoveFormInput) (*form.MoveResult, error) {
	actor, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	f, err := s.Repos.Form.GetFormByID(in.FormID)
	if err != nil {
		return nil, err
	}
	allowed := actor.Role == user.RoleSuperAdmin || f.UserID == actor.ID || f.RoutedTo(actor.ID, actor.Role)
	if !allowed {
		return nil, errors.NewForbidden(nil, "you are not allowed to move this form")
	}
	rcpt, err := s.resolveRecipient(in.NewRecipient, in.RecipientType, "")
	if err != nil {
		return nil, err
	}

	if status := strings.TrimSpace(in.Status); status != "" {
		f.Status = status
	}
	if url := s.uploadSignature(ctx, actor.ID, in.SignatureImage); url != "" {
		f.SignatureURL = url
	}
	f.RecipientType = rcpt.Type
	f.RecipientID = rcpt.ID
	f.GeneralRecipient = rcpt.Pool

	now := s.clock.Now()
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.SaveForm(&f); err != nil {
			return errors.Annotatef(err, "saving form %d", f.ID)
		}
		if err := tx.Form.AppendHistory(&form.History{
			FormID:      f.ID,
			Status:      f.Status,
			ActorID:     actor.ID,
			FromUserID:  &actor.ID,
			ToUserID:    rcpt.ID,
			ToRecipient: rcpt.Pool,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		return tx.User.CreateMovedForm(&user.MovedForm{
			UserID:        actor.ID,
			FormID:        f.ID,
			RecipientType: rcpt.Type,
			Recipient:     rcpt.target(),
			Status:        f.Status,
			MovedAt:       now,
		})
	})
	if err != nil {
		return nil, err
	}
	metrics.FormTransitions.WithLabelValues("move").Inc()

	_, _ = s.notify(ctx, alert.Request{
		Kind:          alert.KindFormMoved,
		Message:       "Form moved to you with status: " + f.Status,
		RelatedFormID: &f.ID,
		ActorID:       actor.ID,
		Target:        rcpt.target(),
		Status:        f.Status,
	})
	return &form.MoveResult{Message: MsgFormMoved, Form: &f}, nil
}

func (s *FormService) ListMovedForms(userID uint) ([]form.MovedView, error) {
	moved, err := s.Repos.User.ListMovedForms(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(moved))
	for _, m := range moved {
		ids = append(ids, m.FormID)
	}
	forms, err := s.Repos.Form.ListFormsByIDs(ids)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summaries(forms)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*form.Summary, len(summaries))
	for i := range summaries {
		byID[summaries[i].ID] = &summaries[i]
	}

	views := make([]form.MovedView, 0, len(moved))
	for _, m := range moved {
		views = append(views, form.MovedView{
			FormID:        m.FormID,
			RecipientType: m.RecipientType,
			Recipient:     m.Recipient,
			Status:        m.Status,
			MovedAt:       m.MovedAt,
			Form:          byID[m.FormID],
		})
	}
	return views, nil
}

// FollowUpStale alerts the recipients of forms left pending for longer
// than after, once per form. It returns how many forms were followed up.
func (s *FormService) FollowUpStale(ctx context.Context, after time.Duration) (int, error) {
	cutoff := s.clock.Now().Add(-after)
	forms, err := s.Repos.Form.ListStalePending(cutoff)
	if err != nil {
		return 0, err
	}
	done := 0
	for i := range forms {
		f := &forms[i]
		target := f.GeneralRecipient
		if f.IsSpecific() {
			target = strconv.FormatUint(uint64(*f.RecipientID), 10)
		}
		if _, err := s.notify(ctx, alert.Request{
			Kind:          alert.KindFollowUp,
			Message:       fmt.Sprintf("Form #%d (%s) has been pending since %s and needs follow-up", f.ID, f.FormType, f.CreatedAt.Format("2006-01-02 15:04")),
			RelatedFormID: &f.ID,
			ActorID:       f.UserID,
			Target:        target,
			Status:        f.Status,
		}); err != nil {
			continue
		}
		now := s.clock.Now()
		if err := s.Repos.Form.MarkFollowedUp(f.ID, now); err != nil {
			return done, errors.Annotatef(err, "marking form %d followed up", f.ID)
		}
		done++
	}
	return done, nil
}

// Metadata gathers the reference data a form of itemListType needs.
func (s *FormService) Metadata(ctx context.Context, itemListType string) (*form.Metadata, error) {
	if itemListType == "" {
		return nil, errors.NewBadRequest(nil, "item_list_type query parameter is required")
	}
	if err := validateItemListType(itemListType); err != nil {
		return nil, err
	}

	meta := &form.Metadata{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		actions, err := s.Repos.Action.ListActionsByType(itemListType, 0)
		if actions == nil {
			actions = []catalog.Action{}
		}
		meta.Actions = actions
		return err
	})
	switch itemListType {
	case catalog.TypeInventory:
		g.Go(func() error {
			units, err := s.Repos.UnitOfMeasure.ListAllUnits()
			meta.UnitsOfMeasure = make([]catalog.Option, 0, len(units))
			for _, u := range units {
				meta.UnitsOfMeasure = append(meta.UnitsOfMeasure, catalog.Option{Value: u.ID, Label: fmt.Sprintf("%s (%s)", u.FullName, u.ShortName)})
			}
			return err
		})
		g.Go(func() error {
			packaging, err := s.Repos.Packaging.ListAllPackaging()
			meta.Packaging = make([]catalog.Option, 0, len(packaging))
			for _, p := range packaging {
				meta.Packaging = append(meta.Packaging, catalog.Option{Value: p.ID, Label: p.Name})
			}
			return err
		})
	case catalog.TypeEquipment:
		g.Go(func() error {
			codes, err := s.Repos.ReasonCode.ListAllReasonCodes()
			if codes == nil {
				codes = []catalog.ReasonCode{}
			}
			meta.ReasonCodes = codes
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Annotatef(err, "loading %s metadata", itemListType)
	}
	return meta, nil
}

type userIndex map[uint]user.User

func (idx userIndex) lookup(id *uint) *user.Summary {
	if id == nil {
		return nil
	}
	u, ok := idx[*id]
	if !ok {
		return nil
	}
	sum := u.Summary()
	return &sum
}

func (s *FormService) userIndex(ids []uint) (userIndex, error) {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	users, err := s.Repos.User.ListUsersByIDs(unique)
	if err != nil {
		return nil, err
	}
	idx := make(userIndex, len(users))
	for _, u := range users {
		idx[u.ID] = u
	}
	return idx, nil
}

func (s *FormService) summaries(forms []form.Form) ([]form.Summary, error) {
	ids := make([]uint, 0, len(forms)*2)
	for _, f := range forms {
		ids = append(ids, f.UserID)
		if f.RecipientID != nil {
			ids = append(ids, *f.RecipientID)
		}
	}
	users, err := s.userIndex(ids)
	if err != nil {
		return nil, err
	}
	out := make([]form.Summary, 0, len(forms))
	for _, f := range forms {
		out = append(out, summarize(f, users))
	}
	return out, nil
}

func summarize(f form.Form, users userIndex) form.Summary {
	sum := form.Summary{
		ID:            f.ID,
		FormType:      f.FormType,
		Status:        f.Status,
		Notes:         f.Notes,
		ForDate:       f.ForDate,
		CreatedAt:     f.CreatedAt,
		RecipientType: f.RecipientType,
		Recipient:     f.GeneralRecipient,
		Submitter:     users.lookup(&f.UserID),
		RecipientUser: users.lookup(f.RecipientID),
	}
	if sum.RecipientUser != nil {
		sum.Recipient = sum.RecipientUser.Username
	}
	return sum
}
