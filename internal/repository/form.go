package repository

import (
	"time"

	"github.com/linskybing/storeops-go/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	CreateForm(f *form.Form) error
	GetFormByID(id uint) (form.Form, error)
	SaveForm(f *form.Form) error
	SetAlertID(formID, alertID uint) error
	MarkFollowedUp(formID uint, at time.Time) error
	ListFormsByOwner(userID uint, formType string) ([]form.Form, error)
	ListFormsInScope(scope form.Scope) ([]form.Form, error)
	ListFormsByIDs(ids []uint) ([]form.Form, error)
	CountFormsByStatus(scope form.Scope) (map[string]int64, error)
	CountFormsByType(scope form.Scope) (map[string]int64, error)
	ListStalePending(before time.Time) ([]form.Form, error)
	AppendHistory(h *form.History) error
	ListHistory(formID uint) ([]form.History, error)
	IsParticipant(formID, userID uint) (bool, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func applyScope(q *gorm.DB, scope form.Scope) *gorm.DB {
	if scope.All {
		return q
	}
	if len(scope.Pools) == 0 {
		return q.Where("recipient_type = ? AND recipient_id = ?", form.RecipientSpecific, scope.RecipientID)
	}
	return q.Where(
		"(recipient_type = ? AND recipient_id = ?) OR (recipient_type = ? AND general_recipient IN ?)",
		form.RecipientSpecific, scope.RecipientID, form.RecipientGeneral, scope.Pools,
	)
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Form, error) {
	var f form.Form
	if err := r.db.First(&f, id).Error; err != nil {
		return f, notFound(err, "form")
	}
	return f, nil
}

// SaveForm updates the form row only; history goes through AppendHistory.
func (r *DBFormRepo) SaveForm(f *form.Form) error {
	return r.db.Omit("History").Save(f).Error
}

// SetAlertID and MarkFollowedUp touch one column so they never clobber a
// status or recipient written since the form was read.
func (r *DBFormRepo) SetAlertID(formID, alertID uint) error {
	return r.db.Model(&form.Form{}).Where("id = ?", formID).Update("alert_id", alertID).Error
}

func (r *DBFormRepo) MarkFollowedUp(formID uint, at time.Time) error {
	return r.db.Model(&form.Form{}).Where("id = ?", formID).Update("followed_up_at", at).Error
}

func (r *DBFormRepo) ListFormsByOwner(userID uint, formType string) ([]form.Form, error) {
	var forms []form.Form
	q := r.db.Omit("form_data").Where("user_id = ?", userID)
	if formType != "" {
		q = q.Where("form_type = ?", formType)
	}
	err := q.Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ListFormsInScope(scope form.Scope) ([]form.Form, error) {
	var forms []form.Form
	err := applyScope(r.db.Model(&form.Form{}), scope).Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) ListFormsByIDs(ids []uint) ([]form.Form, error) {
	var forms []form.Form
	if len(ids) == 0 {
		return forms, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) CountFormsByStatus(scope form.Scope) (map[string]int64, error) {
	return countBy(applyScope(r.db.Model(&form.Form{}), scope), "status")
}

func (r *DBFormRepo) CountFormsByType(scope form.Scope) (map[string]int64, error) {
	return countBy(applyScope(r.db.Model(&form.Form{}), scope), "form_type")
}

// ListStalePending returns pending forms created before the cutoff that
// have not been followed up yet.
func (r *DBFormRepo) ListStalePending(before time.Time) ([]form.Form, error) {
	var forms []form.Form
	err := r.db.
		Where("status = ? AND followed_up_at IS NULL AND created_at < ?", form.StatusPending, before).
		Order("created_at ASC").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) AppendHistory(h *form.History) error {
	return r.db.Create(h).Error
}

func (r *DBFormRepo) ListHistory(formID uint) ([]form.History, error) {
	var entries []form.History
	err := r.db.Where("form_id = ?", formID).Order("created_at ASC, id ASC").Find(&entries).Error
	return entries, err
}

func (r *DBFormRepo) IsParticipant(formID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&form.History{}).
		Where("form_id = ? AND (actor_id = ? OR from_user_id = ? OR to_user_id = ?)", formID, userID, userID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
