package repository

import (
	"strings"

	"github.com/linskybing/storeops-go/internal/domain/item"
	"gorm.io/gorm"
)

type OperationalAlertRepo interface {
	CreateOperationalAlert(a *item.OperationalAlert) error
	GetOperationalAlertByID(id uint) (item.OperationalAlert, error)
	ListOperationalAlerts(f item.OperationalAlertFilter) ([]item.OperationalAlert, int64, error)
	CountOperationalAlertsBy(column, typ string) (map[string]int64, error)
	DistinctOperationalAlertValues(column, typ string) ([]string, error)
	SaveOperationalAlert(a *item.OperationalAlert) error
	DeleteOperationalAlert(id uint) error
	WithTx(tx *gorm.DB) OperationalAlertRepo
}

// operationalAlertColumns are the columns callers may group or list by.
var operationalAlertColumns = map[string]bool{
	"category":      true,
	"subcategory":   true,
	"action_needed": true,
}

type DBOperationalAlertRepo struct {
	db *gorm.DB
}

func NewOperationalAlertRepo(db *gorm.DB) *DBOperationalAlertRepo {
	return &DBOperationalAlertRepo{
		db: db,
	}
}

func (r *DBOperationalAlertRepo) CreateOperationalAlert(a *item.OperationalAlert) error {
	return r.db.Create(a).Error
}

func (r *DBOperationalAlertRepo) GetOperationalAlertByID(id uint) (item.OperationalAlert, error) {
	var a item.OperationalAlert
	if err := r.db.First(&a, id).Error; err != nil {
		return a, notFound(err, "operational alert")
	}
	return a, nil
}

func (r *DBOperationalAlertRepo) ListOperationalAlerts(f item.OperationalAlertFilter) ([]item.OperationalAlert, int64, error) {
	q := r.db.Model(&item.OperationalAlert{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("subcategory = ?", f.Subcategory)
	}
	if f.ActionNeeded != "" {
		q = q.Where("action_needed = ?", f.ActionNeeded)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = searchAny(q, s, "item_name", "description", "action_needed")
	}
	return findPage[item.OperationalAlert](q, (f.Page-1)*f.Limit, f.Limit, "created_at DESC, id DESC")
}

func (r *DBOperationalAlertRepo) scoped(typ string) *gorm.DB {
	q := r.db.Model(&item.OperationalAlert{})
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	return q
}

func (r *DBOperationalAlertRepo) CountOperationalAlertsBy(column, typ string) (map[string]int64, error) {
	if !operationalAlertColumns[column] {
		return nil, gorm.ErrInvalidField
	}
	return countBy(r.scoped(typ), column)
}

func (r *DBOperationalAlertRepo) DistinctOperationalAlertValues(column, typ string) ([]string, error) {
	if !operationalAlertColumns[column] {
		return nil, gorm.ErrInvalidField
	}
	var values []string
	err := r.scoped(typ).
		Where(column+" <> ''").
		Distinct(column).
		Order(column+" ASC").
		Pluck(column, &values).Error
	return values, err
}

func (r *DBOperationalAlertRepo) SaveOperationalAlert(a *item.OperationalAlert) error {
	return r.db.Save(a).Error
}

func (r *DBOperationalAlertRepo) DeleteOperationalAlert(id uint) error {
	return deleteByID[item.OperationalAlert](r.db, id, "operational alert")
}

func (r *DBOperationalAlertRepo) WithTx(tx *gorm.DB) OperationalAlertRepo {
	if tx == nil {
		return r
	}
	return &DBOperationalAlertRepo{
		db: tx,
	}
}
