package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"gorm.io/gorm"
)

type AlertRepo interface {
	CreateAlert(a *alert.Alert) error
	GetAlertByID(id uint) (alert.Alert, error)
	ListAlerts() ([]alert.Alert, error)
	ListAlertsByUser(userID uint) ([]alert.Alert, error)
	MarkRead(id uint) error
	WithTx(tx *gorm.DB) AlertRepo
}

type DBAlertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) *DBAlertRepo {
	return &DBAlertRepo{
		db: db,
	}
}

func (r *DBAlertRepo) CreateAlert(a *alert.Alert) error {
	return r.db.Create(a).Error
}

func (r *DBAlertRepo) GetAlertByID(id uint) (alert.Alert, error) {
	var a alert.Alert
	if err := r.db.First(&a, id).Error; err != nil {
		return a, notFound(err, "alert")
	}
	return a, nil
}

func (r *DBAlertRepo) ListAlerts() ([]alert.Alert, error) {
	var alerts []alert.Alert
	err := r.db.Order("created_at DESC, id DESC").Find(&alerts).Error
	return alerts, err
}

func (r *DBAlertRepo) ListAlertsByUser(userID uint) ([]alert.Alert, error) {
	var alerts []alert.Alert
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&alerts).Error
	return alerts, err
}

func (r *DBAlertRepo) MarkRead(id uint) error {
	return r.db.Model(&alert.Alert{}).Where("id = ?", id).Update("read", true).Error
}

func (r *DBAlertRepo) WithTx(tx *gorm.DB) AlertRepo {
	if tx == nil {
		return r
	}
	return &DBAlertRepo{
		db: tx,
	}
}
