package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type ReasonCodeRepo interface {
	CreateReasonCode(rc *catalog.ReasonCode) error
	GetReasonCodeByID(id uint) (catalog.ReasonCode, error)
	FindReasonCodeByName(name string) (catalog.ReasonCode, error)
	ListReasonCodes(q catalog.PageQuery) ([]catalog.ReasonCode, int64, error)
	ListAllReasonCodes() ([]catalog.ReasonCode, error)
	SaveReasonCode(rc *catalog.ReasonCode) error
	DeleteReasonCode(id uint) error
	WithTx(tx *gorm.DB) ReasonCodeRepo
}

type DBReasonCodeRepo struct {
	db *gorm.DB
}

func NewReasonCodeRepo(db *gorm.DB) *DBReasonCodeRepo {
	return &DBReasonCodeRepo{
		db: db,
	}
}

func (r *DBReasonCodeRepo) CreateReasonCode(rc *catalog.ReasonCode) error {
	return duplicate(r.db.Create(rc).Error, "reason code")
}

func (r *DBReasonCodeRepo) GetReasonCodeByID(id uint) (catalog.ReasonCode, error) {
	var rc catalog.ReasonCode
	if err := r.db.First(&rc, id).Error; err != nil {
		return rc, notFound(err, "reason code")
	}
	return rc, nil
}

func (r *DBReasonCodeRepo) FindReasonCodeByName(name string) (catalog.ReasonCode, error) {
	var rc catalog.ReasonCode
	if err := r.db.Where("name = ?", name).First(&rc).Error; err != nil {
		return rc, notFound(err, "reason code")
	}
	return rc, nil
}

func (r *DBReasonCodeRepo) ListReasonCodes(q catalog.PageQuery) ([]catalog.ReasonCode, int64, error) {
	return findPage[catalog.ReasonCode](r.db.Model(&catalog.ReasonCode{}), q.Offset(), q.Limit, "created_at DESC, id DESC")
}

func (r *DBReasonCodeRepo) ListAllReasonCodes() ([]catalog.ReasonCode, error) {
	var codes []catalog.ReasonCode
	err := r.db.Order("name ASC").Find(&codes).Error
	return codes, err
}

func (r *DBReasonCodeRepo) SaveReasonCode(rc *catalog.ReasonCode) error {
	return duplicate(r.db.Save(rc).Error, "reason code")
}

func (r *DBReasonCodeRepo) DeleteReasonCode(id uint) error {
	return deleteByID[catalog.ReasonCode](r.db, id, "reason code")
}

func (r *DBReasonCodeRepo) WithTx(tx *gorm.DB) ReasonCodeRepo {
	if tx == nil {
		return r
	}
	return &DBReasonCodeRepo{
		db: tx,
	}
}
