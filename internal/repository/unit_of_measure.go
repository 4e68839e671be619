package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type UnitOfMeasureRepo interface {
	CreateUnit(u *catalog.UnitOfMeasure) error
	GetUnitByID(id uint) (catalog.UnitOfMeasure, error)
	FindUnitByName(fullName, shortName string) (catalog.UnitOfMeasure, error)
	ListUnits(q catalog.PageQuery) ([]catalog.UnitOfMeasure, int64, error)
	ListAllUnits() ([]catalog.UnitOfMeasure, error)
	SaveUnit(u *catalog.UnitOfMeasure) error
	DeleteUnit(id uint) error
	WithTx(tx *gorm.DB) UnitOfMeasureRepo
}

type DBUnitOfMeasureRepo struct {
	db *gorm.DB
}

func NewUnitOfMeasureRepo(db *gorm.DB) *DBUnitOfMeasureRepo {
	return &DBUnitOfMeasureRepo{
		db: db,
	}
}

func (r *DBUnitOfMeasureRepo) CreateUnit(u *catalog.UnitOfMeasure) error {
	return duplicate(r.db.Create(u).Error, "unit of measure")
}

func (r *DBUnitOfMeasureRepo) GetUnitByID(id uint) (catalog.UnitOfMeasure, error) {
	var u catalog.UnitOfMeasure
	if err := r.db.First(&u, id).Error; err != nil {
		return u, notFound(err, "unit of measure")
	}
	return u, nil
}

// FindUnitByName matches either the full or the short name.
func (r *DBUnitOfMeasureRepo) FindUnitByName(fullName, shortName string) (catalog.UnitOfMeasure, error) {
	var u catalog.UnitOfMeasure
	if err := r.db.Where("full_name = ? OR short_name = ?", fullName, shortName).First(&u).Error; err != nil {
		return u, notFound(err, "unit of measure")
	}
	return u, nil
}

func (r *DBUnitOfMeasureRepo) ListUnits(q catalog.PageQuery) ([]catalog.UnitOfMeasure, int64, error) {
	return findPage[catalog.UnitOfMeasure](r.db.Model(&catalog.UnitOfMeasure{}), q.Offset(), q.Limit, "created_at DESC, id DESC")
}

func (r *DBUnitOfMeasureRepo) ListAllUnits() ([]catalog.UnitOfMeasure, error) {
	var units []catalog.UnitOfMeasure
	err := r.db.Order("full_name ASC").Find(&units).Error
	return units, err
}

func (r *DBUnitOfMeasureRepo) SaveUnit(u *catalog.UnitOfMeasure) error {
	return duplicate(r.db.Save(u).Error, "unit of measure")
}

func (r *DBUnitOfMeasureRepo) DeleteUnit(id uint) error {
	return deleteByID[catalog.UnitOfMeasure](r.db, id, "unit of measure")
}

func (r *DBUnitOfMeasureRepo) WithTx(tx *gorm.DB) UnitOfMeasureRepo {
	if tx == nil {
		return r
	}
	return &DBUnitOfMeasureRepo{
		db: tx,
	}
}
