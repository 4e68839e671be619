package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type PackagingRepo interface {
	CreatePackaging(p *catalog.Packaging) error
	GetPackagingByID(id uint) (catalog.Packaging, error)
	FindPackagingByName(name string) (catalog.Packaging, error)
	ListPackaging(q catalog.PageQuery) ([]catalog.Packaging, int64, error)
	ListAllPackaging() ([]catalog.Packaging, error)
	SavePackaging(p *catalog.Packaging) error
	DeletePackaging(id uint) error
	WithTx(tx *gorm.DB) PackagingRepo
}

type DBPackagingRepo struct {
	db *gorm.DB
}

func NewPackagingRepo(db *gorm.DB) *DBPackagingRepo {
	return &DBPackagingRepo{
		db: db,
	}
}

func (r *DBPackagingRepo) CreatePackaging(p *catalog.Packaging) error {
	return duplicate(r.db.Create(p).Error, "packaging")
}

func (r *DBPackagingRepo) GetPackagingByID(id uint) (catalog.Packaging, error) {
	var p catalog.Packaging
	if err := r.db.First(&p, id).Error; err != nil {
		return p, notFound(err, "packaging")
	}
	return p, nil
}

func (r *DBPackagingRepo) FindPackagingByName(name string) (catalog.Packaging, error) {
	var p catalog.Packaging
	if err := r.db.Where("name = ?", name).First(&p).Error; err != nil {
		return p, notFound(err, "packaging")
	}
	return p, nil
}

func (r *DBPackagingRepo) ListPackaging(q catalog.PageQuery) ([]catalog.Packaging, int64, error) {
	return findPage[catalog.Packaging](r.db.Model(&catalog.Packaging{}), q.Offset(), q.Limit, "created_at DESC, id DESC")
}

func (r *DBPackagingRepo) ListAllPackaging() ([]catalog.Packaging, error) {
	var items []catalog.Packaging
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *DBPackagingRepo) SavePackaging(p *catalog.Packaging) error {
	return duplicate(r.db.Save(p).Error, "packaging")
}

func (r *DBPackagingRepo) DeletePackaging(id uint) error {
	return deleteByID[catalog.Packaging](r.db, id, "packaging")
}

func (r *DBPackagingRepo) WithTx(tx *gorm.DB) PackagingRepo {
	if tx == nil {
		return r
	}
	return &DBPackagingRepo{
		db: tx,
	}
}
