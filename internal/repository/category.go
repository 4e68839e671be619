package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	CreateCategory(c *catalog.Category) error
	GetCategoryByID(id uint) (catalog.Category, error)
	FindCategoryByNameType(name, typ string) (catalog.Category, error)
	ListCategories(q catalog.PageQuery) ([]catalog.Category, int64, error)
	ListCategoriesByType(typ string) ([]catalog.Category, error)
	CountCategoriesByType() (map[string]int64, error)
	SaveCategory(c *catalog.Category) error
	DeleteCategory(id uint) error
	WithTx(tx *gorm.DB) CategoryRepo
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{
		db: db,
	}
}

func (r *DBCategoryRepo) CreateCategory(c *catalog.Category) error {
	return duplicate(r.db.Create(c).Error, "category")
}

func (r *DBCategoryRepo) GetCategoryByID(id uint) (catalog.Category, error) {
	var c catalog.Category
	if err := r.db.First(&c, id).Error; err != nil {
		return c, notFound(err, "category")
	}
	return c, nil
}

func (r *DBCategoryRepo) FindCategoryByNameType(name, typ string) (catalog.Category, error) {
	var c catalog.Category
	if err := r.db.Where("name = ? AND type = ?", name, typ).First(&c).Error; err != nil {
		return c, notFound(err, "category")
	}
	return c, nil
}

func (r *DBCategoryRepo) ListCategories(q catalog.PageQuery) ([]catalog.Category, int64, error) {
	query := r.db.Model(&catalog.Category{})
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	return findPage[catalog.Category](query, q.Offset(), q.Limit, "created_at DESC, id DESC")
}

func (r *DBCategoryRepo) ListCategoriesByType(typ string) ([]catalog.Category, error) {
	var cats []catalog.Category
	q := r.db.Order("name ASC")
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	err := q.Find(&cats).Error
	return cats, err
}

func (r *DBCategoryRepo) CountCategoriesByType() (map[string]int64, error) {
	return countBy(r.db.Model(&catalog.Category{}), "type")
}

func (r *DBCategoryRepo) SaveCategory(c *catalog.Category) error {
	return duplicate(r.db.Save(c).Error, "category")
}

func (r *DBCategoryRepo) DeleteCategory(id uint) error {
	return deleteByID[catalog.Category](r.db, id, "category")
}

func (r *DBCategoryRepo) WithTx(tx *gorm.DB) CategoryRepo {
	if tx == nil {
		return r
	}
	return &DBCategoryRepo{
		db: tx,
	}
}
