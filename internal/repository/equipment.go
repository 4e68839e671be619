package repository

import (
	"strings"

	"github.com/linskybing/storeops-go/internal/domain/item"
	"gorm.io/gorm"
)

type EquipmentRepo interface {
	CreateEquipmentItem(it *item.EquipmentItem) error
	GetEquipmentItemByID(id uint) (item.EquipmentItem, error)
	ListEquipmentItems(f item.EquipmentFilter) ([]item.EquipmentItem, int64, error)
	ListAllEquipmentItems() ([]item.EquipmentItem, error)
	CountEquipmentByCategory() (map[string]int64, error)
	SaveEquipmentItem(it *item.EquipmentItem) error
	DeleteEquipmentItem(id uint) error
	WithTx(tx *gorm.DB) EquipmentRepo
}

type DBEquipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) *DBEquipmentRepo {
	return &DBEquipmentRepo{
		db: db,
	}
}

func (r *DBEquipmentRepo) CreateEquipmentItem(it *item.EquipmentItem) error {
	return r.db.Create(it).Error
}

func (r *DBEquipmentRepo) GetEquipmentItemByID(id uint) (item.EquipmentItem, error) {
	var it item.EquipmentItem
	if err := r.db.First(&it, id).Error; err != nil {
		return it, notFound(err, "equipment item")
	}
	return it, nil
}

func (r *DBEquipmentRepo) ListEquipmentItems(f item.EquipmentFilter) ([]item.EquipmentItem, int64, error) {
	q := r.db.Model(&item.EquipmentItem{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("subcategory = ?", f.Subcategory)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = searchAny(q, s, "item_name", "description", "location", "maintenance_notes")
	}
	return findPage[item.EquipmentItem](q, (f.Page-1)*f.Limit, f.Limit, "created_at DESC, id DESC")
}

func (r *DBEquipmentRepo) ListAllEquipmentItems() ([]item.EquipmentItem, error) {
	var items []item.EquipmentItem
	err := r.db.Order("item_name ASC").Find(&items).Error
	return items, err
}

func (r *DBEquipmentRepo) CountEquipmentByCategory() (map[string]int64, error) {
	return countBy(r.db.Model(&item.EquipmentItem{}), "category")
}

func (r *DBEquipmentRepo) SaveEquipmentItem(it *item.EquipmentItem) error {
	return r.db.Save(it).Error
}

func (r *DBEquipmentRepo) DeleteEquipmentItem(id uint) error {
	return deleteByID[item.EquipmentItem](r.db, id, "equipment item")
}

func (r *DBEquipmentRepo) WithTx(tx *gorm.DB) EquipmentRepo {
	if tx == nil {
		return r
	}
	return &DBEquipmentRepo{
		db: tx,
	}
}
