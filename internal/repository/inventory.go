package repository

import (
	"strings"

	"github.com/linskybing/storeops-go/internal/domain/item"
	"gorm.io/gorm"
)

type InventoryRepo interface {
	CreateInventoryItem(it *item.InventoryItem) error
	GetInventoryItemByID(id uint) (item.InventoryItem, error)
	ListInventoryItems(f item.InventoryFilter) ([]item.InventoryItem, int64, error)
	InventoryStats() (item.InventoryStats, error)
	SaveInventoryItem(it *item.InventoryItem) error
	DeleteInventoryItem(id uint) error
	WithTx(tx *gorm.DB) InventoryRepo
}

type DBInventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) *DBInventoryRepo {
	return &DBInventoryRepo{
		db: db,
	}
}

func (r *DBInventoryRepo) CreateInventoryItem(it *item.InventoryItem) error {
	return r.db.Create(it).Error
}

func (r *DBInventoryRepo) GetInventoryItemByID(id uint) (item.InventoryItem, error) {
	var it item.InventoryItem
	if err := r.db.First(&it, id).Error; err != nil {
		return it, notFound(err, "inventory item")
	}
	return it, nil
}

func (r *DBInventoryRepo) ListInventoryItems(f item.InventoryFilter) ([]item.InventoryItem, int64, error) {
	q := r.db.Model(&item.InventoryItem{})
	if f.Perishable != nil {
		q = q.Where("perishable = ?", *f.Perishable)
	}
	if f.Essential != nil {
		q = q.Where("essential = ?", *f.Essential)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UnitOfMeasure != "" {
		q = q.Where("unit_of_measure = ?", f.UnitOfMeasure)
	}
	if f.UnitsPerPackage != "" {
		q = q.Where("units_per_package = ?", f.UnitsPerPackage)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = searchAny(q, s, "name", "description", "reorder_level")
	}
	return findPage[item.InventoryItem](q, (f.Page-1)*f.Limit, f.Limit, "created_at DESC, id DESC")
}

func (r *DBInventoryRepo) InventoryStats() (item.InventoryStats, error) {
	var s item.InventoryStats
	counts := []struct {
		dst   *int64
		where string
		arg   interface{}
	}{
		{&s.Total, "", nil},
		{&s.Perishable, "perishable = ?", true},
		{&s.Essential, "essential = ?", true},
		{&s.Active, "status = ?", item.StatusActive},
		{&s.Inactive, "status = ?", item.StatusInactive},
	}
	for _, c := range counts {
		q := r.db.Model(&item.InventoryItem{})
		if c.where != "" {
			q = q.Where(c.where, c.arg)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return s, err
		}
	}
	return s, nil
}

func (r *DBInventoryRepo) SaveInventoryItem(it *item.InventoryItem) error {
	return r.db.Save(it).Error
}

func (r *DBInventoryRepo) DeleteInventoryItem(id uint) error {
	return deleteByID[item.InventoryItem](r.db, id, "inventory item")
}

func (r *DBInventoryRepo) WithTx(tx *gorm.DB) InventoryRepo {
	if tx == nil {
		return r
	}
	return &DBInventoryRepo{
		db: tx,
	}
}
