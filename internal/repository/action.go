package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type ActionRepo interface {
	CreateAction(a *catalog.Action) error
	GetActionByID(id uint) (catalog.Action, error)
	FindActionByDescriptionType(description, typ string) (catalog.Action, error)
	ListActions(q catalog.PageQuery) ([]catalog.Action, int64, error)
	ListActionsByType(typ string, limit int) ([]catalog.Action, error)
	CountActionsByType() (map[string]int64, error)
	SaveAction(a *catalog.Action) error
	DeleteAction(id uint) error
	WithTx(tx *gorm.DB) ActionRepo
}

type DBActionRepo struct {
	db *gorm.DB
}

func NewActionRepo(db *gorm.DB) *DBActionRepo {
	return &DBActionRepo{
		db: db,
	}
}

func (r *DBActionRepo) CreateAction(a *catalog.Action) error {
	return duplicate(r.db.Create(a).Error, "action")
}

func (r *DBActionRepo) GetActionByID(id uint) (catalog.Action, error) {
	var a catalog.Action
	if err := r.db.First(&a, id).Error; err != nil {
		return a, notFound(err, "action")
	}
	return a, nil
}

func (r *DBActionRepo) FindActionByDescriptionType(description, typ string) (catalog.Action, error) {
	var a catalog.Action
	if err := r.db.Where("description = ? AND type = ?", description, typ).First(&a).Error; err != nil {
		return a, notFound(err, "action")
	}
	return a, nil
}

func (r *DBActionRepo) ListActions(q catalog.PageQuery) ([]catalog.Action, int64, error) {
	query := r.db.Model(&catalog.Action{})
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}
	return findPage[catalog.Action](query, q.Offset(), q.Limit, "created_at DESC, id DESC")
}

// ListActionsByType returns actions sorted by description. A zero limit
// means no limit.
func (r *DBActionRepo) ListActionsByType(typ string, limit int) ([]catalog.Action, error) {
	var actions []catalog.Action
	q := r.db.Order("description ASC")
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&actions).Error
	return actions, err
}

func (r *DBActionRepo) CountActionsByType() (map[string]int64, error) {
	return countBy(r.db.Model(&catalog.Action{}), "type")
}

func (r *DBActionRepo) SaveAction(a *catalog.Action) error {
	return duplicate(r.db.Save(a).Error, "action")
}

func (r *DBActionRepo) DeleteAction(id uint) error {
	return deleteByID[catalog.Action](r.db, id, "action")
}

func (r *DBActionRepo) WithTx(tx *gorm.DB) ActionRepo {
	if tx == nil {
		return r
	}
	return &DBActionRepo{
		db: tx,
	}
}
