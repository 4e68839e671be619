package repository

//go:generate go run github.com/golang/mock/mockgen -source=user.go -destination=mock/user.go -package=mock
//go:generate go run github.com/golang/mock/mockgen -source=form.go -destination=mock/form.go -package=mock
//go:generate go run github.com/golang/mock/mockgen -source=alert.go -destination=mock/alert.go -package=mock

import (
	"gorm.io/gorm"
)

type Repos struct {
	User             UserRepo
	Form             FormRepo
	Alert            AlertRepo
	Audit            AuditRepo
	Category         CategoryRepo
	Action           ActionRepo
	ReasonCode       ReasonCodeRepo
	UnitOfMeasure    UnitOfMeasureRepo
	Packaging        PackagingRepo
	Inventory        InventoryRepo
	Equipment        EquipmentRepo
	OperationalAlert OperationalAlertRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:             NewUserRepo(db),
		Form:             NewFormRepo(db),
		Alert:            NewAlertRepo(db),
		Audit:            NewAuditRepo(db),
		Category:         NewCategoryRepo(db),
		Action:           NewActionRepo(db),
		ReasonCode:       NewReasonCodeRepo(db),
		UnitOfMeasure:    NewUnitOfMeasureRepo(db),
		Packaging:        NewPackagingRepo(db),
		Inventory:        NewInventoryRepo(db),
		Equipment:        NewEquipmentRepo(db),
		OperationalAlert: NewOperationalAlertRepo(db),
		db:               db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:             r.User.WithTx(tx),
		Form:             r.Form.WithTx(tx),
		Alert:            r.Alert.WithTx(tx),
		Audit:            r.Audit.WithTx(tx),
		Category:         r.Category.WithTx(tx),
		Action:           r.Action.WithTx(tx),
		ReasonCode:       r.ReasonCode.WithTx(tx),
		UnitOfMeasure:    r.UnitOfMeasure.WithTx(tx),
		Packaging:        r.Packaging.WithTx(tx),
		Inventory:        r.Inventory.WithTx(tx),
		Equipment:        r.Equipment.WithTx(tx),
		OperationalAlert: r.OperationalAlert.WithTx(tx),
		db:               tx,
	}
}

// ExecTx runs fn inside a transaction. Without a database handle (as in
// mock-backed tests) fn runs directly against the current repos.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
