package application

import (
	"github.com/juju/clock"
	"github.com/linskybing/storeops-go/internal/notify"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/internal/storage"
)

// Deps carries the outbound channels and clock shared by the services.
// Nil channels are skipped.
type Deps struct {
	Emitter    Emitter
	Mailer     notify.Mailer
	SMS        notify.SMSSender
	Signatures storage.SignatureStore
	Clock      clock.Clock
	SenderName string
	BcryptCost int
}

func (d Deps) clock() clock.Clock {
	if d.Clock == nil {
		return clock.WallClock
	}
	return d.Clock
}

type Services struct {
	Alert            *AlertService
	Form             *FormService
	User             *UserService
	Audit            *AuditService
	Category         *CategoryService
	Action           *ActionService
	ReasonCode       *ReasonCodeService
	UnitOfMeasure    *UnitOfMeasureService
	Packaging        *PackagingService
	Inventory        *InventoryService
	Equipment        *EquipmentService
	OperationalAlert *OperationalAlertService
}

func New(repos *repository.Repos, deps Deps) *Services {
	alerts := NewAlertService(repos, deps)
	return &Services{
		Alert:            alerts,
		Form:             NewFormService(repos, alerts, deps),
		User:             NewUserService(repos, alerts, deps),
		Audit:            NewAuditService(repos, deps),
		Category:         NewCategoryService(repos),
		Action:           NewActionService(repos),
		ReasonCode:       NewReasonCodeService(repos),
		UnitOfMeasure:    NewUnitOfMeasureService(repos),
		Packaging:        NewPackagingService(repos),
		Inventory:        NewInventoryService(repos, deps),
		Equipment:        NewEquipmentService(repos),
		OperationalAlert: NewOperationalAlertService(repos),
	}
}
