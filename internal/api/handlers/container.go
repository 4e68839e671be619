package handlers

import (
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/notify"
	"github.com/linskybing/storeops-go/internal/repository"
)

type Handlers struct {
	Audit            *AuditHandler
	User             *UserHandler
	Form             *FormHandler
	Dashboard        *DashboardHandler
	Alert            *AlertHandler
	WebSocket        *WebSocketHandler
	Category         *CategoryHandler
	Action           *ActionHandler
	ReasonCode       *ReasonCodeHandler
	UnitOfMeasure    *UnitOfMeasureHandler
	Packaging        *PackagingHandler
	Inventory        *InventoryHandler
	Equipment        *EquipmentHandler
	OperationalAlert *OperationalAlertHandler
}

func New(svc *application.Services, repos *repository.Repos, hub *notify.Hub) *Handlers {
	return &Handlers{
		Audit:            NewAuditHandler(svc.Audit),
		User:             NewUserHandler(svc.User, repos.Audit),
		Form:             NewFormHandler(svc.Form),
		Dashboard:        NewDashboardHandler(svc.Form, repos.Audit),
		Alert:            NewAlertHandler(svc.Alert, svc.Form),
		WebSocket:        NewWebSocketHandler(hub),
		Category:         NewCategoryHandler(svc.Category),
		Action:           NewActionHandler(svc.Action),
		ReasonCode:       NewReasonCodeHandler(svc.ReasonCode),
		UnitOfMeasure:    NewUnitOfMeasureHandler(svc.UnitOfMeasure),
		Packaging:        NewPackagingHandler(svc.Packaging),
		Inventory:        NewInventoryHandler(svc.Inventory),
		Equipment:        NewEquipmentHandler(svc.Equipment),
		OperationalAlert: NewOperationalAlertHandler(svc.OperationalAlert),
	}
}
