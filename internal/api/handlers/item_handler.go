package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/domain/item"
)

type InventoryHandler struct {
	svc *application.InventoryService
}

func NewInventoryHandler(svc *application.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// CreateInventoryItem godoc
// @Summary Create an inventory item
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body item.InventoryInput true "Inventory item"
// @Success 201 {object} item.InventoryItem
// @Failure 400 {object} response.ErrorResponse "Unknown unit or package size"
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) { createJSON(c, h.svc.Create) }

// ListInventory godoc
// @Summary List inventory items
// @Description Search matches name, description and reorder level, ignoring case.
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search text"
// @Param perishable query bool false "Perishable only"
// @Param essential query bool false "Essential only"
// @Param status query string false "active or inactive"
// @Param unit_of_measure query string false "Unit of measure"
// @Param units_per_package query string false "Units per package"
// @Success 200 {object} response.ItemList[item.InventoryItem]
// @Router /inventory [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetInventoryItem(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) { updateJSON(c, h.svc.Update) }

// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Inventory item deleted successfully")
}

// @Router /inventory/stats [get]
func (h *InventoryHandler) GetInventoryStats(c *gin.Context) {
	out, err := h.svc.Stats()
	reply(c, out, err)
}

// @Router /inventory/essential [get]
func (h *InventoryHandler) GetEssentialItems(c *gin.Context) {
	page, limit := pageParams(c)
	out, err := h.svc.Essential(page, limit)
	reply(c, out, err)
}

// @Router /inventory/perishable [get]
func (h *InventoryHandler) GetPerishableItems(c *gin.Context) {
	page, limit := pageParams(c)
	out, err := h.svc.Perishable(page, limit)
	reply(c, out, err)
}

// @Router /inventory/status/{status} [get]
func (h *InventoryHandler) GetItemsByStatus(c *gin.Context) {
	page, limit := pageParams(c)
	out, err := h.svc.ByStatus(c.Param("status"), page, limit)
	reply(c, out, err)
}

// GetInventoryUnitOptions godoc
// @Summary Allowed units of measure and package sizes
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} item.UnitOptions
// @Router /inventory/options/units [get]
func (h *InventoryHandler) GetInventoryUnitOptions(c *gin.Context) {
	reply(c, h.svc.UnitOptions(), nil)
}

type EquipmentHandler struct {
	svc *application.EquipmentService
}

func NewEquipmentHandler(svc *application.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

// CreateEquipmentItem godoc
// @Summary Create an equipment item
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body item.EquipmentInput true "Equipment item"
// @Success 201 {object} item.EquipmentItem
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipmentItem(c *gin.Context) { createJSON(c, h.svc.Create) }

// ListEquipment godoc
// @Summary List equipment items
// @Tags equipment
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search text"
// @Param category query string false "Category"
// @Param subcategory query string false "Subcategory"
// @Success 200 {object} response.ItemList[item.EquipmentItem]
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipmentItem(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipmentItem(c *gin.Context) { updateJSON(c, h.svc.Update) }

// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipmentItem(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Equipment item deleted successfully")
}

// @Router /equipment/stats [get]
func (h *EquipmentHandler) GetEquipmentStats(c *gin.Context) {
	out, err := h.svc.Stats()
	reply(c, out, err)
}

// @Router /equipment/category/{category} [get]
func (h *EquipmentHandler) GetEquipmentByCategory(c *gin.Context) {
	page, limit := pageParams(c)
	out, err := h.svc.ByCategory(c.Param("category"), page, limit)
	reply(c, out, err)
}

// @Router /equipment/public [get]
func (h *EquipmentHandler) GetPublicEquipment(c *gin.Context) {
	out, err := h.svc.Public()
	reply(c, out, err)
}

// @Router /equipment/options/category [get]
func (h *EquipmentHandler) GetEquipmentCategoryOptions(c *gin.Context) {
	reply(c, h.svc.CategoryOptions(), nil)
}

// @Router /equipment/options/subcategory [get]
func (h *EquipmentHandler) GetEquipmentSubcategoryOptions(c *gin.Context) {
	reply(c, h.svc.SubcategoryOptions(), nil)
}

type OperationalAlertHandler struct {
	svc *application.OperationalAlertService
}

func NewOperationalAlertHandler(svc *application.OperationalAlertService) *OperationalAlertHandler {
	return &OperationalAlertHandler{svc: svc}
}

// CreateOperationalAlert godoc
// @Summary Create an operational alert item
// @Tags operational-alerts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body item.OperationalAlertInput true "Alert item"
// @Success 201 {object} item.OperationalAlert
// @Router /operational-alerts [post]
func (h *OperationalAlertHandler) CreateOperationalAlert(c *gin.Context) {
	createJSON(c, h.svc.Create)
}

// ListOperationalAlerts godoc
// @Summary List operational alert items
// @Tags operational-alerts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search text"
// @Param category query string false "Category"
// @Param subcategory query string false "Subcategory"
// @Param action_needed query string false "Action needed"
// @Param type query string false "Item list type"
// @Success 200 {object} response.ItemList[item.OperationalAlert]
// @Router /operational-alerts [get]
func (h *OperationalAlertHandler) ListOperationalAlerts(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /operational-alerts/{id} [get]
func (h *OperationalAlertHandler) GetOperationalAlert(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /operational-alerts/{id} [put]
func (h *OperationalAlertHandler) UpdateOperationalAlert(c *gin.Context) {
	updateJSON(c, h.svc.Update)
}

// @Router /operational-alerts/{id} [delete]
func (h *OperationalAlertHandler) DeleteOperationalAlert(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Operational alert deleted successfully")
}

// @Router /operational-alerts/stats [get]
func (h *OperationalAlertHandler) GetOperationalAlertStats(c *gin.Context) {
	out, err := h.svc.Stats(c.Query("type"))
	reply(c, out, err)
}

// ListByField returns a handler listing items whose field equals the
// :value path parameter.
func (h *OperationalAlertHandler) ListByField(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		out, err := h.svc.ListBy(field, c.Param("value"), page, limit)
		reply(c, out, err)
	}
}

// GetOperationalAlertOptions godoc
// @Summary Distinct categories, subcategories and actions needed
// @Tags operational-alerts
// @Security BearerAuth
// @Produce json
// @Param type query string false "Item list type"
// @Success 200 {object} item.OperationalAlertOptions
// @Router /operational-alerts/options [get]
func (h *OperationalAlertHandler) GetOperationalAlertOptions(c *gin.Context) {
	out, err := h.svc.Options(c.Query("type"))
	reply(c, out, err)
}

// OptionsFor serves one list out of the option set.
func (h *OperationalAlertHandler) OptionsFor(pick func(item.OperationalAlertOptions) []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := h.svc.Options(c.Query("type"))
		if err != nil {
			respondError(c, err)
			return
		}
		reply(c, pick(out), nil)
	}
}
