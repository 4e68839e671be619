package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/application"
)

type CategoryHandler struct {
	svc *application.CategoryService
}

func NewCategoryHandler(svc *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body catalog.CategoryInput true "Category"
// @Success 201 {object} catalog.Category
// @Failure 409 {object} response.ErrorResponse "Name already used for this type"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) { createJSON(c, h.svc.Create) }

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param type query string false "Item list type"
// @Success 200 {object} response.Page[catalog.Category]
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) { listQuery(c, h.svc.List) }

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} catalog.Category
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) { getByID(c, h.svc.Get) }

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param input body catalog.UpdateCategoryInput true "Fields to change"
// @Success 200 {object} catalog.Category
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) { updateJSON(c, h.svc.Update) }

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response.MessageResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Category deleted successfully")
}

// GetCategoryOptions godoc
// @Summary Category names with subcategories for a type
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param type query string true "Item list type"
// @Success 200 {array} catalog.CategoryOption
// @Router /categories/options [get]
func (h *CategoryHandler) GetCategoryOptions(c *gin.Context) {
	out, err := h.svc.Options(c.Query("type"))
	reply(c, out, err)
}

// GetPublicCategories godoc
// @Summary Categories for form pickers
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "Item list type"
// @Success 200 {array} catalog.Category
// @Router /categories/public [get]
func (h *CategoryHandler) GetPublicCategories(c *gin.Context) {
	out, err := h.svc.Public(c.Query("type"))
	reply(c, out, err)
}

// GetCategoriesByType godoc
// @Summary Categories of one type
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param type path string true "Item list type"
// @Success 200 {array} catalog.Category
// @Router /categories/by-type/{type} [get]
func (h *CategoryHandler) GetCategoriesByType(c *gin.Context) {
	out, err := h.svc.ByType(c.Param("type"))
	reply(c, out, err)
}

// GetCategoryStats godoc
// @Summary Category counts by type
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} catalog.TypeStats
// @Router /categories/stats [get]
func (h *CategoryHandler) GetCategoryStats(c *gin.Context) {
	out, err := h.svc.Stats()
	reply(c, out, err)
}

// GetTypeOptions godoc
// @Summary Item list types
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string
// @Router /categories/options/type [get]
func GetTypeOptions(c *gin.Context) {
	reply(c, application.TypeOptions(), nil)
}

type ActionHandler struct {
	svc *application.ActionService
}

func NewActionHandler(svc *application.ActionService) *ActionHandler {
	return &ActionHandler{svc: svc}
}

// CreateAction godoc
// @Summary Create an action
// @Tags actions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body catalog.ActionInput true "Action"
// @Success 201 {object} catalog.Action
// @Failure 409 {object} response.ErrorResponse "Description already used for this type"
// @Router /actions [post]
func (h *ActionHandler) CreateAction(c *gin.Context) { createJSON(c, h.svc.Create) }

// ListActions godoc
// @Summary List actions
// @Tags actions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param type query string false "Item list type"
// @Success 200 {object} response.Page[catalog.Action]
// @Router /actions [get]
func (h *ActionHandler) ListActions(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /actions/{id} [get]
func (h *ActionHandler) GetAction(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /actions/{id} [put]
func (h *ActionHandler) UpdateAction(c *gin.Context) { updateJSON(c, h.svc.Update) }

// @Router /actions/{id} [delete]
func (h *ActionHandler) DeleteAction(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Action deleted successfully")
}

// GetPublicActions godoc
// @Summary Actions sorted by description
// @Tags actions
// @Security BearerAuth
// @Produce json
// @Param type query string false "Item list type"
// @Success 200 {array} catalog.Action
// @Router /actions/public [get]
func (h *ActionHandler) GetPublicActions(c *gin.Context) {
	out, err := h.svc.Public(c.Query("type"))
	reply(c, out, err)
}

// @Router /actions/by-type/{type} [get]
func (h *ActionHandler) GetActionsByType(c *gin.Context) {
	out, err := h.svc.ByType(c.Param("type"))
	reply(c, out, err)
}

// @Router /actions/stats [get]
func (h *ActionHandler) GetActionStats(c *gin.Context) {
	out, err := h.svc.Stats()
	reply(c, out, err)
}

type ReasonCodeHandler struct {
	svc *application.ReasonCodeService
}

func NewReasonCodeHandler(svc *application.ReasonCodeService) *ReasonCodeHandler {
	return &ReasonCodeHandler{svc: svc}
}

// CreateReasonCode godoc
// @Summary Create a reason code
// @Tags reason-codes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body catalog.ReasonCodeInput true "Reason code"
// @Success 201 {object} catalog.ReasonCode
// @Router /reason-codes [post]
func (h *ReasonCodeHandler) CreateReasonCode(c *gin.Context) { createJSON(c, h.svc.Create) }

// @Router /reason-codes [get]
func (h *ReasonCodeHandler) ListReasonCodes(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /reason-codes/{id} [get]
func (h *ReasonCodeHandler) GetReasonCode(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /reason-codes/{id} [put]
func (h *ReasonCodeHandler) UpdateReasonCode(c *gin.Context) { updateJSON(c, h.svc.Update) }

// @Router /reason-codes/{id} [delete]
func (h *ReasonCodeHandler) DeleteReasonCode(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Reason code deleted successfully")
}

// @Router /reason-codes/public [get]
func (h *ReasonCodeHandler) GetPublicReasonCodes(c *gin.Context) {
	out, err := h.svc.Public()
	reply(c, out, err)
}

type UnitOfMeasureHandler struct {
	svc *application.UnitOfMeasureService
}

func NewUnitOfMeasureHandler(svc *application.UnitOfMeasureService) *UnitOfMeasureHandler {
	return &UnitOfMeasureHandler{svc: svc}
}

// CreateUnit godoc
// @Summary Create a unit of measure
// @Tags units-of-measure
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body catalog.UnitOfMeasureInput true "Unit"
// @Success 201 {object} catalog.UnitOfMeasure
// @Failure 409 {object} response.ErrorResponse "Full or short name taken"
// @Router /units-of-measure [post]
func (h *UnitOfMeasureHandler) CreateUnit(c *gin.Context) { createJSON(c, h.svc.Create) }

// @Router /units-of-measure [get]
func (h *UnitOfMeasureHandler) ListUnits(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /units-of-measure/{id} [get]
func (h *UnitOfMeasureHandler) GetUnit(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /units-of-measure/{id} [put]
func (h *UnitOfMeasureHandler) UpdateUnit(c *gin.Context) { updateJSON(c, h.svc.Update) }

// @Router /units-of-measure/{id} [delete]
func (h *UnitOfMeasureHandler) DeleteUnit(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Unit of measure deleted successfully")
}

// GetUnitOptions godoc
// @Summary Units as select options labelled "Full (short)"
// @Tags units-of-measure
// @Security BearerAuth
// @Produce json
// @Success 200 {array} catalog.Option
// @Router /units-of-measure/options [get]
func (h *UnitOfMeasureHandler) GetUnitOptions(c *gin.Context) {
	out, err := h.svc.Options()
	reply(c, out, err)
}

// @Router /units-of-measure/public [get]
func (h *UnitOfMeasureHandler) GetPublicUnits(c *gin.Context) {
	out, err := h.svc.Public()
	reply(c, out, err)
}

type PackagingHandler struct {
	svc *application.PackagingService
}

func NewPackagingHandler(svc *application.PackagingService) *PackagingHandler {
	return &PackagingHandler{svc: svc}
}

// CreatePackaging godoc
// @Summary Create a packaging type
// @Tags packaging
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body catalog.PackagingInput true "Packaging"
// @Success 201 {object} catalog.Packaging
// @Router /packaging [post]
func (h *PackagingHandler) CreatePackaging(c *gin.Context) { createJSON(c, h.svc.Create) }

// @Router /packaging [get]
func (h *PackagingHandler) ListPackaging(c *gin.Context) { listQuery(c, h.svc.List) }

// @Router /packaging/{id} [get]
func (h *PackagingHandler) GetPackaging(c *gin.Context) { getByID(c, h.svc.Get) }

// @Router /packaging/{id} [put]
func (h *PackagingHandler) UpdatePackaging(c *gin.Context) { updateJSON(c, h.svc.Update) }

// @Router /packaging/{id} [delete]
func (h *PackagingHandler) DeletePackaging(c *gin.Context) {
	deleteByID(c, h.svc.Delete, "Packaging deleted successfully")
}

// @Router /packaging/options [get]
func (h *PackagingHandler) GetPackagingOptions(c *gin.Context) {
	out, err := h.svc.Options()
	reply(c, out, err)
}

// @Router /packaging/public [get]
func (h *PackagingHandler) GetPublicPackaging(c *gin.Context) {
	out, err := h.svc.Public()
	reply(c, out, err)
}
