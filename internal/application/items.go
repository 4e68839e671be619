package application

import (
	"fmt"
	"strings"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/domain/item"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/pkg/response"
)

func oneOf(field, value string, valid []string) error {
	return errors.NewBadRequest(nil, fmt.Sprintf("invalid %s %q, must be one of: %s", field, value, strings.Join(valid, ", ")))
}

type InventoryService struct {
	Repos *repository.Repos
	clock clock.Clock
}

func NewInventoryService(repos *repository.Repos, deps Deps) *InventoryService {
	return &InventoryService{Repos: repos, clock: deps.clock()}
}

func validateInventory(it *item.InventoryItem) error {
	if !item.IsUnitOfMeasure(it.UnitOfMeasure) {
		return oneOf("unit_of_measure", it.UnitOfMeasure, item.UnitsOfMeasure)
	}
	if !item.IsUnitsPerPackage(it.UnitsPerPackage) {
		return oneOf("units_per_package", it.UnitsPerPackage, item.UnitsPerPackage)
	}
	if it.Status != item.StatusActive && it.Status != item.StatusInactive {
		return oneOf("status", it.Status, []string{item.StatusActive, item.StatusInactive})
	}
	return nil
}

func (s *InventoryService) Create(in item.InventoryInput) (item.InventoryItem, error) {
	it := item.InventoryItem{
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		UnitOfMeasure:   in.UnitOfMeasure,
		UnitsPerPackage: in.UnitsPerPackage,
		ReorderLevel:    strings.TrimSpace(in.ReorderLevel),
		Perishable:      in.Perishable,
		Essential:       in.Essential,
		Status:          in.Status,
		LastUpdated:     s.clock.Now(),
	}
	if it.Status == "" {
		it.Status = item.StatusActive
	}
	if err := validateInventory(&it); err != nil {
		return item.InventoryItem{}, err
	}
	if err := s.Repos.Inventory.CreateInventoryItem(&it); err != nil {
		return item.InventoryItem{}, errors.Annotate(err, "creating inventory item")
	}
	return it, nil
}

func (s *InventoryService) Get(id uint) (item.InventoryItem, error) {
	return s.Repos.Inventory.GetInventoryItemByID(id)
}

func (s *InventoryService) List(f item.InventoryFilter) (response.ItemList[item.InventoryItem], error) {
	f.Page, f.Limit = item.Window(f.Page, f.Limit)
	rows, total, err := s.Repos.Inventory.ListInventoryItems(f)
	if err != nil {
		return response.ItemList[item.InventoryItem]{}, err
	}
	if rows == nil {
		rows = []item.InventoryItem{}
	}
	return response.ItemList[item.InventoryItem]{
		Items:      rows,
		Pagination: response.NewPagination(total, f.Page, f.Limit),
	}, nil
}

func (s *InventoryService) Update(id uint, in item.UpdateInventoryInput) (item.InventoryItem, error) {
	it, err := s.Repos.Inventory.GetInventoryItemByID(id)
	if err != nil {
		return item.InventoryItem{}, err
	}
	if in.Name != nil {
		it.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		it.Description = strings.TrimSpace(*in.Description)
	}
	if in.UnitOfMeasure != nil {
		it.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.UnitsPerPackage != nil {
		it.UnitsPerPackage = *in.UnitsPerPackage
	}
	if in.ReorderLevel != nil {
		it.ReorderLevel = strings.TrimSpace(*in.ReorderLevel)
	}
	if in.Perishable != nil {
		it.Perishable = *in.Perishable
	}
	if in.Essential != nil {
		it.Essential = *in.Essential
	}
	if in.Status != nil {
		it.Status = *in.Status
	}
	if err := validateInventory(&it); err != nil {
		return item.InventoryItem{}, err
	}
	it.LastUpdated = s.clock.Now()
	if err := s.Repos.Inventory.SaveInventoryItem(&it); err != nil {
		return item.InventoryItem{}, err
	}
	return it, nil
}

func (s *InventoryService) Delete(id uint) error {
	return s.Repos.Inventory.DeleteInventoryItem(id)
}

func (s *InventoryService) Stats() (item.InventoryStats, error) {
	return s.Repos.Inventory.InventoryStats()
}

func (s *InventoryService) Essential(page, limit int) (response.ItemList[item.InventoryItem], error) {
	yes := true
	return s.List(item.InventoryFilter{Page: page, Limit: limit, Essential: &yes})
}

func (s *InventoryService) Perishable(page, limit int) (response.ItemList[item.InventoryItem], error) {
	yes := true
	return s.List(item.InventoryFilter{Page: page, Limit: limit, Perishable: &yes})
}

func (s *InventoryService) ByStatus(status string, page, limit int) (response.ItemList[item.InventoryItem], error) {
	if status != item.StatusActive && status != item.StatusInactive {
		return response.ItemList[item.InventoryItem]{}, oneOf("status", status, []string{item.StatusActive, item.StatusInactive})
	}
	return s.List(item.InventoryFilter{Page: page, Limit: limit, Status: status})
}

func (s *InventoryService) UnitOptions() item.UnitOptions {
	return item.UnitOptions{
		UnitsOfMeasure:  append([]string(nil), item.UnitsOfMeasure...),
		UnitsPerPackage: append([]string(nil), item.UnitsPerPackage...),
	}
}

type EquipmentService struct {
	Repos *repository.Repos
}

func NewEquipmentService(repos *repository.Repos) *EquipmentService {
	return &EquipmentService{Repos: repos}
}

func validateEquipment(it *item.EquipmentItem) error {
	if !item.IsEquipmentCategory(it.Category) {
		return oneOf("category", it.Category, item.EquipmentCategories)
	}
	if !item.IsEquipmentSubcategory(it.Subcategory) {
		return oneOf("subcategory", it.Subcategory, item.EquipmentSubcategories)
	}
	return nil
}

func (s *EquipmentService) Create(in item.EquipmentInput) (item.EquipmentItem, error) {
	it := item.EquipmentItem{
		ItemName:         strings.TrimSpace(in.ItemName),
		Description:      strings.TrimSpace(in.Description),
		Category:         in.Category,
		Subcategory:      in.Subcategory,
		Location:         strings.TrimSpace(in.Location),
		MaintenanceNotes: in.MaintenanceNotes,
	}
	if err := validateEquipment(&it); err != nil {
		return item.EquipmentItem{}, err
	}
	if err := s.Repos.Equipment.CreateEquipmentItem(&it); err != nil {
		return item.EquipmentItem{}, errors.Annotate(err, "creating equipment item")
	}
	return it, nil
}

func (s *EquipmentService) Get(id uint) (item.EquipmentItem, error) {
	return s.Repos.Equipment.GetEquipmentItemByID(id)
}

func (s *EquipmentService) List(f item.EquipmentFilter) (response.ItemList[item.EquipmentItem], error) {
	f.Page, f.Limit = item.Window(f.Page, f.Limit)
	rows, total, err := s.Repos.Equipment.ListEquipmentItems(f)
	if err != nil {
		return response.ItemList[item.EquipmentItem]{}, err
	}
	if rows == nil {
		rows = []item.EquipmentItem{}
	}
	return response.ItemList[item.EquipmentItem]{
		Items:      rows,
		Pagination: response.NewPagination(total, f.Page, f.Limit),
	}, nil
}

func (s *EquipmentService) Update(id uint, in item.UpdateEquipmentInput) (item.EquipmentItem, error) {
	it, err := s.Repos.Equipment.GetEquipmentItemByID(id)
	if err != nil {
		return item.EquipmentItem{}, err
	}
	if in.ItemName != nil {
		it.ItemName = strings.TrimSpace(*in.ItemName)
	}
	if in.Description != nil {
		it.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		it.Category = *in.Category
	}
	if in.Subcategory != nil {
		it.Subcategory = *in.Subcategory
	}
	if in.Location != nil {
		it.Location = strings.TrimSpace(*in.Location)
	}
	if in.MaintenanceNotes != nil {
		it.MaintenanceNotes = *in.MaintenanceNotes
	}
	if err := validateEquipment(&it); err != nil {
		return item.EquipmentItem{}, err
	}
	if err := s.Repos.Equipment.SaveEquipmentItem(&it); err != nil {
		return item.EquipmentItem{}, err
	}
	return it, nil
}

func (s *EquipmentService) Delete(id uint) error {
	return s.Repos.Equipment.DeleteEquipmentItem(id)
}

func (s *EquipmentService) Stats() (item.EquipmentStats, error) {
	byCategory, err := s.Repos.Equipment.CountEquipmentByCategory()
	if err != nil {
		return item.EquipmentStats{}, err
	}
	stats := item.EquipmentStats{ByCategory: byCategory}
	for _, n := range byCategory {
		stats.Total += n
	}
	return stats, nil
}

func (s *EquipmentService) ByCategory(category string, page, limit int) (response.ItemList[item.EquipmentItem], error) {
	if !item.IsEquipmentCategory(category) {
		return response.ItemList[item.EquipmentItem]{}, oneOf("category", category, item.EquipmentCategories)
	}
	return s.List(item.EquipmentFilter{Page: page, Limit: limit, Category: category})
}

func (s *EquipmentService) Public() ([]item.EquipmentItem, error) {
	return s.Repos.Equipment.ListAllEquipmentItems()
}

func (s *EquipmentService) CategoryOptions() []string {
	return append([]string(nil), item.EquipmentCategories...)
}

func (s *EquipmentService) SubcategoryOptions() []string {
	return append([]string(nil), item.EquipmentSubcategories...)
}

type OperationalAlertService struct {
	Repos *repository.Repos
}

func NewOperationalAlertService(repos *repository.Repos) *OperationalAlertService {
	return &OperationalAlertService{Repos: repos}
}

func normalizeAlertType(t string) (string, error) {
	if t == "" {
		return catalog.TypeOperationalAlerts, nil
	}
	if err := validateItemListType(t); err != nil {
		return "", err
	}
	return t, nil
}

func (s *OperationalAlertService) Create(in item.OperationalAlertInput) (item.OperationalAlert, error) {
	typ, err := normalizeAlertType(in.Type)
	if err != nil {
		return item.OperationalAlert{}, err
	}
	a := item.OperationalAlert{
		ItemName:     strings.TrimSpace(in.ItemName),
		Description:  strings.TrimSpace(in.Description),
		Category:     strings.TrimSpace(in.Category),
		Subcategory:  strings.TrimSpace(in.Subcategory),
		ActionNeeded: strings.TrimSpace(in.ActionNeeded),
		Type:         typ,
	}
	if err := s.Repos.OperationalAlert.CreateOperationalAlert(&a); err != nil {
		return item.OperationalAlert{}, errors.Annotate(err, "creating operational alert")
	}
	return a, nil
}

func (s *OperationalAlertService) Get(id uint) (item.OperationalAlert, error) {
	return s.Repos.OperationalAlert.GetOperationalAlertByID(id)
}

func (s *OperationalAlertService) List(f item.OperationalAlertFilter) (response.ItemList[item.OperationalAlert], error) {
	f.Page, f.Limit = item.Window(f.Page, f.Limit)
	rows, total, err := s.Repos.OperationalAlert.ListOperationalAlerts(f)
	if err != nil {
		return response.ItemList[item.OperationalAlert]{}, err
	}
	if rows == nil {
		rows = []item.OperationalAlert{}
	}
	return response.ItemList[item.OperationalAlert]{
		Items:      rows,
		Pagination: response.NewPagination(total, f.Page, f.Limit),
	}, nil
}

func (s *OperationalAlertService) Update(id uint, in item.UpdateOperationalAlertInput) (item.OperationalAlert, error) {
	a, err := s.Repos.OperationalAlert.GetOperationalAlertByID(id)
	if err != nil {
		return item.OperationalAlert{}, err
	}
	if in.ItemName != nil {
		a.ItemName = strings.TrimSpace(*in.ItemName)
	}
	if in.Description != nil {
		a.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		a.Category = strings.TrimSpace(*in.Category)
	}
	if in.Subcategory != nil {
		a.Subcategory = strings.TrimSpace(*in.Subcategory)
	}
	if in.ActionNeeded != nil {
		a.ActionNeeded = strings.TrimSpace(*in.ActionNeeded)
	}
	if in.Type != nil {
		typ, err := normalizeAlertType(*in.Type)
		if err != nil {
			return item.OperationalAlert{}, err
		}
		a.Type = typ
	}
	if err := s.Repos.OperationalAlert.SaveOperationalAlert(&a); err != nil {
		return item.OperationalAlert{}, err
	}
	return a, nil
}

func (s *OperationalAlertService) Delete(id uint) error {
	return s.Repos.OperationalAlert.DeleteOperationalAlert(id)
}

func (s *OperationalAlertService) Stats(typ string) (item.OperationalAlertStats, error) {
	byCategory, err := s.Repos.OperationalAlert.CountOperationalAlertsBy("category", typ)
	if err != nil {
		return item.OperationalAlertStats{}, err
	}
	byAction, err := s.Repos.OperationalAlert.CountOperationalAlertsBy("action_needed", typ)
	if err != nil {
		return item.OperationalAlertStats{}, err
	}
	stats := item.OperationalAlertStats{ByCategory: byCategory, ByAction: byAction}
	for _, n := range byCategory {
		stats.Total += n
	}
	return stats, nil
}

// ListBy lists alerts whose field (category, subcategory or
// action_needed) equals value.
func (s *OperationalAlertService) ListBy(field, value string, page, limit int) (response.ItemList[item.OperationalAlert], error) {
	f := item.OperationalAlertFilter{Page: page, Limit: limit}
	switch field {
	case "category":
		f.Category = value
	case "subcategory":
		f.Subcategory = value
	case "action_needed":
		f.ActionNeeded = value
	default:
		return response.ItemList[item.OperationalAlert]{}, errors.NotSupportedf("listing by %q", field)
	}
	return s.List(f)
}

func (s *OperationalAlertService) Options(typ string) (item.OperationalAlertOptions, error) {
	var opts item.OperationalAlertOptions
	targets := []struct {
		column string
		dst    *[]string
	}{
		{"category", &opts.Categories},
		{"subcategory", &opts.Subcategories},
		{"action_needed", &opts.ActionsNeeded},
	}
	for _, t := range targets {
		values, err := s.Repos.OperationalAlert.DistinctOperationalAlertValues(t.column, typ)
		if err != nil {
			return item.OperationalAlertOptions{}, err
		}
		if values == nil {
			values = []string{}
		}
		*t.dst = values
	}
	return opts, nil
}
