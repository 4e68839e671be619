package item

type InventoryInput struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Description     string `json:"description" binding:"max=500"`
	UnitOfMeasure   string `json:"unit_of_measure" binding:"required"`
	UnitsPerPackage string `json:"units_per_package" binding:"required"`
	ReorderLevel    string `json:"reorder_level" binding:"max=50"`
	Perishable      bool   `json:"perishable"`
	Essential       bool   `json:"essential"`
	Status          string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateInventoryInput struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description     *string `json:"description" binding:"omitempty,max=500"`
	UnitOfMeasure   *string `json:"unit_of_measure"`
	UnitsPerPackage *string `json:"units_per_package"`
	ReorderLevel    *string `json:"reorder_level" binding:"omitempty,max=50"`
	Perishable      *bool   `json:"perishable"`
	Essential       *bool   `json:"essential"`
	Status          *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type InventoryFilter struct {
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
	Search          string `form:"search"`
	Perishable      *bool  `form:"perishable"`
	Essential       *bool  `form:"essential"`
	Status          string `form:"status"`
	UnitOfMeasure   string `form:"unit_of_measure"`
	UnitsPerPackage string `form:"units_per_package"`
}

type InventoryStats struct {
	Total      int64 `json:"total"`
	Perishable int64 `json:"perishable"`
	Essential  int64 `json:"essential"`
	Active     int64 `json:"active"`
	Inactive   int64 `json:"inactive"`
}

type EquipmentInput struct {
	ItemName         string `json:"item_name" binding:"required,min=1,max=100"`
	Description      string `json:"description" binding:"max=500"`
	Category         string `json:"category" binding:"required"`
	Subcategory      string `json:"subcategory" binding:"required"`
	Location         string `json:"location" binding:"max=100"`
	MaintenanceNotes string `json:"maintenance_notes"`
}

type UpdateEquipmentInput struct {
	ItemName         *string `json:"item_name" binding:"omitempty,min=1,max=100"`
	Description      *string `json:"description" binding:"omitempty,max=500"`
	Category         *string `json:"category"`
	Subcategory      *string `json:"subcategory"`
	Location         *string `json:"location" binding:"omitempty,max=100"`
	MaintenanceNotes *string `json:"maintenance_notes"`
}

type EquipmentFilter struct {
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
	Search      string `form:"search"`
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
}

type EquipmentStats struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
}

type OperationalAlertInput struct {
	ItemName     string `json:"item_name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=500"`
	Category     string `json:"category" binding:"required,max=100"`
	Subcategory  string `json:"subcategory" binding:"max=100"`
	ActionNeeded string `json:"action_needed" binding:"max=200"`
	Type         string `json:"type"`
}

type UpdateOperationalAlertInput struct {
	ItemName     *string `json:"item_name" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	Subcategory  *string `json:"subcategory" binding:"omitempty,max=100"`
	ActionNeeded *string `json:"action_needed" binding:"omitempty,max=200"`
	Type         *string `json:"type"`
}

type OperationalAlertFilter struct {
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	Search       string `form:"search"`
	Category     string `form:"category"`
	Subcategory  string `form:"subcategory"`
	ActionNeeded string `form:"action_needed"`
	Type         string `form:"type"`
}

type OperationalAlertStats struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
	ByAction   map[string]int64 `json:"by_action"`
}

// Window returns a normalized page and limit.
func Window(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

type UnitOptions struct {
	UnitsOfMeasure  []string `json:"units_of_measure"`
	UnitsPerPackage []string `json:"units_per_package"`
}

type OperationalAlertOptions struct {
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	ActionsNeeded []string `json:"actions_needed"`
}
