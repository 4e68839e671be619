package item

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var UnitsOfMeasure = []string{
	"Pieces", "Boxes", "Cases", "Packs", "Bottles", "Cans", "Bags",
	"Kilograms", "Grams", "Pounds", "Ounces", "Liters", "Milliliters", "Meters",
}

var UnitsPerPackage = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"15", "18", "20", "24", "25", "30", "36", "40", "48", "50", "60", "72",
	"100", "144", "200", "250", "500", "1000",
}

var EquipmentCategories = []string{"Equipment Alert", "Facility Alert"}

var EquipmentSubcategories = []string{"Freezer/Chiller", "Scales", "Other", "Restrooms", "Electricals", "Flooding"}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func IsUnitOfMeasure(v string) bool        { return contains(UnitsOfMeasure, v) }
func IsUnitsPerPackage(v string) bool      { return contains(UnitsPerPackage, v) }
func IsEquipmentCategory(v string) bool    { return contains(EquipmentCategories, v) }
func IsEquipmentSubcategory(v string) bool { return contains(EquipmentSubcategories, v) }

type InventoryItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null;index"`
	Description     string    `json:"description" gorm:"size:500"`
	UnitOfMeasure   string    `json:"unit_of_measure" gorm:"size:20;not null"`
	UnitsPerPackage string    `json:"units_per_package" gorm:"size:10;not null"`
	ReorderLevel    string    `json:"reorder_level" gorm:"size:50"`
	Perishable      bool      `json:"perishable" gorm:"not null;default:false"`
	Essential       bool      `json:"essential" gorm:"not null;default:false"`
	Status          string    `json:"status" gorm:"size:20;not null;default:'active';index"`
	LastUpdated     time.Time `json:"last_updated"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EquipmentItem struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ItemName         string    `json:"item_name" gorm:"size:100;not null;index"`
	Description      string    `json:"description" gorm:"size:500"`
	Category         string    `json:"category" gorm:"size:50;not null;index"`
	Subcategory      string    `json:"subcategory" gorm:"size:50;not null"`
	Location         string    `json:"location" gorm:"size:100"`
	MaintenanceNotes string    `json:"maintenance_notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OperationalAlert struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ItemName     string    `json:"item_name" gorm:"size:100;not null;index"`
	Description  string    `json:"description" gorm:"size:500"`
	Category     string    `json:"category" gorm:"size:100;not null;index"`
	Subcategory  string    `json:"subcategory" gorm:"size:100"`
	ActionNeeded string    `json:"action_needed" gorm:"size:200"`
	Type         string    `json:"type" gorm:"size:50;index;default:'operational-alerts'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
