package catalog

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TypeInventory            = "inventory"
	TypeEquipment            = "equipment"
	TypeOperationalAlerts    = "operational-alerts"
	TypeHandoverAlerts       = "handover-alerts"
	TypeCustomerFeedback     = "customer-feedback"
	TypeHealthSafety         = "health-safety"
	TypeDisasterPreparedness = "disaster-preparedness"
)

// ItemListTypes are the item lists a form or catalog row can belong to.
var ItemListTypes = []string{
	TypeInventory,
	TypeEquipment,
	TypeOperationalAlerts,
	TypeHandoverAlerts,
	TypeCustomerFeedback,
	TypeHealthSafety,
	TypeDisasterPreparedness,
}

func IsItemListType(t string) bool {
	for _, v := range ItemListTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Category struct {
	ID            uint                        `json:"id" gorm:"primaryKey"`
	Name          string                      `json:"name" gorm:"size:100;not null;uniqueIndex:idx_category_name_type"`
	Type          string                      `json:"type" gorm:"size:50;not null;uniqueIndex:idx_category_name_type;index"`
	Subcategories datatypes.JSONSlice[string] `json:"subcategories"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

type Action struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"size:500;not null;uniqueIndex:idx_action_description_type"`
	Type        string    `json:"type" gorm:"size:50;not null;uniqueIndex:idx_action_description_type;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReasonCode struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"size:500;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UnitOfMeasure struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"size:50;not null;uniqueIndex"`
	ShortName string    `json:"short_name" gorm:"size:10;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UnitOfMeasure) TableName() string {
	return "units_of_measure"
}

type Packaging struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Packaging) TableName() string {
	return "packaging"
}
