package catalog

type CategoryInput struct {
	Name          string   `json:"name" yaml:"name" binding:"required,min=1,max=100" example:"Produce"`
	Type          string   `json:"type" yaml:"type" binding:"required" example:"inventory"`
	Subcategories []string `json:"subcategories" yaml:"subcategories" binding:"required,min=1,dive,required" example:"Fruit"`
}

type UpdateCategoryInput struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Type          *string  `json:"type"`
	Subcategories []string `json:"subcategories" binding:"omitempty,min=1,dive,required"`
}

type CategoryOption struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

type ActionInput struct {
	Description string `json:"description" yaml:"description" binding:"required,min=1,max=500" example:"Notify supplier"`
	Type        string `json:"type" yaml:"type" binding:"required" example:"equipment"`
}

type UpdateActionInput struct {
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	Type        *string `json:"type"`
}

type ReasonCodeInput struct {
	Name        string `json:"name" yaml:"name" binding:"required,min=1,max=100" example:"Damaged"`
	Description string `json:"description" yaml:"description" binding:"required,min=1,max=500" example:"Item arrived damaged"`
}

type UpdateReasonCodeInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
}

type UnitOfMeasureInput struct {
	FullName  string `json:"full_name" yaml:"full_name" binding:"required,min=1,max=50" example:"Kilograms"`
	ShortName string `json:"short_name" yaml:"short_name" binding:"required,min=1,max=10" example:"kg"`
}

type UpdateUnitOfMeasureInput struct {
	FullName  *string `json:"full_name" binding:"omitempty,min=1,max=50"`
	ShortName *string `json:"short_name" binding:"omitempty,min=1,max=10"`
}

type PackagingInput struct {
	Name string `json:"name" yaml:"name" binding:"required,min=1,max=50" example:"Crate"`
}

// Option is the value/label pair used by select inputs.
type Option struct {
	Value uint   `json:"value"`
	Label string `json:"label"`
}

type TypeStats struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"by_type"`
}

type PageQuery struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Type  string `form:"type"`
}

// Normalize applies the default page window.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
