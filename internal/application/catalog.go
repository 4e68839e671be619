package application

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/pkg/response"
)

func validateItemListType(t string) error {
	if !catalog.IsItemListType(t) {
		return errors.NewBadRequest(nil, fmt.Sprintf("invalid type %q, must be one of: %s", t, strings.Join(catalog.ItemListTypes, ", ")))
	}
	return nil
}

// conflict reports an AlreadyExists error when lookup found a row other
// than self.
func conflict(foundID, self uint, lookupErr error, msg string) error {
	if lookupErr == nil {
		if foundID != self {
			return errors.NewAlreadyExists(nil, msg)
		}
		return nil
	}
	if errors.Is(lookupErr, errors.NotFound) {
		return nil
	}
	return lookupErr
}

// cleanSubcategories trims and de-duplicates while keeping input order.
func cleanSubcategories(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func typeStats(byType map[string]int64) catalog.TypeStats {
	stats := catalog.TypeStats{ByType: byType}
	for _, n := range byType {
		stats.Total += n
	}
	return stats
}

type CategoryService struct {
	Repos *repository.Repos
}

func NewCategoryService(repos *repository.Repos) *CategoryService {
	return &CategoryService{Repos: repos}
}

const msgCategoryExists = "category with this name and type already exists"

func (s *CategoryService) Create(in catalog.CategoryInput) (catalog.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateItemListType(in.Type); err != nil {
		return catalog.Category{}, err
	}
	subs := cleanSubcategories(in.Subcategories)
	if len(subs) == 0 {
		return catalog.Category{}, errors.NewBadRequest(nil, "at least one subcategory is required")
	}
	found, err := s.Repos.Category.FindCategoryByNameType(name, in.Type)
	if err := conflict(found.ID, 0, err, msgCategoryExists); err != nil {
		return catalog.Category{}, err
	}
	c := catalog.Category{Name: name, Type: in.Type, Subcategories: subs}
	if err := s.Repos.Category.CreateCategory(&c); err != nil {
		return catalog.Category{}, errors.Annotate(err, "creating category")
	}
	return c, nil
}

func (s *CategoryService) Get(id uint) (catalog.Category, error) {
	return s.Repos.Category.GetCategoryByID(id)
}

func (s *CategoryService) List(q catalog.PageQuery) (response.Page[catalog.Category], error) {
	q.Normalize()
	if q.Type != "" {
		if err := validateItemListType(q.Type); err != nil {
			return response.Page[catalog.Category]{}, err
		}
	}
	rows, total, err := s.Repos.Category.ListCategories(q)
	if err != nil {
		return response.Page[catalog.Category]{}, err
	}
	return response.NewPage(rows, total, q.Page, q.Limit), nil
}

func (s *CategoryService) Update(id uint, in catalog.UpdateCategoryInput) (catalog.Category, error) {
	c, err := s.Repos.Category.GetCategoryByID(id)
	if err != nil {
		return catalog.Category{}, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		if err := validateItemListType(*in.Type); err != nil {
			return catalog.Category{}, err
		}
		c.Type = *in.Type
	}
	if in.Subcategories != nil {
		subs := cleanSubcategories(in.Subcategories)
		if len(subs) == 0 {
			return catalog.Category{}, errors.NewBadRequest(nil, "at least one subcategory is required")
		}
		c.Subcategories = subs
	}
	if in.Name != nil || in.Type != nil {
		found, err := s.Repos.Category.FindCategoryByNameType(c.Name, c.Type)
		if err := conflict(found.ID, c.ID, err, msgCategoryExists); err != nil {
			return catalog.Category{}, err
		}
	}
	if err := s.Repos.Category.SaveCategory(&c); err != nil {
		return catalog.Category{}, err
	}
	return c, nil
}

func (s *CategoryService) Delete(id uint) error {
	return s.Repos.Category.DeleteCategory(id)
}

// Options lists the categories of one type for select inputs.
func (s *CategoryService) Options(typ string) ([]catalog.CategoryOption, error) {
	if err := validateItemListType(typ); err != nil {
		return nil, err
	}
	cats, err := s.Repos.Category.ListCategoriesByType(typ)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.CategoryOption, 0, len(cats))
	for _, c := range cats {
		out = append(out, catalog.CategoryOption{Name: c.Name, Subcategories: []string(c.Subcategories)})
	}
	return out, nil
}

// Public lists categories sorted by name, optionally of one type.
func (s *CategoryService) Public(typ string) ([]catalog.Category, error) {
	if typ != "" {
		if err := validateItemListType(typ); err != nil {
			return nil, err
		}
	}
	return s.Repos.Category.ListCategoriesByType(typ)
}

func (s *CategoryService) ByType(typ string) ([]catalog.Category, error) {
	if err := validateItemListType(typ); err != nil {
		return nil, err
	}
	return s.Repos.Category.ListCategoriesByType(typ)
}

func (s *CategoryService) Stats() (catalog.TypeStats, error) {
	byType, err := s.Repos.Category.CountCategoriesByType()
	if err != nil {
		return catalog.TypeStats{}, err
	}
	return typeStats(byType), nil
}

func TypeOptions() []string {
	return append([]string(nil), catalog.ItemListTypes...)
}

type ActionService struct {
	Repos *repository.Repos
}

func NewActionService(repos *repository.Repos) *ActionService {
	return &ActionService{Repos: repos}
}

const msgActionExists = "action with this description and type already exists"

func (s *ActionService) Create(in catalog.ActionInput) (catalog.Action, error) {
	desc := strings.TrimSpace(in.Description)
	if err := validateItemListType(in.Type); err != nil {
		return catalog.Action{}, err
	}
	found, err := s.Repos.Action.FindActionByDescriptionType(desc, in.Type)
	if err := conflict(found.ID, 0, err, msgActionExists); err != nil {
		return catalog.Action{}, err
	}
	a := catalog.Action{Description: desc, Type: in.Type}
	if err := s.Repos.Action.CreateAction(&a); err != nil {
		return catalog.Action{}, errors.Annotate(err, "creating action")
	}
	return a, nil
}

func (s *ActionService) Get(id uint) (catalog.Action, error) {
	return s.Repos.Action.GetActionByID(id)
}

func (s *ActionService) List(q catalog.PageQuery) (response.Page[catalog.Action], error) {
	q.Normalize()
	if q.Type != "" {
		if err := validateItemListType(q.Type); err != nil {
			return response.Page[catalog.Action]{}, err
		}
	}
	rows, total, err := s.Repos.Action.ListActions(q)
	if err != nil {
		return response.Page[catalog.Action]{}, err
	}
	return response.NewPage(rows, total, q.Page, q.Limit), nil
}

func (s *ActionService) Update(id uint, in catalog.UpdateActionInput) (catalog.Action, error) {
	a, err := s.Repos.Action.GetActionByID(id)
	if err != nil {
		return catalog.Action{}, err
	}
	if in.Description != nil {
		a.Description = strings.TrimSpace(*in.Description)
	}
	if in.Type != nil {
		if err := validateItemListType(*in.Type); err != nil {
			return catalog.Action{}, err
		}
		a.Type = *in.Type
	}
	found, err := s.Repos.Action.FindActionByDescriptionType(a.Description, a.Type)
	if err := conflict(found.ID, a.ID, err, msgActionExists); err != nil {
		return catalog.Action{}, err
	}
	if err := s.Repos.Action.SaveAction(&a); err != nil {
		return catalog.Action{}, err
	}
	return a, nil
}

func (s *ActionService) Delete(id uint) error {
	return s.Repos.Action.DeleteAction(id)
}

func (s *ActionService) Public(typ string) ([]catalog.Action, error) {
	if typ != "" {
		if err := validateItemListType(typ); err != nil {
			return nil, err
		}
	}
	return s.Repos.Action.ListActionsByType(typ, 0)
}

func (s *ActionService) ByType(typ string) ([]catalog.Action, error) {
	if err := validateItemListType(typ); err != nil {
		return nil, err
	}
	return s.Repos.Action.ListActionsByType(typ, 0)
}

func (s *ActionService) Stats() (catalog.TypeStats, error) {
	byType, err := s.Repos.Action.CountActionsByType()
	if err != nil {
		return catalog.TypeStats{}, err
	}
	return typeStats(byType), nil
}

type ReasonCodeService struct {
	Repos *repository.Repos
}

func NewReasonCodeService(repos *repository.Repos) *ReasonCodeService {
	return &ReasonCodeService{Repos: repos}
}

const msgReasonCodeExists = "reason code with this name already exists"

func (s *ReasonCodeService) Create(in catalog.ReasonCodeInput) (catalog.ReasonCode, error) {
	name := strings.TrimSpace(in.Name)
	found, err := s.Repos.ReasonCode.FindReasonCodeByName(name)
	if err := conflict(found.ID, 0, err, msgReasonCodeExists); err != nil {
		return catalog.ReasonCode{}, err
	}
	rc := catalog.ReasonCode{Name: name, Description: strings.TrimSpace(in.Description)}
	if err := s.Repos.ReasonCode.CreateReasonCode(&rc); err != nil {
		return catalog.ReasonCode{}, errors.Annotate(err, "creating reason code")
	}
	return rc, nil
}

func (s *ReasonCodeService) Get(id uint) (catalog.ReasonCode, error) {
	return s.Repos.ReasonCode.GetReasonCodeByID(id)
}

func (s *ReasonCodeService) List(q catalog.PageQuery) (response.Page[catalog.ReasonCode], error) {
	q.Normalize()
	rows, total, err := s.Repos.ReasonCode.ListReasonCodes(q)
	if err != nil {
		return response.Page[catalog.ReasonCode]{}, err
	}
	return response.NewPage(rows, total, q.Page, q.Limit), nil
}

func (s *ReasonCodeService) Update(id uint, in catalog.UpdateReasonCodeInput) (catalog.ReasonCode, error) {
	rc, err := s.Repos.ReasonCode.GetReasonCodeByID(id)
	if err != nil {
		return catalog.ReasonCode{}, err
	}
	if in.Name != nil {
		rc.Name = strings.TrimSpace(*in.Name)
		found, err := s.Repos.ReasonCode.FindReasonCodeByName(rc.Name)
		if err := conflict(found.ID, rc.ID, err, msgReasonCodeExists); err != nil {
			return catalog.ReasonCode{}, err
		}
	}
	if in.Description != nil {
		rc.Description = strings.TrimSpace(*in.Description)
	}
	if err := s.Repos.ReasonCode.SaveReasonCode(&rc); err != nil {
		return catalog.ReasonCode{}, err
	}
	return rc, nil
}

func (s *ReasonCodeService) Delete(id uint) error {
	return s.Repos.ReasonCode.DeleteReasonCode(id)
}

func (s *ReasonCodeService) Public() ([]catalog.ReasonCode, error) {
	return s.Repos.ReasonCode.ListAllReasonCodes()
}

type UnitOfMeasureService struct {
	Repos *repository.Repos
}

func NewUnitOfMeasureService(repos *repository.Repos) *UnitOfMeasureService {
	return &UnitOfMeasureService{Repos: repos}
}

const msgUnitExists = "unit of measure with this full name or short name already exists"

func (s *UnitOfMeasureService) Create(in catalog.UnitOfMeasureInput) (catalog.UnitOfMeasure, error) {
	u := catalog.UnitOfMeasure{
		FullName:  strings.TrimSpace(in.FullName),
		ShortName: strings.TrimSpace(in.ShortName),
	}
	found, err := s.Repos.UnitOfMeasure.FindUnitByName(u.FullName, u.ShortName)
	if err := conflict(found.ID, 0, err, msgUnitExists); err != nil {
		return catalog.UnitOfMeasure{}, err
	}
	if err := s.Repos.UnitOfMeasure.CreateUnit(&u); err != nil {
		return catalog.UnitOfMeasure{}, errors.Annotate(err, "creating unit of measure")
	}
	return u, nil
}

func (s *UnitOfMeasureService) Get(id uint) (catalog.UnitOfMeasure, error) {
	return s.Repos.UnitOfMeasure.GetUnitByID(id)
}

func (s *UnitOfMeasureService) List(q catalog.PageQuery) (response.Page[catalog.UnitOfMeasure], error) {
	q.Normalize()
	rows, total, err := s.Repos.UnitOfMeasure.ListUnits(q)
	if err != nil {
		return response.Page[catalog.UnitOfMeasure]{}, err
	}
	return response.NewPage(rows, total, q.Page, q.Limit), nil
}

func (s *UnitOfMeasureService) Update(id uint, in catalog.UpdateUnitOfMeasureInput) (catalog.UnitOfMeasure, error) {
	u, err := s.Repos.UnitOfMeasure.GetUnitByID(id)
	if err != nil {
		return catalog.UnitOfMeasure{}, err
	}
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.ShortName != nil {
		u.ShortName = strings.TrimSpace(*in.ShortName)
	}
	found, err := s.Repos.UnitOfMeasure.FindUnitByName(u.FullName, u.ShortName)
	if err := conflict(found.ID, u.ID, err, msgUnitExists); err != nil {
		return catalog.UnitOfMeasure{}, err
	}
	if err := s.Repos.UnitOfMeasure.SaveUnit(&u); err != nil {
		return catalog.UnitOfMeasure{}, err
	}
	return u, nil
}

func (s *UnitOfMeasureService) Delete(id uint) error {
	return s.Repos.UnitOfMeasure.DeleteUnit(id)
}

func (s *UnitOfMeasureService) Public() ([]catalog.UnitOfMeasure, error) {
	return s.Repos.UnitOfMeasure.ListAllUnits()
}

func (s *UnitOfMeasureService) Options() ([]catalog.Option, error) {
	units, err := s.Repos.UnitOfMeasure.ListAllUnits()
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Option, 0, len(units))
	for _, u := range units {
		out = append(out, catalog.Option{Value: u.ID, Label: fmt.Sprintf("%s (%s)", u.FullName, u.ShortName)})
	}
	return out, nil
}

type PackagingService struct {
	Repos *repository.Repos
}

func NewPackagingService(repos *repository.Repos) *PackagingService {
	return &PackagingService{Repos: repos}
}

const msgPackagingExists = "packaging with this name already exists"

func (s *PackagingService) Create(in catalog.PackagingInput) (catalog.Packaging, error) {
	p := catalog.Packaging{Name: strings.TrimSpace(in.Name)}
	found, err := s.Repos.Packaging.FindPackagingByName(p.Name)
	if err := conflict(found.ID, 0, err, msgPackagingExists); err != nil {
		return catalog.Packaging{}, err
	}
	if err := s.Repos.Packaging.CreatePackaging(&p); err != nil {
		return catalog.Packaging{}, errors.Annotate(err, "creating packaging")
	}
	return p, nil
}

func (s *PackagingService) Get(id uint) (catalog.Packaging, error) {
	return s.Repos.Packaging.GetPackagingByID(id)
}

func (s *PackagingService) List(q catalog.PageQuery) (response.Page[catalog.Packaging], error) {
	q.Normalize()
	rows, total, err := s.Repos.Packaging.ListPackaging(q)
	if err != nil {
		return response.Page[catalog.Packaging]{}, err
	}
	return response.NewPage(rows, total, q.Page, q.Limit), nil
}

func (s *PackagingService) Update(id uint, in catalog.PackagingInput) (catalog.Packaging, error) {
	p, err := s.Repos.Packaging.GetPackagingByID(id)
	if err != nil {
		return catalog.Packaging{}, err
	}
	p.Name = strings.TrimSpace(in.Name)
	found, err := s.Repos.Packaging.FindPackagingByName(p.Name)
	if err := conflict(found.ID, p.ID, err, msgPackagingExists); err != nil {
		return catalog.Packaging{}, err
	}
	if err := s.Repos.Packaging.SavePackaging(&p); err != nil {
		return catalog.Packaging{}, err
	}
	return p, nil
}

func (s *PackagingService) Delete(id uint) error {
	return s.Repos.Packaging.DeletePackaging(id)
}

func (s *PackagingService) Public() ([]catalog.Packaging, error) {
	return s.Repos.Packaging.ListAllPackaging()
}

func (s *PackagingService) Options() ([]catalog.Option, error) {
	rows, err := s.Repos.Packaging.ListAllPackaging()
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Option, 0, len(rows))
	for _, p := range rows {
		out = append(out, catalog.Option{Value: p.ID, Label: p.Name})
	}
	return out, nil
}
