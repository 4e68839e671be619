// Package seed loads reference data from a YAML file at start-up.
package seed

import (
	"os"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"gopkg.in/yaml.v2"
)

var logger = loggo.GetLogger("storeops.seed")

type File struct {
	Categories     []catalog.CategoryInput      `yaml:"categories"`
	Actions        []catalog.ActionInput        `yaml:"actions"`
	ReasonCodes    []catalog.ReasonCodeInput    `yaml:"reason_codes"`
	UnitsOfMeasure []catalog.UnitOfMeasureInput `yaml:"units_of_measure"`
	Packaging      []catalog.PackagingInput     `yaml:"packaging"`
}

// Result counts rows created and rows skipped because they already existed.
type Result struct {
	Created int
	Skipped int
}

func (r *Result) record(what string, err error) error {
	switch {
	case err == nil:
		r.Created++
	case errors.Is(err, errors.AlreadyExists):
		r.Skipped++
		logger.Debugf("skipping %s: %v", what, err)
	default:
		return errors.Annotatef(err, "seeding %s", what)
	}
	return nil
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading seed file %s", path)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, errors.NewNotValid(err, "invalid seed file")
	}
	return &f, nil
}

// Apply creates every row through the services so seeded data passes the
// same validation as API writes.
func Apply(svc *application.Services, f *File) (Result, error) {
	var res Result
	for _, in := range f.Categories {
		_, err := svc.Category.Create(in)
		if err := res.record("category "+in.Name, err); err != nil {
			return res, err
		}
	}
	for _, in := range f.Actions {
		_, err := svc.Action.Create(in)
		if err := res.record("action "+in.Description, err); err != nil {
			return res, err
		}
	}
	for _, in := range f.ReasonCodes {
		_, err := svc.ReasonCode.Create(in)
		if err := res.record("reason code "+in.Name, err); err != nil {
			return res, err
		}
	}
	for _, in := range f.UnitsOfMeasure {
		_, err := svc.UnitOfMeasure.Create(in)
		if err := res.record("unit "+in.FullName, err); err != nil {
			return res, err
		}
	}
	for _, in := range f.Packaging {
		_, err := svc.Packaging.Create(in)
		if err := res.record("packaging "+in.Name, err); err != nil {
			return res, err
		}
	}
	logger.Infof("seeded reference data: %d created, %d skipped", res.Created, res.Skipped)
	return res, nil
}
