package repository

import (
	"strings"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

// notFound turns gorm's missing-row error into a typed not-found error.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFound(nil, what+" not found")
	}
	return err
}

// duplicate turns a unique-index violation into an already-exists error.
// The connection must be opened with TranslateError.
func duplicate(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.NewAlreadyExists(nil, what+" already exists")
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern matches s anywhere in a column, with % and _ in s taken
// literally under ESCAPE '\'.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// searchAny keeps rows where any of columns contains text, ignoring case.
func searchAny(q *gorm.DB, text string, columns ...string) *gorm.DB {
	p := likePattern(strings.ToLower(text))
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, c := range columns {
		clauses[i] = "LOWER(" + c + `) LIKE ? ESCAPE '\'`
		args[i] = p
	}
	return q.Where(strings.Join(clauses, " OR "), args...)
}

// countRow receives GROUP BY results.
type countRow struct {
	Name  string
	Total int64
}

func countBy(q *gorm.DB, column string) (map[string]int64, error) {
	var rows []countRow
	if err := q.Select(column + " AS name, COUNT(*) AS total").Group(column).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Total
	}
	return out, nil
}

// findPage counts the rows matched by q and loads one window of them.
func findPage[T any](q *gorm.DB, offset, limit int, order string) ([]T, int64, error) {
	q = q.Session(&gorm.Session{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []T
	err := q.Order(order).Offset(offset).Limit(limit).Find(&rows).Error
	return rows, total, err
}

func deleteByID[T any](db *gorm.DB, id uint, what string) error {
	var zero T
	res := db.Delete(&zero, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, what)
	}
	return nil
}
