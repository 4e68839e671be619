package repository

import (
	"github.com/linskybing/storeops-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsers(role string) ([]user.User, error)
	ListUsersByIDs(ids []uint) ([]user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	CreateMovedForm(m *user.MovedForm) error
	ListMovedForms(userID uint) ([]user.MovedForm, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, notFound(err, "user")
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, notFound(err, "user")
	}
	return u, nil
}

// ListUsers returns every user, or only those holding role when it is set.
func (r *DBUserRepo) ListUsers(role string) ([]user.User, error) {
	var users []user.User
	q := r.db.Order("username ASC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByIDs(ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return duplicate(r.db.Save(u).Error, "user")
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return deleteByID[user.User](r.db, id, "user")
}

func (r *DBUserRepo) CreateMovedForm(m *user.MovedForm) error {
	return r.db.Create(m).Error
}

func (r *DBUserRepo) ListMovedForms(userID uint) ([]user.MovedForm, error) {
	var moved []user.MovedForm
	err := r.db.Where("user_id = ?", userID).Order("moved_at DESC").Find(&moved).Error
	return moved, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
