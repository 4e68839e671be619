package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/api/middleware"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/pkg/response"
	"github.com/linskybing/storeops-go/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.NewUnauthorized(nil, "invalid credentials")
	ErrIncorrectPassword  = errors.NewUnauthorized(nil, "old password is incorrect")
	ErrUsernameTaken      = errors.NewAlreadyExists(nil, "username already taken")
	ErrSelfDelete         = errors.NewBadRequest(nil, "you cannot delete your own account")
)

type UserService struct {
	Repos      *repository.Repos
	notifier   Notifier
	bcryptCost int
}

func NewUserService(repos *repository.Repos, notifier Notifier, deps Deps) *UserService {
	return &UserService{
		Repos:      repos,
		notifier:   notifier,
		bcryptCost: deps.BcryptCost,
	}
}

func (s *UserService) ensureUsernameFree(username string, self uint) error {
	existing, err := s.Repos.User.GetUserByUsername(username)
	if err == nil {
		if existing.ID != self {
			return ErrUsernameTaken
		}
		return nil
	}
	if errors.Is(err, errors.NotFound) {
		return nil
	}
	return err
}

// Register creates a Staff account.
func (s *UserService) Register(in user.RegisterInput) (user.User, error) {
	username := strings.TrimSpace(in.Username)
	if err := s.ensureUsernameFree(username, 0); err != nil {
		return user.User{}, err
	}
	hashed, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return user.User{}, err
	}
	u := user.User{
		Username:    username,
		Password:    hashed,
		Role:        user.RoleStaff,
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.User{}, errors.Annotate(err, "creating user")
	}
	return u, nil
}

func (s *UserService) Login(in user.LoginInput) (response.TokenResponse, error) {
	u, err := s.Repos.User.GetUserByUsername(in.Username)
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return response.TokenResponse{}, ErrInvalidCredentials
		}
		return response.TokenResponse{}, err
	}
	if !utils.CheckPassword(u.Password, in.Password) {
		return response.TokenResponse{}, ErrInvalidCredentials
	}
	token, err := middleware.GenerateToken(u.ID, u.Username, u.Role, config.JwtExpires)
	if err != nil {
		return response.TokenResponse{}, errors.Annotate(err, "signing token")
	}
	return response.TokenResponse{
		AccessToken: token,
		UserID:      u.ID,
		Username:    u.Username,
		Role:        u.Role,
	}, nil
}

func (s *UserService) ResetPassword(userID uint, in user.ResetPasswordInput) error {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(u.Password, in.OldPassword) {
		return ErrIncorrectPassword
	}
	if len(in.NewPassword) < 6 {
		return errors.NewNotValid(nil, "new password must be at least 6 characters")
	}
	hashed, err := utils.HashPassword(in.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	u.Password = hashed
	return s.Repos.User.SaveUser(&u)
}

func (s *UserService) GetProfile(userID uint) (user.User, error) {
	return s.Repos.User.GetUserByID(userID)
}

// UpdateProfile changes username, email and phone number only.
func (s *UserService) UpdateProfile(userID uint, in user.UpdateProfileInput) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.User{}, err
	}
	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name != u.Username {
			if err := s.ensureUsernameFree(name, u.ID); err != nil {
				return user.User{}, err
			}
			u.Username = name
		}
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) Roles() []string {
	return append([]string(nil), user.Roles...)
}

func (s *UserService) ListUsers(role string) ([]user.Summary, error) {
	if role != "" && !user.IsValidRole(role) {
		return nil, errors.NewBadRequest(nil, fmt.Sprintf("invalid role %q", role))
	}
	users, err := s.Repos.User.ListUsers(role)
	if err != nil {
		return nil, err
	}
	out := make([]user.Summary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return out, nil
}

// UpdateRole assigns role to the user and tells them about it. It returns
// the user before and after the change.
func (s *UserService) UpdateRole(ctx context.Context, actorID, userID uint, role string) (user.User, user.User, error) {
	if !user.IsValidRole(role) {
		return user.User{}, user.User{}, errors.NewBadRequest(nil, fmt.Sprintf("invalid role %q, must be one of %s", role, strings.Join(user.Roles, ", ")))
	}
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.User{}, user.User{}, err
	}
	before := u
	u.Role = role
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.User{}, user.User{}, err
	}

	if s.notifier != nil {
		if _, err := s.notifier.Dispatch(ctx, alert.Request{
			Kind:    alert.KindRoleUpdated,
			Message: fmt.Sprintf("User %s role has been updated to %s", u.Username, role),
			ActorID: actorID,
			Target:  strconv.FormatUint(uint64(u.ID), 10),
			Role:    role,
		}); err != nil {
			logger.Warningf("role update alert for user %d: %v", u.ID, err)
		}
	}
	return before, u, nil
}

func (s *UserService) DeleteUser(actorID, userID uint) (user.User, error) {
	if actorID == userID {
		return user.User{}, ErrSelfDelete
	}
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return user.User{}, err
	}
	if err := s.Repos.User.DeleteUser(userID); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// EnsureSuperAdmin creates the bootstrap Super-Admin when it is missing.
// It reports whether a user was created.
func (s *UserService) EnsureSuperAdmin(username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	_, err := s.Repos.User.GetUserByUsername(username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errors.NotFound) {
		return false, err
	}
	if len(password) < 6 {
		return false, errors.NotValidf("super admin password")
	}
	hashed, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return false, err
	}
	u := user.User{Username: username, Password: hashed, Role: user.RoleSuperAdmin}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return false, errors.Annotate(err, "creating super admin")
	}
	logger.Infof("created super admin %q", username)
	return true, nil
}
