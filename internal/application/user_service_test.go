package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/api/middleware"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *fakeNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	notifier := &fakeNotifier{}
	repos := &repository.Repos{User: mockUser}
	svc := NewUserService(repos, notifier, Deps{BcryptCost: bcrypt.MinCost})
	return svc, mockUser, notifier
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, errors.NewNotFound(nil, "user not found"))
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 7
		return nil
	})

	u, err := svc.Register(user.RegisterInput{
		Username:    "alice",
		Password:    "123456",
		Email:       "alice@test.com",
		PhoneNumber: "5551234567",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), u.ID)
	assert.Equal(t, user.RoleStaff, u.Role)
	assert.NotEqual(t, "123456", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{ID: 1}, nil)

	_, err := svc.Register(user.RegisterInput{Username: "admin", Password: "123456"})
	assert.Equal(t, ErrUsernameTaken, err)
	assert.True(t, errors.Is(err, errors.AlreadyExists))
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{ID: 2, Username: "bob", Role: user.RoleSupervisor, Password: hashed(t, "secret1")}, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, username, role string, exp time.Duration) (string, error) {
		assert.Equal(t, uint(2), uid)
		assert.Equal(t, user.RoleSupervisor, role)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	tok, err := svc.Login(user.LoginInput{Username: "bob", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token123", tok.AccessToken)
	assert.Equal(t, "bob", tok.Username)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{ID: 2, Password: hashed(t, "secret1")}, nil)

	_, err := svc.Login(user.LoginInput{Username: "bob", Password: "wrong"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, errors.NewNotFound(nil, "user not found"))

	_, err := svc.Login(user.LoginInput{Username: "ghost", Password: "whatever"})
	assert.True(t, errors.Is(err, errors.Unauthorized))
}

// --------------------- Passwords & profile ---------------------
func TestResetPassword_WrongOldPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Password: hashed(t, "secret1")}, nil)

	err := svc.ResetPassword(2, user.ResetPasswordInput{OldPassword: "nope", NewPassword: "secret2"})
	assert.Equal(t, ErrIncorrectPassword, err)
}

func TestResetPassword_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Password: hashed(t, "secret1")}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret2")))
		return nil
	})

	assert.NoError(t, svc.ResetPassword(2, user.ResetPasswordInput{OldPassword: "secret1", NewPassword: "secret2"}))
}

func TestUpdateProfile_UsernameConflict(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	name := "carol"
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Username: "bob"}, nil)
	mockUser.EXPECT().GetUserByUsername("carol").Return(user.User{ID: 3, Username: "carol"}, nil)

	_, err := svc.UpdateProfile(2, user.UpdateProfileInput{Username: &name})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestUpdateProfile_KeepsRole(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	email := "bob@new.com"
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Username: "bob", Role: user.RoleSupervisor}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	u, err := svc.UpdateProfile(2, user.UpdateProfileInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, u.Email)
	assert.Equal(t, user.RoleSupervisor, u.Role)
}

// --------------------- Roles ---------------------
func TestUpdateRole_Invalid(t *testing.T) {
	svc, _, notifier := setupUserServiceMocks(t)

	_, _, err := svc.UpdateRole(context.Background(), 4, 2, "Owner")
	assert.True(t, errors.Is(err, errors.BadRequest))
	assert.Empty(t, notifier.requests())
}

func TestUpdateRole_NotifiesUser(t *testing.T) {
	svc, mockUser, notifier := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Username: "bob", Role: user.RoleStaff}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	before, after, err := svc.UpdateRole(context.Background(), 4, 2, user.RoleManagement)
	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, before.Role)
	assert.Equal(t, user.RoleManagement, after.Role)

	reqs := notifier.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, alert.KindRoleUpdated, reqs[0].Kind)
	assert.Equal(t, "User bob role has been updated to Management", reqs[0].Message)
	assert.Equal(t, "2", reqs[0].Target)
}

func TestListUsers_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := setupUserServiceMocks(t)
	_, err := svc.ListUsers("Owner")
	assert.True(t, errors.Is(err, errors.BadRequest))
}

func TestListUsers_Summaries(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().ListUsers(user.RoleStaff).Return([]user.User{{ID: 1, Username: "alice", Role: user.RoleStaff, Email: "a@x"}}, nil)

	got, err := svc.ListUsers(user.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, []user.Summary{{ID: 1, Username: "alice", Role: user.RoleStaff}}, got)
}

// --------------------- Delete ---------------------
func TestDeleteUser_Self(t *testing.T) {
	svc, _, _ := setupUserServiceMocks(t)
	_, err := svc.DeleteUser(4, 4)
	assert.Equal(t, ErrSelfDelete, err)
}

func TestDeleteUser_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Username: "bob"}, nil)
	mockUser.EXPECT().DeleteUser(uint(2)).Return(nil)

	u, err := svc.DeleteUser(4, 2)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}

func TestEnsureSuperAdmin(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("root").Return(user.User{}, errors.NewNotFound(nil, "user not found"))
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleSuperAdmin, u.Role)
		return nil
	})

	created, err := svc.EnsureSuperAdmin("root", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureSuperAdmin("", "")
	require.NoError(t, err)
	assert.False(t, created)
}
