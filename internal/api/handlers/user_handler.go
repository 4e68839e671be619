package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/api/middleware"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/pkg/response"
	"github.com/linskybing/storeops-go/pkg/utils"
)

type UserHandler struct {
	svc   *application.UserService
	audit repository.AuditRepo
}

func NewUserHandler(svc *application.UserService, audit repository.AuditRepo) *UserHandler {
	return &UserHandler{svc: svc, audit: audit}
}

// Register godoc
// @Summary Register a staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Registration info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	u, err := h.svc.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	tok, err := h.svc.Login(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, tok.AccessToken, int(config.JwtExpires.Seconds()), "/", "", config.IsProduction, true)
	c.JSON(http.StatusOK, tok)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", config.IsProduction, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out successfully"})
}

// ResetPassword godoc
// @Summary Change the caller's password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.ResetPasswordInput true "Old and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse "Old password is incorrect"
// @Router /auth/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var input user.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.ResetPassword(uid, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated successfully"})
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetProfile(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile godoc
// @Summary Update username, email or phone number
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateProfileInput true "Profile fields"
// @Success 200 {object} user.User
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /users/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	u, err := h.svc.UpdateProfile(uid, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Roles godoc
// @Summary List assignable roles
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string
// @Router /users/roles [get]
func (h *UserHandler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Roles())
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "Only users with this role"
// @Success 200 {array} user.Summary
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateRoleInput true "New role"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid role"
// @Failure 403 {object} response.ErrorResponse "Super-Admin only"
// @Router /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	h.updateRole(c, "id")
}

// AssignRole godoc
// @Summary Assign a role to a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param input body user.UpdateRoleInput true "New role"
// @Success 200 {object} user.User
// @Router /roles/assign/{userId} [post]
func (h *UserHandler) AssignRole(c *gin.Context) {
	h.updateRole(c, "userId")
}

func (h *UserHandler) updateRole(c *gin.Context, param string) {
	actor, ok := callerID(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, param)
	if err != nil {
		respondError(c, err)
		return
	}
	var input user.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	before, after, err := h.svc.UpdateRole(c.Request.Context(), actor, id, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, "update_role", "user", strconv.FormatUint(uint64(id), 10),
		before.Summary(), after.Summary(), "role changed to "+after.Role, h.audit)
	c.JSON(http.StatusOK, after)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Cannot delete yourself"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := callerID(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	deleted, err := h.svc.DeleteUser(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, "delete", "user", strconv.FormatUint(uint64(id), 10),
		deleted.Summary(), nil, "user "+deleted.Username+" deleted", h.audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted successfully"})
}
