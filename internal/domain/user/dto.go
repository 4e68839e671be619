package user

type RegisterInput struct {
	Username    string `json:"username" binding:"required,min=3,max=50" example:"jdoe"`
	Password    string `json:"password" binding:"required,min=6" example:"password123"`
	Email       string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	PhoneNumber string `json:"phone_number" binding:"required" example:"+15551234567"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type ResetPasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UpdateProfileInput never carries role or password; those have their own endpoints.
type UpdateProfileInput struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required" example:"Supervisor"`
}

type Summary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Role: u.Role}
}
