package packets

// body for registering
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// body for logging in; identifier is a username or an email
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword" binding:"required"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"passwordConfirmation" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"FirstName"`
	LastName  *string `json:"LastName"`
	Phone     *string `json:"Phone"`
	Biography any     `json:"Biography"`
}
