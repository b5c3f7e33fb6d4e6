package model

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Province     string `json:"province,omitempty"`
	Zone         string `json:"zone,omitempty"`
	Area         string `json:"area,omitempty"`
	Parish       string `json:"parish,omitempty"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

func (u User) HasToken() bool {
	return u.Token != ""
}

// Public strips the credentials before a user is returned to a caller.
func (u User) Public() User {
	u.Token = ""
	u.RefreshToken = ""
	return u
}

type SessionState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateUserInput struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Role            string `json:"role" validate:"required,oneof=admin coordinator"`
	Province        string `json:"province" validate:"required_if=Role coordinator"`
	Zone            string `json:"zone"`
	Area            string `json:"area"`
	Parish          string `json:"parish"`
}
