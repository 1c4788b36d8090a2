package request

type RegisterRequest struct {
	Name      string  `json:"ten" validate:"required,min=2,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"matkhau" validate:"required,min=8"`
	BirthDate *string `json:"ngaysinh,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"matkhau" validate:"required"`
}
