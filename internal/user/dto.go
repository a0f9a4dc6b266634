package user

type UserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status Status `json:"status"`
}

func (r UserRequest) ToEntity() User {
	return User{
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role,
		Status: r.Status,
	}
}
