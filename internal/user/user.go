package user

import (
	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/common/validation"
)

const Kind = "users"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// User is an operator-managed account record. Role holds a role name as free
// text; nothing ties it to the role store.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status Status `json:"status"`
}

func (u User) EntityID() int64 { return u.ID }

func (u User) WithID(id int64) User {
	u.ID = id
	return u
}

func (u User) Clone() User { return u }

// Blank is the draft the add form opens with.
func Blank() User {
	return User{Status: StatusActive}
}

func Validate(u User) *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", u.Name).Required().MaxLength(100)
	v.Field("email", u.Email).Required().Email()
	v.Field("role", u.Role).Required()
	v.Field("status", string(u.Status)).
		OneOf(internal.ErrCodeInvalidStatus, string(StatusActive), string(StatusInactive))
	return v.Validate()
}
