package user

import (
	"fmt"
	"strings"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
)

func Seed() []User {
	return []User{
		{Name: "John Doe", Email: "john@example.com", Role: "Admin", Status: StatusActive},
		{Name: "Jane Smith", Email: "jane@example.com", Role: "Editor", Status: StatusActive},
		{Name: "Bob Johnson", Email: "bob@example.com", Role: "Viewer", Status: StatusInactive},
	}
}

func Schema() crud.Schema[User] {
	return crud.Schema[User]{
		Kind:     Kind,
		Blank:    Blank,
		Validate: Validate,
		Seed:     Seed(),
	}
}

func NewPanel(seed bool, opts ...crud.Option) *crud.Panel[User] {
	return crud.NewPanel(Schema(), seed, opts...)
}

func Columns() []string {
	return []string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"}
}

func Row(u User) []string {
	return []string{fmt.Sprint(u.ID), u.Name, u.Email, u.Role, string(u.Status)}
}

// SetField assigns one form field by name. Status is matched case-insensitively.
func SetField(u *User, key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		u.Name = value
	case "email":
		u.Email = value
	case "role":
		u.Role = value
	case "status":
		switch {
		case strings.EqualFold(value, string(StatusActive)):
			u.Status = StatusActive
		case strings.EqualFold(value, string(StatusInactive)):
			u.Status = StatusInactive
		default:
			return internal.NewValidationFieldError("status",
				fmt.Sprintf("status must be %s or %s", StatusActive, StatusInactive), internal.ErrCodeInvalidStatus)
		}
	default:
		return internal.NewValidationFieldError(key,
			fmt.Sprintf("unknown field %q, expected name, email, role or status", key), internal.ErrCodeInvalidField)
	}
	return nil
}
