package permission

import (
	"fmt"
	"strings"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
)

func Seed() []Permission {
	return []Permission{
		{Name: "Read Users", Description: "Can view user information", Scope: "Users"},
		{Name: "Edit Users", Description: "Can modify user information", Scope: "Users"},
		{Name: "Delete Users", Description: "Can remove users from the system", Scope: "Users"},
		{Name: "Read Posts", Description: "Can view blog posts", Scope: "Blog"},
		{Name: "Edit Posts", Description: "Can modify blog posts", Scope: "Blog"},
		{Name: "Delete Posts", Description: "Can remove blog posts", Scope: "Blog"},
	}
}

func Schema() crud.Schema[Permission] {
	return crud.Schema[Permission]{
		Kind:     Kind,
		Blank:    Blank,
		Validate: Validate,
		Seed:     Seed(),
	}
}

func NewPanel(seed bool, opts ...crud.Option) *crud.Panel[Permission] {
	return crud.NewPanel(Schema(), seed, opts...)
}

func Columns() []string {
	return []string{"ID", "NAME", "DESCRIPTION", "SCOPE"}
}

func Row(p Permission) []string {
	return []string{fmt.Sprint(p.ID), p.Name, p.Description, p.Scope}
}

func SetField(p *Permission, key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "scope":
		p.Scope = value
	default:
		return internal.NewValidationFieldError(key,
			fmt.Sprintf("unknown field %q, expected name, description or scope", key), internal.ErrCodeInvalidField)
	}
	return nil
}
