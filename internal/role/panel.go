package role

import (
	"fmt"
	"strings"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
)

func Seed() []Role {
	return []Role{
		{Name: "Admin", Description: "Full access to all features", Permissions: []string{PermRead, PermWrite, PermDelete}},
		{Name: "Editor", Description: "Can edit and publish content", Permissions: []string{PermRead, PermWrite}},
		{Name: "Viewer", Description: "Can view content only", Permissions: []string{PermRead}},
	}
}

func Schema() crud.Schema[Role] {
	return crud.Schema[Role]{
		Kind:     Kind,
		Blank:    Blank,
		Validate: Validate,
		Seed:     Seed(),
	}
}

func NewPanel(seed bool, opts ...crud.Option) *crud.Panel[Role] {
	return crud.NewPanel(Schema(), seed, opts...)
}

func Columns() []string {
	return []string{"ID", "NAME", "DESCRIPTION", "PERMISSIONS"}
}

func Row(r Role) []string {
	return []string{fmt.Sprint(r.ID), r.Name, r.Description, strings.Join(r.Permissions, ", ")}
}

// SetField assigns one form field by name. "permissions" takes a comma
// separated list and replaces the whole set.
func SetField(r *Role, key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		r.Name = value
	case "description":
		r.Description = value
	case "permissions":
		perms := []string{}
		for _, p := range strings.Split(value, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !IsKnownPermission(p) {
				return errUnknownPermission(p)
			}
			perms = append(perms, p)
		}
		r.Permissions = perms
	default:
		return internal.NewValidationFieldError(key,
			fmt.Sprintf("unknown field %q, expected name, description or permissions", key), internal.ErrCodeInvalidField)
	}
	return nil
}
