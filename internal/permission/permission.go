package permission

import (
	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/common/validation"
)

const Kind = "permissions"

// Permission is a named capability grouped by a free-text scope such as
// "Users" or "Blog".
type Permission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
}

func (p Permission) EntityID() int64 { return p.ID }

func (p Permission) WithID(id int64) Permission {
	p.ID = id
	return p
}

func (p Permission) Clone() Permission { return p }

func Blank() Permission {
	return Permission{}
}

func Validate(p Permission) *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", p.Name).Required().MaxLength(100)
	v.Field("description", p.Description).Required()
	v.Field("scope", p.Scope).Required().MaxLength(50)
	return v.Validate()
}

type ScopeGroup struct {
	Scope       string
	Permissions []Permission
}

// ByScope groups permissions by scope. Groups appear in order of first
// occurrence and keep list order inside.
func ByScope(perms []Permission) []ScopeGroup {
	var out []ScopeGroup
	index := make(map[string]int)
	for _, p := range perms {
		i, ok := index[p.Scope]
		if !ok {
			i = len(out)
			index[p.Scope] = i
			out = append(out, ScopeGroup{Scope: p.Scope})
		}
		out[i].Permissions = append(out[i].Permissions, p)
	}
	return out
}
