package role

import (
	"fmt"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/common/validation"
)

const Kind = "roles"

// Permission labels a role may carry. The set is fixed and independent of the
// permission store.
const (
	PermRead   = "Read"
	PermWrite  = "Write"
	PermDelete = "Delete"
)

// Vocabulary returns the labels in display order.
func Vocabulary() []string {
	return []string{PermRead, PermWrite, PermDelete}
}

func IsKnownPermission(label string) bool {
	for _, p := range Vocabulary() {
		if p == label {
			return true
		}
	}
	return false
}

type Role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

func (r Role) EntityID() int64 { return r.ID }

func (r Role) WithID(id int64) Role {
	r.ID = id
	return r
}

func (r Role) Clone() Role {
	r.Permissions = append(make([]string, 0, len(r.Permissions)), r.Permissions...)
	return r
}

func (r Role) HasPermission(label string) bool {
	for _, p := range r.Permissions {
		if p == label {
			return true
		}
	}
	return false
}

// Checklist renders the fixed vocabulary as check boxes for r.
func Checklist(r Role) []string {
	lines := make([]string, 0, len(Vocabulary()))
	for _, label := range Vocabulary() {
		mark := " "
		if r.HasPermission(label) {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", mark, label))
	}
	return lines
}

func Blank() Role {
	return Role{Permissions: []string{}}
}

func Validate(r Role) *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", r.Name).Required().MaxLength(100)
	v.Field("description", r.Description).Required()
	v.Field("permissions", r.Permissions).
		EachOneOf(internal.ErrCodeInvalidPermission, Vocabulary()...).
		Unique()
	return v.Validate()
}
