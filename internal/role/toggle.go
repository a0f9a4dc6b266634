package role

import (
	"fmt"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
)

// TogglePermission removes label from set when present and appends it
// otherwise. The result is always a fresh slice.
func TogglePermission(set []string, label string) []string {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, p := range set {
		if p == label {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		out = append(out, label)
	}
	return out
}

func errUnknownPermission(label string) *internal.AppError {
	return internal.NewValidationFieldError("permissions",
		fmt.Sprintf("permissions contains unknown value %q", label), internal.ErrCodeInvalidPermission)
}

// ToggleDraftPermission flips label on the open role draft.
func ToggleDraftPermission(editor *crud.Editor[Role], label string) error {
	if !IsKnownPermission(label) {
		return errUnknownPermission(label)
	}
	return editor.Edit(func(draft *Role) {
		draft.Permissions = TogglePermission(draft.Permissions, label)
	})
}
