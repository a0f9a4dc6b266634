package permission

type PermissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
}

func (r PermissionRequest) ToEntity() Permission {
	return Permission{
		Name:        r.Name,
		Description: r.Description,
		Scope:       r.Scope,
	}
}
