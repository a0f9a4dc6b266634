package role

type RoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

func (r RoleRequest) ToEntity() Role {
	perms := append(make([]string, 0, len(r.Permissions)), r.Permissions...)
	return Role{
		Name:        r.Name,
		Description: r.Description,
		Permissions: perms,
	}
}
