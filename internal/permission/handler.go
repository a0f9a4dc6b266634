package permission

import (
	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/frahmantamala/rbac-console/internal/transport"
)

type Handler struct {
	*transport.PanelHandler[Permission, PermissionRequest]
}

func NewHandler(baseHandler *transport.BaseHandler, panel *crud.Panel[Permission]) *Handler {
	return &Handler{
		PanelHandler: transport.NewPanelHandler[Permission, PermissionRequest](baseHandler, panel),
	}
}
