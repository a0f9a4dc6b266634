package user

import (
	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/frahmantamala/rbac-console/internal/transport"
)

type Handler struct {
	*transport.PanelHandler[User, UserRequest]
}

func NewHandler(baseHandler *transport.BaseHandler, panel *crud.Panel[User]) *Handler {
	return &Handler{
		PanelHandler: transport.NewPanelHandler[User, UserRequest](baseHandler, panel),
	}
}
