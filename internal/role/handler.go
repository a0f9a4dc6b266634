package role

import (
	"net/http"

	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/frahmantamala/rbac-console/internal/transport"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.PanelHandler[Role, RoleRequest]
}

func NewHandler(baseHandler *transport.BaseHandler, panel *crud.Panel[Role]) *Handler {
	return &Handler{
		PanelHandler: transport.NewPanelHandler[Role, RoleRequest](baseHandler, panel),
	}
}

// Routes adds the permission toggle to the generic panel routes.
func (h *Handler) Routes(r chi.Router) {
	h.PanelHandler.Routes(r)
	r.Post("/editor/permissions/{label}", h.TogglePermission)
}

// TogglePermission handles POST /roles/editor/permissions/{label}
func (h *Handler) TogglePermission(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	if err := ToggleDraftPermission(h.Panel.Editor, label); err != nil {
		h.RequestLogger(r).Error("TogglePermission: toggle failed", "label", label, "error", err)
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Panel.Editor.State())
}
