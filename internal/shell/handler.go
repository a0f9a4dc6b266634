package shell

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/rbac-console/internal/transport"
	"github.com/go-chi/chi"
)

type SelectTabRequest struct {
	Tab string `json:"tab"`
}

type Handler struct {
	*transport.BaseHandler
	Shell *Shell
}

func NewHandler(baseHandler *transport.BaseHandler, shell *Shell) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Shell:       shell,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetShell)
	r.Put("/tab", h.SelectTab)
}

// GetShell handles GET /shell
func (h *Handler) GetShell(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Shell.Snapshot())
}

// SelectTab handles PUT /shell/tab
func (h *Handler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var req SelectTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RequestLogger(r).Error("SelectTab: invalid request body", "error", err)
		h.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Shell.Select(Tab(req.Tab)); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.RequestLogger(r).Info("SelectTab: active tab changed", "tab", h.Shell.Active())
	h.WriteJSON(w, http.StatusOK, h.Shell.Snapshot())
}
