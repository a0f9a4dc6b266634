package transport

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/go-chi/chi"
)

// Request is a JSON body that converts into an entity draft.
type Request[T any] interface {
	ToEntity() T
}

type ListResponse[T any] struct {
	Kind     string `json:"kind"`
	Items    []T    `json:"items"`
	Revision uint64 `json:"revision"`
}

// PanelHandler exposes one crud.Panel over HTTP. R is the request body type
// accepted for creates, replaces and draft updates.
type PanelHandler[T crud.Entity[T], R Request[T]] struct {
	*BaseHandler
	Panel *crud.Panel[T]
}

func NewPanelHandler[T crud.Entity[T], R Request[T]](base *BaseHandler, panel *crud.Panel[T]) *PanelHandler[T, R] {
	return &PanelHandler[T, R]{
		BaseHandler: base,
		Panel:       panel,
	}
}

// Routes mounts the collection and editor endpoints on r.
func (h *PanelHandler[T, R]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Get("/editor", h.EditorState)
	r.Post("/editor", h.BeginCreate)
	r.Put("/editor", h.ReplaceDraft)
	r.Delete("/editor", h.Cancel)
	r.Post("/editor/submit", h.Submit)

	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Replace)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/editor", h.BeginEdit)
}

func (h *PanelHandler[T, R]) decode(w http.ResponseWriter, r *http.Request, fn string) (T, bool) {
	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RequestLogger(r).Error(fn+": invalid request body", "kind", h.Panel.Kind(), "error", err)
		h.WriteError(w, r, http.StatusBadRequest, "invalid request body")
		var zero T
		return zero, false
	}
	return req.ToEntity(), true
}

func (h *PanelHandler[T, R]) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := h.ParseID(r)
	if !ok {
		h.WriteError(w, r, http.StatusBadRequest, "invalid "+h.Panel.Kind()+" ID")
	}
	return id, ok
}

func errEntityNotFound(kind string, id int64) error {
	return internal.ErrEntityNotFound.WithDetails(map[string]any{"kind": kind, "id": id})
}

// List handles GET /{kind}
func (h *PanelHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, ListResponse[T]{
		Kind:     h.Panel.Kind(),
		Items:    h.Panel.Store.List(),
		Revision: h.Panel.Revision(),
	})
}

// Get handles GET /{kind}/{id}
func (h *PanelHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	item, found := h.Panel.Store.Get(id)
	if !found {
		h.HandleServiceError(w, r, errEntityNotFound(h.Panel.Kind(), id))
		return
	}
	h.WriteJSON(w, http.StatusOK, item)
}

// Create handles POST /{kind}
func (h *PanelHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decode(w, r, "Create")
	if !ok {
		return
	}
	created, err := h.Panel.CreateChecked(draft)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.RequestLogger(r).Info("Create: entity created", "kind", h.Panel.Kind(), "id", created.EntityID())
	h.WriteJSON(w, http.StatusCreated, created)
}

// Replace handles PUT /{kind}/{id}
func (h *PanelHandler[T, R]) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	draft, ok := h.decode(w, r, "Replace")
	if !ok {
		return
	}
	updated, err := h.Panel.ReplaceChecked(id, draft)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.RequestLogger(r).Info("Replace: entity updated", "kind", h.Panel.Kind(), "id", id)
	h.WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /{kind}/{id}. Deleting an absent id still answers 204.
func (h *PanelHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if h.Panel.Store.Delete(id) {
		h.RequestLogger(r).Info("Delete: entity deleted", "kind", h.Panel.Kind(), "id", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// EditorState handles GET /{kind}/editor
func (h *PanelHandler[T, R]) EditorState(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Panel.Editor.State())
}

// BeginCreate handles POST /{kind}/editor
func (h *PanelHandler[T, R]) BeginCreate(w http.ResponseWriter, r *http.Request) {
	if err := h.Panel.Editor.BeginCreate(); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Panel.Editor.State())
}

// BeginEdit handles POST /{kind}/{id}/editor
func (h *PanelHandler[T, R]) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if err := h.Panel.Editor.BeginEdit(id); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Panel.Editor.State())
}

// ReplaceDraft handles PUT /{kind}/editor
func (h *PanelHandler[T, R]) ReplaceDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decode(w, r, "ReplaceDraft")
	if !ok {
		return
	}
	if err := h.Panel.Editor.SetDraft(draft); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Panel.Editor.State())
}

// Submit handles POST /{kind}/editor/submit
func (h *PanelHandler[T, R]) Submit(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Panel.Editor.Submit()
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.RequestLogger(r).Info("Submit: editor saved", "kind", h.Panel.Kind(), "id", saved.EntityID())
	h.WriteJSON(w, http.StatusOK, saved)
}

// Cancel handles DELETE /{kind}/editor
func (h *PanelHandler[T, R]) Cancel(w http.ResponseWriter, r *http.Request) {
	h.Panel.Editor.Cancel()
	h.WriteJSON(w, http.StatusOK, h.Panel.Editor.State())
}
