package crud

import (
	"log/slog"
	"sync"

	"github.com/frahmantamala/rbac-console/internal"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Validator checks a draft at submit time. A nil result lets the submit through.
type Validator[T any] func(T) *internal.AppError

// EditorState is a read-only snapshot of the editor. Idle when Editing is false.
type EditorState[T any] struct {
	Editing  bool  `json:"editing"`
	Mode     Mode  `json:"mode,omitempty"`
	TargetID int64 `json:"target_id,omitempty"`
	Draft    *T    `json:"draft,omitempty"`
}

type session[T any] struct {
	mode   Mode
	target int64
	draft  T
}

// Editor is the add/edit modal of one store:
//
//	Idle --BeginCreate--> Editing(create, blank)
//	Idle --BeginEdit(id)--> Editing(edit, copy of entity)
//	Editing --Cancel--> Idle
//	Editing --Submit--> Idle   (create or update on the store)
//
// A draft that fails validation keeps the editor in Editing.
type Editor[T Entity[T]] struct {
	mu       sync.Mutex
	store    *Store[T]
	blank    func() T
	validate Validator[T]
	current  *session[T]
	logger   *slog.Logger
}

func NewEditor[T Entity[T]](store *Store[T], blank func() T, validate Validator[T]) *Editor[T] {
	if blank == nil {
		blank = func() T {
			var zero T
			return zero
		}
	}
	return &Editor[T]{
		store:    store,
		blank:    blank,
		validate: validate,
		logger:   store.logger.With("component", "editor"),
	}
}

func (e *Editor[T]) State() EditorState[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return EditorState[T]{}
	}
	draft := e.current.draft.Clone()
	return EditorState[T]{
		Editing:  true,
		Mode:     e.current.mode,
		TargetID: e.current.target,
		Draft:    &draft,
	}
}

func (e *Editor[T]) BeginCreate() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		return internal.ErrEditorBusy
	}
	e.current = &session[T]{mode: ModeCreate, draft: e.blank()}
	e.logger.Debug("editor opened", "mode", ModeCreate)
	return nil
}

func (e *Editor[T]) BeginEdit(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		return internal.ErrEditorBusy
	}
	existing, ok := e.store.Get(id)
	if !ok {
		return internal.ErrEntityNotFound
	}
	e.current = &session[T]{mode: ModeEdit, target: id, draft: existing}
	e.logger.Debug("editor opened", "mode", ModeEdit, "id", id)
	return nil
}

// Edit applies fn to the draft in place.
func (e *Editor[T]) Edit(fn func(draft *T)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return internal.ErrEditorIdle
	}
	fn(&e.current.draft)
	return nil
}

// SetDraft replaces the whole draft. The draft's id is irrelevant: create
// mode lets the store assign one and edit mode keeps the target id.
func (e *Editor[T]) SetDraft(draft T) error {
	return e.Edit(func(d *T) { *d = draft.Clone() })
}

// Cancel discards the draft. Cancelling an idle editor does nothing.
func (e *Editor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		e.logger.Debug("editor cancelled", "mode", e.current.mode)
	}
	e.current = nil
}

// Submit validates the draft and hands it to the store. In edit mode a target
// removed since BeginEdit yields ErrEntityNotFound and closes the editor.
func (e *Editor[T]) Submit() (T, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var zero T
	if e.current == nil {
		return zero, internal.ErrEditorIdle
	}

	if e.validate != nil {
		if appErr := e.validate(e.current.draft); appErr != nil {
			e.logger.Debug("submit blocked by validation", "error", appErr.GetDetailedMessage())
			return zero, appErr
		}
	}

	s := e.current
	e.current = nil

	if s.mode == ModeCreate {
		return e.store.Create(s.draft), nil
	}

	updated, ok := e.store.Update(s.draft.WithID(s.target))
	if !ok {
		return zero, internal.ErrEntityNotFound
	}
	return updated, nil
}
