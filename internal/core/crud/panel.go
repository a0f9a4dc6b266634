package crud

import "github.com/frahmantamala/rbac-console/internal"

// Schema describes one entity kind to a Panel.
type Schema[T Entity[T]] struct {
	Kind     string
	Blank    func() T
	Validate Validator[T]
	Seed     []T
}

// Panel is one tab of the console: a store plus its editor.
type Panel[T Entity[T]] struct {
	Store    *Store[T]
	Editor   *Editor[T]
	validate Validator[T]
}

func NewPanel[T Entity[T]](schema Schema[T], seed bool, opts ...Option) *Panel[T] {
	store := NewStore[T](schema.Kind, opts...)
	if seed {
		for _, rec := range schema.Seed {
			store.Create(rec)
		}
	}
	return &Panel[T]{
		Store:    store,
		Editor:   NewEditor(store, schema.Blank, schema.Validate),
		validate: schema.Validate,
	}
}

func (p *Panel[T]) Kind() string     { return p.Store.Kind() }
func (p *Panel[T]) Len() int         { return p.Store.Len() }
func (p *Panel[T]) Revision() uint64 { return p.Store.Revision() }

// Validate runs the kind's form-boundary checks without touching the store.
func (p *Panel[T]) Validate(draft T) *internal.AppError {
	if p.validate == nil {
		return nil
	}
	return p.validate(draft)
}

// CreateChecked validates draft and creates it, bypassing the editor.
func (p *Panel[T]) CreateChecked(draft T) (T, error) {
	var zero T
	if appErr := p.Validate(draft); appErr != nil {
		return zero, appErr
	}
	return p.Store.Create(draft), nil
}

// ReplaceChecked validates e and replaces the entity with id. Unlike
// Store.Update, an absent id is reported as ErrEntityNotFound.
func (p *Panel[T]) ReplaceChecked(id int64, e T) (T, error) {
	var zero T
	if appErr := p.Validate(e); appErr != nil {
		return zero, appErr
	}
	updated, ok := p.Store.Update(e.WithID(id))
	if !ok {
		return zero, internal.ErrEntityNotFound
	}
	return updated, nil
}
