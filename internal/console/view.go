package console

import (
	"fmt"

	"github.com/frahmantamala/rbac-console/internal/core/crud"
)

// View is one panel as the console drives it.
type View interface {
	Kind() string
	Columns() []string
	Rows() [][]string
	Groups() []RowGroup
	Add() error
	Edit(id int64) error
	Set(key, value string) error
	Toggle(label string) error
	Draft() DraftView
	Save() (int64, error)
	Cancel()
	Delete(id int64) bool
}

type DraftView struct {
	Editing  bool
	Mode     crud.Mode
	TargetID int64
	Columns  []string
	Values   []string
	Details  []string
}

// Group is a titled subset of a listing.
type Group[T any] struct {
	Title string
	Items []T
}

type RowGroup struct {
	Title string
	Rows  [][]string
}

// Binding adapts a typed crud.Panel to a View. Toggle, Details and GroupBy
// are optional.
type Binding[T crud.Entity[T]] struct {
	Panel    *crud.Panel[T]
	Columns  []string
	Row      func(T) []string
	SetField func(draft *T, key, value string) error
	Toggle   func(editor *crud.Editor[T], label string) error
	// Details adds lines below the draft fields, e.g. a permission checklist.
	Details func(T) []string
	// GroupBy splits the listing into titled sections.
	GroupBy func([]T) []Group[T]
}

type view[T crud.Entity[T]] struct {
	b Binding[T]
}

func Bind[T crud.Entity[T]](b Binding[T]) View {
	return &view[T]{b: b}
}

func (v *view[T]) Kind() string      { return v.b.Panel.Kind() }
func (v *view[T]) Columns() []string { return v.b.Columns }

func (v *view[T]) Rows() [][]string {
	items := v.b.Panel.Store.List()
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = v.b.Row(item)
	}
	return rows
}

// Groups returns nil when the binding has no GroupBy.
func (v *view[T]) Groups() []RowGroup {
	if v.b.GroupBy == nil {
		return nil
	}
	groups := v.b.GroupBy(v.b.Panel.Store.List())
	out := make([]RowGroup, len(groups))
	for i, g := range groups {
		rows := make([][]string, len(g.Items))
		for j, item := range g.Items {
			rows[j] = v.b.Row(item)
		}
		out[i] = RowGroup{Title: g.Title, Rows: rows}
	}
	return out
}

func (v *view[T]) Add() error          { return v.b.Panel.Editor.BeginCreate() }
func (v *view[T]) Edit(id int64) error { return v.b.Panel.Editor.BeginEdit(id) }

// Set applies one field to the draft. A rejected value leaves the draft as it was.
func (v *view[T]) Set(key, value string) error {
	var fieldErr error
	err := v.b.Panel.Editor.Edit(func(draft *T) {
		next := (*draft).Clone()
		if fieldErr = v.b.SetField(&next, key, value); fieldErr == nil {
			*draft = next
		}
	})
	if err != nil {
		return err
	}
	return fieldErr
}

func (v *view[T]) Toggle(label string) error {
	if v.b.Toggle == nil {
		return fmt.Errorf("%s have no permission labels to toggle", v.Kind())
	}
	return v.b.Toggle(v.b.Panel.Editor, label)
}

func (v *view[T]) Draft() DraftView {
	state := v.b.Panel.Editor.State()
	if !state.Editing {
		return DraftView{}
	}
	dv := DraftView{
		Editing:  true,
		Mode:     state.Mode,
		TargetID: state.TargetID,
		Columns:  v.b.Columns,
		Values:   v.b.Row(*state.Draft),
	}
	if v.b.Details != nil {
		dv.Details = v.b.Details(*state.Draft)
	}
	return dv
}

func (v *view[T]) Save() (int64, error) {
	saved, err := v.b.Panel.Editor.Submit()
	if err != nil {
		return 0, err
	}
	return saved.EntityID(), nil
}

func (v *view[T]) Cancel()              { v.b.Panel.Editor.Cancel() }
func (v *view[T]) Delete(id int64) bool { return v.b.Panel.Store.Delete(id) }
