// Package crud holds the in-memory CRUD controller shared by every console
// panel: an ordered store per entity kind and the add/edit editor that feeds it.
package crud

// Entity is implemented by value types kept in a Store. WithID and Clone must
// not mutate the receiver; Clone returns a copy sharing no mutable state.
type Entity[T any] interface {
	EntityID() int64
	WithID(id int64) T
	Clone() T
}
