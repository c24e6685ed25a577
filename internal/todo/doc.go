// Package todo implements the to-do list registry and item store on top of
// an injected store.Store.
//
// Lists validates titles before persisting and maps the storage uniqueness
// constraint to ErrDuplicateTitle. Items applies creation defaults (empty
// description, due date one week after the creation instant) and returns a
// list's items ascending by due date.
package todo
