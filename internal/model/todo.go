package model

// DefaultSpace is the implicit space for todos added without a space name.
// It is the one space serialized without a [[...]] header.
const DefaultSpace = "Default"

// Item is a single todo. Items have no identifier beyond their position in
// the owning space, so callers must re-query indices after a delete.
type Item struct {
	Text     string
	Done     bool
	Priority Priority
}

// Space is a named, ordered group of todos. Order is file order and is
// preserved across save/load.
type Space struct {
	Name  string
	Items []Item
}
