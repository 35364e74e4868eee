package store

import "fmt"

// SpaceNotFoundError reports a toggle/delete against a space name with no
// matching entry. No mutation or write happened.
type SpaceNotFoundError struct {
	Name string
}

func (e *SpaceNotFoundError) Error() string {
	return fmt.Sprintf("space %q not found", e.Name)
}

// IndexOutOfRangeError reports a toggle/delete against an index beyond the
// target space's todo count. No mutation or write happened.
type IndexOutOfRangeError struct {
	Space string
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for space %q (%d todos)", e.Index, e.Space, e.Count)
}

// PersistError reports a failed write of the backing file. The in-memory
// mutation has already been applied, so the requested change may be lost
// unless a later persist succeeds.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("writing todo file %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
