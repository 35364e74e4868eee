package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/rogersnm/todomd/internal/markdown"
	"github.com/rogersnm/todomd/internal/model"
)

// Manager owns the in-memory sequence of todo spaces and keeps it
// synchronized with the backing file: the whole file is loaded once in
// Open and fully rewritten after every mutating operation.
type Manager struct {
	path   string
	spaces []model.Space
}

// Open ensures the parent directory of path exists, then loads the todo
// file. A missing or unreadable file is not an error: the store falls back
// to a single empty Default space and persists it immediately so the file
// exists for hand-editing. Directory creation and the fallback persist are
// the only fatal failures.
func Open(path string) (*Manager, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating todo directory %s: %w", dir, err)
		}
	}

	m := &Manager{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		m.spaces = []model.Space{{Name: model.DefaultSpace}}
		if err := m.persist(); err != nil {
			return nil, err
		}
		return m, nil
	}
	m.spaces = markdown.Parse(string(data))
	return m, nil
}

// Path returns the backing file path, for the surface to hand to $EDITOR.
func (m *Manager) Path() string {
	return m.path
}

// Add appends a pending todo to the named space, creating the space if no
// space has that name. Space creation always succeeds; only the persist
// step can fail.
func (m *Manager) Add(text, spaceName string, priority model.Priority) error {
	if spaceName == "" {
		spaceName = model.DefaultSpace
	}
	if priority == "" {
		priority = model.PriorityMedium
	}

	i := m.findSpace(spaceName)
	if i < 0 {
		m.spaces = append(m.spaces, model.Space{Name: spaceName})
		i = len(m.spaces) - 1
	}
	m.spaces[i].Items = append(m.spaces[i].Items, model.Item{
		Text:     strings.TrimSpace(text),
		Priority: priority,
	})
	return m.persist()
}

// Toggle flips the completion status of the todo at index in the named
// space. On SpaceNotFoundError or IndexOutOfRangeError nothing is mutated
// and nothing is written.
func (m *Manager) Toggle(index int, spaceName string) error {
	space, err := m.target(spaceName, index)
	if err != nil {
		return err
	}
	space.Items[index].Done = !space.Items[index].Done
	return m.persist()
}

// Delete removes the todo at index in the named space. Indices of all
// subsequent todos shift down by one, so callers must re-list before
// addressing another todo. Failure modes match Toggle.
func (m *Manager) Delete(index int, spaceName string) error {
	space, err := m.target(spaceName, index)
	if err != nil {
		return err
	}
	space.Items = append(space.Items[:index], space.Items[index+1:]...)
	return m.persist()
}

// Entry pairs a todo with its original index in the owning space, so that
// filtered listings still display addressable indices.
type Entry struct {
	Index int
	Item  model.Item
}

// Listing is one space's filtered view.
type Listing struct {
	Space   string
	Entries []Entry
}

// List returns the filtered todos of every space, in file order. It never
// mutates the store.
func (m *Manager) List(filter model.StatusFilter) []Listing {
	listings := make([]Listing, 0, len(m.spaces))
	for _, space := range m.spaces {
		l := Listing{Space: space.Name}
		for i, item := range space.Items {
			if filter.Matches(item.Done) {
				l.Entries = append(l.Entries, Entry{Index: i, Item: item})
			}
		}
		listings = append(listings, l)
	}
	return listings
}

// Summary is a space's completed/total todo count.
type Summary struct {
	Name  string
	Done  int
	Total int
}

// Spaces returns a summary per space, in file order.
func (m *Manager) Spaces() []Summary {
	summaries := make([]Summary, 0, len(m.spaces))
	for _, space := range m.spaces {
		s := Summary{Name: space.Name, Total: len(space.Items)}
		for _, item := range space.Items {
			if item.Done {
				s.Done++
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func (m *Manager) findSpace(name string) int {
	for i := range m.spaces {
		if m.spaces[i].Name == name {
			return i
		}
	}
	return -1
}

func (m *Manager) target(spaceName string, index int) (*model.Space, error) {
	if spaceName == "" {
		spaceName = model.DefaultSpace
	}
	i := m.findSpace(spaceName)
	if i < 0 {
		return nil, &SpaceNotFoundError{Name: spaceName}
	}
	if index < 0 || index >= len(m.spaces[i].Items) {
		return nil, &IndexOutOfRangeError{Space: spaceName, Index: index, Count: len(m.spaces[i].Items)}
	}
	return &m.spaces[i], nil
}

// persist rewrites the backing file from the full in-memory state. The
// write goes through a temp file and rename so a crash mid-write cannot
// leave a truncated todo file behind.
func (m *Manager) persist() error {
	if err := atomic.WriteFile(m.path, bytes.NewReader(markdown.Format(m.spaces))); err != nil {
		return &PersistError{Path: m.path, Err: err}
	}
	return nil
}
