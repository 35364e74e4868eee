package spacefile

import (
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".todomd-space"

// Find walks up from startDir looking for a .todomd-space file.
// Returns the space name and the directory containing the file.
// Returns ("", "", nil) if not found.
func Find(startDir string) (space, dir string, err error) {
	dir = startDir
	for {
		name, err := Read(dir)
		if err != nil {
			return "", "", err
		}
		if name != "" {
			return name, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

// Write writes the space name to dir/.todomd-space.
func Write(dir, space string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(space+"\n"), 0644)
}

// Read reads and trims the .todomd-space file in dir.
// Returns ("", nil) if the file does not exist.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes dir/.todomd-space. Removing a missing file is not an error.
func Remove(dir string) error {
	err := os.Remove(filepath.Join(dir, FileName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
