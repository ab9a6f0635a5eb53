package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Persistence is the load/save seam for one store's backing file. Each store
// owns its Persistence exclusively; nothing else writes through it.
type Persistence interface {
	// Load returns the persisted lines in file order. A missing backing
	// file is not an error and yields no lines.
	Load() ([]string, error)
	// Save fully rewrites the backing store from lines. Prior content not
	// represented in lines is lost.
	Save(lines []string) error
}

// File persists lines to a newline-delimited text file. Saves go through a
// temp file in the same directory followed by a rename, so a crash mid-write
// leaves the previous contents intact.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func (f *File) Save(lines []string) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(tmp, line); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("save %s: %w", f.path, err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	return nil
}

// Memory keeps lines in process memory. Used by tests and ephemeral runs.
type Memory struct {
	lines []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() ([]string, error) {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

func (m *Memory) Save(lines []string) error {
	m.lines = make([]string, len(lines))
	copy(m.lines, lines)
	return nil
}
