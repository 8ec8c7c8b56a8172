package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amirbrooks/king/internal/task"
)

const schemaVersion = 1

var (
	ErrInvalid = errors.New("invalid")
	timeNow    = func() time.Time { return time.Now().UTC() }
)

// FileStore keeps the whole task list in a single YAML file.
type FileStore struct {
	Path string
}

type document struct {
	Schema int          `yaml:"schema"`
	Tasks  []*task.Task `yaml:"tasks"`
}

// Open returns a store for path. The file is not created until the first
// PersistTaskList.
func Open(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: data file path is required", ErrInvalid)
	}
	return &FileStore{Path: expandHome(path)}, nil
}

// Load reads the stored list. A missing file is an empty list.
func (s *FileStore) Load() (*task.List, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return task.NewList(), nil
		}
		return nil, err
	}
	return decodeList(b)
}

// PersistTaskList replaces the stored list with l.
func (s *FileStore) PersistTaskList(l *task.List) error {
	b, err := encodeList(l)
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Path, b, 0o644)
}

// Find returns the stored tasks matching any keyword, ignoring case, in list
// order. Blank keywords are ignored; with none left nothing matches.
func (s *FileStore) Find(keywords []string) (*task.List, error) {
	l, err := s.Load()
	if err != nil {
		return nil, err
	}
	return l.Filter(func(t *task.Task) bool { return t.Matches(keywords) }), nil
}

func encodeList(l *task.List) ([]byte, error) {
	doc := document{Schema: schemaVersion, Tasks: l.Tasks()}
	return yaml.Marshal(&doc)
}

func decodeList(b []byte) (*task.List, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc.Schema == 0 {
		doc.Schema = schemaVersion
	}
	if doc.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema %d", ErrInvalid, doc.Schema)
	}
	for i, t := range doc.Tasks {
		if t == nil {
			return nil, fmt.Errorf("%w: empty task at position %d", ErrInvalid, i+1)
		}
		switch t.Kind {
		case task.KindToDo, task.KindDeadline, task.KindEvent:
		default:
			return nil, fmt.Errorf("%w: unknown task kind %q at position %d", ErrInvalid, t.Kind, i+1)
		}
		if strings.TrimSpace(t.Description) == "" {
			return nil, fmt.Errorf("%w: empty description at position %d", ErrInvalid, i+1)
		}
	}
	return task.NewList(doc.Tasks...), nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", timeNow().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
