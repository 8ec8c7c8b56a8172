// Package task holds the task variants and the ordered list they live in.
package task

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

var timeNow = func() time.Time { return time.Now().UTC() }

// Kind tags which variant a Task is.
type Kind string

const (
	KindToDo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// DueLayout renders a deadline's due time.
const DueLayout = "2 Jan 2006, 15:04"

// Task is one trackable item. By is only meaningful for deadlines and At
// only for events.
type Task struct {
	ID          string     `yaml:"id"`
	Kind        Kind       `yaml:"kind"`
	Description string     `yaml:"description"`
	Done        bool       `yaml:"done"`
	By          time.Time  `yaml:"by,omitempty"`
	At          string     `yaml:"at,omitempty"`
	CreatedAt   *time.Time `yaml:"created_at"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty"`
}

func NewToDo(description string) *Task {
	return newTask(KindToDo, description)
}

func NewDeadline(description string, by time.Time) *Task {
	t := newTask(KindDeadline, description)
	t.By = by
	return t
}

func NewEvent(description, at string) *Task {
	t := newTask(KindEvent, description)
	t.At = at
	return t
}

func newTask(kind Kind, description string) *Task {
	now := timeNow()
	return &Task{
		ID:          "tsk_" + newULID(),
		Kind:        kind,
		Description: description,
		CreatedAt:   &now,
	}
}

// MarkDone is idempotent; CompletedAt keeps the time of the first call.
func (t *Task) MarkDone() {
	if t.Done {
		return
	}
	now := timeNow()
	t.Done = true
	t.CompletedAt = &now
}

func (t *Task) Marker() string {
	switch t.Kind {
	case KindToDo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

func (t *Task) DoneMarker() string {
	if t.Done {
		return "X"
	}
	return " "
}

// String is the single-line form used verbatim in replies.
func (t *Task) String() string {
	head := fmt.Sprintf("[%s][%s] %s", t.Marker(), t.DoneMarker(), t.Description)
	switch t.Kind {
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", head, t.By.Format(DueLayout))
	case KindEvent:
		return fmt.Sprintf("%s (at: %s)", head, t.At)
	default:
		return head
	}
}

// Matches reports whether any keyword occurs in the description or the event
// window, ignoring case. Blank keywords never match.
func (t *Task) Matches(keywords []string) bool {
	haystack := strings.ToLower(t.Description)
	if t.Kind == KindEvent && t.At != "" {
		haystack += "\n" + strings.ToLower(t.At)
	}
	for _, k := range keywords {
		k = strings.TrimSpace(strings.ToLower(k))
		if k == "" {
			continue
		}
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

func newULID() string {
	t := ulid.Timestamp(timeNow())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", timeNow().UnixNano())
	}
	return strings.ToUpper(id.String())
}
