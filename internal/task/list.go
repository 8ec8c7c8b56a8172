package task

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered, index-addressable sequence of tasks. Indices are 0-based
// and shift down by one after a removal.
type List struct {
	tasks []*Task
}

func NewList(tasks ...*Task) *List {
	l := &List{}
	for _, t := range tasks {
		if t != nil {
			l.tasks = append(l.tasks, t)
		}
	}
	return l
}

func (l *List) Add(t *Task) {
	l.tasks = append(l.tasks, t)
}

func (l *List) Get(i int) (*Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, len(l.tasks))
	}
	return l.tasks[i], nil
}

// Delete removes the task at i and returns it.
func (l *List) Delete(i int) (*Task, error) {
	t, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

func (l *List) Clear() {
	l.tasks = nil
}

func (l *List) Size() int {
	return len(l.tasks)
}

// Tasks returns a copy of the backing slice; the tasks themselves are shared.
func (l *List) Tasks() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Filter returns a new list holding the tasks keep accepts, in order.
func (l *List) Filter(keep func(*Task) bool) *List {
	out := &List{}
	for _, t := range l.tasks {
		if keep(t) {
			out.tasks = append(out.tasks, t)
		}
	}
	return out
}
