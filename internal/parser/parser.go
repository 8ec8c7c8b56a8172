// Package parser turns chat commands into task list changes and replies.
//
// Each operation receives the text that followed the command keyword,
// validates it, applies the change to the borrowed list, persists the whole
// list on mutation and returns the formatted reply.
package parser

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirbrooks/king/internal/task"
	"github.com/amirbrooks/king/internal/ui"
)

const (
	eventSeparator    = " /at "
	deadlineSeparator = " /by "

	// DateTimeLayout accepts day/month/year and a 24h hour-minute, e.g.
	// "2/12/2019 1800".
	DateTimeLayout = "2/1/2006 1504"
)

// Storage persists the task list and answers keyword searches.
type Storage interface {
	PersistTaskList(l *task.List) error
	Find(keywords []string) (*task.List, error)
}

// Parser borrows a task list and a storage for the commands it handles. It is
// not safe for concurrent use.
type Parser struct {
	list    *task.List
	storage Storage
	log     *slog.Logger
}

func New(list *task.List, storage Storage, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{list: list, storage: storage, log: logger}
}

func (p *Parser) Bye() string {
	return ui.Farewell()
}

func (p *Parser) ClearList() (string, error) {
	p.list.Clear()
	if err := p.persist("clear"); err != nil {
		return "", err
	}
	return ui.Cleared(), nil
}

func (p *Parser) List() string {
	return ui.TaskList(p.list)
}

func (p *Parser) ToDo(arg string) (string, error) {
	desc := strings.TrimSpace(arg)
	if desc == "" {
		return "", emptyDescription()
	}
	t := task.NewToDo(desc)
	p.list.Add(t)
	if err := p.persist("todo"); err != nil {
		return "", err
	}
	return ui.AddItem(t, p.list.Size()), nil
}

func (p *Parser) Event(arg string) (string, error) {
	item := strings.TrimSpace(arg)
	parts := strings.Split(item, eventSeparator)
	if len(parts) != 2 {
		return "", badEventSyntax(item)
	}
	t := task.NewEvent(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	p.list.Add(t)
	if err := p.persist("event"); err != nil {
		return "", err
	}
	return ui.AddItem(t, p.list.Size()), nil
}

func (p *Parser) Deadline(arg string) (string, error) {
	item := strings.TrimSpace(arg)
	parts := strings.Split(item, deadlineSeparator)
	if len(parts) != 2 {
		return "", badDeadlineSyntax(item)
	}
	by, err := ParseDateTime(parts[1])
	if err != nil {
		return "", err
	}
	t := task.NewDeadline(strings.TrimSpace(parts[0]), by)
	p.list.Add(t)
	if err := p.persist("deadline"); err != nil {
		return "", err
	}
	return ui.AddItem(t, p.list.Size()), nil
}

func (p *Parser) Delete(arg string) (string, error) {
	i, t, err := p.index(CmdDelete, ErrBadDeleteSyntax, arg)
	if err != nil {
		return "", err
	}
	if _, err := p.list.Delete(i); err != nil {
		return "", badIndexSyntax(ErrBadDeleteSyntax, CmdDelete, strings.TrimSpace(arg), err)
	}
	if err := p.persist("delete"); err != nil {
		return "", err
	}
	return ui.DeleteItem(t, p.list.Size()), nil
}

func (p *Parser) Done(arg string) (string, error) {
	_, t, err := p.index(CmdDone, ErrBadDoneSyntax, arg)
	if err != nil {
		return "", err
	}
	t.MarkDone()
	if err := p.persist("done"); err != nil {
		return "", err
	}
	return ui.Done(t), nil
}

// Find searches the stored list. No keywords means no matches.
func (p *Parser) Find(arg string) (string, error) {
	keywords := strings.Fields(arg)
	found, err := p.storage.Find(keywords)
	if err != nil {
		return "", &StorageError{Op: "search your list", Err: err}
	}
	return ui.FoundItems(found), nil
}

// ParseDateTime reads a due time written as d/m/yyyy HHmm in local time.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, badDateTime(s, err)
	}
	return t, nil
}

// index resolves a 1-based item number to its list index and task. An empty
// argument, a non-integer and a missing item are reported as distinct errors.
func (p *Parser) index(command string, syntaxKind error, arg string) (int, *task.Task, error) {
	raw := strings.TrimSpace(arg)
	if raw == "" {
		return 0, nil, missingNumber(command)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil, invalidNumber(raw, err)
	}
	i := n - 1
	t, err := p.list.Get(i)
	if err != nil {
		if errors.Is(err, task.ErrIndexOutOfRange) {
			return 0, nil, itemNotFound(raw, err)
		}
		return 0, nil, badIndexSyntax(syntaxKind, command, raw, err)
	}
	return i, t, nil
}

// persist saves the whole list. The in-memory change is not rolled back when
// saving fails, so the list and the file can disagree until the next
// successful save.
func (p *Parser) persist(command string) error {
	if err := p.storage.PersistTaskList(p.list); err != nil {
		p.log.Warn("persist task list failed; in-memory list kept", "command", command, "size", p.list.Size(), "err", err)
		return &StorageError{Op: "save your list", Err: err}
	}
	p.log.Debug("task list persisted", "command", command, "size", p.list.Size())
	return nil
}
