package parser

import (
	"strings"
	"unicode"
)

// Command keywords.
const (
	CmdBye      = "bye"
	CmdClear    = "clear"
	CmdList     = "list"
	CmdToDo     = "todo"
	CmdEvent    = "event"
	CmdDeadline = "deadline"
	CmdDelete   = "delete"
	CmdDone     = "done"
	CmdFind     = "find"
)

// Split separates the leading keyword (lower-cased) from the rest of line.
func Split(line string) (keyword, rest string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), line[i:]
}

// Execute routes a keyword and its argument to the matching operation.
func (p *Parser) Execute(keyword, rest string) (string, error) {
	p.log.Debug("command", "keyword", keyword)
	switch keyword {
	case CmdBye:
		return p.Bye(), nil
	case CmdClear:
		return p.ClearList()
	case CmdList:
		return p.List(), nil
	case CmdToDo:
		return p.ToDo(rest)
	case CmdEvent:
		return p.Event(rest)
	case CmdDeadline:
		return p.Deadline(rest)
	case CmdDelete:
		return p.Delete(rest)
	case CmdDone:
		return p.Done(rest)
	case CmdFind:
		return p.Find(rest)
	default:
		return "", unknownCommand(keyword)
	}
}

// Handle splits line and executes it.
func (p *Parser) Handle(line string) (string, error) {
	return p.Execute(Split(line))
}
