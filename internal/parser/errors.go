package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match with errors.Is.
var (
	ErrEmptyDescription  = errors.New("empty description")
	ErrBadEventSyntax    = errors.New("bad event syntax")
	ErrBadDeadlineSyntax = errors.New("bad deadline syntax")
	ErrBadDateTime       = errors.New("bad date time")
	ErrMissingNumber     = errors.New("missing number")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrItemNotFound      = errors.New("item not found")
	ErrBadDeleteSyntax   = errors.New("bad delete syntax")
	ErrBadDoneSyntax     = errors.New("bad done syntax")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrStorage           = errors.New("storage")
)

// Error is a rejected command. Message is what the user sees; Input echoes
// the offending text when there is one.
type Error struct {
	Kind    error
	Input   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "invalid command"
	}
	if strings.TrimSpace(e.Message) == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StorageError wraps a failed persistence call. The in-memory list has
// already been changed when this is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("I could not %s: %v", e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func emptyDescription() error {
	return &Error{
		Kind:    ErrEmptyDescription,
		Message: "The description of a todo cannot be empty.",
	}
}

func badEventSyntax(input string) error {
	return &Error{
		Kind:    ErrBadEventSyntax,
		Input:   input,
		Message: "Please write events as: event <description> /at <time>",
	}
}

func badDeadlineSyntax(input string) error {
	return &Error{
		Kind:    ErrBadDeadlineSyntax,
		Input:   input,
		Message: "Please write deadlines as: deadline <description> /by <d/m/yyyy HHmm>",
	}
}

func badDateTime(input string, err error) error {
	return &Error{
		Kind:    ErrBadDateTime,
		Input:   input,
		Message: fmt.Sprintf("I could not read the date %q. Use d/m/yyyy HHmm, e.g. 2/12/2019 1800.", input),
		Err:     err,
	}
}

func missingNumber(command string) error {
	return &Error{
		Kind:    ErrMissingNumber,
		Message: fmt.Sprintf("Which item? Follow %s with the item number, e.g. %s 2.", command, command),
	}
}

func invalidNumber(input string, err error) error {
	return &Error{
		Kind:    ErrInvalidNumber,
		Input:   input,
		Message: fmt.Sprintf("%q is not a valid item number.", input),
		Err:     err,
	}
}

func itemNotFound(input string, err error) error {
	return &Error{
		Kind:    ErrItemNotFound,
		Input:   input,
		Message: fmt.Sprintf("There is no item %s in your list.", input),
		Err:     err,
	}
}

func badIndexSyntax(kind error, command, input string, err error) error {
	return &Error{
		Kind:    kind,
		Input:   input,
		Message: fmt.Sprintf("I could not understand that %s command.", command),
		Err:     err,
	}
}

func unknownCommand(input string) error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Input:   input,
		Message: "I'm sorry, but I don't know what that means :-(",
	}
}
