package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		line, keyword, rest string
	}{
		{"todo read book", "todo", " read book"},
		{"  LIST  ", "list", "  "},
		{"bye", "bye", ""},
		{"", "", ""},
		{"deadline\treturn /by 2/12/2019 1800", "deadline", "\treturn /by 2/12/2019 1800"},
	}
	for _, tt := range tests {
		keyword, rest := Split(tt.line)
		require.Equal(t, tt.keyword, keyword, "line %q", tt.line)
		require.Equal(t, tt.rest, rest, "line %q", tt.line)
	}
}

func TestHandleRoutesCommands(t *testing.T) {
	p, l, fs := newParser()

	reply, err := p.Handle("todo read book")
	require.NoError(t, err)
	require.Contains(t, reply, "[T][ ] read book")

	_, err = p.Handle("event party /at Friday")
	require.NoError(t, err)
	_, err = p.Handle("Deadline essay /by 1/3/2024 0900")
	require.NoError(t, err)
	require.Equal(t, 3, l.Size())

	reply, err = p.Handle("list")
	require.NoError(t, err)
	require.Contains(t, reply, "There are 3 items in your list:")

	_, err = p.Handle("done 1")
	require.NoError(t, err)
	_, err = p.Handle("delete 2")
	require.NoError(t, err)
	require.Equal(t, 2, l.Size())

	_, err = p.Handle("find essay")
	require.NoError(t, err)

	reply, err = p.Handle("bye")
	require.NoError(t, err)
	require.Equal(t, "Bye! Come back soon.", reply)

	_, err = p.Handle("clear")
	require.NoError(t, err)
	require.Equal(t, 0, l.Size())
	require.Equal(t, 6, fs.persists)
}

func TestHandleUnknownCommand(t *testing.T) {
	p, _, fs := newParser()
	for _, line := range []string{"", "blah", "todos x"} {
		_, err := p.Handle(line)
		require.True(t, errors.Is(err, ErrUnknownCommand), "line %q", line)
	}
	require.Equal(t, 0, fs.persists)
}
