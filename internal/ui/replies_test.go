package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/amirbrooks/king/internal/task"
)

func TestAddAndDeleteItem(t *testing.T) {
	todo := task.NewToDo("read book")
	require.Equal(t,
		"Got it. I've added this task:\n\t[T][ ] read book\nNow you have 3 tasks in the list.",
		AddItem(todo, 3))
	require.Equal(t,
		"I have deleted the following item:\n\t[T][ ] read book\nYou got 2 task(s) left.",
		DeleteItem(todo, 2))
}

func TestDone(t *testing.T) {
	todo := task.NewToDo("read book")
	todo.MarkDone()
	require.Equal(t, "Nice! I've marked this task as done:\n\t[T][X] read book", Done(todo))
}

func TestTaskListEnumeratesFromOne(t *testing.T) {
	l := task.NewList(task.NewToDo("a"), task.NewEvent("b", "noon"))
	require.Equal(t,
		"There are 2 items in your list:\n\t  1. [T][ ] a\n\t  2. [E][ ] b (at: noon)",
		TaskList(l))
	require.Equal(t, "There are 0 items in your list:", TaskList(task.NewList()))
}

func TestFoundItems(t *testing.T) {
	l := task.NewList(task.NewToDo("buy milk"))
	require.Equal(t,
		"I found 1 items with the given keyword(s):\n\t  1. [T][ ] buy milk",
		FoundItems(l))
}

func TestLongTaskKeepsListIndentation(t *testing.T) {
	desc := strings.TrimSpace(strings.Repeat("word ", 20))
	l := task.NewList(task.NewToDo("a"), task.NewToDo(desc), task.NewEvent(strings.Repeat("日", 40), "noon"))
	out := TaskList(l)
	require.True(t, strings.HasPrefix(out, "There are 3 items in your list:\n\t  1. [T][ ] a\n\t  2. [T][ ] word"), out)

	lines := strings.Split(out, "\n")[1:]
	require.Greater(t, len(lines), 3)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "\t  "), "line %q", line)
		require.LessOrEqual(t, runewidth.StringWidth(strings.TrimPrefix(line, "\t")), Width, "line %q", line)
		if !strings.HasPrefix(line, "\t  1. ") && !strings.HasPrefix(line, "\t  2. ") && !strings.HasPrefix(line, "\t  3. ") {
			require.True(t, strings.HasPrefix(line, "\t     "), "continuation %q", line)
		}
	}
}

func TestErrorBox(t *testing.T) {
	out := ErrorBox("boom")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, Border("Error Encountered", 4, '='), lines[0])
	require.Equal(t, "\tboom", lines[1])
	require.Equal(t, strings.Repeat("=", Width), lines[2])
}

func TestChatAndUserBox(t *testing.T) {
	require.Equal(t,
		"\t"+Border("King says", 5, '-')+"\n\thi\n\t"+strings.Repeat("-", Width)+"\n",
		ChatBox("hi"))
	require.Equal(t,
		"\t"+strings.Repeat("=", Width)+"\n\tlist\n\t"+strings.Repeat("=", Width)+"\n",
		UserBox("list"))
}

func TestWelcome(t *testing.T) {
	require.Contains(t, Welcome(), "Hello! I'm King!")
	require.Equal(t, "Bye! Come back soon.", Farewell())
}
