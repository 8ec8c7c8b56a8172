package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/amirbrooks/king/internal/task"
)

const logo = " ____  __.__\n" +
	"|    |/ _|__| ____    ____\n" +
	"|      < |  |/    \\  / ___\\\n" +
	"|    |  \\|  |   |  \\/ /_/  >\n" +
	"|____|__ \\__|___|  /\\___  /\n" +
	"        \\/       \\//_____/\n"

func Welcome() string {
	return logo + "\n" + "Hello! I'm King!\nWhat can I do for you?"
}

func Farewell() string {
	return "Bye! Come back soon."
}

func Cleared() string {
	return "I have cleared the list!"
}

func AddItem(t *task.Task, size int) string {
	return "Got it. I've added this task:\n" +
		"\t" + Wrap(t.String()) +
		fmt.Sprintf("\nNow you have %d tasks in the list.", size)
}

func DeleteItem(t *task.Task, left int) string {
	return "I have deleted the following item:\n" +
		"\t" + Wrap(t.String()) +
		fmt.Sprintf("\nYou got %d task(s) left.", left)
}

func Done(t *task.Task) string {
	return "Nice! I've marked this task as done:\n\t" + Wrap(t.String())
}

func TaskList(l *task.List) string {
	return fmt.Sprintf("There are %d items in your list:", l.Size()) + enumerate(l)
}

func FoundItems(l *task.List) string {
	return fmt.Sprintf("I found %d items with the given keyword(s):", l.Size()) + enumerate(l)
}

func enumerate(l *task.List) string {
	var b strings.Builder
	for i, t := range l.Tasks() {
		prefix := fmt.Sprintf("  %d. ", i+1)
		pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
		b.WriteString("\n\t" + prefix + wrap(t.String(), pad))
	}
	return b.String()
}

// ErrorBox frames an error message between '=' borders.
func ErrorBox(msg string) string {
	return Border("Error Encountered", 4, '=') + "\n\t" +
		Wrap(msg) + "\n" +
		Border("", Width, '=') + "\n"
}

// ChatBox frames a reply from King for plain terminals.
func ChatBox(reply string) string {
	return "\t" + Border("King says", 5, '-') + "\n\t" +
		Wrap(reply) + "\n" +
		"\t" + Border("", Width, '-') + "\n"
}

// UserBox echoes the user's input between '=' borders.
func UserBox(input string) string {
	return "\t" + Border("", Width, '=') + "\n\t" +
		Wrap(input) + "\n" +
		"\t" + Border("", Width, '=') + "\n"
}
