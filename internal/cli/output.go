package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/amirbrooks/king/internal/config"
	"github.com/amirbrooks/king/internal/ui"
)

type palette struct {
	errColor  *color.Color
	infoColor *color.Color
}

func newPalette(mode string, out io.Writer) palette {
	p := palette{
		errColor:  color.New(color.FgRed),
		infoColor: color.New(color.FgCyan),
	}
	if colorEnabled(mode, out) {
		p.errColor.EnableColor()
		p.infoColor.EnableColor()
	} else {
		p.errColor.DisableColor()
		p.infoColor.DisableColor()
	}
	return p
}

func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(out) && os.Getenv("NO_COLOR") == ""
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *session) printReply(reply string) {
	if s.cfg.Boxed {
		fmt.Fprint(s.out, ui.ChatBox(reply))
		return
	}
	fmt.Fprintln(s.out, reply)
}

func (s *session) printEcho(input string) {
	if s.cfg.Boxed {
		fmt.Fprint(s.out, ui.UserBox(input))
	}
}

func (s *session) printError(w io.Writer, err error) {
	fmt.Fprint(w, s.pal.errColor.Sprint(ui.ErrorBox(err.Error())))
}

func (s *session) printWelcome() {
	fmt.Fprintln(s.out, s.pal.infoColor.Sprint(ui.Welcome()))
}
