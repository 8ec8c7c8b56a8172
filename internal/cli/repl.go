package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/amirbrooks/king/internal/parser"
	"github.com/amirbrooks/king/internal/ui"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

// scanReader reads piped input, where readline's line editing has nothing to
// drive.
type scanReader struct {
	sc *bufio.Scanner
}

func (r *scanReader) Readline() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) Close() error { return nil }

func (s *session) newLineReader(in io.Reader) (lineReader, bool, error) {
	f, ok := in.(*os.File)
	if !ok || !isTerminal(f) || !isTerminal(s.out) {
		return &scanReader{sc: bufio.NewScanner(in)}, false, nil
	}
	if s.cfg.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(s.cfg.HistoryFile), 0o755); err != nil {
			return nil, false, fmt.Errorf("create history dir: %w", err)
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       s.cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         parser.CmdBye,
		HistorySearchFold: true,
		Stdin:             readline.NewCancelableStdin(f),
		Stdout:            s.out,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return rl, true, nil
}

// interactive chats until bye, end of input or Ctrl-C on an empty line.
func (s *session) interactive(in io.Reader) int {
	r, tty, err := s.newLineReader(in)
	if err != nil {
		fmt.Fprintln(s.out, "king:", err)
		return ExitInternal
	}
	defer r.Close()

	s.printWelcome()
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Error("read input", "err", err)
			fmt.Fprintln(s.out, "king:", err)
			return ExitInternal
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !tty {
			s.printEcho(line)
		}
		keyword, rest := parser.Split(line)
		reply, err := s.parser.Execute(keyword, rest)
		if err != nil {
			s.printError(s.out, err)
			continue
		}
		s.printReply(reply)
		if keyword == parser.CmdBye {
			return ExitOK
		}
	}
	s.printReply(ui.Farewell())
	return ExitOK
}
