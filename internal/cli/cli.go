package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirbrooks/king/internal/config"
	"github.com/amirbrooks/king/internal/logging"
	"github.com/amirbrooks/king/internal/parser"
	"github.com/amirbrooks/king/internal/store"
	"github.com/amirbrooks/king/internal/task"
)

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitNotFound = 3
	ExitInternal = 10
)

type globalFlags struct {
	Root      string
	Config    string
	DataFile  string
	LogLevel  string
	LogFormat string
	Color     string
	Boxed     bool
}

func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if args == nil {
		args = []string{}
	}
	code := ExitOK
	cmd := newRootCommand(in, out, errOut, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(errOut, "king:", err)
		return ExitUsage
	}
	return code
}

func newRootCommand(in io.Reader, out, errOut io.Writer, code *int) *cobra.Command {
	var gf globalFlags
	cmd := &cobra.Command{
		Use:   "king [command]",
		Short: "King keeps your todos, deadlines and events",
		Long: `King keeps your todos, deadlines and events.

Without arguments King starts an interactive chat. With arguments the words
are run as a single command.

Commands:
  todo <description>
  deadline <description> /by <d/m/yyyy HHmm>
  event <description> /at <time>
  list
  done <item number>
  delete <item number>
  find <keywords...>
  clear
  bye`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := config.Overrides{
				Root:       gf.Root,
				ConfigFile: gf.Config,
				DataFile:   gf.DataFile,
				LogLevel:   gf.LogLevel,
				LogFormat:  gf.LogFormat,
				Color:      gf.Color,
			}
			if cmd.Flags().Changed("boxed") {
				o.Boxed = &gf.Boxed
			}
			*code = execute(o, args, in, out, errOut)
			return nil
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	// Stop at the first command word so "delete -1" reaches the parser.
	flags.SetInterspersed(false)
	flags.StringVar(&gf.Root, "root", "", "Data root (default: ~/.king or KING_ROOT)")
	flags.StringVar(&gf.Config, "config", "", "Config file (default: <root>/config.toml)")
	flags.StringVar(&gf.DataFile, "data-file", "", "Task list file (default: <root>/tasks.yaml)")
	flags.StringVar(&gf.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	flags.StringVar(&gf.LogFormat, "log-format", "", "Log format (text|json)")
	flags.StringVar(&gf.Color, "color", "", "Color output (auto|always|never)")
	flags.BoolVar(&gf.Boxed, "boxed", false, "Frame replies in chat boxes")
	return cmd
}

// execute wires config, logging and storage, then runs one command or the
// interactive chat.
func execute(o config.Overrides, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Load(o)
	if err != nil {
		fmt.Fprintln(errOut, "king:", err)
		return ExitInternal
	}
	log, closeLog, err := logging.Open(cfg, errOut)
	if err != nil {
		fmt.Fprintln(errOut, "king:", err)
		return ExitInternal
	}
	defer func() { _ = closeLog() }()

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		fmt.Fprintln(errOut, "king:", err)
		return ExitInternal
	}
	list, err := st.Load()
	if err != nil {
		log.Error("load task list", "path", st.Path, "err", err)
		fmt.Fprintln(errOut, "king: load", st.Path+":", err)
		return ExitInternal
	}
	log.Debug("task list loaded", "path", st.Path, "size", list.Size())

	s := newSession(cfg, list, st, log, out)
	if len(args) > 0 {
		return s.once(strings.Join(args, " "), errOut)
	}
	return s.interactive(in)
}

type session struct {
	cfg    *config.Config
	parser *parser.Parser
	log    *slog.Logger
	out    io.Writer
	pal    palette
}

func newSession(cfg *config.Config, list *task.List, st parser.Storage, log *slog.Logger, out io.Writer) *session {
	return &session{
		cfg:    cfg,
		parser: parser.New(list, st, log),
		log:    log,
		out:    out,
		pal:    newPalette(cfg.Color, out),
	}
}

func (s *session) once(line string, errOut io.Writer) int {
	reply, err := s.parser.Handle(line)
	if err != nil {
		s.printError(errOut, err)
		return exitCode(err)
	}
	s.printReply(reply)
	return ExitOK
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, parser.ErrItemNotFound):
		return ExitNotFound
	case errors.Is(err, parser.ErrStorage):
		return ExitInternal
	default:
		return ExitUsage
	}
}
