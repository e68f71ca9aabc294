// SPDX-License-Identifier: MIT
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/netanalyzer/logging"
)

// Console reads trimmed lines and writes prompts.
type Console struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewConsole wraps in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{sc: bufio.NewScanner(in), out: out}
}

// Out returns the console writer.
func (c *Console) Out() io.Writer { return c.out }

// Prompt prints text without a newline and returns the next line, trimmed.
// It returns io.EOF when input is exhausted.
func (c *Console) Prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(c.sc.Text()), nil
}

// Session runs the menu loop.
type Session struct {
	con  *Console
	disp *Dispatcher
	log  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes per-command logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = logging.OrDiscard(l) }
}

// New creates a Session.
func New(con *Console, disp *Dispatcher, opts ...Option) *Session {
	s := &Session{con: con, disp: disp, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run shows the menu until Exit is chosen, input ends or ctx is cancelled.
// End of input is a normal termination.
func (s *Session) Run(ctx context.Context) error {
	out := s.con.Out()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		WriteMenu(out)
		line, err := s.con.Prompt("Enter your choice: ")
		if err != nil {
			return ignoreEOF(err)
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(out, msgInvalid)
			continue
		}

		a, _ := s.disp.Action(cmd)
		args := make([]string, 0, len(a.Prompts))
		for _, p := range a.Prompts {
			ans, err := s.con.Prompt(p)
			if err != nil {
				return ignoreEOF(err)
			}
			args = append(args, ans)
		}

		s.log.Debug("command", slog.String("command", cmd.String()), slog.Any("args", args))
		if err := s.disp.Execute(cmd, args, out); err != nil {
			s.log.Error("command failed", slog.String("command", cmd.String()), slog.Any("error", err))
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if cmd == Exit {
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
