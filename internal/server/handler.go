package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ui"
)

// Line protocol replies
const (
	ReplyHandled   = "OK"
	ReplyUnhandled = "?"
	replyError     = "ERR"
)

// teaHandler creates a console for each PTY session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH console session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	subtitle := s.subtitle
	if subtitle == "" {
		subtitle = "ssh " + sessionID
	}
	return ui.NewConsole(sess.Context(), s.controller, subtitle), []tea.ProgramOption{tea.WithAltScreen()}
}

// lineMiddleware serves sessions without a PTY with the line protocol and
// hands PTY sessions to the next handler
func (s *Server) lineMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			if _, _, isPty := sess.Pty(); isPty {
				next(sess)
				return
			}

			start := time.Now()
			sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
			logging.Logger.Info("New SSH line session", "session_id", sessionID)

			count, err := serveLines(sess.Context(), sess, sess, s.controller)
			if err != nil {
				logging.Logger.Warn("SSH line session failed", "session_id", sessionID, "error", err)
				_ = sess.Exit(1)
				return
			}

			logging.Logger.Info("SSH line session ended",
				"session_id", sessionID,
				"commands", count,
				"duration", time.Since(start).String())
			_ = sess.Exit(0)
		}
	}
}

// serveLines dispatches one command per input line and answers each with
// OK or ?. It returns the number of commands dispatched.
func serveLines(ctx context.Context, r io.Reader, w io.Writer, controller ui.SoundController) (int, error) {
	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		handled, err := controller.Dispatch(ctx, line)
		if err != nil {
			fmt.Fprintf(w, "%s %v\n", replyError, err)
			return count, err
		}
		count++

		reply := ReplyUnhandled
		if handled {
			reply = ReplyHandled
		}
		if _, err := fmt.Fprintln(w, reply); err != nil {
			return count, err
		}
	}
	return count, scanner.Err()
}
