package services

import (
	"strings"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// CommandRouter offers each command to its handlers in order and stops at the
// first one that consumes it
type CommandRouter struct {
	handlers []ports.CommandHandler
}

// Verify interface compliance at compile time
var _ ports.CommandHandler = (*CommandRouter)(nil)

// NewCommandRouter creates a router over handlers
func NewCommandRouter(handlers ...ports.CommandHandler) *CommandRouter {
	return &CommandRouter{handlers: handlers}
}

// Add appends a handler with the lowest priority
func (r *CommandRouter) Add(h ports.CommandHandler) {
	r.handlers = append(r.handlers, h)
}

// Handle trims surrounding whitespace and routes the command
func (r *CommandRouter) Handle(command string) bool {
	command = strings.TrimSpace(command)
	if command == "" {
		return false
	}
	for _, h := range r.handlers {
		if h.Handle(command) {
			return true
		}
	}
	logging.Logger.Debug("Command not handled", "command", command)
	return false
}

// HandlerFunc adapts a function to ports.CommandHandler
type HandlerFunc func(command string) bool

// Handle calls f
func (f HandlerFunc) Handle(command string) bool {
	return f(command)
}
