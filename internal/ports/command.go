package ports

// CommandHandler consumes short text commands.
// Handle returns false when the command is not meant for it so that the
// caller can offer the same string to the next handler.
type CommandHandler interface {
	Handle(command string) bool
}
