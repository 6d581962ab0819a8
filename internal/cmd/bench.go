package cmd

import (
	"fmt"
	"os"

	"github.com/penumbra-droid/droidsound/internal/logging"
)

// BenchCmd runs a session on the virtual loopback port and prints every
// frame the backend writes, answering the DFPlayer handshake on the way
type BenchCmd struct {
	SessionFlags

	Follow bool `help:"Keep running after stdin closes, until interrupted"`
}

// Run executes the bench command
func (b *BenchCmd) Run(cli *CLI) error {
	if b.Port != "" && b.Port != LoopbackPort {
		return fmt.Errorf("bench always uses the loopback port, drop --port %s", b.Port)
	}
	flags := b.SessionFlags
	flags.Port = LoopbackPort

	logging.Logger.Info("Executing bench command", "backend", flags.Backend)
	return runLines(cli, flags, os.Stdin, os.Stderr, os.Stdout, b.Follow)
}
