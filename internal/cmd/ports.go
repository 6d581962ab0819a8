package cmd

import (
	"fmt"

	"github.com/penumbra-droid/droidsound/internal/logging"
)

// PortsCmd lists serial devices
type PortsCmd struct{}

// Run executes the ports command
func (p *PortsCmd) Run(cli *CLI) error {
	names, err := cli.Container.PortOpener.List()
	if err != nil {
		return err
	}
	logging.Logger.Debug("Serial ports listed", "count", len(names))

	if len(names) == 0 {
		fmt.Println("No serial ports found.")
	}
	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("%s\t(virtual port for bench runs)\n", LoopbackPort)
	return nil
}
