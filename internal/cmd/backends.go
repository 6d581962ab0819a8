package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

// BackendsCmd lists the supported sound modules
type BackendsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type backendRow struct {
	Choice   int    `json:"choice"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Baud     int    `json:"baud"`
	MaxTrack uint16 `json:"max_track"`
	VolumeLo int    `json:"volume_quiet"`
	VolumeHi int    `json:"volume_loud"`
	SettleMs uint32 `json:"settle_ms"`
}

// Run executes the backends command
func (b *BackendsCmd) Run(cli *CLI) error {
	rows := make([]backendRow, 0, len(domain.Backends))
	for _, backend := range domain.Backends {
		p := backend.Profile()
		rows = append(rows, backendRow{
			Choice:   int(backend),
			Key:      backend.String(),
			Name:     p.Name,
			Baud:     p.BaudRate,
			MaxTrack: p.MaxTrack,
			VolumeLo: p.Quietest(),
			VolumeHi: p.Loudest(),
			SettleMs: uint32(p.SettleTime),
		})
	}

	if b.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHOICE\tKEY\tNAME\tBAUD\tMAX TRACK\tVOLUME\tSETTLE")
	for _, r := range rows {
		baud := "-"
		if r.Baud > 0 {
			baud = fmt.Sprintf("%d", r.Baud)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d..%d\t%dms\n",
			r.Choice, r.Key, r.Name, baud, r.MaxTrack, r.VolumeLo, r.VolumeHi, r.SettleMs)
	}
	return w.Flush()
}
