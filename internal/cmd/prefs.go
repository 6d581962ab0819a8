package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
)

// PrefsCmd manages stored preference profiles
type PrefsCmd struct {
	Delete PrefsDeleteCmd `cmd:"delete" aliases:"del" help:"Delete a profile"`
	List   PrefsListCmd   `cmd:"list" help:"List stored profiles" default:"1"`
	Set    PrefsSetCmd    `cmd:"set" help:"Create or update a profile"`
	Show   PrefsShowCmd   `cmd:"show" help:"Show one profile"`
}

// PrefsListCmd lists profiles
type PrefsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// PrefsShowCmd shows a profile (defaults when it was never saved)
type PrefsShowCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Profile string `arg:"" optional:"" help:"Profile name" default:"default"`
}

// PrefsSetCmd updates the named fields of a profile, keeping the rest
type PrefsSetCmd struct {
	Profile string `arg:"" optional:"" help:"Profile name" default:"default"`

	Backend        *string  `help:"Sound module key (${backends}) or choice number"`
	Port           *string  `help:"Serial device, or \"loopback\""`
	Random         string   `help:"Start random playback when a session begins: on or off"`
	RandomHi       *uint16  `help:"Highest random track"`
	RandomLo       *uint16  `help:"Lowest random track"`
	RandomMaxDelay *uint32  `help:"Longest pause between random tracks (ms)"`
	RandomMinDelay *uint32  `help:"Shortest pause between random tracks (ms)"`
	RandomMode     *string  `help:"Random mode: range or banks"`
	Startup        *int     `help:"Startup track (-1 for none)"`
	Volume         *float64 `help:"Volume between 0.0 and 1.0"`
}

// PrefsDeleteCmd deletes a profile
type PrefsDeleteCmd struct {
	Profile string `arg:"" help:"Profile name"`
}

// Run executes the list command
func (p *PrefsListCmd) Run(cli *CLI) error {
	all, err := cli.Container.PreferencesService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if p.Format == "json" {
		return printJSON(all)
	}
	if len(all) == 0 {
		fmt.Println("No stored profiles. Use 'droidsound setup' or 'droidsound prefs set'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tBACKEND\tPORT\tVOLUME\tSTARTUP\tRANDOM\tUPDATED")
	for _, prefs := range all {
		random := "off"
		if prefs.RandomEnabled {
			random = string(prefs.RandomMode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%d\t%s\t%s\n",
			prefs.Profile, prefs.Backend, orDash(prefs.Port), prefs.Volume.Percent(),
			prefs.StartupTrack, random, prefs.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// Run executes the show command
func (p *PrefsShowCmd) Run(cli *CLI) error {
	prefs, err := cli.Container.PreferencesService.Load(context.Background(), p.Profile)
	if err != nil {
		return err
	}
	if p.Format == "json" {
		return printJSON(prefs)
	}
	printPreferences(prefs)
	return nil
}

// Run executes the set command
func (p *PrefsSetCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.PreferencesService

	prefs, err := svc.Load(ctx, p.Profile)
	if err != nil {
		return err
	}
	if err := p.apply(&prefs); err != nil {
		return err
	}

	logging.Logger.Info("Saving preferences", "profile", prefs.Profile, "backend", prefs.Backend.String())
	if err := svc.Save(ctx, prefs); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	saved, err := svc.Load(ctx, prefs.Profile)
	if err != nil {
		return err
	}
	printPreferences(saved)
	return nil
}

func (p *PrefsSetCmd) apply(prefs *domain.Preferences) error {
	if p.Backend != nil {
		b, err := domain.ParseBackend(*p.Backend)
		if err != nil {
			return err
		}
		prefs.Backend = b
	}
	if p.RandomMode != nil {
		mode, err := domain.ParseRandomMode(*p.RandomMode)
		if err != nil {
			return err
		}
		prefs.RandomMode = mode
	}
	if p.Port != nil {
		prefs.Port = *p.Port
	}
	switch p.Random {
	case "":
	case "on":
		prefs.RandomEnabled = true
	case "off":
		prefs.RandomEnabled = false
	default:
		return fmt.Errorf("--random must be on or off, got %q", p.Random)
	}
	if p.RandomLo != nil {
		prefs.RandomLo = *p.RandomLo
	}
	if p.RandomHi != nil {
		prefs.RandomHi = *p.RandomHi
	}
	if p.RandomMinDelay != nil {
		prefs.RandomMinDelay = *p.RandomMinDelay
	}
	if p.RandomMaxDelay != nil {
		prefs.RandomMaxDelay = *p.RandomMaxDelay
	}
	if p.Startup != nil {
		prefs.StartupTrack = *p.Startup
	}
	if p.Volume != nil {
		prefs.Volume = domain.Volume(*p.Volume)
	}
	return nil
}

// Run executes the delete command
func (p *PrefsDeleteCmd) Run(cli *CLI) error {
	err := cli.Container.PreferencesService.Delete(context.Background(), p.Profile)
	if errors.Is(err, domain.ErrPreferencesNotFound) {
		return fmt.Errorf("profile %q not found", p.Profile)
	}
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	fmt.Printf("Profile '%s' deleted\n", p.Profile)
	return nil
}

func printPreferences(prefs domain.Preferences) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Profile:\t%s\n", prefs.Profile)
	fmt.Fprintf(w, "Backend:\t%s (%s)\n", prefs.Backend, prefs.Backend.Name())
	fmt.Fprintf(w, "Port:\t%s\n", orDash(prefs.Port))
	fmt.Fprintf(w, "Volume:\t%d%%\n", prefs.Volume.Percent())
	fmt.Fprintf(w, "Startup track:\t%d\n", prefs.StartupTrack)
	fmt.Fprintf(w, "Random:\t%t (%s)\n", prefs.RandomEnabled, prefs.RandomMode)
	fmt.Fprintf(w, "Random tracks:\t%d-%d\n", prefs.RandomLo, prefs.RandomHi)
	fmt.Fprintf(w, "Random pause:\t%d-%dms\n", prefs.RandomMinDelay, prefs.RandomMaxDelay)
	w.Flush()
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
