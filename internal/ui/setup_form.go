package ui

import (
	"fmt"
	"math"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
)

// SetupFormResult contains the outcome of the setup form
type SetupFormResult struct {
	Cancelled   bool
	Error       error
	Preferences domain.Preferences
}

// SetupForm asks for a backend, port and playback tuning and produces preferences
type SetupForm struct {
	Completed bool
	backend   string
	delayHi   string
	delayLo   string
	form      *huh.Form
	mode      string
	port      string
	prefs     domain.Preferences
	random    bool
	result    SetupFormResult
	startup   string
	trackHi   string
	trackLo   string
	volume    int
}

// NewSetupForm builds the form pre-filled from current. ports are offered as suggestions.
func NewSetupForm(current domain.Preferences, ports []string) *SetupForm {
	sf := &SetupForm{
		backend: current.Backend.String(),
		delayHi: strconv.FormatUint(uint64(current.RandomMaxDelay), 10),
		delayLo: strconv.FormatUint(uint64(current.RandomMinDelay), 10),
		mode:    string(current.RandomMode),
		port:    current.Port,
		prefs:   current,
		random:  current.RandomEnabled,
		startup: strconv.Itoa(current.StartupTrack),
		trackHi: strconv.Itoa(int(current.RandomHi)),
		trackLo: strconv.Itoa(int(current.RandomLo)),
		volume:  current.Volume.Percent(),
	}
	if sf.mode == "" {
		sf.mode = string(domain.RandomRange)
	}

	backendOptions := make([]huh.Option[string], 0, len(domain.Backends))
	for _, b := range domain.Backends {
		backendOptions = append(backendOptions, huh.NewOption(fmt.Sprintf("%d) %s", int(b), b.Name()), b.String()))
	}

	volumeOptions := make([]huh.Option[int], 0, domain.VolumeSteps+1)
	for step := domain.VolumeSteps; step >= 0; step-- {
		pct := step * 100 / domain.VolumeSteps
		volumeOptions = append(volumeOptions, huh.NewOption(fmt.Sprintf("%d%%", pct), pct))
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sound module").
				Options(backendOptions...).
				Value(&sf.backend),
			huh.NewInput().
				Title("Serial port").
				Description("Device path, or \"loopback\" for a virtual port").
				Suggestions(ports).
				Value(&sf.port),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Volume").
				Options(volumeOptions...).
				Value(&sf.volume),
			huh.NewInput().
				Title("Startup track").
				Description("-1 for none").
				Validate(validateInt(-1, 65535)).
				Value(&sf.startup),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play random sounds on start?").
				Value(&sf.random),
			huh.NewSelect[string]().
				Title("Random mode").
				Options(
					huh.NewOption("Track range", string(domain.RandomRange)),
					huh.NewOption("Legacy bank pool", string(domain.RandomBanks)),
				).
				Value(&sf.mode),
			huh.NewInput().Title("Lowest random track").Validate(validateInt(1, 65535)).Value(&sf.trackLo),
			huh.NewInput().Title("Highest random track").Validate(validateInt(1, 65535)).Value(&sf.trackHi),
			huh.NewInput().Title("Shortest pause (ms)").Validate(validateInt(0, math.MaxInt32)).Value(&sf.delayLo),
			huh.NewInput().Title("Longest pause (ms)").Validate(validateInt(0, math.MaxInt32)).Value(&sf.delayHi),
		),
	)

	return sf
}

func validateInt(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func (sf *SetupForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SetupForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, tea.Quit
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		prefs, err := sf.collect()
		if err != nil {
			logging.Logger.Error("Invalid setup answers", "error", err)
			sf.result.Error = err
		}
		sf.result.Preferences = prefs
		return sf, tea.Quit
	}

	return sf, cmd
}

func (sf *SetupForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

// Result returns the form result
func (sf *SetupForm) Result() SetupFormResult {
	return sf.result
}

// collect turns the raw answers into preferences
func (sf *SetupForm) collect() (domain.Preferences, error) {
	p := sf.prefs

	backend, err := domain.ParseBackend(sf.backend)
	if err != nil {
		return p, err
	}
	mode, err := domain.ParseRandomMode(sf.mode)
	if err != nil {
		return p, err
	}

	ints := map[string]*string{
		"startup track":  &sf.startup,
		"lowest track":   &sf.trackLo,
		"highest track":  &sf.trackHi,
		"shortest pause": &sf.delayLo,
		"longest pause":  &sf.delayHi,
	}
	parsed := make(map[string]int, len(ints))
	for name, raw := range ints {
		n, err := strconv.Atoi(*raw)
		if err != nil {
			return p, fmt.Errorf("%s: %w", name, err)
		}
		parsed[name] = n
	}

	p.Backend = backend
	p.Port = sf.port
	p.RandomEnabled = sf.random
	p.RandomMode = mode
	p.StartupTrack = parsed["startup track"]
	p.RandomLo = uint16(parsed["lowest track"])
	p.RandomHi = uint16(parsed["highest track"])
	p.RandomMinDelay = uint32(parsed["shortest pause"])
	p.RandomMaxDelay = uint32(parsed["longest pause"])
	p.Volume = domain.Volume(float64(sf.volume) / 100)
	return p, nil
}
