package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/theme"
)

const (
	maxHistory     = 8
	meterWidth     = 20
	statusInterval = 250 * time.Millisecond
)

// SoundController is the console's view of a running sound session
type SoundController interface {
	Dispatch(ctx context.Context, command string) (bool, error)
	Status(ctx context.Context) (domain.SoundStatus, error)
}

type statusMsg struct {
	status domain.SoundStatus
	err    error
}

type dispatchedMsg struct {
	command string
	handled bool
	err     error
}

type historyEntry struct {
	command string
	handled bool
}

// Console is the soundboard TUI
type Console struct {
	ctx        context.Context
	controller SoundController
	err        error
	help       help.Model
	history    []historyEntry
	input      textinput.Model
	keys       ConsoleKeys
	status     domain.SoundStatus
	subtitle   string
	typing     bool
	width      int
}

// NewConsole creates a console driving controller. subtitle names the port or endpoint.
func NewConsole(ctx context.Context, controller SoundController, subtitle string) *Console {
	input := textinput.New()
	input.Prompt = theme.PromptStyle.Render("$ ")
	input.Placeholder = "25, G, VV10, R ..."
	input.CharLimit = 8

	return &Console{
		ctx:        ctx,
		controller: controller,
		help:       help.New(),
		input:      input,
		keys:       NewConsoleKeys(),
		subtitle:   subtitle,
	}
}

func (c *Console) Init() tea.Cmd {
	return tea.Batch(c.fetchStatus(), c.tick())
}

func (c *Console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.help.Width = msg.Width
		return c, nil

	case statusMsg:
		if msg.err != nil {
			c.err = msg.err
			return c, nil
		}
		c.status = msg.status
		return c, nil

	case tickMsg:
		return c, tea.Batch(c.fetchStatus(), c.tick())

	case dispatchedMsg:
		if msg.err != nil {
			c.err = msg.err
			return c, nil
		}
		c.record(msg.command, msg.handled)
		return c, c.fetchStatus()

	case tea.KeyMsg:
		if c.typing {
			return c.updateInput(msg)
		}
		return c.updateKeys(msg)
	}
	return c, nil
}

func (c *Console) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return c, tea.Quit
	case key.Matches(msg, c.keys.Help):
		c.help.ShowAll = !c.help.ShowAll
		return c, nil
	case key.Matches(msg, c.keys.Command):
		c.typing = true
		c.input.Reset()
		return c, c.input.Focus()
	}

	if cmd := c.keys.commandFor(msg); cmd != "" {
		return c, c.dispatch(cmd)
	}
	return c, nil
}

func (c *Console) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		c.typing = false
		c.input.Blur()
		return c, nil
	case tea.KeyEnter:
		c.typing = false
		c.input.Blur()
		text := strings.TrimSpace(c.input.Value())
		if text == "" {
			return c, nil
		}
		if !strings.HasPrefix(text, "$") {
			text = "$" + text
		}
		return c, c.dispatch(text)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Console) dispatch(command string) tea.Cmd {
	return func() tea.Msg {
		handled, err := c.controller.Dispatch(c.ctx, command)
		logging.Logger.Debug("Console command", "command", command, "handled", handled)
		return dispatchedMsg{command: command, handled: handled, err: err}
	}
}

func (c *Console) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := c.controller.Status(c.ctx)
		return statusMsg{status: status, err: err}
	}
}

type tickMsg time.Time

func (c *Console) tick() tea.Cmd {
	return tea.Tick(statusInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (c *Console) record(command string, handled bool) {
	c.history = append(c.history, historyEntry{command: command, handled: handled})
	if len(c.history) > maxHistory {
		c.history = c.history[len(c.history)-maxHistory:]
	}
}

func (c *Console) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(false, c.subtitle))
	b.WriteString("\n")
	b.WriteString(theme.PanelStyle.Render(c.renderStatus()))
	b.WriteString("\n")

	for _, h := range c.history {
		mark := theme.HandledStyle.Render("OK")
		if !h.handled {
			mark = theme.UnhandledStyle.Render("? ")
		}
		b.WriteString(fmt.Sprintf(" %s %s\n", mark, theme.HistoryStyle.Render(h.command)))
	}

	if c.typing {
		b.WriteString("\n" + c.input.View() + "\n")
	}
	if c.err != nil {
		b.WriteString("\n" + formatErrorForDisplay(c.err, c.width) + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(c.help.View(c.keys)))
	return b.String()
}

func (c *Console) renderStatus() string {
	s := c.status
	random := theme.IdleStyle.Render("idle")
	if s.RandomArmed {
		random = theme.ArmedStyle.Render(fmt.Sprintf("armed, next in %.1fs", float64(s.RandomDueIn)/1000))
	}

	last := "-"
	if s.LastTrack > 0 {
		last = fmt.Sprintf("%d", s.LastTrack)
	}

	rows := []string{
		row("Backend", fmt.Sprintf("%s (%s)", s.Backend.Name(), s.Backend)),
		row("Volume", renderMeter(s.Volume)+fmt.Sprintf(" %3d%%", s.Volume.Percent())),
		row("Last track", last),
		row("Random", random),
		row("Range", fmt.Sprintf("%s %d-%d, %d-%dms", s.RandomMode, s.RandomLo, s.RandomHi, s.RandomMinDelay, s.RandomMaxDelay)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func row(label, value string) string {
	return theme.LabelStyle.Render(label) + theme.ValueStyle.Render(value)
}

func renderMeter(v domain.Volume) string {
	full := int(float64(v.Clamp())*meterWidth + 0.5)
	return theme.MeterFullStyle.Render(strings.Repeat("█", full)) +
		theme.MeterEmptyStyle.Render(strings.Repeat("░", meterWidth-full))
}
