package cli

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/animation"
	"github.com/01wneo/RollingText/pkg/errors"
	"github.com/01wneo/RollingText/pkg/measure"
	"github.com/01wneo/RollingText/pkg/observability"
	"github.com/01wneo/RollingText/pkg/render/terminal"
	"github.com/01wneo/RollingText/pkg/rolling"
)

// TUI styles
var (
	tuiBaselineStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	tuiFadedStyle    = lipgloss.NewStyle().Foreground(colorDim)
	tuiFrameStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 2)
)

// =============================================================================
// AnimateModel - Interactive rolling text
// =============================================================================

// frameMsg is delivered once per animation tick.
type frameMsg time.Time

// AnimateModel is the bubbletea model for the animate command. It cycles
// through a list of texts and lets numeric texts be stepped up and down.
type AnimateModel struct {
	Text     *rolling.Text
	Timeline animation.Timeline
	FPS      int
	Texts    []string
	Index    int
	Strategy string

	start   time.Time
	running bool
	frames  int
	err     error
}

// NewAnimateModel creates a model that starts rolling towards texts[0].
func NewAnimateModel(txt *rolling.Text, player animation.Player, strategy string, texts []string) (AnimateModel, error) {
	m := AnimateModel{
		Text:     txt,
		Timeline: player.Timeline,
		FPS:      player.FPS,
		Texts:    texts,
		Strategy: strategy,
	}
	if m.FPS <= 0 {
		m.FPS = animation.DefaultFPS
	}
	if err := m.retarget(texts[0]); err != nil {
		return m, err
	}
	return m, nil
}

// Err returns the error that stopped the model, if any.
func (m AnimateModel) Err() error { return m.err }

func (m AnimateModel) Init() tea.Cmd {
	return m.tick()
}

func (m AnimateModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.FPS), func(t time.Time) tea.Msg { return frameMsg(t) })
}

// retarget starts a transition from wherever the text is now.
func (m *AnimateModel) retarget(target string) error {
	if err := errors.ValidateText(target); err != nil {
		return err
	}
	from := m.Text.CurrentText()
	if err := m.Text.SetText(target); err != nil {
		return err
	}
	observability.Animation().OnAnimationStart(context.Background(), from, target, m.Text.Len())
	m.start = time.Now()
	m.frames = 0
	m.running = true
	return nil
}

// goTo retargets and restarts the tick loop when it had stopped.
func (m AnimateModel) goTo(target string) (tea.Model, tea.Cmd) {
	wasRunning := m.running
	if err := m.retarget(target); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if wasRunning {
		return m, nil
	}
	return m, m.tick()
}

func (m AnimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "right", "l", "n":
			m.Index = (m.Index + 1) % len(m.Texts)
			return m.goTo(m.Texts[m.Index])
		case "left", "h", "p":
			m.Index = (m.Index - 1 + len(m.Texts)) % len(m.Texts)
			return m.goTo(m.Texts[m.Index])
		case "up", "k", "+":
			if next, ok := stepNumber(m.Text.Text(), 1); ok {
				return m.goTo(next)
			}
		case "down", "j", "-":
			if next, ok := stepNumber(m.Text.Text(), -1); ok {
				return m.goTo(next)
			}
		}
	case frameMsg:
		if !m.running {
			return m, nil
		}
		elapsed := time.Since(m.start)
		progress := m.Timeline.Progress(elapsed)
		if progress >= 1 {
			m.Text.End()
			m.running = false
			observability.Animation().OnAnimationEnd(context.Background(), m.frames, elapsed, nil)
			return m, nil
		}
		if err := m.Text.Update(progress); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frames++
		observability.Animation().OnFrame(context.Background(), m.frames, progress)
		return m, m.tick()
	}
	return m, nil
}

func (m AnimateModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Rolling Text"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.Strategy))
	b.WriteString("\n\n")

	view := terminal.View(m.Text.Snapshot(), terminal.Options{
		Reach:    1,
		Baseline: tuiBaselineStyle,
		Faded:    tuiFadedStyle,
	})
	b.WriteString(tuiFrameStyle.Render(view))
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d] %s", m.Index+1, len(m.Texts), m.Texts[m.Index])))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  ←/→ previous/next  ↑/↓ count  q quit"))
	b.WriteString("\n")

	return b.String()
}

// stepNumber adds delta to s when s is a decimal integer.
func stepNumber(s string, delta int64) (string, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", false
	}
	return n.Add(n, big.NewInt(delta)).String(), true
}

// =============================================================================
// animate command
// =============================================================================

// animateCommand creates the interactive animate command.
func (c *CLI) animateCommand() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "animate TEXT [TEXT...]",
		Short: "Animate text changes interactively in the terminal",
		Long: `Open an interactive view that rolls to the first TEXT. Use the arrow keys
to move between texts, or to count up and down when the text is a number.`,
		Example: `  rollingtext animate 0 42 1337
  rollingtext animate --strategy carry-bit --easing spring 999`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			txt, err := cfg.NewText(measure.Cells{})
			if err != nil {
				return err
			}
			player, err := cfg.Player()
			if err != nil {
				return err
			}

			m, err := NewAnimateModel(txt, player, cfg.Strategy, args)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run animation: %w", err)
			}
			if fm, ok := final.(AnimateModel); ok && fm.Err() != nil {
				return fm.Err()
			}
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}
