// This file is part of Gamepads.
//
// Gamepads is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepads is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepads.  If not, see <https://www.gnu.org/licenses/>.

// Package view is a live terminal display of the gamepad Registry. It
// subscribes to a provider.Provider and redraws every time the Registry
// changes.
package view

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gamepads/config"
	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/logger"
	"github.com/jetsetilly/gamepads/provider"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	pressedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(4)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// width of an axis bar not including the brackets
const barWidth = 21

type registryMsg struct {
	reg gamepad.Registry
}

type closedMsg struct{}

func waitForRegistry(s *provider.Subscription) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-s.C
		if !ok {
			return closedMsg{}
		}
		return registryMsg{reg: r}
	}
}

// Model implements the bubbletea Model interface.
type Model struct {
	sub    *provider.Subscription
	cfg    config.ViewConfig
	reg    gamepad.Registry
	width  int
	closed bool
}

// NewModel is the preferred method of initialisation for the Model type.
func NewModel(sub *provider.Subscription, cfg config.ViewConfig) Model {
	return Model{
		sub: sub,
		cfg: cfg,
	}
}

// Init implements the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return waitForRegistry(m.sub)
}

// Update implements the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			logger.Clear()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case registryMsg:
		m.reg = msg.reg
		return m, waitForRegistry(m.sub)
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements the tea.Model interface.
func (m Model) View() string {
	s := strings.Builder{}
	s.WriteString(titleStyle.Render(fmt.Sprintf("gamepads (%d attached)", m.reg.Len())))
	s.WriteString("\n")

	if m.reg.Len() == 0 {
		s.WriteString(dimStyle.Render("no controllers. press a button on a controller to wake it"))
		s.WriteString("\n")
	}

	panels := make([]string, 0, m.reg.Len())
	for _, p := range m.reg.Snapshots() {
		panels = append(panels, panelStyle.Render(renderSnapshot(p, m.cfg.AxisBars)))
	}
	if len(panels) > 0 {
		s.WriteString(lipgloss.JoinVertical(lipgloss.Left, panels...))
		s.WriteString("\n")
	}

	if m.cfg.LogLines > 0 {
		w := &strings.Builder{}
		logger.Tail(w, m.cfg.LogLines)
		s.WriteString(dimStyle.Render(strings.TrimRight(w.String(), "\n")))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("c: clear log  q: quit"))

	return s.String()
}

func renderSnapshot(p gamepad.Snapshot, axisBars bool) string {
	s := strings.Builder{}
	s.WriteString(headerStyle.Render(fmt.Sprintf("%d  %s", p.Index, p.ID)))
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("btn"))
	for i, b := range p.Buttons {
		label := fmt.Sprintf("%2d", i)
		if b.Pressed {
			s.WriteString(pressedStyle.Render(label))
		} else {
			s.WriteString(idleStyle.Render(label))
		}
		s.WriteRune(' ')
	}

	for i, a := range p.Axes {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("ax%d", i)))
		if axisBars {
			s.WriteString(axisBar(a))
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%+.2f", a))
	}

	return s.String()
}

// axisBar draws the axis value as a horizontal bar filling from the centre
func axisBar(v float64) string {
	if v < -1.0 {
		v = -1.0
	} else if v > 1.0 {
		v = 1.0
	}

	centre := barWidth / 2
	pos := centre + int(v*float64(centre))

	b := []rune(strings.Repeat("-", barWidth))
	b[centre] = '|'
	if pos < centre {
		for i := pos; i < centre; i++ {
			b[i] = '#'
		}
	} else {
		for i := centre + 1; i <= pos; i++ {
			b[i] = '#'
		}
	}

	return fmt.Sprintf("[%s]", string(b))
}

// Run the view until the user quits, the context is done or the Provider is
// closed. The Subscription is cancelled before Run() returns.
func Run(ctx context.Context, p *provider.Provider, cfg config.ViewConfig) error {
	sub := p.Subscribe()
	defer sub.Cancel()

	prg := tea.NewProgram(NewModel(sub, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prg.Run()
	if err != nil && ctx.Err() != nil {
		// context cancellation is the normal way for the view to end when
		// run as part of a larger program
		return nil
	}
	return err
}
