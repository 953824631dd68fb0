package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg carries one polled snapshot of the node's network status.
type StatusMsg struct {
	Listening bool
	Peers     uint64
	Block     uint64
	ErrMsg    string
}

// NetTypeMsg delivers the one-time network classification result.
type NetTypeMsg struct {
	Type string
}

// WatchModel is the Bubble Tea model for the live network status view.
type WatchModel struct {
	Endpoint string
	Interval time.Duration

	NetType   string
	Status    StatusMsg
	hasStatus bool
	updatedAt time.Time
	frame     int
	Quitting  bool
}

type watchTickMsg struct{}

func watchSpinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return watchTickMsg{}
	})
}

func (m WatchModel) Init() tea.Cmd { return watchSpinTick() }

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		}

	case watchTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, watchSpinTick()

	case StatusMsg:
		m.Status = msg
		m.hasStatus = true
		m.updatedAt = time.Now()

	case NetTypeMsg:
		m.NetType = msg.Type
	}

	return m, nil
}

func (m WatchModel) View() string {
	if m.Quitting {
		return ""
	}

	var sb strings.Builder

	spin := StyleNet.Render(spinnerFrames[m.frame])
	sb.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		spin,
		StyleTitle.Render("w3net watch"),
		Meta(m.Endpoint),
	))

	if !m.hasStatus {
		sb.WriteString(Meta("waiting for first sample…") + "\n")
		return StyleBorder.Render(sb.String())
	}

	listening := Err("not listening")
	if m.Status.Listening {
		listening = Success("listening")
	}

	netType := m.NetType
	if netType == "" {
		netType = "…"
	}

	pairs := [][2]string{
		{"Network", netType},
		{"Status", listening},
		{"Peers", fmt.Sprintf("%d", m.Status.Peers)},
		{"Head block", fmt.Sprintf("#%d", m.Status.Block)},
		{"Updated", m.updatedAt.Format("15:04:05")},
	}
	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			StyleMeta.Render(fmt.Sprintf("%-12s", p[0]+":")),
			StyleValue.Render(p[1]),
		))
	}

	if m.Status.ErrMsg != "" {
		sb.WriteString("\n  " + Err(m.Status.ErrMsg) + "\n")
	}

	sb.WriteString("\n" + Meta(fmt.Sprintf("refresh %s · q to quit", m.Interval)))
	return StyleBorder.Render(sb.String())
}
