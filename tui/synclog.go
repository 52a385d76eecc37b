// Package tui renders the live sync-log view for a running channel sync.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PriyanshAroraa/CreatorPulse/model"
	"github.com/PriyanshAroraa/CreatorPulse/stream"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)

	levelStyles = map[model.LogLevel]lipgloss.Style{
		model.LogInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		model.LogSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		model.LogWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		model.LogError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// RunSyncLog opens the stream for channelID and runs the watcher until the
// user quits. The stream is closed on every exit path.
func RunSyncLog(ctx context.Context, ls *stream.LogStream, channelID, channelName string) error {
	if err := ls.Open(ctx, channelID); err != nil {
		return err
	}
	defer ls.Close()

	m := newSyncLogModel(ls, channelName)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("sync log view failed: %w", err)
	}
	return nil
}

type streamUpdateMsg struct{}

type syncLogModel struct {
	stream      *stream.LogStream
	channelName string
	spin        spinner.Model
	width       int
	height      int
}

func newSyncLogModel(ls *stream.LogStream, channelName string) syncLogModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return syncLogModel{
		stream:      ls,
		channelName: channelName,
		spin:        sp,
	}
}

func waitForUpdate(ls *stream.LogStream) tea.Cmd {
	return func() tea.Msg {
		<-ls.Notify()
		return streamUpdateMsg{}
	}
}

func (m syncLogModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForUpdate(m.stream))
}

func (m syncLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stream.Close()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case streamUpdateMsg:
		return m, waitForUpdate(m.stream)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m syncLogModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Sync log: " + m.channelName))
	b.WriteString("  ")
	state := m.stream.State()
	if state == stream.StateConnecting || state == stream.StateStreaming {
		b.WriteString(m.spin.View())
	}
	b.WriteString(stateStyle.Render(state.String()))
	b.WriteString("\n\n")

	entries := m.stream.Entries()
	limit := len(entries)
	if m.height > 6 && limit > m.height-6 {
		limit = m.height - 6
	}
	for _, entry := range entries[:limit] {
		style, ok := levelStyles[entry.Level]
		if !ok {
			style = levelStyles[model.LogInfo]
		}
		ts := ""
		if !entry.CreatedAt.IsZero() {
			ts = timeStyle.Render(entry.CreatedAt.Format("15:04:05")) + " "
		}
		b.WriteString(ts + style.Render(entry.Message) + "\n")
	}
	if len(entries) == 0 {
		b.WriteString(stateStyle.Render("waiting for log events..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}
