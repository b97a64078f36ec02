package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/stash"
)

type StashModel struct {
	CommonModel
	stashSvc   *stash.Service
	catalogSvc *catalog.Service
	userID     string

	table     table.Model
	entries   []*stash.Entry
	itemNames map[string]string

	loading bool
	err     error
	status  string
}

func NewStashModel(stashSvc *stash.Service, catalogSvc *catalog.Service, userID string) StashModel {
	columns := []table.Column{
		{Title: "Item", Width: 30},
		{Title: "Quantity", Width: 10},
		{Title: "Source", Width: 14},
		{Title: "Added", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return StashModel{
		stashSvc:   stashSvc,
		catalogSvc: catalogSvc,
		userID:     userID,
		table:      t,
		loading:    true,
	}
}

func (m StashModel) Title() string { return "Browse Stash" }

func (m StashModel) ShortHelp() string {
	return "Esc: back | r: refresh | d: remove entry"
}

func (m StashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m StashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stashLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.entries = msg.entries
		m.itemNames = msg.itemNames
		m.status = ""
		m.refreshTable()

		return m, nil

	case stashRemovedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error removing: %v", msg.err)
			return m, nil
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "d":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.entries) {
				return m, nil
			}

			return m, m.removeCmd(m.entries[idx].ItemID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m StashModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading stash...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *StashModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		name := m.itemNames[e.ItemID]
		if name == "" {
			name = e.ItemID
		}

		rows = append(rows, table.Row{
			name,
			fmt.Sprintf("%d", e.Quantity),
			string(e.Source),
			FormatDate(e.AddedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type stashLoadedMsg struct {
	entries   []*stash.Entry
	itemNames map[string]string
	err       error
}

func (m StashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.stashSvc.List(ctx, m.userID)
		if err != nil {
			return stashLoadedMsg{err: err}
		}

		snapshot, err := m.catalogSvc.Snapshot(ctx)
		if err != nil {
			return stashLoadedMsg{err: err}
		}

		names := make(map[string]string, len(snapshot))
		for _, e := range snapshot {
			names[e.ID] = e.Name
		}

		return stashLoadedMsg{entries: entries, itemNames: names}
	}
}

type stashRemovedMsg struct {
	err error
}

func (m StashModel) removeCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return stashRemovedMsg{err: m.stashSvc.Remove(ctx, m.userID, itemID)}
	}
}
