package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/ocr"
	"github.com/trenthp/raiderCompanion/internal/stash"
)

const ocrTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateProcessing
	importStateResults
	importStateDone
)

type ImportModel struct {
	CommonModel
	pipeline   *ocr.Pipeline
	catalogSvc *catalog.Service
	stashSvc   *stash.Service
	userID     string

	state       importState
	filePicker  filepicker.Model
	resultTable table.Model
	results     []ocr.MatchResult

	status string
	err    error
}

func NewImportModel(pipeline *ocr.Pipeline, catalogSvc *catalog.Service, stashSvc *stash.Service, userID string) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{".png", ".jpg", ".jpeg"}
	fp.SetHeight(15)

	return ImportModel{
		pipeline:   pipeline,
		catalogSvc: catalogSvc,
		stashSvc:   stashSvc,
		userID:     userID,
		filePicker: fp,
	}
}

func (m ImportModel) Title() string { return "Import Stash Screenshot" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateResults:
		return "Enter: confirm matches | Esc: discard"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateResults {
			if msg.Type == tea.KeyEnter {
				m.state = importStateDone
				m.status = "Confirming matches..."

				return m, m.confirmCmd()
			}

			var cmd tea.Cmd
			m.resultTable, cmd = m.resultTable.Update(msg)

			return m, cmd
		}

	case scanResultMsg:
		if msg.err != nil {
			m.state = importStateDone
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.results) == 0 {
			m.state = importStateDone
			m.status = "No items recognized in screenshot."

			return m, nil
		}

		m.results = msg.results
		m.state = importStateResults
		m.resultTable = newResultTable(m.results)

		return m, nil

	case importConfirmedMsg:
		m.state = importStateDone
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Added %d items to stash.", msg.confirmed)
		if len(msg.flagged) > 0 {
			m.status += fmt.Sprintf(" %d need manual review.", len(msg.flagged))
			return m, reviewRequest(msg.flagged)
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateProcessing
		m.status = fmt.Sprintf("Scanning %s...", path)

		return m, m.scanCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateResults, importStateDone:
		m.state = importStateFilePick
		m.results = nil
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a stash screenshot:\n\n%s", m.filePicker.View()),
		)
	case importStateProcessing:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResults:
		return lipgloss.NewStyle().Padding(1).Render(
			"Recognized items:\n\n" + m.resultTable.View() +
				"\n\nEnter: add matched items to stash (flagged rows go to review)",
		)
	case importStateDone:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

func newResultTable(results []ocr.MatchResult) table.Model {
	columns := []table.Column{
		{Title: "Text", Width: 30},
		{Title: "Qty", Width: 5},
		{Title: "Match", Width: 24},
		{Title: "Confidence", Width: 10},
		{Title: "Review", Width: 8},
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		review := ""
		if r.RequiresManualConfirmation {
			review = "yes"
		}

		rows = append(rows, table.Row{
			r.Text,
			fmt.Sprintf("%d", r.Quantity),
			r.MatchedItemID,
			FormatConfidence(r.Confidence),
			review,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
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

	return t
}

// Messages

type scanResultMsg struct {
	results []ocr.MatchResult
	err     error
}

type importConfirmedMsg struct {
	confirmed int
	flagged   []ocr.MatchResult
	err       error
}

// ReviewRequestMsg asks the root model to open the review view for
// matches that need manual confirmation.
type ReviewRequestMsg struct {
	Flagged []ocr.MatchResult
}

func reviewRequest(flagged []ocr.MatchResult) tea.Cmd {
	return func() tea.Msg {
		return ReviewRequestMsg{Flagged: flagged}
	}
}

func (m ImportModel) scanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return scanResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), ocrTimeout)
		defer cancel()

		snapshot, err := m.catalogSvc.Snapshot(ctx)
		if err != nil {
			return scanResultMsg{err: err}
		}

		results, err := m.pipeline.ProcessImage(ctx, f, snapshot)
		if err != nil {
			return scanResultMsg{err: err}
		}

		return scanResultMsg{results: results}
	}
}

func (m ImportModel) confirmCmd() tea.Cmd {
	results := m.results

	return func() tea.Msg {
		var (
			params  []stash.ConfirmParams
			flagged []ocr.MatchResult
		)

		for _, r := range results {
			if r.RequiresManualConfirmation || r.MatchedItemID == "" {
				flagged = append(flagged, r)
				continue
			}

			params = append(params, stash.ConfirmParams{
				ItemID:   r.MatchedItemID,
				Quantity: r.Quantity,
				Source:   stash.SourceOCRImport,
			})
		}

		if len(params) == 0 {
			return importConfirmedMsg{flagged: flagged}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.stashSvc.ConfirmBatch(ctx, m.userID, params)
		if err != nil {
			return importConfirmedMsg{err: err}
		}

		return importConfirmedMsg{confirmed: len(entries), flagged: flagged}
	}
}
