package view

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/correction"
	"github.com/trenthp/raiderCompanion/internal/ocr"
	"github.com/trenthp/raiderCompanion/internal/stash"
)

const maxSuggestions = 8

// skipOption marks the "none of these" choice in the picker form.
const skipOption = ""

type ReviewModel struct {
	CommonModel
	catalogSvc    *catalog.Service
	stashSvc      *stash.Service
	correctionSvc *correction.Service
	userID        string

	queue    []ocr.MatchResult
	current  *ocr.MatchResult
	snapshot []catalog.Entry

	form     *huh.Form
	selected string

	status     string
	loading    bool
	totalCount int
}

func NewReviewModel(
	catalogSvc *catalog.Service,
	stashSvc *stash.Service,
	correctionSvc *correction.Service,
	userID string,
	flagged []ocr.MatchResult,
) ReviewModel {
	return ReviewModel{
		catalogSvc:    catalogSvc,
		stashSvc:      stashSvc,
		correctionSvc: correctionSvc,
		userID:        userID,
		queue:         flagged,
		totalCount:    len(flagged),
		loading:       true,
		status:        "Loading catalog...",
	}
}

func (m ReviewModel) Title() string { return "Review Matches" }

func (m ReviewModel) ShortHelp() string {
	return "Navigate form | Enter: confirm | Esc: back"
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadCatalogCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			return m, Back
		}

	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading catalog: %v", msg.err)
			return m, nil
		}

		m.snapshot = msg.snapshot

		return m.next()

	case suggestionMsg:
		return m.buildForm(msg.itemID)

	case correctionSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		return m.next()
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	current := *m.current
	chosen := m.form.GetString("item")
	m.form = nil

	if chosen == skipOption {
		return m.next()
	}

	return m, m.saveCmd(current, chosen)
}

func (m ReviewModel) next() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.current = nil
		m.form = nil
		m.status = "All done! Nothing left to review."

		return m, nil
	}

	r := m.queue[0]
	m.queue = m.queue[1:]
	m.current = &r

	currentIdx := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Reviewing %d/%d", currentIdx, m.totalCount)

	return m, m.suggestCmd(r.Text)
}

func (m ReviewModel) buildForm(suggestedID string) (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}

	candidates := rankCandidates(m.current.Text, m.snapshot)

	options := make([]huh.Option[string], 0, len(candidates)+1)
	for _, c := range candidates {
		label := fmt.Sprintf("%s (%s)", c.entry.Name, FormatConfidence(c.score))
		options = append(options, huh.NewOption(label, c.entry.ID))
	}
	options = append(options, huh.NewOption("Skip this item", skipOption))

	m.selected = suggestedID
	if m.selected == "" && len(candidates) > 0 {
		m.selected = candidates[0].entry.ID
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("item").
				Title(fmt.Sprintf("Which item is %q?", m.current.Text)).
				Options(options...).
				Value(&m.selected),
		),
	).WithWidth(60).WithShowHelp(false)

	return m, m.form.Init()
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	}

	if m.current == nil || m.form == nil {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n(Esc to go back)")
	}

	info := fmt.Sprintf(
		"Recognized: %s\nQuantity:   %d\nBest guess: %s (%s)\n",
		m.current.Text,
		m.current.Quantity,
		m.current.MatchedItemID,
		FormatConfidence(m.current.Confidence),
	)

	return lipgloss.NewStyle().Padding(2).Render(
		fmt.Sprintf("%s\n%s\n%s", m.status, info, m.form.View()),
	)
}

// Candidate ranking

type rankedEntry struct {
	entry catalog.Entry
	score float64
}

func rankCandidates(text string, snapshot []catalog.Entry) []rankedEntry {
	ranked := make([]rankedEntry, 0, len(snapshot))
	for _, e := range snapshot {
		ranked = append(ranked, rankedEntry{entry: e, score: ocr.Similarity(text, e.Name)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	return ranked
}

// Messages

type catalogLoadedMsg struct {
	snapshot []catalog.Entry
	err      error
}

func (m ReviewModel) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snapshot, err := m.catalogSvc.Snapshot(ctx)

		return catalogLoadedMsg{snapshot: snapshot, err: err}
	}
}

type suggestionMsg struct {
	itemID string
}

func (m ReviewModel) suggestCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		itemID, _ := m.correctionSvc.Suggest(ctx, m.userID, text)

		return suggestionMsg{itemID: itemID}
	}
}

type correctionSavedMsg struct {
	err error
}

func (m ReviewModel) saveCmd(r ocr.MatchResult, itemID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.correctionSvc.Record(ctx, m.userID, r.Text, itemID); err != nil {
			return correctionSavedMsg{err: err}
		}

		_, err := m.stashSvc.ConfirmBatch(ctx, m.userID, []stash.ConfirmParams{{
			ItemID:   itemID,
			Quantity: r.Quantity,
			Source:   stash.SourceOCRImport,
		}})

		return correctionSavedMsg{err: err}
	}
}
