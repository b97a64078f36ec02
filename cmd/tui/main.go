package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/trenthp/raiderCompanion/cmd/tui/internal/view"
	"github.com/trenthp/raiderCompanion/internal/catalog"
	catalogStore "github.com/trenthp/raiderCompanion/internal/catalog/store"
	"github.com/trenthp/raiderCompanion/internal/config"
	"github.com/trenthp/raiderCompanion/internal/correction"
	correctionStore "github.com/trenthp/raiderCompanion/internal/correction/store"
	"github.com/trenthp/raiderCompanion/internal/database"
	"github.com/trenthp/raiderCompanion/internal/gamedata"
	"github.com/trenthp/raiderCompanion/internal/ocr"
	"github.com/trenthp/raiderCompanion/internal/ocr/tesseract"
	"github.com/trenthp/raiderCompanion/internal/stash"
	stashStore "github.com/trenthp/raiderCompanion/internal/stash/store"
)

type model struct {
	catalogService    *catalog.Service
	stashService      *stash.Service
	correctionService *correction.Service
	gamedataService   *gamedata.Service
	pipeline          *ocr.Pipeline
	userID            string

	currentView View
	flagged     []ocr.MatchResult
	syncStatus  string

	importView view.ImportModel
	reviewView view.ReviewModel
	stashView  view.StashModel
}

type View int

const (
	ViewMenu   View = 0
	ViewImport View = 1
	ViewReview View = 2
	ViewStash  View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	catalogSvc := catalog.NewService(catalogStore.New(db))
	stashSvc := stash.NewService(stashStore.New(db))
	correctionSvc := correction.NewService(correctionStore.New(db))
	gamedataSvc := gamedata.NewService(catalogSvc, cfg.GameData.BaseURL, cfg.GameData.Token)
	pipeline := ocr.NewPipeline(tesseract.New(cfg.OCR.Language), cfg.OCR.ConfidenceThreshold)

	return model{
		catalogService:    catalogSvc,
		stashService:      stashSvc,
		correctionService: correctionSvc,
		gamedataService:   gamedataSvc,
		pipeline:          pipeline,
		userID:            cfg.TUI.UserID,
		currentView:       ViewMenu,
		importView:        view.NewImportModel(pipeline, catalogSvc, stashSvc, cfg.TUI.UserID),
		stashView:         view.NewStashModel(stashSvc, catalogSvc, cfg.TUI.UserID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type syncDoneMsg struct {
	count int
	err   error
}

func (m model) syncCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.gamedataService.Sync(context.Background())
		return syncDoneMsg{count: count, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.pipeline, m.catalogService, m.stashService, m.userID)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.catalogService, m.stashService, m.correctionService, m.userID, m.flagged)
				m.flagged = nil

				return m, m.reviewView.Init()
			case "3":
				m.currentView = ViewStash
				m.stashView = view.NewStashModel(m.stashService, m.catalogService, m.userID)

				return m, m.stashView.Init()
			case "4":
				m.syncStatus = "Syncing item catalog..."
				return m, m.syncCmd()
			}
		}
	case syncDoneMsg:
		if msg.err != nil {
			m.syncStatus = "Sync failed: " + msg.err.Error()
		} else {
			m.syncStatus = "Catalog synced."
		}

		return m, nil
	case view.ReviewRequestMsg:
		m.flagged = msg.Flagged
		m.currentView = ViewReview
		m.reviewView = view.NewReviewModel(m.catalogService, m.stashService, m.correctionService, m.userID, m.flagged)
		m.flagged = nil

		return m, m.reviewView.Init()
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewStash:
		var newModel tea.Model
		newModel, cmd = m.stashView.Update(msg)
		m.stashView = newModel.(view.StashModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		menu := "Raider Companion\n\n" +
			"1. Import Stash Screenshot\n" +
			"2. Review Flagged Matches\n" +
			"3. Browse Stash\n" +
			"4. Sync Item Catalog\n\n" +
			"q. Quit"
		if m.syncStatus != "" {
			menu += "\n\n" + m.syncStatus
		}

		return lipgloss.NewStyle().Padding(2).Render(menu)
	case ViewImport:
		return m.importView.View()
	case ViewReview:
		return m.reviewView.View()
	case ViewStash:
		return m.stashView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
