package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jihopark/moneydash/cmd/tui/internal/view"
	"github.com/jihopark/moneydash/internal/asset"
	assetStore "github.com/jihopark/moneydash/internal/asset/store"
	"github.com/jihopark/moneydash/internal/config"
	"github.com/jihopark/moneydash/internal/database"
	"github.com/jihopark/moneydash/internal/spending"
	spendingStore "github.com/jihopark/moneydash/internal/spending/store"
)

type model struct {
	assetService    *asset.Service
	spendingService *spending.Service
	cutover         time.Time

	currentView View

	assetsView   view.AssetsModel
	summaryView  view.SummaryModel
	spendingView view.SpendingModel
}

type View int

const (
	ViewMenu     View = 0
	ViewAssets   View = 1
	ViewSummary  View = 2
	ViewSpending View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cutover, err := cfg.Cutover()
	if err != nil {
		slog.Error("failed to parse cutover date", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	assetSvc := asset.NewService(assetStore.New(db))
	spendingSvc := spending.NewService(spendingStore.New(db))

	return model{
		assetService:    assetSvc,
		spendingService: spendingSvc,
		cutover:         cutover,
		currentView:     ViewMenu,
		assetsView:      view.NewAssetsModel(assetSvc),
		summaryView:     view.NewSummaryModel(assetSvc, cutover),
		spendingView:    view.NewSpendingModel(spendingSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
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
				m.currentView = ViewAssets
				m.assetsView = view.NewAssetsModel(m.assetService)

				return m, m.assetsView.Init()
			case "2":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.assetService, m.cutover)

				return m, m.summaryView.Init()
			case "3":
				m.currentView = ViewSpending
				m.spendingView = view.NewSpendingModel(m.spendingService)

				return m, m.spendingView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAssets:
		var newModel tea.Model
		newModel, cmd = m.assetsView.Update(msg)
		m.assetsView = newModel.(view.AssetsModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	case ViewSpending:
		var newModel tea.Model
		newModel, cmd = m.spendingView.Update(msg)
		m.spendingView = newModel.(view.SpendingModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Moneydash TUI\n\n" +
				"1. Manage Assets\n" +
				"2. Net Worth Summary\n" +
				"3. Spending Plans\n\n" +
				"q. Quit",
		)
	case ViewAssets:
		return m.assetsView.View()
	case ViewSummary:
		return m.summaryView.View()
	case ViewSpending:
		return m.spendingView.View()
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
