package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jihopark/moneydash/internal/asset"
	"github.com/jihopark/moneydash/internal/report"
)

const historyRows = 10

type SummaryModel struct {
	CommonModel
	assetSvc *asset.Service
	cutover  time.Time

	assets  []*asset.Asset
	history []*asset.History

	excluded map[asset.Category]bool

	loading bool
	err     error
}

func NewSummaryModel(assetSvc *asset.Service, cutover time.Time) SummaryModel {
	return SummaryModel{
		assetSvc: assetSvc,
		cutover:  cutover,
		excluded: make(map[asset.Category]bool),
	}
}

func (m SummaryModel) Title() string { return "Summary" }
func (m SummaryModel) ShortHelp() string {
	return "Esc: back | 1-7: toggle category | r: refresh"
}

func (m SummaryModel) Init() tea.Cmd {
	return m.loadSummaryCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSummaryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.assets = msg.assets
		m.history = msg.history
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSummaryCmd()
		}

		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(asset.Categories) {
			c := asset.Categories[n-1]
			m.excluded[c] = !m.excluded[c]
		}
	}

	return m, nil
}

func (m SummaryModel) filter() report.Filter {
	var categories []asset.Category
	for c, on := range m.excluded {
		if on {
			categories = append(categories, c)
		}
	}

	return report.ExcludeCategories(categories...)
}

func (m SummaryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filter := m.filter()

	var b strings.Builder

	netWorth := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).
		Render(FormatAmount(report.NetWorth(m.assets, filter)))
	fmt.Fprintf(&b, "Net Worth: %s\n\n", netWorth)

	b.WriteString("Categories\n")
	for i, c := range asset.Categories {
		marker := " "
		if m.excluded[c] {
			marker = "x"
		}
		fmt.Fprintf(&b, "  [%d] [%s] %-12s", i+1, marker, c)

		for _, t := range report.CategoryBreakdown(m.assets, filter) {
			if t.Category == c {
				b.WriteString(FormatAmount(t.Total))
				break
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\nPlatforms\n")
	for _, share := range report.PlatformBreakdown(m.assets, filter, report.AllCategories) {
		fmt.Fprintf(&b, "  %-16s %14s  %s%%\n", share.Platform, FormatAmount(share.Amount), share.Percent)
	}

	excludedTotal := report.ExcludedTotal(m.assets, filter)
	adjusted := report.AdjustedHistory(m.history, filter, m.cutover, excludedTotal)

	b.WriteString("\nRecent History\n")
	// History comes back oldest first.
	rows := adjusted
	if len(rows) > historyRows {
		rows = rows[len(rows)-historyRows:]
	}
	for _, h := range rows {
		fmt.Fprintf(&b, "  %s  %s\n", FormatDate(h.RecordedDate), FormatAmount(h.TotalAmount))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Messages

type loadSummaryMsg struct {
	assets  []*asset.Asset
	history []*asset.History
	err     error
}

func (m SummaryModel) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		assets, err := m.assetSvc.List(ctx)
		if err != nil {
			return loadSummaryMsg{err: err}
		}

		history, err := m.assetSvc.ListHistory(ctx)
		if err != nil {
			return loadSummaryMsg{err: err}
		}

		return loadSummaryMsg{assets: assets, history: history}
	}
}
