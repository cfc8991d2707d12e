package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jihopark/moneydash/internal/asset"
)

type assetsState int

const (
	assetsStateBrowse assetsState = iota
	assetsStateEdit
	assetsStateAdd
)

type AssetsModel struct {
	CommonModel
	assetSvc *asset.Service

	state  assetsState
	table  table.Model
	assets []*asset.Asset
	form   *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName     string
	formAmount   string
	formCategory string
	formPlatform string
	formDesc     string
}

func NewAssetsModel(assetSvc *asset.Service) AssetsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Platform", Width: 14},
		{Title: "Amount", Width: 16},
		{Title: "Previous", Width: 16},
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

	return AssetsModel{
		assetSvc: assetSvc,
		table:    t,
	}
}

func (m AssetsModel) Title() string { return "Assets" }
func (m AssetsModel) ShortHelp() string {
	if m.state != assetsStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | e: edit | x: delete | r: refresh"
}

func (m AssetsModel) Init() tea.Cmd {
	return m.loadAssetsCmd()
}

func (m AssetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAssetsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.assets = msg.assets
		m.refreshTable()
		return m, nil

	case assetSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = assetsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadAssetsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == assetsStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m AssetsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAssetsCmd()
		case "a":
			return m.enterFormMode(assetsStateAdd, nil)
		case "e":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.assets) {
				return m, nil
			}
			return m.enterFormMode(assetsStateEdit, m.assets[idx])
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m AssetsModel) enterFormMode(state assetsState, a *asset.Asset) (tea.Model, tea.Cmd) {
	if a != nil {
		m.formName = a.Name
		m.formAmount = strconv.FormatInt(a.Amount, 10)
		m.formCategory = string(a.Category)
		m.formPlatform = a.Platform
		m.formDesc = a.Description
	} else {
		m.formName = ""
		m.formAmount = "0"
		m.formCategory = string(asset.Categories[0])
		m.formPlatform = ""
		m.formDesc = ""
	}

	options := make([]huh.Option[string], len(asset.Categories))
	for i, c := range asset.Categories {
		options[i] = huh.NewOption(string(c), string(c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					return err
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("platform").
				Title("Platform").
				Placeholder(asset.DefaultPlatform).
				Value(&m.formPlatform),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = state
	m.table.Blur()
	return m, m.form.Init()
}

func (m AssetsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = assetsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m AssetsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading assets...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.state != assetsStateBrowse && m.form != nil {
		title := "Add Asset"
		if m.state == assetsStateEdit {
			title = "Edit Asset"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AssetsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.assets))
	for _, a := range m.assets {
		rows = append(rows, table.Row{
			a.Name,
			string(a.Category),
			a.Platform,
			FormatAmount(a.Amount),
			FormatAmount(a.PreviousAmount),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadAssetsMsg struct {
	assets []*asset.Asset
	err    error
}

func (m AssetsModel) loadAssetsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		assets, err := m.assetSvc.List(ctx)
		return loadAssetsMsg{assets: assets, err: err}
	}
}

type assetSaveMsg struct {
	err error
}

func (m AssetsModel) saveCmd() tea.Cmd {
	amount, err := strconv.ParseInt(strings.TrimSpace(m.formAmount), 10, 64)
	if err != nil {
		return func() tea.Msg { return assetSaveMsg{err: err} }
	}

	var editing *asset.Asset
	if m.state == assetsStateEdit {
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.assets) {
			return nil
		}
		editing = m.assets[idx]
	}

	name := m.formName
	category := asset.Category(m.formCategory)
	platform := m.formPlatform
	desc := m.formDesc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing != nil {
			_, err := m.assetSvc.Update(ctx, editing.ID, asset.UpdateParams{
				Name:        name,
				Amount:      amount,
				Category:    category,
				Platform:    platform,
				Description: desc,
			})
			return assetSaveMsg{err: err}
		}

		_, err := m.assetSvc.Create(ctx, asset.CreateParams{
			Name:        name,
			Amount:      amount,
			Category:    category,
			Platform:    platform,
			Description: desc,
		})
		return assetSaveMsg{err: err}
	}
}

func (m AssetsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.assets) {
		return nil
	}

	id := m.assets[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.assetSvc.Delete(ctx, id); err != nil {
			return assetSaveMsg{err: err}
		}

		return assetSaveMsg{}
	}
}
