package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jihopark/moneydash/internal/spending"
)

type spendingState int

const (
	spendingStateBrowse spendingState = iota
	spendingStateEdit
	spendingStateAdd
)

type SpendingModel struct {
	CommonModel
	spendingSvc *spending.Service

	state spendingState
	table table.Model
	plans []*spending.Plan
	form  *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formTitle   string
	formAmount  string
	formDueDate string
	formDesc    string
}

func NewSpendingModel(spendingSvc *spending.Service) SpendingModel {
	columns := []table.Column{
		{Title: "Title", Width: 24},
		{Title: "Amount", Width: 14},
		{Title: "Due", Width: 12},
		{Title: "Days Left", Width: 10},
		{Title: "Paid", Width: 6},
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

	return SpendingModel{
		spendingSvc: spendingSvc,
		table:       t,
	}
}

func (m SpendingModel) Title() string { return "Spending Plans" }
func (m SpendingModel) ShortHelp() string {
	if m.state != spendingStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | e: edit | p: toggle paid | x: delete | r: refresh"
}

func (m SpendingModel) Init() tea.Cmd {
	return m.loadPlansCmd()
}

func (m SpendingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPlansMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.plans = msg.plans
		m.refreshTable()
		return m, nil

	case planSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = spendingStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadPlansCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == spendingStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m SpendingModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadPlansCmd()
		case "a":
			return m.enterFormMode(spendingStateAdd, nil)
		case "e":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.plans) {
				return m, nil
			}
			return m.enterFormMode(spendingStateEdit, m.plans[idx])
		case "p":
			return m, m.togglePaidCmd()
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SpendingModel) enterFormMode(state spendingState, p *spending.Plan) (tea.Model, tea.Cmd) {
	if p != nil {
		m.formTitle = p.Title
		m.formAmount = strconv.FormatInt(p.Amount, 10)
		m.formDueDate = FormatDate(p.DueDate)
		m.formDesc = p.Description
	} else {
		m.formTitle = ""
		m.formAmount = "0"
		m.formDueDate = FormatDate(time.Now())
		m.formDesc = ""
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
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

			huh.NewInput().
				Key("due_date").
				Title("Due Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDueDate).
				Validate(func(s string) error {
					_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
					return err
				}),

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

func (m SpendingModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = spendingStateBrowse
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

func (m SpendingModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading spending plans...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.state != spendingStateBrowse && m.form != nil {
		title := "Add Spending Plan"
		if m.state == spendingStateEdit {
			title = "Edit Spending Plan"
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

func (m *SpendingModel) refreshTable() {
	now := time.Now()

	rows := make([]table.Row, 0, len(m.plans))
	for _, p := range m.plans {
		paid := ""
		if p.Paid {
			paid = "yes"
		}
		rows = append(rows, table.Row{
			p.Title,
			FormatAmount(p.Amount),
			FormatDate(p.DueDate),
			strconv.Itoa(p.DaysRemaining(now)),
			paid,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadPlansMsg struct {
	plans []*spending.Plan
	err   error
}

func (m SpendingModel) loadPlansCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		plans, err := m.spendingSvc.List(ctx)
		return loadPlansMsg{plans: plans, err: err}
	}
}

type planSaveMsg struct {
	err error
}

func (m SpendingModel) saveCmd() tea.Cmd {
	amount, err := strconv.ParseInt(strings.TrimSpace(m.formAmount), 10, 64)
	if err != nil {
		return func() tea.Msg { return planSaveMsg{err: err} }
	}

	due, err := time.Parse(time.DateOnly, strings.TrimSpace(m.formDueDate))
	if err != nil {
		return func() tea.Msg { return planSaveMsg{err: err} }
	}

	var editing *spending.Plan
	if m.state == spendingStateEdit {
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.plans) {
			return nil
		}
		editing = m.plans[idx]
	}

	params := spending.Params{
		Title:       m.formTitle,
		Amount:      amount,
		DueDate:     due,
		Description: m.formDesc,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editing != nil {
			params.Paid = editing.Paid
			_, err := m.spendingSvc.Update(ctx, editing.ID, params)
			return planSaveMsg{err: err}
		}

		_, err := m.spendingSvc.Create(ctx, params)
		return planSaveMsg{err: err}
	}
}

func (m SpendingModel) togglePaidCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.plans) {
		return nil
	}

	p := m.plans[idx]
	params := spending.Params{
		Title:       p.Title,
		Amount:      p.Amount,
		DueDate:     p.DueDate,
		Description: p.Description,
		Paid:        !p.Paid,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.spendingSvc.Update(ctx, p.ID, params)
		return planSaveMsg{err: err}
	}
}

func (m SpendingModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.plans) {
		return nil
	}

	id := m.plans[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.spendingSvc.Delete(ctx, id); err != nil {
			return planSaveMsg{err: err}
		}

		return planSaveMsg{}
	}
}
