package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/runner"
	"github.com/aretw0/tradein/pkg/summary"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleSubtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	styleHelp     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Messages produced by wizard commands.
type (
	openedMsg struct {
		view     domain.View
		consoles []domain.Console
	}
	viewMsg struct {
		view     domain.View
		consoles []domain.Console
		reload   bool
	}
	committedMsg struct {
		state domain.TradeInState
	}
	closedMsg struct{}
	errMsg    struct {
		err error
	}
)

// Model is the full-screen valuation wizard.
type Model struct {
	ctx      context.Context
	wizard   runner.Wizard
	shopper  string
	currency string
	limit    int
	render   runner.ContentRenderer

	view     domain.View
	consoles []domain.Console
	cursor   int
	busy     bool

	result *domain.TradeInState
	err    error
	status string
	done   bool
	width  int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithShopper sets the shopper the valuation is published for.
func WithShopper(shopper string) ModelOption {
	return func(m *Model) { m.shopper = shopper }
}

// WithCurrency sets the currency symbol.
func WithCurrency(symbol string) ModelOption {
	return func(m *Model) { m.currency = symbol }
}

// WithConsoleLimit caps the step 0 list.
func WithConsoleLimit(n int) ModelOption {
	return func(m *Model) { m.limit = n }
}

// WithMarkdownRenderer renders the summary (e.g. NewRenderer).
func WithMarkdownRenderer(r runner.ContentRenderer) ModelOption {
	return func(m *Model) { m.render = r }
}

// NewModel creates the wizard model. ctx bounds every wizard call.
func NewModel(ctx context.Context, w runner.Wizard, opts ...ModelOption) Model {
	m := Model{
		ctx:      ctx,
		wizard:   w,
		shopper:  "guest",
		currency: "€",
		limit:    runner.DefaultConsoleLimit,
		busy:     true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run shows the wizard until the shopper adds or skips the trade-in.
// The returned state is inactive unless the trade-in was added.
func Run(ctx context.Context, w runner.Wizard, opts ...ModelOption) (domain.TradeInState, error) {
	prog := tea.NewProgram(NewModel(ctx, w, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return domain.TradeInState{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return domain.TradeInState{}, errors.New("wizard failed to return results")
	}
	if m.err != nil {
		return domain.TradeInState{}, m.err
	}
	if m.result != nil {
		return *m.result, nil
	}
	return domain.TradeInState{}, nil
}

// Result returns the committed trade-in, if any.
func (m Model) Result() (domain.TradeInState, bool) {
	if m.result == nil {
		return domain.TradeInState{}, false
	}
	return *m.result, true
}

// Err returns the error that ended the wizard.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		view, err := m.wizard.Open(m.ctx, m.shopper)
		if err != nil {
			return errMsg{fmt.Errorf("failed to open wizard: %w", err)}
		}
		return openedMsg{view: view, consoles: m.wizard.Consoles(m.ctx, view.Platform, m.limit)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case openedMsg:
		m.busy = false
		m.view, m.consoles, m.cursor = msg.view, msg.consoles, 0
		return m, nil

	case viewMsg:
		m.busy = false
		m.status = ""
		if msg.view.Step != m.view.Step || msg.view.QuestionIndex != m.view.QuestionIndex || msg.reload {
			m.cursor = 0
		}
		m.view = msg.view
		if msg.reload {
			m.consoles = msg.consoles
		}
		return m, nil

	case committedMsg:
		m.result = &msg.state
		m.done = true
		return m, tea.Quit

	case closedMsg:
		m.done = true
		return m, tea.Quit

	case errMsg:
		m.busy = false
		if isUserError(msg.err) {
			m.status = msg.err.Error()
			return m, nil
		}
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.busy || m.done {
			if msg.String() == "ctrl+c" {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.view.SessionID
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m.run(func(ctx context.Context) tea.Msg {
			if err := m.wizard.Cancel(ctx, id); err != nil {
				return errMsg{err}
			}
			return closedMsg{}
		})
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.options()-1 {
			m.cursor++
		}
		return m, nil
	}

	switch m.view.Phase {
	case domain.PhaseSelectConsole:
		switch msg.String() {
		case "tab", "p":
			next := nextPlatform(m.view.Platform)
			return m.run(func(ctx context.Context) tea.Msg {
				view, err := m.wizard.ChoosePlatform(ctx, id, next)
				if err != nil {
					return errMsg{err}
				}
				return viewMsg{view: view, consoles: m.wizard.Consoles(ctx, next, m.limit), reload: true}
			})
		case " ", "enter":
			if len(m.consoles) == 0 {
				return m, nil
			}
			consoleID := m.consoles[m.cursor].ID
			return m.run(func(ctx context.Context) tea.Msg {
				return toViewMsg(m.wizard.SelectConsole(ctx, id, consoleID))
			})
		case "c", "right":
			return m.advance()
		}

	case domain.PhaseQuestion:
		switch msg.String() {
		case " ", "enter":
			q := m.view.Question
			if q == nil || m.cursor >= len(q.Options) {
				return m, nil
			}
			questionID, value := q.ID, q.Options[m.cursor].Value
			return m.run(func(ctx context.Context) tea.Msg {
				view, err := m.wizard.Answer(ctx, id, questionID, value)
				if err != nil {
					return errMsg{err}
				}
				if view.CanContinue {
					return toViewMsg(m.wizard.Advance(ctx, id))
				}
				return viewMsg{view: view}
			})
		case "c", "right":
			return m.advance()
		}

	case domain.PhaseSummary:
		switch msg.String() {
		case "a", "enter":
			return m.run(func(ctx context.Context) tea.Msg {
				state, err := m.wizard.Commit(ctx, id)
				if err != nil {
					return errMsg{err}
				}
				return committedMsg{state: state}
			})
		case "s":
			return m.run(func(ctx context.Context) tea.Msg {
				if err := m.wizard.Cancel(ctx, id); err != nil {
					return errMsg{err}
				}
				return closedMsg{}
			})
		}
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if !m.view.CanContinue {
		return m, nil
	}
	id := m.view.SessionID
	return m.run(func(ctx context.Context) tea.Msg {
		return toViewMsg(m.wizard.Advance(ctx, id))
	})
}

// run marks the model busy and executes fn as a command.
func (m Model) run(fn func(context.Context) tea.Msg) (tea.Model, tea.Cmd) {
	m.busy = true
	ctx := m.ctx
	return m, func() tea.Msg { return fn(ctx) }
}

func (m Model) options() int {
	switch m.view.Phase {
	case domain.PhaseSelectConsole:
		return len(m.consoles)
	case domain.PhaseQuestion:
		if m.view.Question != nil {
			return len(m.view.Question.Options)
		}
	}
	return 0
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.view.SessionID == "" {
		return styleSubtitle.Render("Caricamento...") + "\n"
	}

	accent := lipgloss.Color(m.view.Theme.Accent)
	title := lipgloss.NewStyle().Bold(true).Foreground(accent)
	selected := lipgloss.NewStyle().Bold(true).Foreground(accent)

	var b strings.Builder
	switch m.view.Phase {
	case domain.PhaseSelectConsole:
		b.WriteString(title.Render("Seleziona la tua console") + "  " + styleSubtitle.Render(m.view.Platform.Label()) + "\n\n")
		if len(m.consoles) == 0 {
			b.WriteString(styleSubtitle.Render("Nessuna console disponibile.") + "\n")
		}
		for i, c := range m.consoles {
			line := fmt.Sprintf("%s  %s%s", c.Name, m.currency, c.BasePrice)
			if m.view.Console != nil && m.view.Console.ID == c.ID {
				line = "✓ " + line
			} else {
				line = "  " + line
			}
			b.WriteString(cursorLine(i == m.cursor, line, selected) + "\n")
		}
		if m.view.CatalogPending {
			b.WriteString("\n" + styleSubtitle.Render("caricamento domande...") + "\n")
		}

	case domain.PhaseQuestion:
		fmt.Fprintf(&b, "%s\n", styleSubtitle.Render(fmt.Sprintf("Passo %d/%d · Domanda %d/%d",
			m.view.Step, m.view.FinalStep-1, m.view.QuestionIndex+1, m.view.QuestionCount)))
		if q := m.view.Question; q != nil {
			b.WriteString(title.Render(q.Text) + "\n")
			if q.Description != "" {
				b.WriteString(styleSubtitle.Render(q.Description) + "\n")
			}
			b.WriteString("\n")
			for i, opt := range q.Options {
				line := "  " + opt.Label
				if opt.Value == m.view.Selected {
					line = "✓ " + opt.Label
				}
				b.WriteString(cursorLine(i == m.cursor, line, selected) + "\n")
			}
		}

	case domain.PhaseSummary:
		if m.view.Offer != nil {
			md := summary.Markdown(m.view.Console, *m.view.Offer, m.currency)
			if m.render != nil {
				if out, err := m.render(md); err == nil {
					md = out
				}
			}
			b.WriteString(strings.TrimSpace(md) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + styleError.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help(accent) + "\n")
	return b.String()
}

func (m Model) help(accent lipgloss.Color) string {
	button := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF")).Background(accent)

	switch m.view.Phase {
	case domain.PhaseSummary:
		return button.Render("[a] "+domain.AddTradeInText) + "  " + styleHelp.Render("[s] "+domain.SkipTradeIn+"  q esci")
	case domain.PhaseSelectConsole:
		keys := styleHelp.Render("↑/↓ scegli  enter seleziona  tab piattaforma  q esci")
		return m.continueButton(button) + "  " + keys
	default:
		keys := styleHelp.Render("↑/↓ scegli  enter rispondi  q esci")
		return m.continueButton(button) + "  " + keys
	}
}

func (m Model) continueButton(button lipgloss.Style) string {
	label := m.view.ContinueLabel
	if label == "" {
		label = domain.ContinueLabel
	}
	if !m.view.CanContinue {
		return styleDisabled.Render("[c] " + label)
	}
	return button.Render("[c] " + label)
}

func cursorLine(active bool, line string, style lipgloss.Style) string {
	if active {
		return style.Render("> " + line)
	}
	return "  " + line
}

func nextPlatform(p domain.Platform) domain.Platform {
	all := domain.Platforms()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func toViewMsg(view domain.View, err error) tea.Msg {
	if err != nil {
		return errMsg{err}
	}
	return viewMsg{view: view}
}

func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidAnswer) || errors.Is(err, domain.ErrNotFound)
}
