package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-app/internal/alert"
	"github.com/BuzzLyutic/todo-app/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 2)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Run starts the terminal view for ownerID and blocks until the user quits.
func Run(ctx context.Context, api API, ownerID string, logger *zap.Logger, bannerOpts ...alert.Option) error {
	var program *tea.Program

	opts := append([]alert.Option{alert.WithOnChange(func(visible bool) {
		if program != nil {
			program.Send(alertMsg{visible: visible})
		}
	})}, bannerOpts...)
	banner := alert.New(opts...)
	defer banner.Stop()

	store := NewStore(api, ownerID, banner, logger)
	program = tea.NewProgram(NewModel(ctx, store, banner), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return runError(ctx, err)
}

// runError treats a stop by ctx cancellation (SIGINT/SIGTERM) or an
// interrupt as a clean exit.
func runError(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

type Model struct {
	ctx    context.Context
	store  *Store
	banner *alert.Banner

	input   string
	cursor  int
	todos   []model.Todo
	loading bool
}

type refreshMsg struct{}

type addedMsg struct {
	text string
	ok   bool
}

type alertMsg struct {
	visible bool
}

func NewModel(ctx context.Context, store *Store, banner *alert.Banner) *Model {
	return &Model{
		ctx:     ctx,
		store:   store,
		banner:  banner,
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case refreshMsg:
		m.loading = false
		m.sync()
	case addedMsg:
		if msg.ok && m.input == msg.text {
			m.input = ""
		}
		m.sync()
	case alertMsg:
		// Перерисовка; видимость баннера читается из самого баннера
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.addCmd(m.input)
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case tea.KeyCtrlD:
		if t, ok := m.selected(); ok && !t.Completed {
			return m, m.completeCmd(t.ID)
		}
	case tea.KeyCtrlX:
		if t, ok := m.selected(); ok {
			return m, m.deleteCmd(t.ID)
		}
	case tea.KeyCtrlR:
		return m, m.loadCmd()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My To-Do List") + "\n\n")

	if m.banner.Visible() {
		b.WriteString(bannerStyle.Render("Great job!\nTask completed. Keep up the good work!") + "\n\n")
	}

	b.WriteString("> " + m.input + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.todos) == 0:
		b.WriteString("  Nothing to do.\n")
	default:
		for i, t := range m.todos {
			b.WriteString(formatRow(t, i == m.cursor) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("enter add • ↑/↓ select • ctrl+d done • ctrl+x delete • ctrl+r reload • esc quit") + "\n")
	return b.String()
}

func formatRow(t model.Todo, selected bool) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	if t.Completed {
		return fmt.Sprintf("%s[x] %s   [Delete]", prefix, doneStyle.Render(t.Text))
	}
	return fmt.Sprintf("%s[ ] %s   [Done] [Delete]", prefix, t.Text)
}

func (m *Model) selected() (model.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return model.Todo{}, false
	}
	return m.todos[m.cursor], true
}

// sync copies the store's list into the view and keeps the cursor in range.
func (m *Model) sync() {
	m.todos = m.store.Todos()
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		m.store.Load(m.ctx)
		return refreshMsg{}
	}
}

func (m *Model) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return addedMsg{text: text, ok: m.store.Add(m.ctx, text)}
	}
}

func (m *Model) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		m.store.Complete(m.ctx, id)
		return refreshMsg{}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		m.store.Delete(m.ctx, id)
		return refreshMsg{}
	}
}
