package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/logtail"
	"github.com/five82/musaed/internal/prefs"
	"github.com/five82/musaed/internal/session"
	"github.com/five82/musaed/internal/state"
)

// pane is the part of the screen that receives keys.
type pane int

const (
	paneInput pane = iota
	paneFavorites
	paneSuggested
	paneCount
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Dispatcher *session.Dispatcher
	Store      *state.Store
	Catalog    []gie.Service
	APIBase    string
	LogPath    string
	Tick       time.Duration
	Prefs      prefs.Prefs
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	dispatcher *session.Dispatcher
	store      *state.Store
	catalog    []gie.Service
	apiBase    string
	logPath    string
	prefsPath  string
	tick       time.Duration
	keys       keyMap

	theme   Theme
	compact bool
	width   int
	height  int
	ready   bool

	focus   pane
	cursors [paneCount]int
	input   textinput.Model
	spinner spinner.Model
	pending bool

	board  session.Board
	health state.Health

	lastNav  *session.Navigation
	notice   string
	noticeAt time.Time

	showHelp bool
	showLogs bool
	logView  viewport.Model
	logErr   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "اكتب طلبك، مثال: أبغى أجدد جوازي"
	input.Prompt = "› "
	input.CharLimit = inputCharLimit
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:        ctx,
		dispatcher: opts.Dispatcher,
		store:      opts.Store,
		catalog:    opts.Catalog,
		apiBase:    opts.APIBase,
		logPath:    opts.LogPath,
		prefsPath:  prefsPath,
		tick:       tick,
		keys:       defaultKeyMap(),
		theme:      GetTheme(opts.Prefs.Theme),
		compact:    opts.Prefs.Compact,
		focus:      paneInput,
		input:      input,
		spinner:    spin,
		board:      session.NewBoard(opts.Catalog),
		logView:    viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tickCmd(m.tick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchHealthCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(m.width-8, 10)
		m.resizeLogView()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case healthMsg:
		m.health = state.Health(msg)
		return m, nil

	case outcomeMsg:
		return m.handleOutcome(session.Outcome(msg))

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard copy failed: %v", msg.err)
			m.setNotice("تعذر النسخ: " + msg.err.Error())
		} else {
			m.setNotice("نُسخ الرابط " + msg.text)
		}
		return m, nil
	}

	if m.focus == paneInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.dispatcher != nil && m.dispatcher.Modal().IsOpen() {
		return m.renderDetail()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take keys first, then the
// query box, then the grids.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.dispatcher != nil && m.dispatcher.Modal().IsOpen() {
		return m.handleModalKey(msg)
	}

	if m.focus == paneInput {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs
		m.resizeLogView()
		if m.showLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.setFocus((m.focus + 1) % paneCount)
		return m, nil

	case key.Matches(msg, m.keys.FocusBack):
		m.setFocus((m.focus + paneCount - 1) % paneCount)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.setFocus(paneInput)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		if m.showLogs {
			m.showLogs = false
			m.resizeLogView()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.lastNav == nil {
			m.setNotice("لا يوجد رابط للنسخ")
			return m, nil
		}
		return m, copyCmd(m.lastNav.Fragment())

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.gridColumns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.gridColumns())
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	}

	if m.showLogs && (msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown) {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleInputKey routes keys while the query box has focus. Everything that is
// not a pane switch or a submit is typed into the box.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Focus):
		m.setFocus(paneFavorites)
		return m, nil
	case key.Matches(msg, m.keys.FocusBack):
		m.setFocus(paneSuggested)
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.setFocus(paneFavorites)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleModalKey routes keys while the detail modal is open.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		res := m.dispatcher.Dispatch(m.ctx, session.ConfirmNavigation{})
		if res.Navigation != nil {
			m.lastNav = res.Navigation
			m.setNotice("الانتقال إلى " + res.Navigation.Fragment())
		}
	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		m.dispatcher.Dispatch(m.ctx, session.CancelModal{})
	}
	return m, nil
}

// submit sends the query box text unless a request is already in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending || m.dispatcher == nil {
		return m, nil
	}
	m.pending = true
	return m, tea.Batch(
		m.spinner.Tick,
		submitCmd(m.ctx, m.dispatcher, m.input.Value()),
	)
}

// handleOutcome folds a finished submit into the board.
func (m Model) handleOutcome(o session.Outcome) (tea.Model, tea.Cmd) {
	m.pending = false
	if o.Kind == session.OutcomeStale {
		return m, nil
	}
	filter := state.NoFilter()
	if m.store != nil {
		filter = m.store.Suggestions()
	}
	m.board = m.board.Apply(o, m.catalog, filter)
	m.clampCursors()
	if o.Kind == session.OutcomeSuggested && len(m.board.Suggested) > 0 {
		m.cursors[paneSuggested] = 0
	}
	return m, nil
}

// openSelected opens the detail modal on the card under the cursor.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	services := m.paneServices(m.focus)
	idx := m.cursors[m.focus]
	if m.dispatcher == nil || idx < 0 || idx >= len(services) {
		return m, nil
	}
	m.dispatcher.Dispatch(m.ctx, session.OpenDetail{Service: services[idx]})
	return m, nil
}

// handleTick refreshes the health pill and, when visible, the log pane.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchHealthCmd(m.store))
	}
	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}
	if m.notice != "" && time.Since(m.noticeAt) > clipboardNoticeTTL {
		m.notice = ""
	}
	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	if p == paneInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeAt = time.Now()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}); err != nil {
		log.Printf("could not save preferences: %v", err)
	}
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		m.renderInput(),
	}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections,
		m.renderSection("الخدمات المفضلة", paneFavorites, m.board.Favorites, ""),
		m.renderSection("الخدمات المقترحة", paneSuggested, m.board.Suggested, m.renderMeta()),
	)
	if m.showLogs {
		sections = append(sections, m.renderLogs())
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

// Messages

type tickMsg time.Time

type healthMsg state.Health

type outcomeMsg session.Outcome

type clipboardMsg struct {
	text string
	err  error
}

type logLinesMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchHealthCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return healthMsg(store.Snapshot().Health)
	}
}

func submitCmd(ctx context.Context, d *session.Dispatcher, text string) tea.Cmd {
	return func() tea.Msg {
		res := d.Dispatch(ctx, session.Submit{Text: text})
		if res.Outcome == nil {
			return outcomeMsg(session.Outcome{Kind: session.OutcomeStale})
		}
		return outcomeMsg(*res.Outcome)
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logPaneMaxLines)
		if err != nil {
			return logLinesMsg{err: err}
		}
		entries := make([]logtail.Entry, 0, len(lines))
		for _, line := range lines {
			entries = append(entries, logtail.Parse(line))
		}
		return logLinesMsg{entries: entries}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
