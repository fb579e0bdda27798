package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/gomoku/internal/board"
	"github.com/jask/gomoku/internal/clock"
	"github.com/jask/gomoku/internal/game"
	"github.com/jask/gomoku/internal/players"
)

type focusArea int

const (
	focusBoard focusArea = iota
	focusSettings
	focusPlayers
	focusCount
)

type (
	tickMsg struct {
		gen int
		at  time.Time
	}
	statusMsg string
	errMsg    struct{ err error }
)

// Options wires the App to the game.
type Options struct {
	Controller *game.Controller
	Registry   *players.Registry
	Logger     *zap.SugaredLogger
	// Logs feeds the log box, usually logging.PaneWriter.Lines().
	Logs <-chan string
}

// App is the Gomoku screen: board, settings panel and right pane.
type App struct {
	ctx    context.Context
	ctrl   *game.Controller
	log    *zap.SugaredLogger
	keys   *KeyRegistry
	events *Events
	logs   <-chan string
	unsub  func()
	now    func() time.Time

	settings *settingsPanel
	right    *rightPane
	board    boardView

	focus     focusArea
	turn      int
	result    *game.Result
	width     int
	height    int
	status    string
	statusErr bool

	// pendingSettings is set when settings changed during a game.
	pendingSettings bool
}

func New(ctx context.Context, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	settings := opts.Controller.Settings()
	a := &App{
		ctx:      ctx,
		ctrl:     opts.Controller,
		log:      log,
		keys:     NewKeyRegistry(),
		events:   NewEvents(64),
		logs:     opts.Logs,
		now:      time.Now,
		settings: newSettingsPanel(settings),
		right:    newRightPane(settings, opts.Registry),
		board:    newBoardView(settings.Size()),
		width:    100,
		height:   32,
		status:   "Press n to start a game",
	}
	ctrl := a.ctrl
	a.events.seed = func(player int) (time.Duration, game.Snapshot) {
		return ctrl.GameTime(player), ctrl.Snapshot()
	}
	a.ctrl.AddListener(a.events)
	a.unsub = settings.OnChange(a.events.SettingsChanged)
	return a
}

// Close detaches the App from the controller and settings. Call it after
// the program has exited.
func (a *App) Close() {
	a.unsub()
	a.events.Close()
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.events.Wait(), waitLog(a.logs))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.layout()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)

	case gameStartedMsg:
		rules := a.ctrl.Snapshot()
		a.board = newBoardView(rules.Size)
		a.result = nil
		a.right.playing = true
		a.right.setEnabled(false)
		a.setStatus(fmt.Sprintf("%s (black) vs %s (white)", rules.Player1, rules.Player2))
		return a, a.events.Wait()
	case gameResumedMsg:
		a.right.setEnabled(false)
		a.setStatus("Resumed")
		return a, a.events.Wait()
	case gamePausedMsg:
		a.right.stopCountdown()
		a.setStatus("Paused, press p to resume")
		return a, a.events.Wait()
	case gameFinishedMsg:
		a.right.stopCountdown()
		a.right.playing = false
		a.right.setEnabled(true)
		a.turn = 0
		r := m.Result
		a.result = &r
		a.setStatus(a.describe(r))
		if a.pendingSettings {
			a.reloadSettings()
		}
		return a, a.events.Wait()
	case turnStartedMsg:
		a.turn = m.Player
		if m.At.IsZero() {
			m.GameLeft, m.Rules, m.At = a.ctrl.GameTime(m.Player), a.ctrl.Snapshot(), a.now()
		}
		gen := a.right.startCountdown(m.Player, m.Rules, m.GameLeft, m.At)
		return a, tea.Batch(a.events.Wait(), tickCmd(gen))
	case moveMadeMsg:
		stone := board.Black
		if m.Move.Player == 2 {
			stone = board.White
		}
		a.board.place(m.Move.Point, stone)
		return a, a.events.Wait()
	case settingsMsg:
		if a.right.playing {
			a.pendingSettings = true
		} else {
			a.reloadSettings()
		}
		return a, a.events.Wait()

	case tickMsg:
		if a.right.tick(m.gen, m.at) {
			return a, tickCmd(m.gen)
		}
		return a, nil
	case logLineMsg:
		a.right.appendLog(string(m))
		return a, waitLog(a.logs)
	case statusMsg:
		a.setStatus(string(m))
		return a, nil
	case errMsg:
		a.log.Warnf("%v", m.err)
		a.status, a.statusErr = m.err.Error(), true
		return a, nil
	}
	return a, nil
}

// reloadSettings resets the clock labels and the idle board from the
// current settings.
func (a *App) reloadSettings() {
	a.pendingSettings = false
	a.right.loadSettings()
	if size := a.ctrl.Settings().Size(); size != a.board.board.Size() {
		a.board = newBoardView(size)
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(clock.Interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (a *App) setStatus(s string) {
	a.status, a.statusErr = s, false
}

func (a *App) describe(r game.Result) string {
	name := func(i int) string {
		rules := a.ctrl.Snapshot()
		stone := board.Black
		if i == 2 {
			stone = board.White
		}
		return fmt.Sprintf("%s (%s)", rules.Player(i), stone)
	}
	switch r.Reason {
	case game.ReasonFive:
		return name(r.Winner) + " wins with five in a row"
	case game.ReasonTimeout:
		return name(r.Winner) + " wins on time"
	case game.ReasonForfeit:
		return name(r.Winner) + " wins by forfeit"
	case game.ReasonDraw:
		return "Draw, the board is full"
	default:
		return "Game stopped"
	}
}

func (a *App) scope() string {
	if a.focus == focusBoard {
		return scopeBoard
	}
	return scopeSelectors
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := a.keys.Lookup(msg.String(), a.scope())
	if !ok {
		return a, nil
	}
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionNextFocus:
		a.focus = (a.focus + 1) % focusCount
	case actionPrevFocus:
		a.focus = (a.focus + focusCount - 1) % focusCount
	case actionNewGame:
		return a, a.newGame()
	case actionPause:
		return a, a.togglePause()
	case actionStop:
		return a, a.stop()
	case actionPlace:
		a.place()
	case actionUp, actionDown, actionLeft, actionRight:
		a.navigate(action)
	}
	return a, nil
}

func (a *App) navigate(action Action) {
	dRow, dCol := 0, 0
	switch action {
	case actionUp:
		dRow = -1
	case actionDown:
		dRow = 1
	case actionLeft:
		dCol = -1
	case actionRight:
		dCol = 1
	}
	switch a.focus {
	case focusBoard:
		a.board.moveCursor(dRow, dCol)
	case focusSettings:
		if dRow != 0 {
			a.settings.move(dRow)
			return
		}
		if err := a.settings.step(dCol); err != nil {
			a.status, a.statusErr = err.Error(), true
		}
	case focusPlayers:
		if dRow != 0 {
			a.right.move(dRow)
			return
		}
		a.right.step(dCol)
	}
}

func (a *App) place() {
	if !a.right.playing {
		return
	}
	if !a.board.board.Empty(a.board.cursor) {
		a.setStatus("Intersection occupied")
		return
	}
	if !a.ctrl.SubmitMove(a.board.cursor) {
		a.setStatus("Not your move")
	}
}

// The controller calls below wait for the turn loop, so they run as
// commands off the UI loop.

func (a *App) newGame() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		if err := ctrl.Stop(); err != nil && !errors.Is(err, game.ErrNotRunning) {
			return errMsg{err}
		}
		if err := ctrl.Start(ctx); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) togglePause() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		var err error
		switch ctrl.State() {
		case game.StateRunning:
			err = ctrl.Pause()
		case game.StatePaused:
			err = ctrl.Resume(ctx)
		default:
			return statusMsg("No game in progress")
		}
		if err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) stop() tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		if err := ctrl.Stop(); err != nil {
			if errors.Is(err, game.ErrNotRunning) {
				return statusMsg("No game in progress")
			}
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) leftWidth() int { return a.board.width() + 4 }

func (a *App) layout() {
	rightW := max(a.width-a.leftWidth(), 20)
	logH := a.height - 2 - playersPaneHeight - 2
	a.right.resize(rightW-4, logH)
}

const (
	playersPaneHeight  = 8
	settingsPaneHeight = 5
)

func (a *App) View() string {
	leftW := a.leftWidth()
	rightW := max(a.width-leftW, 20)
	bodyH := max(a.height-2, playersPaneHeight+settingsPaneHeight)

	boardContent := a.board.Render(a.focus == focusBoard)
	if a.result != nil {
		boardContent += "\n\n" + bannerStyle.Render(a.describe(*a.result))
	}
	boardH := max(bodyH-settingsPaneHeight, a.board.board.Size()+3)
	left := lipgloss.JoinVertical(lipgloss.Left,
		pane{Title: "Board", Content: boardContent, Focused: a.focus == focusBoard}.Render(leftW, boardH),
		pane{Title: "Settings", Content: a.settings.View(a.focus == focusSettings), Focused: a.focus == focusSettings}.Render(leftW, settingsPaneHeight),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		pane{Title: "Players", Content: a.right.playersView(a.focus == focusPlayers, a.turn), Focused: a.focus == focusPlayers}.Render(rightW, playersPaneHeight),
		pane{Title: "Log", Content: a.right.logView()}.Render(rightW, max(bodyH-playersPaneHeight, 3)),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return strings.Join([]string{body, a.renderStatus(), a.renderFooter()}, "\n")
}

func (a *App) renderStatus() string {
	state := strings.ToUpper(string(a.ctrl.State()))
	text := "[" + state + "] " + a.status
	if a.statusErr {
		return renderBar(statusErrStyle, a.width, text)
	}
	return renderBar(statusStyle, a.width, text)
}

func (a *App) renderFooter() string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	parts := make([]string, 0, 8)
	for _, b := range a.keys.HelpBindings(a.scope()) {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+footerStyle.Render(h.Desc))
	}
	return renderBar(lipgloss.NewStyle(), a.width, strings.Join(parts, "  "))
}
