package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const boardSide = 3

var rules = []string{
	"The game is played on a 3x3 grid.",
	"Players take turns placing X or O in empty cells.",
	"The first player to get 3 of their marks in a row (horizontally, vertically, or diagonally) wins.",
	"If all cells are filled and no player has 3 in a row, the game ends in a draw.",
	"Press n to start over at any time.",
}

type gameSession interface {
	PlaceMark(ctx context.Context, position int) (usecase.Move, error)
	NewGame()
	State() entity.GameState
	History() []entity.MoveRecord
	Stats() entity.StatsSnapshot
}

type appearanceStore interface {
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, darkMode bool) error
}

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

type toast struct {
	text string
	kind toastKind
	seq  int
}

// toastExpiredMsg clears the toast it was scheduled for, unless a newer one replaced it.
type toastExpiredMsg struct {
	seq int
}

// Model is the bubbletea model of the game screen.
type Model struct {
	ctx    context.Context
	logger *slog.Logger

	session    gameSession
	appearance appearanceStore

	keys   keyMap
	help   help.Model
	styles Styles

	toastDuration time.Duration
	toast         toast

	cursor      int
	darkMode    bool
	showHistory bool
	showRules   bool
}

func New(ctx context.Context, logger *slog.Logger, session gameSession, appearance appearanceStore, toastDuration time.Duration) Model {
	darkMode := appearance.DarkMode(ctx)

	return Model{
		ctx:    ctx,
		logger: logger.With("component", "ui"),

		session:    session,
		appearance: appearance,

		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(darkMode),

		toastDuration: toastDuration,

		cursor:      boardSide + 1,
		darkMode:    darkMode,
		showHistory: true,
	}
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width
		return that, nil

	case toastExpiredMsg:
		if msg.seq == that.toast.seq {
			that.toast.text = ""
		}
		return that, nil

	case tea.KeyMsg:
		return that.handleKey(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, that.keys.Quit):
		return that, tea.Quit

	case key.Matches(msg, that.keys.Up):
		if that.cursor >= boardSide {
			that.cursor -= boardSide
		}
	case key.Matches(msg, that.keys.Down):
		if that.cursor < entity.BoardSize-boardSide {
			that.cursor += boardSide
		}
	case key.Matches(msg, that.keys.Left):
		if that.cursor%boardSide > 0 {
			that.cursor--
		}
	case key.Matches(msg, that.keys.Right):
		if that.cursor%boardSide < boardSide-1 {
			that.cursor++
		}

	case key.Matches(msg, that.keys.Place):
		return that.place(that.cursor)

	case key.Matches(msg, that.keys.Square):
		position := int(msg.String()[0] - '1')
		that.cursor = position
		return that.place(position)

	case key.Matches(msg, that.keys.NewGame):
		that.session.NewGame()
		return that.notify("New game started", toastInfo)

	case key.Matches(msg, that.keys.History):
		that.showHistory = !that.showHistory

	case key.Matches(msg, that.keys.Rules):
		that.showRules = !that.showRules

	case key.Matches(msg, that.keys.Theme):
		return that.toggleTheme()

	case key.Matches(msg, that.keys.Help):
		that.help.ShowAll = !that.help.ShowAll
	}

	return that, nil
}

func (that Model) place(position int) (tea.Model, tea.Cmd) {
	move, err := that.session.PlaceMark(that.ctx, position)
	if err != nil {
		return that.notify(placementNotice(position, err), toastError)
	}

	kind := toastInfo
	if move.Outcome.Ended {
		kind = toastSuccess
	}

	return that.notify(move.Notice, kind)
}

func (that Model) toggleTheme() (tea.Model, tea.Cmd) {
	that.darkMode = !that.darkMode
	that.styles = NewStyles(that.darkMode)

	if err := that.appearance.SetDarkMode(that.ctx, that.darkMode); err != nil {
		that.logger.Error("failed to save appearance", "error", err)
		return that.notify("Could not save the theme", toastError)
	}

	if that.darkMode {
		return that.notify("Switched to dark mode", toastInfo)
	}

	return that.notify("Switched to light mode", toastInfo)
}

// notify replaces the current toast and schedules its removal.
func (that Model) notify(text string, kind toastKind) (tea.Model, tea.Cmd) {
	seq := that.toast.seq + 1
	that.toast = toast{text: text, kind: kind, seq: seq}

	return that, tea.Tick(that.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func placementNotice(position int, err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("Square %d is already taken", position+1)
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return "Game is over, start a new one"
	case errors.Is(err, apperror.ErrInvalidPosition):
		return "There is no such square"
	default:
		return "Something went wrong"
	}
}

func (that Model) View() string {
	state := that.session.State()

	main := lipgloss.JoinVertical(lipgloss.Left,
		that.styles.Title.Render("Tic Tac Toe"),
		that.renderStatus(state),
		that.renderBoard(state),
		"",
		that.renderToast(),
	)

	panels := []string{main, that.renderStats(that.session.Stats())}
	if that.showHistory {
		panels = append(panels, that.renderHistory(that.session.History()))
	}

	sections := []string{lipgloss.JoinHorizontal(lipgloss.Top, panels...)}
	if that.showRules {
		sections = append(sections, "", that.renderRules())
	}

	sections = append(sections, "", that.help.View(that.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (that Model) renderStatus(state entity.GameState) string {
	status := state.Result.Status(state.Turn)

	switch {
	case state.Result == entity.ResultWinX || (!state.IsFinished() && state.Turn == entity.MarkX):
		return that.styles.Status.Inherit(that.styles.MarkX).Render(status)
	case state.Result == entity.ResultWinO || (!state.IsFinished() && state.Turn == entity.MarkO):
		return that.styles.Status.Inherit(that.styles.MarkO).Render(status)
	default:
		return that.styles.Status.Render(status)
	}
}

func (that Model) renderMark(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return that.styles.MarkX.Render("X")
	case entity.MarkO:
		return that.styles.MarkO.Render("O")
	default:
		return "·"
	}
}

func (that Model) renderBoard(state entity.GameState) string {
	rows := make([]string, 0, boardSide*2-1)

	for row := 0; row < boardSide; row++ {
		cells := make([]string, 0, boardSide*2-1)

		for col := 0; col < boardSide; col++ {
			position := row*boardSide + col

			style := that.styles.Cell
			switch {
			case state.HasLine && state.WinningLine.Contains(position):
				style = that.styles.Winning
			case position == that.cursor && !state.IsFinished():
				style = that.styles.Cursor
			}

			if col > 0 {
				cells = append(cells, that.styles.Muted.Render("│"))
			}
			cells = append(cells, style.Render(that.renderMark(state.Board[position])))
		}

		if row > 0 {
			rows = append(rows, that.styles.Muted.Render("─────┼─────┼─────"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that Model) renderToast() string {
	if that.toast.text == "" {
		return ""
	}

	switch that.toast.kind {
	case toastSuccess:
		return that.styles.ToastSuccess.Render(that.toast.text)
	case toastError:
		return that.styles.ToastError.Render(that.toast.text)
	default:
		return that.styles.ToastInfo.Render(that.toast.text)
	}
}

func (that Model) renderStats(stats entity.StatsSnapshot) string {
	var sb strings.Builder

	sb.WriteString(that.styles.Heading.Render("Game Statistics"))
	sb.WriteString("\n")

	line := func(label string, count int, style lipgloss.Style) {
		percent := stats.Percent(count)
		// stored counters are trusted as is, so the share may fall outside 0..100
		filled := min(max(percent/10, 0), 10)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
		sb.WriteString(fmt.Sprintf("%-8s %3d  %s %3d%%\n", label, count, style.Render(bar), percent))
	}

	line("X wins", stats.XWins, that.styles.MarkX)
	line("O wins", stats.OWins, that.styles.MarkO)
	line("Draws", stats.Draws, that.styles.Muted)

	sb.WriteString(fmt.Sprintf("\nTotal games: %d", stats.TotalGames))

	return that.styles.Panel.Render(sb.String())
}

func (that Model) renderHistory(history []entity.MoveRecord) string {
	var sb strings.Builder

	sb.WriteString(that.styles.Heading.Render("Move History"))
	sb.WriteString("\n")

	if len(history) == 0 {
		sb.WriteString(that.styles.Muted.Render("No moves yet. Start playing!"))
		return that.styles.Panel.Render(sb.String())
	}

	for i, move := range history {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, move.Description()))
		if i < len(history)-1 {
			sb.WriteString("\n")
		}
	}

	return that.styles.Panel.Render(sb.String())
}

func (that Model) renderRules() string {
	lines := make([]string, 0, len(rules)+1)
	lines = append(lines, that.styles.Heading.Render("How to Play"))

	for i, rule := range rules {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, rule))
	}

	return that.styles.Panel.Render(strings.Join(lines, "\n"))
}
