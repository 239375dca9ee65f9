package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zacharylandes/fizzbit-sub000/internal/deck"
	"github.com/zacharylandes/fizzbit-sub000/internal/gesture"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
	"github.com/zacharylandes/fizzbit-sub000/models"
)

// fetchTimeout bounds a single generation round so a stalled provider cannot
// hang the TUI.
const fetchTimeout = 60 * time.Second

// RunDeck starts the interactive swipe deck for a session. Blocks until the
// user quits.
func RunDeck(session *deck.Session, tel *telemetry.Client) error {
	m := newDeckModel(session, tel)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

type refillDoneMsg struct {
	added int
	err   error
}

type exploreDoneMsg struct {
	parent models.Idea
	added  int
	err    error
}

// deckModel is the Bubble Tea model for the swipe deck.
type deckModel struct {
	session    *deck.Session
	tel        *telemetry.Client
	classifier *gesture.Classifier
	spinner    spinner.Model

	fetching  bool
	status    string
	lastError string
	saved     int
	dismissed int
	width     int
	height    int
}

func newDeckModel(session *deck.Session, tel *telemetry.Client) deckModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StylePrimary
	return deckModel{
		session:    session,
		tel:        tel,
		classifier: gesture.New(gesture.DefaultConfig()),
		spinner:    sp,
		fetching:   true,
		status:     "brewing ideas...",
	}
}

func (m deckModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refillCmd(m.session))
}

func refillCmd(session *deck.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		added, err := session.Refill(ctx)
		return refillDoneMsg{added: added, err: err}
	}
}

func exploreCmd(session *deck.Session, parent models.Idea) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		added, err := session.Explore(ctx, parent)
		return exploreDoneMsg{parent: parent, added: added, err: err}
	}
}

func (m deckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "h", "left":
			return m.resolve(gesture.SwipeLeft)
		case "l", "right":
			return m.resolve(gesture.SwipeRight)
		case "k", "up":
			return m.resolve(gesture.SwipeUp)
		case "j", "down":
			return m.resolve(gesture.SwipeDown)
		case "1":
			m.session.SetPosition(m.session.Vertices().Wild)
			return m, nil
		case "2":
			m.session.SetPosition(m.session.Vertices().Actionable)
			return m, nil
		case "3":
			m.session.SetPosition(m.session.Vertices().Deep)
			return m, nil
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case refillDoneMsg:
		m.fetching = false
		m.status = ""
		if msg.err != nil {
			m.lastError = msg.err.Error()
		} else {
			m.lastError = ""
		}
		return m, nil

	case exploreDoneMsg:
		m.fetching = false
		m.status = ""
		if msg.err != nil {
			m.lastError = msg.err.Error()
		} else {
			m.lastError = ""
			m.status = fmt.Sprintf("queued %d branches of %q", msg.added, msg.parent.Title)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse feeds pointer events through the gesture classifier. The card
// only moves once the release resolves; mid-drag the provisional direction
// tints the border.
func (m deckModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	sample := gesture.Sample{X: float64(msg.X), Y: float64(msg.Y), T: time.Now()}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.classifier.Start(sample)
		}
	case tea.MouseActionMotion:
		if m.classifier.Tracking() {
			m.classifier.Move(sample)
		}
	case tea.MouseActionRelease:
		if m.classifier.Tracking() {
			return m.resolve(m.classifier.End(sample))
		}
	}
	return m, nil
}

// resolve applies a swipe to the session and kicks off whatever fetch the
// outcome asks for.
func (m deckModel) resolve(sw gesture.Swipe) (tea.Model, tea.Cmd) {
	out, err := m.session.HandleSwipe(sw)
	if err != nil {
		m.lastError = err.Error()
		return m, nil
	}

	switch out.Action {
	case deck.ActionSaved:
		m.saved++
		m.tel.Capture(telemetry.EventIdeaSaved, map[string]interface{}{"source": string(out.Card.Source)})
	case deck.ActionDismissed:
		m.dismissed++
	case deck.ActionExplore:
		m.tel.Capture(telemetry.EventIdeaExplored, nil)
		m.fetching = true
		m.status = fmt.Sprintf("branching off %q...", out.Card.Title)
		return m, tea.Batch(m.spinner.Tick, exploreCmd(m.session, out.Card))
	}

	if out.NeedsRefill && !m.fetching {
		m.fetching = true
		m.status = "brewing more ideas..."
		return m, tea.Batch(m.spinner.Tick, refillCmd(m.session))
	}
	return m, nil
}

func (m deckModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StyleTitle.Render("  fizzbit — " + m.session.Subject()))
	b.WriteString("\n\n")

	b.WriteString(RenderTriangle(m.session.Position(), m.session.Weights()))
	b.WriteString("\n")

	card, ok := m.session.Queue().Front()
	switch {
	case ok:
		b.WriteString(m.renderCard(card))
	case m.fetching:
		b.WriteString("\n  " + m.spinner.View() + StyleSubtle.Render(" waiting for fresh cards...") + "\n")
	default:
		b.WriteString("\n  " + StyleSubtle.Render("deck is empty — press q to leave") + "\n")
	}
	b.WriteString("\n")

	if m.fetching && m.status != "" {
		b.WriteString("  " + m.spinner.View() + StyleSubtle.Render(" "+m.status) + "\n")
	} else if m.status != "" {
		b.WriteString("  " + StyleSuccess.Render(m.status) + "\n")
	}
	if m.lastError != "" {
		b.WriteString("  " + StyleError.Render("! "+m.lastError) + "\n")
	}

	b.WriteString("\n  " + StyleSubtle.Render(fmt.Sprintf(
		"saved %d · dismissed %d · %d left", m.saved, m.dismissed, m.session.Queue().Remaining())))
	b.WriteString("\n  " + StyleSubtle.Render(
		"drag or ←/h dismiss · →/l save · ↑/k explore · ↓/j snooze · 1/2/3 blend · q quit") + "\n")
	return b.String()
}

// renderCard draws the front card, shifted up by the gesture lift and tinted
// by the provisional direction while a drag is in flight.
func (m deckModel) renderCard(card models.Idea) string {
	style := StyleCard
	if m.classifier.Tracking() {
		switch m.classifier.Provisional() {
		case gesture.SwipeRight:
			style = StyleCardSaving
		case gesture.SwipeLeft:
			style = StyleCardDismissing
		}
	}

	var content strings.Builder
	content.WriteString(StyleCardTitle.Render(card.Title))
	content.WriteString("\n\n")
	content.WriteString(card.Description)
	if card.Hook != "" {
		content.WriteString("\n\n")
		content.WriteString(StyleCardHook.Render(card.Hook))
	}
	if card.ParentID != nil {
		content.WriteString("\n\n")
		content.WriteString(StyleSubtle.Render("↳ branched idea"))
	}

	rendered := style.Render(content.String())

	// The lift offset translates to blank lines above the card shrinking as
	// the card rises.
	lift := int(m.classifier.Lift() / 20)
	const maxLiftRows = 4
	if lift > maxLiftRows {
		lift = maxLiftRows
	}
	pad := strings.Repeat("\n", maxLiftRows-lift)
	return pad + lipgloss.NewStyle().MarginLeft(2).Render(rendered)
}
