package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookshelf/internal/session"
)

// View renders the current session snapshot. Loading, first-run
// setup, the checkout result, and the exit prompt are centered
// popups; everything else is the main screen with title bar, body,
// mode footer, and key hints.
func (m Model) View() string {
	snap := m.sess.Snapshot()

	switch snap.Screen {
	case session.ScreenLoading:
		return m.popup("Loading library, press Enter and wait...",
			"You can cancel by pressing ESC")
	case session.ScreenNewOwner:
		return m.newOwnerPopup(snap)
	case session.ScreenCheckedOutResult:
		return m.resultPopup(snap)
	case session.ScreenExiting:
		return m.popup("Exiting Library Management Tool",
			"Are you sure you want to exit? (y/n)")
	case session.ScreenHome, session.ScreenSearching, session.ScreenCheckingOut:
		return m.mainScreen(snap)
	default:
		return ""
	}
}

// popup centers a bordered box with a bold title over the whole
// window.
func (m Model) popup(title, message string) string {
	width := m.width * 3 / 5
	if width < 20 {
		width = 20
	}
	content := m.styles.PopupTitle.Render(title) + "\n\n" + m.styles.Body.Render(message)
	box := m.styles.Popup.Width(width).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) newOwnerPopup(snap session.Snapshot) string {
	body := fmt.Sprintf("Enter the owner of the library: %s", snap.OwnerInput) +
		m.styles.Cursor.Render("█")
	if snap.ErrorMessage != "" {
		body += "\n\n" + m.styles.Error.Render(snap.ErrorMessage)
	}
	return m.popup("New Library", body)
}

func (m Model) resultPopup(snap session.Snapshot) string {
	var body string
	switch {
	case snap.Outcome != nil && snap.Outcome.Err == nil:
		body = m.styles.Success.Render("Success")
		if snap.ErrorMessage != "" {
			// Checked out, but the save did not stick.
			body += "\n" + m.styles.Error.Render(snap.ErrorMessage)
		}
	case snap.Outcome != nil:
		body = m.styles.Error.Render(fmt.Sprintf("Error: %v", snap.Outcome.Err)) +
			"\n" + m.styles.Muted.Render("Press Enter")
	case snap.ErrorMessage != "":
		body = m.styles.Error.Render(snap.ErrorMessage)
	default:
		body = m.styles.Muted.Render("Nothing happened")
	}
	return m.popup("Checkout Result", body)
}

func (m Model) mainScreen(snap session.Snapshot) string {
	title := m.styles.TitleBar.
		Width(m.width - 2).
		Render(fmt.Sprintf("Library Management Tool - %s's Library", snap.Owner))

	var body string
	if snap.Screen == session.ScreenCheckingOut {
		body = m.checkoutBody(snap)
	} else {
		body = m.bookList(snap)
	}

	footer := m.styles.Footer.Width(m.width - 2).Render(m.modeLine(snap))
	hints := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.help.ShortHelpView(m.keys.bindingsFor(snap)))

	bodyHeight := m.height - lipgloss.Height(title) - lipgloss.Height(footer) - lipgloss.Height(hints)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer, hints)
}

// bookList renders one row per book in catalog order, green when
// available and red otherwise.
func (m Model) bookList(snap session.Snapshot) string {
	rows := make([]string, 0, len(snap.Books))
	for i := range snap.Books {
		b := &snap.Books[i]
		style := m.styles.BookUnavailable
		if b.Available() {
			style = m.styles.BookAvailable
		}
		rows = append(rows, style.Render(fmt.Sprintf("%-25s - %-50s", b.Author, b.Title)))
	}
	return strings.Join(rows, "\n")
}

// checkoutBody shows the selected book inside a centered box. The
// state machine guarantees a selection exists on this screen.
func (m Model) checkoutBody(snap session.Snapshot) string {
	b := snap.Selected
	info := strings.Join([]string{
		fmt.Sprintf("Title: %s", b.Title),
		fmt.Sprintf("Author: %s", b.Author),
		fmt.Sprintf("ISBN: %s", b.ISBN),
	}, "\n")
	box := m.styles.Popup.Render(m.styles.Body.Render(info))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

// modeLine is the "<mode> | <status>" footer mirroring the session
// state: current mode, active criteria, and live query.
func (m Model) modeLine(snap session.Snapshot) string {
	var mode, status string
	switch snap.Screen {
	case session.ScreenHome:
		mode = m.styles.ModeHome.Render("Home")
		status = m.styles.Muted.Render("OK")
	case session.ScreenSearching:
		mode = m.styles.ModeSearch.Render("Search")
		if snap.QueryFocused {
			status = m.styles.Body.Render(
				fmt.Sprintf("Searching by %s - Query: %s", snap.Criteria, snap.Query)) +
				m.styles.Cursor.Render("█")
		} else {
			status = m.styles.ModeSearch.Render(
				fmt.Sprintf("Switching search criteria (%s)", snap.Criteria))
		}
	case session.ScreenCheckingOut:
		mode = m.styles.ModeCheckout.Render("Check Out")
		status = m.styles.ModeCheckout.Render(
			fmt.Sprintf("Checking out '%s', by %s", snap.Selected.Title, snap.Selected.Author))
	default:
		return ""
	}
	return mode + " | " + status
}
