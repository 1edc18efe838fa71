package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tracker/internal/storage"
)

// IdentityModel is the Bubble Tea model for claiming or resuming a player ID.
type IdentityModel struct {
	store        *storage.Store
	input        textinput.Model
	registerOnly bool // When set, an existing ID is rejected instead of resumed
	errMsg       string
	userID       uint32
	done         bool
	quitting     bool
	width        int
	height       int
}

// NewIdentityModel creates the identity prompt. With registerOnly set, the
// entered ID must be unclaimed; otherwise an existing ID resumes its profile
// and a new one is claimed on the spot.
func NewIdentityModel(store *storage.Store, registerOnly bool, width, height int) IdentityModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 42"
	ti.CharLimit = 10
	ti.Width = 20
	ti.Focus()

	return IdentityModel{
		store:        store,
		input:        ti,
		registerOnly: registerOnly,
		width:        width,
		height:       height,
	}
}

// Init starts the input cursor blink.
func (m IdentityModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the identity prompt.
func (m IdentityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the entered ID and claims or resumes it.
func (m IdentityModel) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	id64, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id64 == 0 {
		m.errMsg = "Player ID must be a positive number"
		return m, nil
	}
	id := uint32(id64)

	exists, err := m.store.UserExists(id)
	if err != nil {
		m.errMsg = fmt.Sprintf("Could not check ID: %v", err)
		return m, nil
	}

	if exists {
		if m.registerOnly {
			// The ID stays claimed forever; pick another
			m.errMsg = fmt.Sprintf("ID %d is already taken, pick another", id)
			m.input.SetValue("")
			return m, nil
		}
		m.userID = id
		m.done = true
		return m, tea.Quit
	}

	if err := m.store.CreateUser(id); err != nil {
		if errors.Is(err, storage.ErrUserTaken) {
			m.errMsg = fmt.Sprintf("ID %d is already taken, pick another", id)
			m.input.SetValue("")
		} else {
			m.errMsg = fmt.Sprintf("Could not claim ID: %v", err)
		}
		return m, nil
	}

	m.userID = id
	m.done = true
	return m, tea.Quit
}

// View renders the identity prompt.
func (m IdentityModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("WHO IS TRACKING?"))
	b.WriteString("\n\n")
	b.WriteString("Enter your player ID:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("enter: confirm  esc: quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// UserID returns the confirmed player ID.
func (m IdentityModel) UserID() uint32 {
	return m.userID
}

// IsDone reports whether an ID was confirmed.
func (m IdentityModel) IsDone() bool {
	return m.done
}

// IsQuitting reports whether the user aborted the prompt.
func (m IdentityModel) IsQuitting() bool {
	return m.quitting
}

// RunIdentity runs the identity prompt standalone and returns the confirmed
// player ID. ok is false if the user aborted.
func RunIdentity(store *storage.Store, registerOnly bool, width, height int) (userID uint32, ok bool, err error) {
	model := NewIdentityModel(store, registerOnly, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isIdentity := finalModel.(IdentityModel)
	if !isIdentity || !m.IsDone() {
		return 0, false, nil
	}
	return m.UserID(), true, nil
}
