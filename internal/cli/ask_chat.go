package cli

import (
	"fmt"
	"strings"

	"github.com/aumai/kisanmitra/internal/cli/formatter"
	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// askChatModel is a multi-turn advisory chat over the keyword router.
// Location and language from the command flags apply to every turn.
type askChatModel struct {
	app      *App
	input    textinput.Model
	messages []string
	location string
	language string
}

func newAskChatModel(app *App, location, language string) *askChatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &askChatModel{
		app:      app,
		input:    ti,
		location: location,
		language: language,
	}
	m.messages = append(m.messages, formatter.FormatChatWelcome())
	return m
}

func (m *askChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *askChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			resp := m.app.Advisor.Respond(domain.Query{
				Text:     text,
				Language: m.language,
				Location: m.location,
			})
			m.messages = append(m.messages,
				formatter.Dim("You: ")+text,
				formatter.FormatChatAnswer(resp),
			)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *askChatModel) View() string {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString(formatter.StylePurple.Render("ask") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	return b.String()
}

// runAskChat runs the chat program until the user exits with Esc/Ctrl+C.
func runAskChat(app *App, location, language string) error {
	if _, err := tea.NewProgram(newAskChatModel(app, location, language)).Run(); err != nil {
		return fmt.Errorf("running advisory chat: %w", err)
	}
	return nil
}
