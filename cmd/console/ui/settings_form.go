package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type backToDashboardMsg struct{}

type settingsLoadedMsg struct{ values map[string]string }

var settingsFields = []struct {
	key   string
	label string
}{
	{"jsshost", "JSS Host"},
	{"jss_port", "JSS Port"},
	{"jss_path", "JSS Path"},
	{"jss_username", "JSS Username"},
	{"jss_password", "JSS Password"},
	{"set_name", "Set Device Name (true/false)"},
}

type SettingsModel struct {
	Client   *APIClient
	Inputs   []textinput.Model
	FocusIdx int
	Status   string
	Err      error
}

func NewSettingsModel(client *APIClient) SettingsModel {
	inputs := make([]textinput.Model, len(settingsFields))
	for i, f := range settingsFields {
		inputs[i] = textinput.New()
		inputs[i].Prompt = f.label + ": "
		if f.key == "jss_password" {
			inputs[i].EchoMode = textinput.EchoPassword
		}
	}
	inputs[0].Focus()
	return SettingsModel{Client: client, Inputs: inputs}
}

func (m SettingsModel) Init() tea.Cmd {
	return func() tea.Msg {
		values, err := m.Client.GetSettings()
		if err != nil {
			return errMsg(err)
		}
		return settingsLoadedMsg{values: values}
	}
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToDashboardMsg{} }
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.saveCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}

	case settingsLoadedMsg:
		for i, f := range settingsFields {
			m.Inputs[i].SetValue(msg.values[f.key])
		}

	case statusMsg:
		m.Status = string(msg)
		m.Err = nil

	case errMsg:
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *SettingsModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *SettingsModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m SettingsModel) saveCmd() tea.Cmd {
	values := make(map[string]string, len(settingsFields))
	for i, f := range settingsFields {
		values[f.key] = m.Inputs[i].Value()
	}
	return func() tea.Msg {
		msg, err := m.Client.SaveSettings(values)
		if err != nil {
			return errMsg(err)
		}
		return statusMsg(msg)
	}
}

func (m SettingsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("assethook - JSS Settings") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter on the last field saves · Esc back"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
