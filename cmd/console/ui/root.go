package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
	stateSettings
)

type RootModel struct {
	State     state
	Client    *APIClient
	Login     LoginModel
	Dashboard DashboardModel
	Settings  SettingsModel
	Quitting  bool
	width     int
	height    int
}

func NewRootModel(serverURL string) RootModel {
	return RootModel{
		State: stateLogin,
		Login: NewLoginModel(serverURL),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Table.SetHeight(max(msg.Height-10, 5))
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginDoneMsg:
		m.Client = msg.client
		m.State = stateDashboard
		m.Dashboard = NewDashboardModel(m.Client, m.width, m.height)
		return m, m.Dashboard.Init()

	case openSettingsMsg:
		m.State = stateSettings
		m.Settings = NewSettingsModel(m.Client)
		return m, m.Settings.Init()

	case backToDashboardMsg:
		m.State = stateDashboard
		return m, m.Dashboard.Init()
	}

	switch m.State {
	case stateLogin:
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)
	case stateDashboard:
		newDash, cmd := m.Dashboard.Update(msg)
		m.Dashboard = newDash
		cmds = append(cmds, cmd)
	case stateSettings:
		newSettings, cmd := m.Settings.Update(msg)
		m.Settings = newSettings
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateDashboard:
		return m.Dashboard.View()
	case stateSettings:
		return m.Settings.View()
	}
	return "Unknown state"
}
