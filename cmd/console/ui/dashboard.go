package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type devicesLoadedMsg struct{ devices []DeviceRow }

type statusMsg string

type openSettingsMsg struct{}

type DashboardModel struct {
	Client  *APIClient
	Table   table.Model
	Devices []DeviceRow
	Status  string
	Err     error
}

func NewDashboardModel(client *APIClient, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Serial", Width: 20},
		{Title: "Asset Tag", Width: 14},
		{Title: "Name", Width: 24},
		{Title: "Last Submitted", Width: 22},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{Client: client, Table: t}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		devices, err := m.Client.ListDevices()
		if err != nil {
			return errMsg(err)
		}
		return devicesLoadedMsg{devices: devices}
	}
}

func (m DashboardModel) submitCmd(serial string) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.Client.Submit(serial)
		if err != nil {
			return errMsg(err)
		}
		return statusMsg(msg)
	}
}

func (m DashboardModel) submitAllCmd() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.Client.SubmitAll()
		if err != nil {
			return errMsg(err)
		}
		return statusMsg(msg)
	}
}

func (m DashboardModel) deleteCmd(id uint) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.Client.DeleteDevice(id)
		if err != nil {
			return errMsg(err)
		}
		return statusMsg(msg)
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd()
		case "s":
			if d, ok := m.selected(); ok {
				m.Status = "submitting " + d.SerialNumber + "..."
				return m, m.submitCmd(d.SerialNumber)
			}
		case "a":
			m.Status = "submitting all devices..."
			return m, m.submitAllCmd()
		case "x":
			if d, ok := m.selected(); ok {
				return m, m.deleteCmd(d.ID)
			}
		case "g":
			return m, func() tea.Msg { return openSettingsMsg{} }
		case "q":
			return m, tea.Quit
		}

	case devicesLoadedMsg:
		m.Devices = msg.devices
		m.Err = nil
		rows := make([]table.Row, 0, len(msg.devices))
		for _, d := range msg.devices {
			rows = append(rows, table.Row{d.SerialNumber, d.AssetTag, d.DeviceName, d.LastSubmittedAt})
		}
		m.Table.SetRows(rows)

	case statusMsg:
		m.Status = string(msg)
		m.Err = nil
		return m, m.refreshCmd()

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) selected() (DeviceRow, bool) {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Devices) {
		return DeviceRow{}, false
	}
	return m.Devices[idx], true
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("assethook - Devices") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh · s submit · a submit all · x delete · g settings · q quit"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
