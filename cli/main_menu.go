package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/dbwd/cereal"
	"pfeifer.dev/dbwd/cereal/dbw"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list      list.Model
	state     mainState
	settings  settingsModel
	output    outputModel
	pub       *cereal.Publisher[dbw.DbwIn]
	cmdSub    *cereal.Subscriber[dbw.Command]
	statusSub *cereal.Subscriber[dbw.Status]
}
type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active instance of dbwd", state: showSettings},
		item{title: "Watch", desc: "Watch the live commands and status from dbwd", state: showOutput},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := cereal.NewPublisher(cereal.DBW_IN, cereal.DbwInCreator)
	cmdSub := cereal.NewSubscriber(cereal.DBW_CMD, cereal.CommandReader, true)
	statusSub := cereal.NewSubscriber(cereal.DBW_STATUS, cereal.StatusReader, true)
	m := uiModel{
		list:      list.New(items, listDelegate, 0, 0),
		settings:  getSettingsModel(),
		pub:       &pub,
		cmdSub:    &cmdSub,
		statusSub: &statusSub,
	}
	m.list.Title = "Dbwd Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && m.state != showMenu {
			m.state = showMenu
			m.settings.state = showSettingsMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.output = m.output.Update(m.cmdSub, m.statusSub)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	}
	return docStyle.Render(m.list.View())
}

func (m *uiModel) send(configure func(dbw.DbwIn) error) error {
	msg, input := m.pub.NewMessage(true)
	if err := configure(input); err != nil {
		return err
	}
	return m.pub.Send(msg)
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
