package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/dbwd/cereal/dbw"
)

type SettingType int

const (
	None SettingType = iota
	String
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsSend
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType dbw.DbwInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput.SetValue("")
				return m, m.textInput.Focus()
			case settingsSend:
				m.state = showSettingsMenu
				m.err = mm.send(func(input dbw.DbwIn) error {
					input.SetType(it.MessageType)
					return nil
				})
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu
			m.textInput.Blur()
			result := m.textInput.Value()
			selected := m.selectedItem
			m.err = mm.send(func(input dbw.DbwIn) error {
				input.SetType(selected.MessageType)
				switch selected.Type {
				case String:
					return input.SetStr(result)
				case Bool:
					input.SetBool(result == "true")
				}
				return nil
			})
			return m, nil
		}
		if m.state == settingsInput {
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to quit)",
		) + "\n")
	default:
		view := m.list.View()
		if m.err != nil {
			view += fmt.Sprintf("\n\nlast command failed: %v", m.err)
		}
		return docStyle.Render(view)
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the dbwd system (debug, info, warn, error)",
			MessageType: dbw.DbwInputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Enabled",
			desc:        "Enable or disable drive by wire (true or false)",
			MessageType: dbw.DbwInputType_setEnabled,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Re-read the persisted settings",
			MessageType: dbw.DbwInputType_reloadSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default value",
			MessageType: dbw.DbwInputType_loadDefaultSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: dbw.DbwInputType_saveSettings,
			state:       settingsSend,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Dbwd Settings"
	return m
}
